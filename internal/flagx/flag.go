// Package flagx holds the helpers every binary uses to build its
// configuration from flags, a JSON file and the environment.
//
// FilterArgs lets several flag sets share os.Args. The Env* helpers overlay
// environment variables onto an already filled config.
package flagx

import (
	"flag"
	"os"
	"strings"
)

// FilterArgs returns the subset of args made of the flags listed in
// allowedFlags, each followed by its value when the value was passed as a
// separate argument.
//
// Supported formats:
//  1. Flag and value as separate arguments:  -d postgres://...
//  2. Flag and value joined with '=':         -d=postgres://...
//
// A token starting with "-" is never taken as the value of the flag before
// it, so "-d -a" keeps only "-d".
//
// Parameters:
//
//	args         the command-line arguments, usually os.Args[1:]
//	allowedFlags the flag names to keep, e.g. []string{"-d", "-database"}
//
// Returns:
//
//	A non-nil slice with the kept flags and their values, in input order.
//	Each config package parses it with its own flag.FlagSet, so the server,
//	client and bot flag sets never reject each other's flags.
func FilterArgs(args []string, allowedFlags []string) []string {
	// set of allowed names for constant-time lookup
	allowed := make(map[string]struct{}, len(allowedFlags))
	for _, f := range allowedFlags {
		allowed[f] = struct{}{}
	}

	// empty, not nil, so callers can pass it straight to FlagSet.Parse
	filtered := make([]string, 0, len(args))

	for i := 0; i < len(args); i++ {
		arg := args[i]

		// "-flag=value": keep the whole token when the name is allowed
		if strings.HasPrefix(arg, "-") && strings.Contains(arg, "=") {
			name, _, _ := strings.Cut(arg, "=")
			if _, ok := allowed[name]; ok {
				filtered = append(filtered, arg)
			}
			continue
		}

		if _, ok := allowed[arg]; !ok {
			continue
		}
		filtered = append(filtered, arg)
		// "-flag value": the next token is the value unless it is a flag
		if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
			filtered = append(filtered, args[i+1])
			i++ // value consumed
		}
	}

	return filtered
}

// JsonConfigFlags inspects os.Args and returns the JSON config file path
// given with the -c or -config flag.
//
// Only these two flags are parsed; every other argument is ignored, so the
// caller can parse its own flags afterwards without conflicts. Parse errors
// are swallowed because the regular flag pass reports them with usage.
//
// Returns:
//
//	The config file path, or "" when neither -c nor -config is present.
func JsonConfigFlags() string {
	var config string

	args := FilterArgs(os.Args[1:], []string{"-c", "-config"})

	fs := flag.NewFlagSet("json", flag.ContinueOnError)
	fs.StringVar(&config, "config", "", "Path to config file")
	fs.StringVar(&config, "c", "", "Path to config file (short)")
	_ = fs.Parse(args)

	return config
}

package flagx

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// LoadDotEnv loads KEY=VALUE pairs from dotenv files into the process
// environment, using github.com/joho/godotenv.
//
// Variables that are already set in the environment win over the files, so
// a real environment always overrides a checked-in .env.
//
// Parameters:
//
//	paths  the files to read, in order; ".env" when none is given
//
// Returns:
//
//	nil when every file was loaded or does not exist; otherwise the first
//	read or parse error.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return err
		}
	}
	return nil
}

// EnvString overwrites *dst with the value of the environment variable key
// when it is set and not empty. An unset or empty variable leaves *dst as is,
// so defaults and JSON values survive.
//
// Parameters:
//
//	key  the environment variable name, e.g. "DATABASE_DSN"
//	dst  the config field to overwrite
func EnvString(key string, dst *string) {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		*dst = v
	}
}

// EnvInt is EnvString for integer fields. A value strconv.Atoi cannot parse
// is ignored and *dst keeps its previous value.
func EnvInt(key string, dst *int) {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}

// EnvDuration is EnvString for time.Duration fields. The value uses
// time.ParseDuration syntax ("90s", "15m"); anything unparsable is ignored
// and *dst keeps its previous value.
func EnvDuration(key string, dst *time.Duration) {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			*dst = d
		}
	}
}

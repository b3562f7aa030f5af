package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/studyguide/internal/flagx"
)

// parseFlags populates selected bot Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-k string   Telegram bot token
//	-d string   PostgreSQL DSN
//	-v bool     log Telegram API traffic
//	-l string   log level (debug, info, warn, error)
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-k", "-d", "-v", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.TelegramToken, "k", config.TelegramToken, "telegram bot token")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.BoolVar(&config.Debug, "v", config.Debug, "telegram API debug output")
	fs.StringVar(&config.LogLevel, "l", config.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}

package config

import (
	"os"
	"strconv"

	"github.com/dmitrijs2005/studyguide/internal/flagx"
)

func parseEnv(c *Config) {
	flagx.EnvString("TOKEN_BOT", &c.TelegramToken)
	flagx.EnvString("DATABASE_DSN", &c.DatabaseDSN)
	flagx.EnvString("OPENAI_API_KEY", &c.OpenAIKey)
	flagx.EnvString("OPENAI_MODEL", &c.OpenAIModel)
	flagx.EnvString("OPENAI_BASE_URL", &c.OpenAIBaseURL)
	flagx.EnvInt("OPENAI_MAX_TOKENS", &c.OpenAIMaxTokens)
	flagx.EnvDuration("GENERATION_TIMEOUT", &c.GenerationTimeout)
	flagx.EnvDuration("POLL_TIMEOUT", &c.PollTimeout)
	flagx.EnvString("LOG_LEVEL", &c.LogLevel)

	if v := os.Getenv("BOT_DEBUG"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			panic(err)
		}
		c.Debug = b
	}
}

package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/studyguide/internal/flagx"
	"github.com/dmitrijs2005/studyguide/internal/timex"
)

// JsonConfig is the on-disk shape of the bot configuration.
type JsonConfig struct {
	TelegramToken     string         `json:"token_bot"`
	DatabaseDSN       string         `json:"database_dsn"`
	OpenAIKey         string         `json:"openai_api_key"`
	OpenAIModel       string         `json:"openai_model"`
	OpenAIBaseURL     string         `json:"openai_base_url"`
	OpenAIMaxTokens   int            `json:"openai_max_tokens"`
	GenerationTimeout timex.Duration `json:"generation_timeout"`
	PollTimeout       timex.Duration `json:"poll_timeout"`
	Debug             bool           `json:"debug"`
	LogLevel          string         `json:"log_level"`
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func parseJson(config *Config) {

	jsonConfigFile := flagx.JsonConfigFlags()

	// nothing to load
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	setString(&config.TelegramToken, c.TelegramToken)
	setString(&config.DatabaseDSN, c.DatabaseDSN)
	setString(&config.OpenAIKey, c.OpenAIKey)
	setString(&config.OpenAIModel, c.OpenAIModel)
	setString(&config.OpenAIBaseURL, c.OpenAIBaseURL)
	if c.OpenAIMaxTokens > 0 {
		config.OpenAIMaxTokens = c.OpenAIMaxTokens
	}
	if c.GenerationTimeout.Duration > 0 {
		config.GenerationTimeout = c.GenerationTimeout.Duration
	}
	if c.PollTimeout.Duration > 0 {
		config.PollTimeout = c.PollTimeout.Duration
	}
	if c.Debug {
		config.Debug = true
	}
	setString(&config.LogLevel, c.LogLevel)
}

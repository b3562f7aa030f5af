package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/studyguide/internal/flagx"
	"github.com/dmitrijs2005/studyguide/internal/timex"
)

// JsonConfig is the on-disk shape of the server configuration. Durations
// accept both strings such as "15m" and integer nanoseconds.
type JsonConfig struct {
	EndpointAddrGRPC            string         `json:"endpoint_addr_grpc"`
	EndpointAddrHTTP            string         `json:"endpoint_addr_http"`
	DatabaseDSN                 string         `json:"database_dsn"`
	SecretKey                   string         `json:"secret_key"`
	AccessTokenValidityDuration timex.Duration `json:"access_token_validity_duration"`
	AllowedDomain               string         `json:"allowed_domain"`
	OpenAIKey                   string         `json:"openai_api_key"`
	OpenAIModel                 string         `json:"openai_model"`
	OpenAIBaseURL               string         `json:"openai_base_url"`
	OpenAIMaxTokens             int            `json:"openai_max_tokens"`
	GenerationTimeout           timex.Duration `json:"generation_timeout"`
	S3RootUser                  string         `json:"s3_root_user"`
	S3RootPassword              string         `json:"s3_root_password"`
	S3Bucket                    string         `json:"s3_bucket"`
	S3Region                    string         `json:"s3_region"`
	S3BaseEndpoint              string         `json:"s3_base_endpoint"`
	PresignValidityDuration     timex.Duration `json:"presign_validity_duration"`
	BotUserName                 string         `json:"bot_username"`
	LogLevel                    string         `json:"log_level"`
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

// parseJson loads the file named by -c/-config, if any, and copies every
// non-empty value into config. Unreadable or invalid files panic.
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

	err = json.Unmarshal(file, c)
	if err != nil {
		panic(err)
	}

	setString(&config.EndpointAddrGRPC, c.EndpointAddrGRPC)
	setString(&config.EndpointAddrHTTP, c.EndpointAddrHTTP)
	setString(&config.DatabaseDSN, c.DatabaseDSN)
	setString(&config.SecretKey, c.SecretKey)
	if c.AccessTokenValidityDuration.Duration > 0 {
		config.AccessTokenValidityDuration = c.AccessTokenValidityDuration.Duration
	}
	setString(&config.AllowedDomain, c.AllowedDomain)
	setString(&config.OpenAIKey, c.OpenAIKey)
	setString(&config.OpenAIModel, c.OpenAIModel)
	setString(&config.OpenAIBaseURL, c.OpenAIBaseURL)
	if c.OpenAIMaxTokens > 0 {
		config.OpenAIMaxTokens = c.OpenAIMaxTokens
	}
	if c.GenerationTimeout.Duration > 0 {
		config.GenerationTimeout = c.GenerationTimeout.Duration
	}
	setString(&config.S3RootUser, c.S3RootUser)
	setString(&config.S3RootPassword, c.S3RootPassword)
	setString(&config.S3Bucket, c.S3Bucket)
	setString(&config.S3Region, c.S3Region)
	setString(&config.S3BaseEndpoint, c.S3BaseEndpoint)
	if c.PresignValidityDuration.Duration > 0 {
		config.PresignValidityDuration = c.PresignValidityDuration.Duration
	}
	setString(&config.BotUserName, c.BotUserName)
	setString(&config.LogLevel, c.LogLevel)
}

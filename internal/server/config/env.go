package config

import "github.com/dmitrijs2005/studyguide/internal/flagx"

// parseEnv overlays variables that are set and non-empty.
func parseEnv(c *Config) {
	flagx.EnvString("GRPC_ADDR", &c.EndpointAddrGRPC)
	flagx.EnvString("HTTP_ADDR", &c.EndpointAddrHTTP)
	flagx.EnvString("DATABASE_DSN", &c.DatabaseDSN)
	flagx.EnvString("SECRET_KEY", &c.SecretKey)
	flagx.EnvDuration("ACCESS_TOKEN_TTL", &c.AccessTokenValidityDuration)
	flagx.EnvString("ALLOWED_DOMAIN", &c.AllowedDomain)
	flagx.EnvString("OPENAI_API_KEY", &c.OpenAIKey)
	flagx.EnvString("OPENAI_MODEL", &c.OpenAIModel)
	flagx.EnvString("OPENAI_BASE_URL", &c.OpenAIBaseURL)
	flagx.EnvInt("OPENAI_MAX_TOKENS", &c.OpenAIMaxTokens)
	flagx.EnvDuration("GENERATION_TIMEOUT", &c.GenerationTimeout)
	flagx.EnvString("S3_ROOT_USER", &c.S3RootUser)
	flagx.EnvString("S3_ROOT_PASSWORD", &c.S3RootPassword)
	flagx.EnvString("S3_BUCKET", &c.S3Bucket)
	flagx.EnvString("S3_REGION", &c.S3Region)
	flagx.EnvString("S3_BASE_ENDPOINT", &c.S3BaseEndpoint)
	flagx.EnvDuration("PRESIGN_TTL", &c.PresignValidityDuration)
	flagx.EnvString("BOT_USERNAME", &c.BotUserName)
	flagx.EnvString("LOG_LEVEL", &c.LogLevel)
}

package config

import "github.com/dmitrijs2005/studyguide/internal/flagx"

func parseEnv(c *Config) {
	flagx.EnvString("SERVER_ADDR", &c.ServerEndpointAddr)
	flagx.EnvDuration("ONLINE_CHECK_INTERVAL", &c.OnlineCheckInterval)
	flagx.EnvDuration("REQUEST_TIMEOUT", &c.RequestTimeout)
	flagx.EnvString("CLIENT_LOG_FILE", &c.LogFile)
	flagx.EnvString("LOG_LEVEL", &c.LogLevel)
}

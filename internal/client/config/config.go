package config

import (
	"time"

	"github.com/dmitrijs2005/studyguide/internal/flagx"
)

// Config holds runtime settings for the study guide screen client.
//
// Fields:
//   - ServerEndpointAddr: host:port of the backend gRPC endpoint.
//   - OnlineCheckInterval: how often the client checks server reachability.
//   - RequestTimeout: deadline for a single server call; generation calls
//     wait on the language model, so this is generous.
//   - LogFile: where the client writes its log (the terminal belongs to the UI).
//   - LogLevel: debug, info, warn or error.
type Config struct {
	ServerEndpointAddr  string
	OnlineCheckInterval time.Duration
	RequestTimeout      time.Duration
	LogFile             string
	LogLevel            string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "127.0.0.1:50051"
	c.OnlineCheckInterval = 3 * time.Second
	c.RequestTimeout = 90 * time.Second
	c.LogFile = "studyguide-client.log"
	c.LogLevel = "info"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// the environment (and a .env file), JSON (if present) and command-line
// flags (if present). Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := flagx.LoadDotEnv(); err != nil {
		panic(err)
	}
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}

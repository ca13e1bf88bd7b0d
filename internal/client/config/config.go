package config

import "time"

// Config holds runtime settings for the jobtracker CLI.
//
// Fields:
//   - ServerEndpointAddr: host:port of the backend gRPC endpoint.
//   - AccessToken: bearer token presented to the backend.
//   - RequestTimeout: upper bound for each backend call.
//   - DatabasePath: local SQLite file holding the assistant history.
//   - AutosaveInterval: quiet period before a resume edit is saved.
//   - LLMBaseURL, LLMModel, LLMImageModel, LLMAPIKey: generation provider.
//   - OnlineCheckInterval: how often the client probes server reachability.
type Config struct {
	ServerEndpointAddr  string
	AccessToken         string
	RequestTimeout      time.Duration
	DatabasePath        string
	AutosaveInterval    time.Duration
	LLMBaseURL          string
	LLMModel            string
	LLMImageModel       string
	LLMAPIKey           string
	OnlineCheckInterval time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "127.0.0.1:50051"
	c.RequestTimeout = 10 * time.Second
	c.DatabasePath = "data/jobtracker.db"
	c.AutosaveInterval = 2000 * time.Millisecond
	c.LLMBaseURL = "https://openrouter.ai/api/v1"
	c.LLMModel = "google/gemini-2.5-flash"
	c.LLMImageModel = "google/gemini-2.5-flash-image-preview"
	c.OnlineCheckInterval = 3 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present), the environment and command-line flags. Later sources
// take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}

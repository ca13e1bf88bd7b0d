package config

import (
	"errors"
	"io/fs"
	"os"

	"github.com/dmitrijs2005/jobtracker/internal/flagx"
	"github.com/joho/godotenv"
)

const (
	EnvAPIKey      = "OPENROUTER_API_KEY"
	EnvAccessToken = "JOBTRACKER_ACCESS_TOKEN"
	EnvServerAddr  = "JOBTRACKER_SERVER_ADDR"
)

// parseEnv overlays secrets from the environment. A dotenv file named by
// -env is loaded first and must exist; otherwise ./.env is loaded when
// present. Variables already set in the process environment win over the file.
func parseEnv(cfg *Config) {
	if file := flagx.EnvFileFlag(); file != "" {
		if err := godotenv.Load(file); err != nil {
			panic(err)
		}
	} else if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		panic(err)
	}

	setString(&cfg.LLMAPIKey, os.Getenv(EnvAPIKey))
	setString(&cfg.AccessToken, os.Getenv(EnvAccessToken))
	setString(&cfg.ServerEndpointAddr, os.Getenv(EnvServerAddr))
}

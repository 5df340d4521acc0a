package configs

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/kkyr/fig"
	"go.uber.org/zap"
)

type DB struct {
	Host               string `validate:"required"`
	Port               int    `default:"5432"`
	User               string `default:"postgres"`
	Password           string `validate:"required"`
	Database           string `default:"postgres"`
	MaxIdleConnections int    `default:"10"`
	MaxOpenConnections int    `default:"10"`
}

type Server struct {
	Port int `default:"8080"`
}

type Integrations struct {
	Catalog  []string `default:"baxus"`
	BaxusURL string   `default:"https://services.baxus.co"`
}

type Auth struct {
	SecretKey string
	Audience  string
	Domain    string
}

type Reasoning struct {
	Enabled           bool
	BaseURL           string `default:"https://api.openai.com"`
	APIKey            string
	Model             string `default:"gpt-4o"`
	TimeoutSeconds    int    `default:"30"`
	MaxRetries        int    `default:"2"`
	RequestsPerMinute int    `default:"30"`
	MaxFailures       uint32 `default:"5"`
	OpenSeconds       int    `default:"60"`
}

type Recommendations struct {
	Limit         int    `default:"5"`
	CandidatePool int    `default:"10"`
	Strategy      string `default:"ranked"`
	Workers       int    `default:"4"`
}

type Config struct {
	DB              DB
	Server          Server
	Integrations    Integrations
	Auth            Auth
	Reasoning       Reasoning
	Recommendations Recommendations
}

// LocalConfig is the subset used by commands that never touch the database.
type LocalConfig struct {
	Integrations    Integrations
	Reasoning       Reasoning
	Recommendations Recommendations
}

const envPrefix = "BOTTLEBUTLER" // env prefix for env vars

var ErrConfiguration = errors.New("configuration error")

func GetConfig(configFileName string, logger *zap.Logger) (*Config, error) {
	config, err := load[Config](configFileName, logger)
	if err != nil {
		return nil, err
	}

	if err = validate(&config.Reasoning, &config.Recommendations); err != nil {
		return nil, err
	}

	return config, nil
}

func GetLocalConfig(configFileName string, logger *zap.Logger) (*LocalConfig, error) {
	config, err := load[LocalConfig](configFileName, logger)
	if err != nil {
		return nil, err
	}

	if err = validate(&config.Reasoning, &config.Recommendations); err != nil {
		return nil, err
	}

	return config, nil
}

func validate(reasoning *Reasoning, recommendations *Recommendations) error {
	switch recommendations.Strategy {
	case "ranked", "reasoning":
	default:
		return fmt.Errorf("%w: unknown recommendation strategy %q", ErrConfiguration, recommendations.Strategy)
	}

	if recommendations.Limit < 1 {
		return fmt.Errorf("%w: recommendation limit must be positive", ErrConfiguration)
	}

	if reasoning.Enabled && len(reasoning.APIKey) == 0 {
		return fmt.Errorf("%w: reasoning is enabled without an API key", ErrConfiguration)
	}

	return nil
}

func load[T any](configFileName string, logger *zap.Logger) (*T, error) {
	var config T

	homeDir, _ := os.UserHomeDir()

	logger.Info("Loading config", zap.String("file", configFileName))

	err := fig.Load(&config, fig.File(configFileName), fig.Dirs(".", homeDir), fig.UseEnv(envPrefix))
	if err != nil {
		if strings.Contains(err.Error(), "file not found") {
			logger.Warn("Could not find config file", zap.String("file", configFileName))

			err = fig.Load(&config, fig.IgnoreFile(), fig.UseEnv(envPrefix))
			if err != nil {
				return nil, err
			}
		} else {
			return nil, err
		}
	}

	return &config, nil
}

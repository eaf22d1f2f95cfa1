package config

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// defaultConfigPath is used when CONFIG_PATH is not set.
const defaultConfigPath = "./config.yaml"

// Load reads configuration and validates it. Precedence is ENV over YAML
// over the env-default tags. The YAML path comes from CONFIG_PATH; when
// CONFIG_PATH is unset and ./config.yaml does not exist, the file is simply
// skipped and configuration comes from ENV + defaults. An explicitly set
// CONFIG_PATH that points nowhere is an error.
func Load() (*Config, error) {
	var cfg Config

	path := os.Getenv("CONFIG_PATH")
	explicit := path != ""
	if !explicit {
		path = defaultConfigPath
	}

	switch _, err := os.Stat(path); {
	case err == nil:
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	case explicit:
		return nil, fmt.Errorf("config: file %s: %w", path, err)
	default:
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("config: read env: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}

	return &cfg, nil
}

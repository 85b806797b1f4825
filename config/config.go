package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel     string `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	HTTPAddr     string `yaml:"http-addr" env:"HTTP_ADDR" env-default:":8080"`
	GinMode      string `yaml:"gin-mode" env:"GIN_MODE" env-default:"debug"`
	TemplatesDir string `yaml:"templates-dir" env:"TEMPLATES_DIR" env-default:"templates"`
	StaticDir    string `yaml:"static-dir" env:"STATIC_DIR" env-default:"static"`
}

// Load reads path, then applies environment overrides. A missing file is
// not an error: the configuration then comes from the environment and
// defaults only.
func Load(path string) (*Config, error) {
	config := &Config{}

	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		if err := cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("unable to read environment: %w", err)
		}
		return config, nil
	}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	return config, nil
}

// MustLoad - load configuration from path or panic.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}
	return config
}

package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	APIBaseURL     string `mapstructure:"API_BASE_URL"`
	StatePath      string `mapstructure:"STATE_PATH"`
	RequestTimeout int    `mapstructure:"REQUEST_TIMEOUT_SECONDS"`
	LogLevel       string `mapstructure:"LOG_LEVEL"`
}

func LoadConfig() (*Config, error) {
	viper.SetDefault("API_BASE_URL", "http://localhost:8000")
	viper.SetDefault("STATE_PATH", defaultStatePath())
	viper.SetDefault("REQUEST_TIMEOUT_SECONDS", 120)
	viper.SetDefault("LOG_LEVEL", "INFO")

	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func defaultStatePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".research-agent", "state.db")
	}
	return filepath.Join(home, ".research-agent", "state.db")
}

package config

import (
	"fmt"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

type AppConfig struct {
	API        *APIConfig        `mapstructure:"api"`
	Gin        *GinConfig        `mapstructure:"gin"`
	Gateway    *GatewayConfig    `mapstructure:"gateway"`
	Collection *CollectionConfig `mapstructure:"collection"`
	Postgres   *PostgresConfig   `mapstructure:"postgres"`
}

type APIConfig struct {
	Environment        string   `mapstructure:"environment"`
	BaseURL            string   `mapstructure:"base_url"`
	Port               string   `mapstructure:"port"`
	JWTSigningKey      string   `mapstructure:"jwt_signing_key"`
	AllowedCORSDomains []string `mapstructure:"allowed_cors_domains"`
}

type GinConfig struct {
	Mode string `mapstructure:"mode"`
}

// GatewayConfig points the storefront at the collection API it persists
// through.
type GatewayConfig struct {
	BaseURL        string `mapstructure:"base_url"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
}

// CollectionConfig configures the collectiond binary. Driver is either
// "memory" or "postgres".
type CollectionConfig struct {
	Port   string `mapstructure:"port"`
	Driver string `mapstructure:"driver"`
}

type PostgresConfig struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DB       string `mapstructure:"db"`
}

// Load reads the yml file at path, applies environment overrides
// (API_PORT, GATEWAY_BASE_URL, ...) and watches the file for changes.
func Load(path string) (*AppConfig, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %q -> %w", path, err)
	}

	conf := &AppConfig{}
	if err := v.Unmarshal(conf); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config -> %w", err)
	}

	v.OnConfigChange(func(e fsnotify.Event) {
		if err := v.Unmarshal(conf); err != nil {
			zap.L().Error("failed to reload config", zap.String("file", e.Name), zap.Error(err))
			return
		}
		zap.L().Info("config reloaded", zap.String("file", e.Name))
	})
	v.WatchConfig()

	return conf, nil
}

// Package config loads the process configuration: where the accessory cache
// lives, how liveness is probed, how logging behaves, and the ordered list
// of declared televisions.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/colombif/vieramatic/pkg/models"
	"github.com/colombif/vieramatic/pkg/probe"
)

// Config is the typed configuration surface.
type Config struct {
	Cache   CacheConfig                `mapstructure:"cache"`
	Probe   probe.Config               `mapstructure:"probe"`
	Devices []models.DeviceDeclaration `mapstructure:"devices"`
}

// CacheConfig locates the accessory cache document.
type CacheConfig struct {
	Path string `mapstructure:"path"`
}

// Load reads configuration from file and environment variables.
func Load(configPath string) (*viper.Viper, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("cache.path", "./data/accessories.json")
	v.SetDefault("probe.method", probe.MethodICMP)
	v.SetDefault("probe.timeout", "2s")
	v.SetDefault("probe.count", 1)
	v.SetDefault("probe.port", probe.ControlPort)
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("vieramatic")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")
		v.AddConfigPath("/etc/vieramatic")
	}

	// Environment variable support: VIERAMATIC_CACHE_PATH=/var/lib/vieramatic/accessories.json
	v.SetEnvPrefix("VIERAMATIC")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config: %w", err)
		}
		// Config file not found is fine -- use defaults
	}

	return v, nil
}

// Parse unmarshals the typed configuration, device list included.
func Parse(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

package config

import (
	"fmt"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

type ServerConfig struct {
	Address string `mapstructure:"address"`
	Port    int    `mapstructure:"port"`
	Mode    string `mapstructure:"mode"`
}

type MongoConfig struct {
	URI      string `mapstructure:"uri"`
	Database string `mapstructure:"database"`
}

type JWTConfig struct {
	Secret        string `mapstructure:"secret"`
	Issuer        string `mapstructure:"issuer"`
	ExpireMinutes int    `mapstructure:"expire_minutes"`
}

type AIConfig struct {
	APIKey  string `mapstructure:"api_key"`
	BaseURL string `mapstructure:"base_url"`
	Model   string `mapstructure:"model"`
}

type Config struct {
	Server ServerConfig `mapstructure:"server"`
	Mongo  MongoConfig  `mapstructure:"mongo"`
	JWT    JWTConfig    `mapstructure:"jwt"`
	AI     AIConfig     `mapstructure:"ai"`
}

// envKeys are bound explicitly: Unmarshal only picks up environment
// values for keys viper already knows about.
var envKeys = []string{
	"server.address", "server.port", "server.mode",
	"mongo.uri", "mongo.database",
	"jwt.secret", "jwt.issuer", "jwt.expire_minutes",
	"ai.api_key", "ai.base_url", "ai.model",
}

var (
	appConfig *Config
	mu        sync.Mutex
)

// Load loads configuration from given file path (e.g. "config.yaml").
// If path is empty, it defaults to "config.yaml" in current working
// directory. The first successful load is cached; a failed load is not,
// so callers may retry.
func Load(path string) (*Config, error) {
	mu.Lock()
	defer mu.Unlock()

	if appConfig != nil {
		return appConfig, nil
	}

	v := viper.New()

	if path == "" {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	} else {
		v.SetConfigFile(path)
	}

	// environment overrides, e.g. FIN_JWT_SECRET=xxx; the replacer maps
	// the nested key jwt.secret to the env name FIN_JWT_SECRET
	v.SetEnvPrefix("FIN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for _, key := range envKeys {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("bind env %s: %w", key, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	appConfig = &c
	return appConfig, nil
}

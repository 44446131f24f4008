package config

import (
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config for the whole service
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Log      LogConfig      `mapstructure:"log"`
	MySQL    MySQLConfig    `mapstructure:"mysql"`
	Memcache MemcacheConfig `mapstructure:"memcache"`
	Jaeger   JaegerConfig   `mapstructure:"jaeger"`
	Verifier VerifierConfig `mapstructure:"verifier"`
	Tracking TrackingConfig `mapstructure:"tracking"`
}

// JaegerConfig ...
type JaegerConfig struct {
	URL         string `mapstructure:"url"`
	Environment string `mapstructure:"environment"`
}

// VerifierConfig ...
type VerifierConfig struct {
	RateLimitWindow time.Duration `mapstructure:"rate_limit_window"`

	// HistoryFailOpen treats a failed click history lookup as "no recent click"
	HistoryFailOpen bool `mapstructure:"history_fail_open"`
}

// TrackingConfig ...
type TrackingConfig struct {
	LocalCacheSize  int           `mapstructure:"local_cache_size"`
	LinkCacheTTL    time.Duration `mapstructure:"link_cache_ttl"`
	ShortCodeLength int           `mapstructure:"short_code_length"`
}

const envPrefix = "REVA"

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.grpc.host", "localhost")
	v.SetDefault("server.grpc.port", 5090)
	v.SetDefault("server.http.host", "localhost")
	v.SetDefault("server.http.port", 5080)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	v.SetDefault("mysql.max_open_conns", 20)
	v.SetDefault("mysql.max_idle_conns", 10)

	v.SetDefault("jaeger.environment", "local")

	v.SetDefault("verifier.rate_limit_window", "1h")
	v.SetDefault("verifier.history_fail_open", false)

	v.SetDefault("tracking.local_cache_size", 8*1024*1024)
	v.SetDefault("tracking.link_cache_ttl", "10m")
	v.SetDefault("tracking.short_code_length", 8)
}

func loadConfigFile(filename string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigFile(filename)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", filename, err)
	}

	var conf Config
	if err := v.Unmarshal(&conf); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return conf, nil
}

// Load reads config.yml in the working directory
func Load() Config {
	conf, err := loadConfigFile("config.yml")
	if err != nil {
		panic(err)
	}
	return conf
}

// LoadTestConfig reads config_test.yml in the root directory of the module
func LoadTestConfig(rootDir string) Config {
	conf, err := loadConfigFile(path.Join(rootDir, "config_test.yml"))
	if err != nil {
		panic(err)
	}
	return conf
}

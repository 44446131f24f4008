package config

import "fmt"

// MemcacheConfig ...
type MemcacheConfig struct {
	Host     string `mapstructure:"host"`
	Port     uint16 `mapstructure:"port"`
	NumConns int    `mapstructure:"num_conns"`
}

// Addr ...
func (c MemcacheConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Enabled returns false when no memcached host is configured, links are then cached in process only
func (c MemcacheConfig) Enabled() bool {
	return c.Host != ""
}

// Conns ...
func (c MemcacheConfig) Conns() int {
	if c.NumConns > 0 {
		return c.NumConns
	}
	return 1
}

package config

import (
	"fmt"
	"net"
	"strings"
)

// ServerListen ...
type ServerListen struct {
	Host string `mapstructure:"host"`
	Port uint16 `mapstructure:"port"`
}

// HTTPServerConfig ...
type HTTPServerConfig struct {
	ServerListen `mapstructure:",squash"`

	// TrustedProxies are CIDRs or single addresses of the reverse proxies
	// allowed to set X-Forwarded-For
	TrustedProxies []string `mapstructure:"trusted_proxies"`
}

// ServerConfig ...
type ServerConfig struct {
	GRPC ServerListen     `mapstructure:"grpc"`
	HTTP HTTPServerConfig `mapstructure:"http"`
}

// String is the address used for dialing
func (s ServerListen) String() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// ListenString is the address used for listening on all interfaces
func (s ServerListen) ListenString() string {
	return fmt.Sprintf(":%d", s.Port)
}

// ParseTrustedProxies converts TrustedProxies to networks, a single address becomes a /32 or /128
func (c HTTPServerConfig) ParseTrustedProxies() ([]*net.IPNet, error) {
	result := make([]*net.IPNet, 0, len(c.TrustedProxies))
	for _, value := range c.TrustedProxies {
		value = strings.TrimSpace(value)

		if strings.Contains(value, "/") {
			_, network, err := net.ParseCIDR(value)
			if err != nil {
				return nil, fmt.Errorf("invalid trusted proxy %q: %w", value, err)
			}
			result = append(result, network)
			continue
		}

		ip := net.ParseIP(value)
		if ip == nil {
			return nil, fmt.Errorf("invalid trusted proxy %q", value)
		}
		bits := 8 * net.IPv6len
		if ip4 := ip.To4(); ip4 != nil {
			ip = ip4
			bits = 8 * net.IPv4len
		}
		result = append(result, &net.IPNet{IP: ip, Mask: net.CIDRMask(bits, bits)})
	}
	return result, nil
}

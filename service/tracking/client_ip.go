package tracking

import (
	"net"
	"net/http"
	"strings"
)

// trustedProxies decides whether forwarding headers of a request can be believed
type trustedProxies []*net.IPNet

func (p trustedProxies) contains(ip net.IP) bool {
	for _, network := range p {
		if network.Contains(ip) {
			return true
		}
	}
	return false
}

func remoteHost(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// clientIP returns the peer address unless the peer is a trusted proxy. Behind one,
// X-Forwarded-For is read right to left skipping trusted hops. X-Real-IP is never read,
// proxies may pass it through from the client unchanged.
func (p trustedProxies) clientIP(r *http.Request) string {
	host := remoteHost(r)

	peer := net.ParseIP(host)
	if peer == nil || !p.contains(peer) {
		return host
	}

	var hops []string
	for _, value := range r.Header.Values("X-Forwarded-For") {
		hops = append(hops, strings.Split(value, ",")...)
	}
	for i := len(hops) - 1; i >= 0; i-- {
		ip := net.ParseIP(strings.TrimSpace(hops[i]))
		if ip == nil {
			break
		}
		if !p.contains(ip) {
			return ip.String()
		}
	}
	return host
}

// realIP replaces RemoteAddr with the client address, forwarding headers are only honored
// when the request comes from one of the trusted proxies
func realIP(proxies []*net.IPNet) func(next http.Handler) http.Handler {
	trusted := trustedProxies(proxies)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.RemoteAddr = trusted.clientIP(r)
			next.ServeHTTP(w, r)
		})
	}
}

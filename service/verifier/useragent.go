package verifier

import "strings"

const javaPattern = "java"
const javascriptWord = "javascript"

// deny list, evaluated in order, first match wins
var deniedUserAgentPatterns = []string{
	"bot",
	"crawler",
	"spider",
	"scraper",
	"curl",
	"wget",
	"python",
	javaPattern,
}

// containsJava matches "java" except when it is the start of "javascript"
func containsJava(s string) bool {
	offset := 0
	for {
		index := strings.Index(s[offset:], javaPattern)
		if index < 0 {
			return false
		}
		pos := offset + index
		if !strings.HasPrefix(s[pos:], javascriptWord) {
			return true
		}
		offset = pos + len(javaPattern)
	}
}

// MatchDeniedUserAgent returns the first deny list pattern found in the user agent
func MatchDeniedUserAgent(userAgent string) (string, bool) {
	s := strings.ToLower(userAgent)
	for _, pattern := range deniedUserAgentPatterns {
		if pattern == javaPattern {
			if containsJava(s) {
				return pattern, true
			}
			continue
		}
		if strings.Contains(s, pattern) {
			return pattern, true
		}
	}
	return "", false
}

// IsValidUserAgent rejects blank user agents and the ones matching the deny list
func IsValidUserAgent(userAgent string) bool {
	if strings.TrimSpace(userAgent) == "" {
		return false
	}
	_, denied := MatchDeniedUserAgent(userAgent)
	return !denied
}

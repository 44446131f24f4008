package verifier

import (
	"strings"
	"time"
)

const (
	// ReasonVerified ...
	ReasonVerified = "Click verified successfully"
	// ReasonInvalidUserAgent ...
	ReasonInvalidUserAgent = "Invalid user agent detected"
	// ReasonInsufficientBudget ...
	ReasonInsufficientBudget = "Campaign has insufficient budget or is inactive"

	// ReasonRateLimitedPrefix is the common prefix of every rate limited reason
	ReasonRateLimitedPrefix = "Rate limited: "
	// ReasonHistoryUnavailable for a failed click history lookup
	ReasonHistoryUnavailable = ReasonRateLimitedPrefix + "click history unavailable"
)

// Checks reports which check failed, unexamined checks keep their passing value
type Checks struct {
	HasRecentClick   bool `json:"hasRecentClick"`
	ValidUserAgent   bool `json:"validUserAgent"`
	SufficientBudget bool `json:"sufficientBudget"`
}

// Result ...
type Result struct {
	IsValid bool   `json:"isValid"`
	Reason  string `json:"reason"`
	Checks  Checks `json:"checks"`
}

func passedChecks() Checks {
	return Checks{
		HasRecentClick:   false,
		ValidUserAgent:   true,
		SufficientBudget: true,
	}
}

// VerifiedResult ...
func VerifiedResult() Result {
	return Result{
		IsValid: true,
		Reason:  ReasonVerified,
		Checks:  passedChecks(),
	}
}

func rateLimitedWithReason(reason string) Result {
	checks := passedChecks()
	checks.HasRecentClick = true
	return Result{
		IsValid: false,
		Reason:  reason,
		Checks:  checks,
	}
}

// RateLimitedResult ...
func RateLimitedResult(window time.Duration) Result {
	return rateLimitedWithReason(
		ReasonRateLimitedPrefix + "recent click from this IP address within " + formatWindow(window))
}

// HistoryUnavailableResult ...
func HistoryUnavailableResult() Result {
	return rateLimitedWithReason(ReasonHistoryUnavailable)
}

// InvalidUserAgentResult ...
func InvalidUserAgentResult() Result {
	checks := passedChecks()
	checks.ValidUserAgent = false
	return Result{
		IsValid: false,
		Reason:  ReasonInvalidUserAgent,
		Checks:  checks,
	}
}

// InsufficientBudgetResult ...
func InsufficientBudgetResult() Result {
	checks := passedChecks()
	checks.SufficientBudget = false
	return Result{
		IsValid: false,
		Reason:  ReasonInsufficientBudget,
		Checks:  checks,
	}
}

// formatWindow prints 1h instead of 1h0m0s
func formatWindow(d time.Duration) string {
	s := d.String()
	if strings.HasSuffix(s, "m0s") {
		s = s[:len(s)-2]
	}
	if strings.HasSuffix(s, "h0m") {
		s = s[:len(s)-2]
	}
	return s
}

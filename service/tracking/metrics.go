package tracking

import (
	"strings"

	"github.com/QuangTung97/reva-click/service/verifier"
	"github.com/prometheus/client_golang/prometheus"
)

const (
	linkLookupLocal       = "local"
	linkLookupRemote      = "remote"
	linkLookupRemoteError = "remote_error"
	linkLookupDB          = "db"
)

const (
	resultValid              = "valid"
	resultRateLimited        = "rate_limited"
	resultInvalidUserAgent   = "invalid_user_agent"
	resultInsufficientBudget = "insufficient_budget"
)

// Metrics ...
type Metrics struct {
	verifications  *prometheus.CounterVec
	recordFailures prometheus.Counter
	linkLookups    *prometheus.CounterVec
}

// NewMetrics registers the click tracking collectors
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		verifications: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "reva",
			Subsystem: "click",
			Name:      "verifications_total",
			Help:      "Number of click verifications by result",
		}, []string{"result"}),

		recordFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "reva",
			Subsystem: "click",
			Name:      "record_failures_total",
			Help:      "Number of visits redirected without persisting the click",
		}),

		linkLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "reva",
			Subsystem: "link",
			Name:      "cache_lookups_total",
			Help:      "Number of tracking link lookups by the level that served them",
		}, []string{"source"}),
	}

	reg.MustRegister(m.verifications, m.recordFailures, m.linkLookups)
	return m
}

func resultLabel(result verifier.Result) string {
	switch {
	case result.IsValid:
		return resultValid
	case result.Checks.HasRecentClick || strings.HasPrefix(result.Reason, verifier.ReasonRateLimitedPrefix):
		return resultRateLimited
	case !result.Checks.ValidUserAgent:
		return resultInvalidUserAgent
	default:
		return resultInsufficientBudget
	}
}

func (m *Metrics) observeResult(result verifier.Result) {
	m.verifications.WithLabelValues(resultLabel(result)).Inc()
}

func (m *Metrics) observeRecordFailure() {
	m.recordFailures.Inc()
}

func (m *Metrics) observeLinkLookup(source string) {
	m.linkLookups.WithLabelValues(source).Inc()
}

// entryCounter is implemented by memtable.MemTable
type entryCounter interface {
	EntryCount() int64
}

// registerLocalCacheEntries exposes the number of links held in process, when local can count them
func registerLocalCacheEntries(reg prometheus.Registerer, local LocalCache) {
	counter, ok := local.(entryCounter)
	if !ok {
		return
	}
	reg.MustRegister(prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Namespace: "reva",
		Subsystem: "link",
		Name:      "local_cache_entries",
		Help:      "Number of entries in the in-process link cache",
	}, func() float64 {
		return float64(counter.EntryCount())
	}))
}

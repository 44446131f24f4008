package tracking

import (
	"github.com/QuangTung97/reva-click/config"
	"github.com/QuangTung97/reva-click/repository"
	"github.com/QuangTung97/reva-click/service/verifier"
	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel"
)

// NewTracedService builds the service with span wrapped repositories and verifier.
// remote is nil when memcached is disabled.
func NewTracedService(
	conf config.Config, provider repository.Provider,
	local LocalCache, remote RemoteCache, reg prometheus.Registerer,
) IService {
	tracer := otel.GetTracerProvider().Tracer("tracking")

	repos := Repositories{
		Campaign:     repository.NewCampaignWrapper(repository.NewCampaign(), tracer, "repo::"),
		TrackingLink: repository.NewTrackingLinkWrapper(repository.NewTrackingLink(), tracer, "repo::"),
		Click:        repository.NewClickWrapper(repository.NewClick(), tracer, "repo::"),
		Earning:      repository.NewEarningWrapper(repository.NewEarning(), tracer, "repo::"),
	}

	v := verifier.NewVerifier(provider, repos.Click, repos.Campaign,
		verifier.WithRateLimitWindow(conf.Verifier.RateLimitWindow),
		verifier.WithHistoryFailOpen(conf.Verifier.HistoryFailOpen),
	)

	metrics := NewMetrics(reg)
	registerLocalCacheEntries(reg, local)
	resolver := NewLinkResolver(provider, repos.TrackingLink, local, remote, conf.Tracking.LinkCacheTTL, metrics)

	s := NewService(provider, repos,
		verifier.NewIVerifierWrapper(v, tracer, "verifier::"), v, resolver, metrics,
		WithShortCodeLength(conf.Tracking.ShortCodeLength),
	)
	return NewIServiceWrapper(s, tracer, "service::")
}

package tracking

import (
	"context"
	"time"

	"github.com/QuangTung97/reva-click/model"
	"github.com/QuangTung97/reva-click/repository"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
)

func newContext() context.Context {
	return context.Background()
}

func newTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t.UTC()
}

func newDecimal(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func newTestMetrics() *Metrics {
	return NewMetrics(prometheus.NewRegistry())
}

type txMarker struct{}

func newProviderMock() *repository.ProviderMock {
	return &repository.ProviderMock{
		ReadonlyFunc: func(ctx context.Context) context.Context {
			return ctx
		},
		TransactFunc: func(ctx context.Context, fn func(ctx context.Context) error) error {
			return fn(context.WithValue(ctx, txMarker{}, true))
		},
	}
}

func inTx(ctx context.Context) bool {
	v, ok := ctx.Value(txMarker{}).(bool)
	return ok && v
}

func sampleLink() model.TrackingLink {
	return model.TrackingLink{
		ID:         21,
		CampaignID: 31,
		PromoterID: 41,
		CodeHash:   3300,
		Code:       "aB3dE6gH",
		CreatedAt:  newTime("2022-05-01T10:00:00Z"),
	}
}

func sampleCampaign() model.Campaign {
	return model.Campaign{
		ID:              31,
		MarketerID:      51,
		Name:            "campaign 01",
		DestinationURL:  "https://shop.example.com/landing",
		Status:          model.CampaignStatusActive,
		TotalBudget:     newDecimal("100.00"),
		PayoutPerClick:  newDecimal("0.50"),
		RemainingBudget: newDecimal("100.00"),
	}
}

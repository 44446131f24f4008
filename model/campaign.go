package model

import (
	"github.com/shopspring/decimal"
	"time"
)

// Campaign ...
type Campaign struct {
	ID             int64          `db:"id"`
	MarketerID     int64          `db:"marketer_id"`
	Name           string         `db:"name"`
	DestinationURL string         `db:"destination_url"`
	Status         CampaignStatus `db:"status"`

	TotalBudget     decimal.Decimal `db:"total_budget"`
	PayoutPerClick  decimal.Decimal `db:"payout_per_click"`
	RemainingBudget decimal.Decimal `db:"remaining_budget"`

	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// IsActive ...
func (c Campaign) IsActive() bool {
	return c.Status == CampaignStatusActive
}

// NullCampaign ...
type NullCampaign struct {
	Valid    bool
	Campaign Campaign
}

// CampaignStatus ...
type CampaignStatus int

const (
	// CampaignStatusActive ...
	CampaignStatusActive CampaignStatus = 1

	// CampaignStatusInactive ...
	CampaignStatusInactive CampaignStatus = 2
)

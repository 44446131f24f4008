package model

import (
	"github.com/shopspring/decimal"
	"time"
)

// Earning exists only for a valid click
type Earning struct {
	ID         int64           `db:"id"`
	ClickID    int64           `db:"click_id"`
	PromoterID int64           `db:"promoter_id"`
	CampaignID int64           `db:"campaign_id"`
	Amount     decimal.Decimal `db:"amount"`
	Status     EarningStatus   `db:"status"`

	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// NullEarning ...
type NullEarning struct {
	Valid   bool
	Earning Earning
}

// EarningStatus ...
type EarningStatus int

const (
	// EarningStatusPending ...
	EarningStatusPending EarningStatus = 1

	// EarningStatusApproved ...
	EarningStatusApproved EarningStatus = 2

	// EarningStatusPaid ...
	EarningStatusPaid EarningStatus = 3
)

// String ...
func (s EarningStatus) String() string {
	switch s {
	case EarningStatusPending:
		return "pending"
	case EarningStatusApproved:
		return "approved"
	case EarningStatusPaid:
		return "paid"
	default:
		return "unknown"
	}
}

// CanTransitionTo reports whether the lifecycle allows moving from s to next.
// Only pending -> approved -> paid is allowed.
func (s EarningStatus) CanTransitionTo(next EarningStatus) bool {
	switch s {
	case EarningStatusPending:
		return next == EarningStatusApproved
	case EarningStatusApproved:
		return next == EarningStatusPaid
	default:
		return false
	}
}

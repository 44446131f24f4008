package model

import (
	"github.com/shopspring/decimal"
	"time"
)

// MaxUserAgentLen is the width of the click.user_agent column, in characters
const MaxUserAgentLen = 1024

// Click is one visit attempt on a tracking link, created exactly once per visit
type Click struct {
	ID             int64               `db:"id"`
	TrackingLinkID int64               `db:"tracking_link_id"`
	CampaignID     int64               `db:"campaign_id"`
	PromoterID     int64               `db:"promoter_id"`
	IPAddress      string              `db:"ip_address"`
	UserAgent      string              `db:"user_agent"`
	IsValid        bool                `db:"is_valid"`
	PayoutAmount   decimal.NullDecimal `db:"payout_amount"`
	Reason         string              `db:"reason"`

	CreatedAt time.Time `db:"created_at"`
}

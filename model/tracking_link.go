package model

import "time"

// TrackingLink identifies a promoter and campaign pair by its short code, immutable once created
type TrackingLink struct {
	ID         int64  `db:"id"`
	CampaignID int64  `db:"campaign_id"`
	PromoterID int64  `db:"promoter_id"`
	CodeHash   uint32 `db:"code_hash"`
	Code       string `db:"code"`

	CreatedAt time.Time `db:"created_at"`
}

// NullTrackingLink ...
type NullTrackingLink struct {
	Valid bool
	Link  TrackingLink
}

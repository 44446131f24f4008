package repository

import (
	"context"
	"github.com/QuangTung97/reva-click/model"
	"time"
)

// Click ...
type Click interface {
	// CountRecentClicks counts clicks of any validity with created_at >= since
	CountRecentClicks(ctx context.Context, trackingLinkID int64, ipAddress string, since time.Time) (int64, error)
	InsertClick(ctx context.Context, click model.Click) (int64, error)
}

type clickImpl struct {
}

// NewClick ...
func NewClick() Click {
	return &clickImpl{}
}

// CountRecentClicks ...
func (r *clickImpl) CountRecentClicks(
	ctx context.Context, trackingLinkID int64, ipAddress string, since time.Time,
) (int64, error) {
	query := `
SELECT COUNT(*) FROM click
WHERE tracking_link_id = ? AND ip_address = ? AND created_at >= ?
`
	var count int64
	err := GetReadonly(ctx).GetContext(ctx, &count, query, trackingLinkID, ipAddress, since)
	return count, err
}

// InsertClick ...
func (r *clickImpl) InsertClick(ctx context.Context, click model.Click) (int64, error) {
	query := `
INSERT INTO click (
	tracking_link_id, campaign_id, promoter_id, ip_address, user_agent,
	is_valid, payout_amount, reason, created_at
) VALUES (
	:tracking_link_id, :campaign_id, :promoter_id, :ip_address, :user_agent,
	:is_valid, :payout_amount, :reason, :created_at
)
`
	result, err := GetTx(ctx).NamedExecContext(ctx, query, click)
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}

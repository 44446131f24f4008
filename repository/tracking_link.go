package repository

import (
	"context"
	"database/sql"
	"errors"
	"github.com/QuangTung97/reva-click/model"
)

// TrackingLink ...
type TrackingLink interface {
	FindTrackingLinkByCode(ctx context.Context, codeHash uint32, code string) (model.NullTrackingLink, error)
	InsertTrackingLink(ctx context.Context, link model.TrackingLink) (int64, error)
}

type trackingLinkImpl struct {
}

// NewTrackingLink ...
func NewTrackingLink() TrackingLink {
	return &trackingLinkImpl{}
}

// FindTrackingLinkByCode ...
func (r *trackingLinkImpl) FindTrackingLinkByCode(
	ctx context.Context, codeHash uint32, code string,
) (model.NullTrackingLink, error) {
	query := `
SELECT id, campaign_id, promoter_id, code_hash, code, created_at
FROM tracking_link
WHERE code_hash = ? AND code = ?
`
	var result model.TrackingLink
	err := GetReadonly(ctx).GetContext(ctx, &result, query, codeHash, code)
	if errors.Is(err, sql.ErrNoRows) {
		return model.NullTrackingLink{}, nil
	}
	if err != nil {
		return model.NullTrackingLink{}, err
	}
	return model.NullTrackingLink{Valid: true, Link: result}, nil
}

// InsertTrackingLink ...
func (r *trackingLinkImpl) InsertTrackingLink(ctx context.Context, link model.TrackingLink) (int64, error) {
	query := `
INSERT INTO tracking_link (campaign_id, promoter_id, code_hash, code, created_at)
VALUES (:campaign_id, :promoter_id, :code_hash, :code, :created_at)
`
	result, err := GetTx(ctx).NamedExecContext(ctx, query, link)
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}

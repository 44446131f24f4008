package repository

import (
	"context"
	"database/sql"
	"errors"
	"github.com/QuangTung97/reva-click/model"
	"time"
)

// Earning ...
type Earning interface {
	GetEarning(ctx context.Context, earningID int64) (model.NullEarning, error)
	InsertEarning(ctx context.Context, earning model.Earning) (int64, error)

	// UpdateEarningStatus changes status only when the current status equals from
	UpdateEarningStatus(
		ctx context.Context, earningID int64, from model.EarningStatus, to model.EarningStatus, now time.Time,
	) (bool, error)
}

type earningImpl struct {
}

// NewEarning ...
func NewEarning() Earning {
	return &earningImpl{}
}

// GetEarning ...
func (r *earningImpl) GetEarning(ctx context.Context, earningID int64) (model.NullEarning, error) {
	query := `
SELECT id, click_id, promoter_id, campaign_id, amount, status, created_at, updated_at
FROM earning WHERE id = ?
`
	var result model.Earning
	err := GetReadonly(ctx).GetContext(ctx, &result, query, earningID)
	if errors.Is(err, sql.ErrNoRows) {
		return model.NullEarning{}, nil
	}
	if err != nil {
		return model.NullEarning{}, err
	}
	return model.NullEarning{Valid: true, Earning: result}, nil
}

// InsertEarning ...
func (r *earningImpl) InsertEarning(ctx context.Context, earning model.Earning) (int64, error) {
	query := `
INSERT INTO earning (
	click_id, promoter_id, campaign_id, amount, status, created_at, updated_at
) VALUES (
	:click_id, :promoter_id, :campaign_id, :amount, :status, :created_at, :updated_at
)
`
	result, err := GetTx(ctx).NamedExecContext(ctx, query, earning)
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}

// UpdateEarningStatus ...
func (r *earningImpl) UpdateEarningStatus(
	ctx context.Context, earningID int64, from model.EarningStatus, to model.EarningStatus, now time.Time,
) (bool, error) {
	query := `UPDATE earning SET status = ?, updated_at = ? WHERE id = ? AND status = ?`
	result, err := GetTx(ctx).ExecContext(ctx, query, to, now, earningID, from)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

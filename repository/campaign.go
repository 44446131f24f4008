package repository

import (
	"context"
	"database/sql"
	"errors"
	"github.com/QuangTung97/reva-click/model"
	"github.com/shopspring/decimal"
)

// Campaign ...
type Campaign interface {
	GetCampaign(ctx context.Context, campaignID int64) (model.NullCampaign, error)
	LockCampaign(ctx context.Context, campaignID int64) error

	// DeductBudget decrements remaining budget by amount only when the campaign is active
	// and the remaining budget covers it, returns whether the update was applied
	DeductBudget(ctx context.Context, campaignID int64, amount decimal.Decimal) (bool, error)

	UpsertCampaign(ctx context.Context, campaign model.Campaign) error
}

type campaignImpl struct {
}

// NewCampaign ...
func NewCampaign() Campaign {
	return &campaignImpl{}
}

// GetCampaign ...
func (c *campaignImpl) GetCampaign(ctx context.Context, campaignID int64) (model.NullCampaign, error) {
	query := `
SELECT id, marketer_id, name, destination_url, status,
	total_budget, payout_per_click, remaining_budget,
	created_at, updated_at
FROM campaign WHERE id = ?
`
	var result model.Campaign
	err := GetReadonly(ctx).GetContext(ctx, &result, query, campaignID)
	if errors.Is(err, sql.ErrNoRows) {
		return model.NullCampaign{}, nil
	}
	if err != nil {
		return model.NullCampaign{}, err
	}
	return model.NullCampaign{Valid: true, Campaign: result}, nil
}

// LockCampaign ...
func (c *campaignImpl) LockCampaign(ctx context.Context, campaignID int64) error {
	query := `SELECT id FROM campaign WHERE id = ? FOR UPDATE`
	var id int64
	return GetTx(ctx).GetContext(ctx, &id, query, campaignID)
}

// DeductBudget ...
func (c *campaignImpl) DeductBudget(ctx context.Context, campaignID int64, amount decimal.Decimal) (bool, error) {
	query := `
UPDATE campaign SET remaining_budget = remaining_budget - ?
WHERE id = ? AND status = ? AND remaining_budget >= ?
`
	result, err := GetTx(ctx).ExecContext(ctx, query,
		amount, campaignID, model.CampaignStatusActive, amount)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// UpsertCampaign ...
func (c *campaignImpl) UpsertCampaign(ctx context.Context, campaign model.Campaign) error {
	query := `
INSERT INTO campaign (
	id, marketer_id, name, destination_url, status,
	total_budget, payout_per_click, remaining_budget
) VALUES (
	:id, :marketer_id, :name, :destination_url, :status,
	:total_budget, :payout_per_click, :remaining_budget
) AS NEW
ON DUPLICATE KEY UPDATE
	marketer_id = NEW.marketer_id,
	name = NEW.name,
	destination_url = NEW.destination_url,
	status = NEW.status,

	total_budget = NEW.total_budget,
	payout_per_click = NEW.payout_per_click,
	remaining_budget = NEW.remaining_budget
`
	_, err := GetTx(ctx).NamedExecContext(ctx, query, campaign)
	return err
}

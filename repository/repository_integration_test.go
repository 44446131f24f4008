//go:build integration
// +build integration

package repository

import (
	"context"
	"errors"
	"github.com/QuangTung97/reva-click/model"
	"github.com/QuangTung97/reva-click/pkg/integration"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"testing"
	"time"
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

type repoTest struct {
	tc       *integration.TestCase
	provider Provider
}

func newRepoTest(tables ...string) *repoTest {
	tc := integration.NewTestCase()
	for _, table := range tables {
		tc.Truncate(table)
	}
	return &repoTest{
		tc:       tc,
		provider: NewProvider(tc.DB),
	}
}

func (r *repoTest) insertCampaign(t *testing.T, c model.Campaign) {
	err := r.provider.Transact(newContext(), func(ctx context.Context) error {
		return NewCampaign().UpsertCampaign(ctx, c)
	})
	assert.Equal(t, nil, err)
}

func clearCampaignTimes(c model.NullCampaign) model.NullCampaign {
	c.Campaign.CreatedAt = time.Time{}
	c.Campaign.UpdatedAt = time.Time{}
	return c
}

func TestCampaign(t *testing.T) {
	r := newRepoTest("campaign")
	repo := NewCampaign()

	readCtx := r.provider.Readonly(newContext())

	// Get Not Found
	campaign, err := repo.GetCampaign(readCtx, 1)
	assert.Equal(t, nil, err)
	assert.Equal(t, model.NullCampaign{}, campaign)

	campaign01 := model.Campaign{
		MarketerID:     21,
		Name:           "campaign 01",
		DestinationURL: "https://shop.example.com/landing",
		Status:         model.CampaignStatusActive,

		TotalBudget:     newDecimal("100.00"),
		PayoutPerClick:  newDecimal("0.50"),
		RemainingBudget: newDecimal("100.00"),
	}
	r.insertCampaign(t, campaign01)

	// Get After Insert
	campaign, err = repo.GetCampaign(readCtx, 1)
	assert.Equal(t, nil, err)

	campaign01.ID = 1
	assert.Equal(t, true, campaign.Valid)
	assert.Equal(t, model.NullCampaign{Valid: true, Campaign: campaign01}, clearCampaignTimes(campaign))

	// Upsert
	campaign01.Name = "campaign 02"
	campaign01.Status = model.CampaignStatusInactive
	campaign01.RemainingBudget = newDecimal("9.99")
	r.insertCampaign(t, campaign01)

	campaign, err = repo.GetCampaign(readCtx, 1)
	assert.Equal(t, nil, err)
	assert.Equal(t, model.NullCampaign{Valid: true, Campaign: campaign01}, clearCampaignTimes(campaign))

	// Lock
	err = r.provider.Transact(newContext(), func(ctx context.Context) error {
		return repo.LockCampaign(ctx, 1)
	})
	assert.Equal(t, nil, err)
}

func TestCampaign_DeductBudget(t *testing.T) {
	r := newRepoTest("campaign")
	repo := NewCampaign()

	r.insertCampaign(t, model.Campaign{
		ID:              1,
		MarketerID:      21,
		Name:            "campaign 01",
		DestinationURL:  "https://shop.example.com",
		Status:          model.CampaignStatusActive,
		TotalBudget:     newDecimal("10.00"),
		PayoutPerClick:  newDecimal("4.00"),
		RemainingBudget: newDecimal("10.00"),
	})

	deduct := func() bool {
		var applied bool
		err := r.provider.Transact(newContext(), func(ctx context.Context) error {
			var err error
			applied, err = repo.DeductBudget(ctx, 1, newDecimal("4.00"))
			return err
		})
		assert.Equal(t, nil, err)
		return applied
	}

	assert.Equal(t, true, deduct())
	assert.Equal(t, true, deduct())
	assert.Equal(t, false, deduct())

	campaign, err := repo.GetCampaign(r.provider.Readonly(newContext()), 1)
	assert.Equal(t, nil, err)
	assert.Equal(t, "2", campaign.Campaign.RemainingBudget.String())
}

func TestCampaign_DeductBudget__Inactive(t *testing.T) {
	r := newRepoTest("campaign")
	repo := NewCampaign()

	r.insertCampaign(t, model.Campaign{
		ID:              1,
		Name:            "campaign 01",
		DestinationURL:  "https://shop.example.com",
		Status:          model.CampaignStatusInactive,
		TotalBudget:     newDecimal("10.00"),
		PayoutPerClick:  newDecimal("1.00"),
		RemainingBudget: newDecimal("10.00"),
	})

	var applied bool
	err := r.provider.Transact(newContext(), func(ctx context.Context) error {
		var err error
		applied, err = repo.DeductBudget(ctx, 1, newDecimal("1.00"))
		return err
	})
	assert.Equal(t, nil, err)
	assert.Equal(t, false, applied)
}

func TestTrackingLink(t *testing.T) {
	r := newRepoTest("tracking_link")
	repo := NewTrackingLink()

	readCtx := r.provider.Readonly(newContext())

	link, err := repo.FindTrackingLinkByCode(readCtx, 3300, "aB3dE6gH")
	assert.Equal(t, nil, err)
	assert.Equal(t, model.NullTrackingLink{}, link)

	link01 := model.TrackingLink{
		CampaignID: 11,
		PromoterID: 12,
		CodeHash:   3300,
		Code:       "aB3dE6gH",
		CreatedAt:  newTime("2022-05-10T10:00:00+07:00"),
	}

	var id int64
	err = r.provider.Transact(newContext(), func(ctx context.Context) error {
		var err error
		id, err = repo.InsertTrackingLink(ctx, link01)
		return err
	})
	assert.Equal(t, nil, err)
	assert.Equal(t, int64(1), id)

	link, err = repo.FindTrackingLinkByCode(readCtx, 3300, "aB3dE6gH")
	assert.Equal(t, nil, err)

	link01.ID = 1
	assert.Equal(t, model.NullTrackingLink{Valid: true, Link: link01}, link)

	// Same Hash Different Code
	link, err = repo.FindTrackingLinkByCode(readCtx, 3300, "other")
	assert.Equal(t, nil, err)
	assert.Equal(t, model.NullTrackingLink{}, link)
}

func TestClick_CountRecentClicks(t *testing.T) {
	r := newRepoTest("click")
	repo := NewClick()

	insert := func(linkID int64, ip string, createdAt string) {
		err := r.provider.Transact(newContext(), func(ctx context.Context) error {
			_, err := repo.InsertClick(ctx, model.Click{
				TrackingLinkID: linkID,
				CampaignID:     1,
				PromoterID:     2,
				IPAddress:      ip,
				UserAgent:      "Mozilla/5.0",
				IsValid:        true,
				PayoutAmount:   decimal.NewNullDecimal(newDecimal("0.50")),
				CreatedAt:      newTime(createdAt),
			})
			return err
		})
		assert.Equal(t, nil, err)
	}

	insert(10, "10.0.0.1", "2022-05-10T09:00:00Z")
	insert(10, "10.0.0.1", "2022-05-10T09:50:00Z")
	insert(10, "10.0.0.2", "2022-05-10T09:55:00Z")
	insert(11, "10.0.0.1", "2022-05-10T09:55:00Z")

	readCtx := r.provider.Readonly(newContext())

	count, err := repo.CountRecentClicks(readCtx, 10, "10.0.0.1", newTime("2022-05-10T09:00:00Z"))
	assert.Equal(t, nil, err)
	assert.Equal(t, int64(2), count)

	count, err = repo.CountRecentClicks(readCtx, 10, "10.0.0.1", newTime("2022-05-10T09:00:00.000001Z"))
	assert.Equal(t, nil, err)
	assert.Equal(t, int64(1), count)

	count, err = repo.CountRecentClicks(readCtx, 10, "10.0.0.3", newTime("2022-05-10T09:00:00Z"))
	assert.Equal(t, nil, err)
	assert.Equal(t, int64(0), count)
}

func TestEarning(t *testing.T) {
	r := newRepoTest("earning")
	repo := NewEarning()

	now := newTime("2022-05-10T10:00:00Z")
	earning01 := model.Earning{
		ClickID:    5,
		PromoterID: 6,
		CampaignID: 7,
		Amount:     newDecimal("0.50"),
		Status:     model.EarningStatusPending,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	err := r.provider.Transact(newContext(), func(ctx context.Context) error {
		_, err := repo.InsertEarning(ctx, earning01)
		return err
	})
	assert.Equal(t, nil, err)

	readCtx := r.provider.Readonly(newContext())
	earning, err := repo.GetEarning(readCtx, 1)
	assert.Equal(t, nil, err)

	earning01.ID = 1
	assert.Equal(t, model.NullEarning{Valid: true, Earning: earning01}, earning)

	// Update With Wrong Current Status
	var updated bool
	err = r.provider.Transact(newContext(), func(ctx context.Context) error {
		var err error
		updated, err = repo.UpdateEarningStatus(ctx, 1,
			model.EarningStatusApproved, model.EarningStatusPaid, now.Add(time.Hour))
		return err
	})
	assert.Equal(t, nil, err)
	assert.Equal(t, false, updated)

	// Update
	err = r.provider.Transact(newContext(), func(ctx context.Context) error {
		var err error
		updated, err = repo.UpdateEarningStatus(ctx, 1,
			model.EarningStatusPending, model.EarningStatusApproved, now.Add(time.Hour))
		return err
	})
	assert.Equal(t, nil, err)
	assert.Equal(t, true, updated)

	earning, err = repo.GetEarning(readCtx, 1)
	assert.Equal(t, nil, err)
	assert.Equal(t, model.EarningStatusApproved, earning.Earning.Status)
	assert.Equal(t, now.Add(time.Hour), earning.Earning.UpdatedAt)

	// Not Found
	earning, err = repo.GetEarning(readCtx, 2)
	assert.Equal(t, nil, err)
	assert.Equal(t, model.NullEarning{}, earning)
}

func TestProvider_Transact__Rollback_On_Error(t *testing.T) {
	r := newRepoTest("tracking_link")
	repo := NewTrackingLink()

	errRollback := errors.New("rollback")
	err := r.provider.Transact(newContext(), func(ctx context.Context) error {
		_, err := repo.InsertTrackingLink(ctx, model.TrackingLink{
			CampaignID: 1,
			PromoterID: 2,
			CodeHash:   10,
			Code:       "rollback",
			CreatedAt:  newTime("2022-05-10T10:00:00Z"),
		})
		assert.Equal(t, nil, err)
		return errRollback
	})
	assert.Equal(t, errRollback, err)

	link, err := repo.FindTrackingLinkByCode(r.provider.Readonly(newContext()), 10, "rollback")
	assert.Equal(t, nil, err)
	assert.Equal(t, model.NullTrackingLink{}, link)
}

package earning

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/QuangTung97/reva-click/model"
	"github.com/QuangTung97/reva-click/pkg/otellib"
	"github.com/QuangTung97/reva-click/repository"
	"go.uber.org/zap"
)

var (
	// ErrEarningNotFound ...
	ErrEarningNotFound = errors.New("earning not found")
	// ErrInvalidTransition ...
	ErrInvalidTransition = errors.New("invalid earning status transition")
)

// Service moves earnings through pending -> approved -> paid
type Service struct {
	provider    repository.Provider
	earningRepo repository.Earning
	nowFn       func() time.Time
}

// NewService ...
func NewService(provider repository.Provider, earningRepo repository.Earning, nowFn func() time.Time) *Service {
	if nowFn == nil {
		nowFn = time.Now
	}
	return &Service{
		provider:    provider,
		earningRepo: earningRepo,
		nowFn:       nowFn,
	}
}

// Approve ...
func (s *Service) Approve(ctx context.Context, earningID int64) (model.Earning, error) {
	return s.transition(ctx, earningID, model.EarningStatusApproved)
}

// MarkPaid records that the payout happened elsewhere, no payment is made here
func (s *Service) MarkPaid(ctx context.Context, earningID int64) (model.Earning, error) {
	return s.transition(ctx, earningID, model.EarningStatusPaid)
}

func (s *Service) transition(ctx context.Context, earningID int64, to model.EarningStatus) (model.Earning, error) {
	var result model.Earning

	err := s.provider.Transact(ctx, func(ctx context.Context) error {
		nullEarning, err := s.earningRepo.GetEarning(ctx, earningID)
		if err != nil {
			return err
		}
		if !nullEarning.Valid {
			return ErrEarningNotFound
		}

		earning := nullEarning.Earning
		if !earning.Status.CanTransitionTo(to) {
			return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, earning.Status, to)
		}

		now := s.nowFn().UTC()
		updated, err := s.earningRepo.UpdateEarningStatus(ctx, earningID, earning.Status, to, now)
		if err != nil {
			return err
		}
		if !updated {
			return fmt.Errorf("%w: status changed concurrently", ErrInvalidTransition)
		}

		earning.Status = to
		earning.UpdatedAt = now
		result = earning
		return nil
	})
	if err != nil {
		return model.Earning{}, err
	}

	otellib.Extract(ctx).Info("earning status changed",
		zap.Int64("earning_id", earningID),
		zap.Stringer("status", to),
	)
	return result, nil
}

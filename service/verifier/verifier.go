package verifier

import (
	"context"
	"time"

	"github.com/QuangTung97/reva-click/model"
	"github.com/QuangTung97/reva-click/pkg/otellib"
	"github.com/QuangTung97/reva-click/repository"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

//go:generate otelwrap --out verifier_wrappers.go . IVerifier

// IVerifier decides whether a click is billable, it never writes
type IVerifier interface {
	Verify(ctx context.Context, input Input) Result
}

// Input ...
type Input struct {
	SourceIP       string
	UserAgent      string
	TrackingLinkID int64
	CampaignID     int64
	PayoutAmount   decimal.Decimal
}

// DefaultRateLimitWindow ...
const DefaultRateLimitWindow = time.Hour

type verifierOptions struct {
	window          time.Duration
	historyFailOpen bool
	nowFn           func() time.Time
}

// Option ...
type Option func(opts *verifierOptions)

// WithRateLimitWindow ...
func WithRateLimitWindow(window time.Duration) Option {
	return func(opts *verifierOptions) {
		if window > 0 {
			opts.window = window
		}
	}
}

// WithHistoryFailOpen treats a failed click history lookup as no recent click
func WithHistoryFailOpen(failOpen bool) Option {
	return func(opts *verifierOptions) {
		opts.historyFailOpen = failOpen
	}
}

// WithNowFunc ...
func WithNowFunc(nowFn func() time.Time) Option {
	return func(opts *verifierOptions) {
		opts.nowFn = nowFn
	}
}

// Verifier ...
type Verifier struct {
	provider     repository.Provider
	clickRepo    repository.Click
	campaignRepo repository.Campaign

	opts verifierOptions
}

var _ IVerifier = &Verifier{}

// NewVerifier ...
func NewVerifier(
	provider repository.Provider, clickRepo repository.Click, campaignRepo repository.Campaign,
	options ...Option,
) *Verifier {
	opts := verifierOptions{
		window: DefaultRateLimitWindow,
		nowFn:  time.Now,
	}
	for _, o := range options {
		o(&opts)
	}

	return &Verifier{
		provider:     provider,
		clickRepo:    clickRepo,
		campaignRepo: campaignRepo,
		opts:         opts,
	}
}

// Window returns the rate limit window
func (v *Verifier) Window() time.Duration {
	return v.opts.window
}

// RecentSince returns the inclusive lower bound of the rate limit window
func (v *Verifier) RecentSince() time.Time {
	return v.opts.nowFn().UTC().Add(-v.opts.window)
}

type verifyState struct {
	v      *Verifier
	ctx    context.Context
	input  Input
	logger *zap.Logger

	result Result
	done   bool
}

func (s *verifyState) finish(result Result) {
	s.result = result
	s.done = true
}

func (s *verifyState) doNext(fn func()) {
	if s.done {
		return
	}
	fn()
}

func (s *verifyState) checkRecentClick() {
	count, err := s.v.clickRepo.CountRecentClicks(
		s.ctx, s.input.TrackingLinkID, s.input.SourceIP, s.v.RecentSince())
	if err != nil {
		s.logger.Error("count recent clicks", zap.Error(err),
			zap.Bool("fail_open", s.v.opts.historyFailOpen))
		if s.v.opts.historyFailOpen {
			return
		}
		s.finish(HistoryUnavailableResult())
		return
	}

	if count > 0 {
		s.finish(RateLimitedResult(s.v.opts.window))
	}
}

func (s *verifyState) checkUserAgent() {
	if IsValidUserAgent(s.input.UserAgent) {
		return
	}
	s.finish(InvalidUserAgentResult())
}

func (s *verifyState) checkBudget() {
	nullCampaign, err := s.v.campaignRepo.GetCampaign(s.ctx, s.input.CampaignID)
	if err != nil {
		s.logger.Error("get campaign", zap.Error(err))
		s.finish(InsufficientBudgetResult())
		return
	}

	if !nullCampaign.Valid {
		s.logger.Warn("campaign not found")
		s.finish(InsufficientBudgetResult())
		return
	}

	if !HasSufficientBudget(nullCampaign.Campaign, s.input.PayoutAmount) {
		s.finish(InsufficientBudgetResult())
	}
}

// Verify runs recency, user agent and budget checks in order, stopping at the first failure
func (v *Verifier) Verify(ctx context.Context, input Input) Result {
	ctx = v.provider.Readonly(ctx)

	state := &verifyState{
		v:     v,
		ctx:   ctx,
		input: input,
		logger: otellib.Extract(ctx).With(
			zap.Int64("tracking_link_id", input.TrackingLinkID),
			zap.Int64("campaign_id", input.CampaignID),
		),
	}

	state.doNext(state.checkRecentClick)
	state.doNext(state.checkUserAgent)
	state.doNext(state.checkBudget)

	if !state.done {
		return VerifiedResult()
	}
	return state.result
}

// HasSufficientBudget fails only when the campaign is inactive or remaining is strictly less than payout
func HasSufficientBudget(campaign model.Campaign, payout decimal.Decimal) bool {
	if !campaign.IsActive() {
		return false
	}
	return !campaign.RemainingBudget.LessThan(payout)
}

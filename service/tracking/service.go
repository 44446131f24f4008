package tracking

import (
	"context"
	"errors"
	"net"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/QuangTung97/reva-click/model"
	"github.com/QuangTung97/reva-click/pkg/otellib"
	"github.com/QuangTung97/reva-click/pkg/util"
	"github.com/QuangTung97/reva-click/repository"
	"github.com/QuangTung97/reva-click/service/verifier"
	"github.com/go-sql-driver/mysql"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

//go:generate moq -out tracking_mocks_test.go . IService ClickVerifier Recency LinkResolver LocalCache RemoteCache
//go:generate otelwrap --out service_wrappers.go . IService

// IService ...
type IService interface {
	Verify(ctx context.Context, input verifier.Input) verifier.Result
	Track(ctx context.Context, input TrackInput) (TrackOutput, error)
	Visit(ctx context.Context, input VisitInput) (VisitOutput, error)
	CreateLink(ctx context.Context, campaignID int64, promoterID int64) (model.TrackingLink, error)
}

// ClickVerifier is implemented by verifier.Verifier
type ClickVerifier interface {
	Verify(ctx context.Context, input verifier.Input) verifier.Result
}

// Recency gives the rate limit window used when re-checking inside the budget transaction
type Recency interface {
	RecentSince() time.Time
	Window() time.Duration
}

// TrackInput ...
type TrackInput struct {
	Link      model.TrackingLink
	Campaign  model.Campaign
	SourceIP  string
	UserAgent string
}

// TrackOutput ...
type TrackOutput struct {
	ClickID   int64
	EarningID int64
	Result    verifier.Result
}

// VisitInput ...
type VisitInput struct {
	Code      string
	SourceIP  string
	UserAgent string
}

// VisitOutput ...
type VisitOutput struct {
	DestinationURL string
	Result         verifier.Result

	// Recorded is false when the click could not be persisted, the visitor is redirected anyway
	Recorded  bool
	ClickID   int64
	EarningID int64
}

var (
	// ErrLinkNotFound ...
	ErrLinkNotFound = errors.New("tracking link not found")
	// ErrCampaignNotFound ...
	ErrCampaignNotFound = errors.New("campaign not found")
	// ErrCampaignInactive ...
	ErrCampaignInactive = errors.New("campaign is inactive")
	// ErrInvalidArgument ...
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrCodeCollision when every generated short code already exists
	ErrCodeCollision = errors.New("could not generate a unique short code")
)

const maxCodeAttempts = 3

const mysqlDuplicateEntry = 1062

// DefaultShortCodeLength ...
const DefaultShortCodeLength = 8

type serviceOptions struct {
	codeLength int
	nowFn      func() time.Time
}

// Option ...
type Option func(opts *serviceOptions)

// WithShortCodeLength ...
func WithShortCodeLength(n int) Option {
	return func(opts *serviceOptions) {
		if n > 0 {
			opts.codeLength = n
		}
	}
}

// WithNowFunc ...
func WithNowFunc(nowFn func() time.Time) Option {
	return func(opts *serviceOptions) {
		opts.nowFn = nowFn
	}
}

// Repositories ...
type Repositories struct {
	Campaign     repository.Campaign
	TrackingLink repository.TrackingLink
	Click        repository.Click
	Earning      repository.Earning
}

// Service records clicks on tracking links
type Service struct {
	provider repository.Provider
	repos    Repositories

	verifier ClickVerifier
	recency  Recency
	resolver LinkResolver
	metrics  *Metrics

	opts serviceOptions
}

var _ IService = &Service{}

// NewService ...
func NewService(
	provider repository.Provider, repos Repositories,
	clickVerifier ClickVerifier, recency Recency, resolver LinkResolver,
	metrics *Metrics, options ...Option,
) *Service {
	opts := serviceOptions{
		codeLength: DefaultShortCodeLength,
		nowFn:      time.Now,
	}
	for _, o := range options {
		o(&opts)
	}

	return &Service{
		provider: provider,
		repos:    repos,

		verifier: clickVerifier,
		recency:  recency,
		resolver: resolver,
		metrics:  metrics,

		opts: opts,
	}
}

func (s *Service) now() time.Time {
	return s.opts.nowFn().UTC()
}

// Verify only decides, nothing is written
func (s *Service) Verify(ctx context.Context, input verifier.Input) verifier.Result {
	result := s.verifier.Verify(ctx, input)
	s.metrics.observeResult(result)
	return result
}

// truncateUserAgent keeps at most model.MaxUserAgentLen characters of valid UTF-8
func truncateUserAgent(userAgent string) string {
	userAgent = strings.ToValidUTF8(userAgent, string(utf8.RuneError))

	count := 0
	for i := range userAgent {
		if count == model.MaxUserAgentLen {
			return userAgent[:i]
		}
		count++
	}
	return userAgent
}

// reserveBudget must run inside a transaction, it serializes valid clicks of a campaign on the campaign row
func (s *Service) reserveBudget(
	ctx context.Context, input TrackInput, payout decimal.Decimal,
) (verifier.Result, error) {
	if err := s.repos.Campaign.LockCampaign(ctx, input.Campaign.ID); err != nil {
		return verifier.Result{}, err
	}

	count, err := s.repos.Click.CountRecentClicks(ctx, input.Link.ID, input.SourceIP, s.recency.RecentSince())
	if err != nil {
		return verifier.Result{}, err
	}
	if count > 0 {
		return verifier.RateLimitedResult(s.recency.Window()), nil
	}

	applied, err := s.repos.Campaign.DeductBudget(ctx, input.Campaign.ID, payout)
	if err != nil {
		return verifier.Result{}, err
	}
	if !applied {
		return verifier.InsufficientBudgetResult(), nil
	}
	return verifier.VerifiedResult(), nil
}

// Track verifies the click then persists it. A valid click also decrements
// the campaign budget and creates a pending earning in the same transaction.
func (s *Service) Track(ctx context.Context, input TrackInput) (TrackOutput, error) {
	payout := input.Campaign.PayoutPerClick

	result := s.verifier.Verify(ctx, verifier.Input{
		SourceIP:       input.SourceIP,
		UserAgent:      input.UserAgent,
		TrackingLinkID: input.Link.ID,
		CampaignID:     input.Campaign.ID,
		PayoutAmount:   payout,
	})

	now := s.now()
	output := TrackOutput{Result: result}

	err := s.provider.Transact(ctx, func(ctx context.Context) error {
		if result.IsValid {
			reserved, err := s.reserveBudget(ctx, input, payout)
			if err != nil {
				return err
			}
			output.Result = reserved
		}

		click := model.Click{
			TrackingLinkID: input.Link.ID,
			CampaignID:     input.Link.CampaignID,
			PromoterID:     input.Link.PromoterID,
			IPAddress:      input.SourceIP,
			UserAgent:      truncateUserAgent(input.UserAgent),
			IsValid:        output.Result.IsValid,
			Reason:         output.Result.Reason,
			CreatedAt:      now,
		}
		if click.IsValid {
			click.PayoutAmount = decimal.NewNullDecimal(payout)
		}

		clickID, err := s.repos.Click.InsertClick(ctx, click)
		if err != nil {
			return err
		}
		output.ClickID = clickID

		if !click.IsValid {
			return nil
		}

		earningID, err := s.repos.Earning.InsertEarning(ctx, model.Earning{
			ClickID:    clickID,
			PromoterID: input.Link.PromoterID,
			CampaignID: input.Link.CampaignID,
			Amount:     payout,
			Status:     model.EarningStatusPending,
			CreatedAt:  now,
			UpdatedAt:  now,
		})
		if err != nil {
			return err
		}
		output.EarningID = earningID
		return nil
	})

	s.metrics.observeResult(output.Result)

	if err != nil {
		return TrackOutput{Result: output.Result}, err
	}
	return output, nil
}

// Visit resolves the code and tracks the click. The source IP must parse and is stored
// in canonical form. Failing to persist the click does not prevent the redirect,
// the output still carries the destination.
func (s *Service) Visit(ctx context.Context, input VisitInput) (VisitOutput, error) {
	nullLink, err := s.resolver.Resolve(ctx, input.Code)
	if err != nil {
		return VisitOutput{}, err
	}
	if !nullLink.Valid {
		return VisitOutput{}, ErrLinkNotFound
	}
	link := nullLink.Link

	nullCampaign, err := s.repos.Campaign.GetCampaign(s.provider.Readonly(ctx), link.CampaignID)
	if err != nil {
		return VisitOutput{}, err
	}
	if !nullCampaign.Valid {
		return VisitOutput{}, ErrCampaignNotFound
	}

	sourceIP := net.ParseIP(input.SourceIP)
	if sourceIP == nil {
		return VisitOutput{}, ErrInvalidArgument
	}

	trackOutput, err := s.Track(ctx, TrackInput{
		Link:      link,
		Campaign:  nullCampaign.Campaign,
		SourceIP:  sourceIP.String(),
		UserAgent: input.UserAgent,
	})

	output := VisitOutput{
		DestinationURL: nullCampaign.Campaign.DestinationURL,
		Result:         trackOutput.Result,
	}

	if err != nil {
		s.metrics.observeRecordFailure()
		otellib.Extract(ctx).Error("record click",
			zap.String("code", input.Code),
			zap.Int64("tracking_link_id", link.ID),
			zap.Error(err),
		)
		return output, nil
	}

	output.Recorded = true
	output.ClickID = trackOutput.ClickID
	output.EarningID = trackOutput.EarningID
	return output, nil
}

func isDuplicateEntry(err error) bool {
	var mysqlErr *mysql.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlDuplicateEntry
}

// CreateLink issues a new short code for an active campaign
func (s *Service) CreateLink(ctx context.Context, campaignID int64, promoterID int64) (model.TrackingLink, error) {
	if campaignID <= 0 || promoterID <= 0 {
		return model.TrackingLink{}, ErrInvalidArgument
	}

	nullCampaign, err := s.repos.Campaign.GetCampaign(s.provider.Readonly(ctx), campaignID)
	if err != nil {
		return model.TrackingLink{}, err
	}
	if !nullCampaign.Valid {
		return model.TrackingLink{}, ErrCampaignNotFound
	}
	if !nullCampaign.Campaign.IsActive() {
		return model.TrackingLink{}, ErrCampaignInactive
	}

	for attempt := 0; attempt < maxCodeAttempts; attempt++ {
		code, err := util.NewShortCode(s.opts.codeLength)
		if err != nil {
			return model.TrackingLink{}, err
		}

		link := model.TrackingLink{
			CampaignID: campaignID,
			PromoterID: promoterID,
			CodeHash:   util.HashFunc(code),
			Code:       code,
			CreatedAt:  s.now(),
		}

		err = s.provider.Transact(ctx, func(ctx context.Context) error {
			id, err := s.repos.TrackingLink.InsertTrackingLink(ctx, link)
			if err != nil {
				return err
			}
			link.ID = id
			return nil
		})
		if isDuplicateEntry(err) {
			otellib.Extract(ctx).Warn("short code collision", zap.String("code", code))
			continue
		}
		if err != nil {
			return model.TrackingLink{}, err
		}
		return link, nil
	}
	return model.TrackingLink{}, ErrCodeCollision
}

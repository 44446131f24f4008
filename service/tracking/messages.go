package tracking

import (
	"github.com/QuangTung97/reva-click/model"
	"github.com/QuangTung97/reva-click/service/verifier"
	"github.com/shopspring/decimal"
)

// VerifyRequest ...
type VerifyRequest struct {
	SourceIP       string          `json:"sourceIp"`
	UserAgent      string          `json:"userAgent"`
	TrackingLinkID int64           `json:"trackingLinkId"`
	CampaignID     int64           `json:"campaignId"`
	PayoutAmount   decimal.Decimal `json:"payoutAmount"`
}

func (r *VerifyRequest) toInput() verifier.Input {
	return verifier.Input{
		SourceIP:       r.SourceIP,
		UserAgent:      r.UserAgent,
		TrackingLinkID: r.TrackingLinkID,
		CampaignID:     r.CampaignID,
		PayoutAmount:   r.PayoutAmount,
	}
}

// VerifyResponse ...
type VerifyResponse struct {
	verifier.Result
}

// TrackRequest is a visit on a short code
type TrackRequest struct {
	Code      string `json:"code"`
	SourceIP  string `json:"sourceIp"`
	UserAgent string `json:"userAgent"`
}

// TrackResponse ...
type TrackResponse struct {
	DestinationURL string          `json:"destinationUrl"`
	Recorded       bool            `json:"recorded"`
	ClickID        int64           `json:"clickId,omitempty"`
	EarningID      int64           `json:"earningId,omitempty"`
	Result         verifier.Result `json:"result"`
}

func newTrackResponse(output VisitOutput) *TrackResponse {
	return &TrackResponse{
		DestinationURL: output.DestinationURL,
		Recorded:       output.Recorded,
		ClickID:        output.ClickID,
		EarningID:      output.EarningID,
		Result:         output.Result,
	}
}

// CreateLinkRequest ...
type CreateLinkRequest struct {
	CampaignID int64 `json:"campaignId"`
	PromoterID int64 `json:"promoterId"`
}

// CreateLinkResponse ...
type CreateLinkResponse struct {
	ID         int64  `json:"id"`
	CampaignID int64  `json:"campaignId"`
	PromoterID int64  `json:"promoterId"`
	Code       string `json:"code"`
	Path       string `json:"path"`
}

// RedirectPath is the visitor facing path of a short code
func RedirectPath(code string) string {
	return "/r/" + code
}

func newCreateLinkResponse(link model.TrackingLink) *CreateLinkResponse {
	return &CreateLinkResponse{
		ID:         link.ID,
		CampaignID: link.CampaignID,
		PromoterID: link.PromoterID,
		Code:       link.Code,
		Path:       RedirectPath(link.Code),
	}
}

// Package promotion defines the boundary of the third-party promotion SDK.
//
// The SDK is consumed as an opaque capability: it reports readiness once
// after Init, resolves prompts and records purchases. Its wire schema and
// internal behaviour are owned by the vendor.
package promotion

import "context"

// Code represents SDK result code
type Code string

const (
	CodeAccepted      Code = "accepted"
	CodeDeclined      Code = "declined"
	CodeNotApplicable Code = "notApplicable"
	CodeTimeout       Code = "timeout"
	CodeError         Code = "error"
)

// Result is delivered by SDK callbacks
type Result struct {
	Code    Code
	Message string
	// Meta carries vendor specific values, i.e. button or deep link ids
	Meta map[string]string
}

// Accepted returns true for a successful result
func (r Result) Accepted() bool {
	return r.Code == CodeAccepted
}

// InitRequest carries SDK initialisation arguments
type InitRequest struct {
	AppID      string
	UserID     string
	DeviceType string
}

// PurchaseResult reports in-app purchase outcome
type PurchaseResult struct {
	SKU           string
	TransactionID string
	Code          Code
}

// Service is the promotion SDK contract
type Service interface {
	// Init starts SDK initialisation, onComplete is invoked once with the result code
	Init(ctx context.Context, request InitRequest, onComplete func(Result))
	// SetScreenName registers the currently displayed screen
	SetScreenName(ctx context.Context, screen string, onComplete func(Result))
	// ShowModal resolves prompt with id
	ShowModal(ctx context.Context, id string, onComplete func(Result))
	// RegisterDeviceToken uploads push notification device token
	RegisterDeviceToken(ctx context.Context, token string) error
	// Purchase records an in-app purchase
	Purchase(ctx context.Context, sku string) (*PurchaseResult, error)
}

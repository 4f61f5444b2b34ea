package coordinator

import (
	"context"
	"errors"
	"fmt"

	"github.com/viant/resilient/deeplink"
	"github.com/viant/resilient/gate"
	"github.com/viant/resilient/internal/collection"
	"github.com/viant/resilient/logger"
	"github.com/viant/resilient/promotion"
	"github.com/viant/resilient/store"
)

var (
	// ErrMisconfigured indicates a missing Gate, Store, Promotion or Navigator
	ErrMisconfigured = errors.New("coordinator: misconfigured (missing gate, store, promotion or navigator)")
	// ErrMissingCredentials indicates empty app or user id
	ErrMissingCredentials = errors.New("coordinator: app id and user id are required to initialise promotion")
)

// Coordinator sequences work that depends on promotion SDK readiness
type Coordinator struct {
	gate       *gate.Gate
	store      store.Store
	promotion  promotion.Service
	navigator  Navigator
	parse      func(raw string) deeplink.Link
	deviceType string
	logger     logger.Logger
	uploading  *collection.SyncMap[string, struct{}]
}

// Start initialises the SDK; an accepted result opens the gate, any other result leaves it closed
func (c *Coordinator) Start(ctx context.Context, request promotion.InitRequest) error {
	if request.AppID == "" || request.UserID == "" {
		return ErrMissingCredentials
	}
	if request.DeviceType == "" {
		request.DeviceType = c.deviceType
	}
	c.promotion.Init(ctx, request, func(result promotion.Result) {
		if !result.Accepted() {
			c.logger.Warning(ctx, fmt.Sprintf("promotion init not accepted: %v %v", result.Code, result.Message))
			return
		}
		if c.gate.SetReady() {
			c.logger.Info(ctx, "promotion ready")
		}
	})
	return nil
}

// Ready returns true once promotion is initialised
func (c *Coordinator) Ready() bool {
	return c.gate.Ready()
}

// HandleDeepLink routes link now when ready, otherwise keeps it as the single pending link
func (c *Coordinator) HandleDeepLink(ctx context.Context, raw string) {
	link := c.parse(raw)
	ctx = context.WithoutCancel(ctx)
	c.gate.Defer(func() {
		c.route(ctx, link)
	})
}

func (c *Coordinator) route(ctx context.Context, link deeplink.Link) {
	if tab, ok := tabOf(link.Kind); ok {
		c.navigator.SelectTab(ctx, tab)
		return
	}
	switch link.Kind {
	case deeplink.KindWeb:
		c.navigator.OpenURL(ctx, link.Value)
	case deeplink.KindPrompt:
		c.navigator.ShowModal(ctx, link.Value)
	case deeplink.KindInAppPurchase:
		go func() {
			if err := c.navigator.StartPurchase(ctx, link.Value); err != nil {
				c.logger.Error(ctx, fmt.Sprintf("purchase %v failed: %v", link.Value, err))
			}
		}()
	default:
		c.logger.Debug(ctx, fmt.Sprintf("ignoring deep link %q", link.Raw))
	}
}

// RegisterToken uploads token after readiness unless it equals the last uploaded token.
// The returned channel receives the upload outcome, nil when the upload was skipped.
// A failed upload leaves the persisted token unchanged so a later registration retries.
func (c *Coordinator) RegisterToken(ctx context.Context, token string) (<-chan error, error) {
	done := make(chan error, 1)
	// claim before reading the store: an upload persists the token before releasing its claim
	if !c.uploading.PutIfAbsent(token, struct{}{}) {
		c.logger.Debug(ctx, "device token upload already scheduled")
		done <- nil
		return done, nil
	}
	last, ok, err := c.store.Get(ctx, store.LastUploadedDeviceToken)
	if err != nil {
		c.uploading.Delete(token)
		return nil, fmt.Errorf("failed to read last uploaded token: %w", err)
	}
	if ok && last == token {
		c.uploading.Delete(token)
		c.logger.Debug(ctx, "device token unchanged, skipping upload")
		done <- nil
		return done, nil
	}
	ctx = context.WithoutCancel(ctx)
	c.gate.OnReady(func() {
		go func() {
			done <- c.upload(ctx, token)
		}()
	})
	return done, nil
}

func (c *Coordinator) upload(ctx context.Context, token string) error {
	defer c.uploading.Delete(token)
	if err := c.promotion.RegisterDeviceToken(ctx, token); err != nil {
		c.logger.Error(ctx, fmt.Sprintf("can not upload the token: %v", err))
		return err
	}
	if err := c.store.Set(ctx, store.LastUploadedDeviceToken, token); err != nil {
		c.logger.Error(ctx, fmt.Sprintf("failed to persist uploaded token: %v", err))
		return err
	}
	return nil
}

// RegisterScreen registers screen with the SDK once ready, results are forwarded to the navigator
func (c *Coordinator) RegisterScreen(ctx context.Context, screen string) string {
	ctx = context.WithoutCancel(ctx)
	return c.gate.OnReady(func() {
		c.promotion.SetScreenName(ctx, screen, func(result promotion.Result) {
			c.navigator.HandlePromotion(ctx, result)
		})
	})
}

// DeviceIdentifier returns locally stored device identifier
func (c *Coordinator) DeviceIdentifier(ctx context.Context) (string, bool, error) {
	return c.store.Get(ctx, store.DeviceIdentifier)
}

// New creates a coordinator
func New(g *gate.Gate, s store.Store, p promotion.Service, n Navigator, options ...Option) (*Coordinator, error) {
	if g == nil || s == nil || p == nil || n == nil {
		return nil, ErrMisconfigured
	}
	ret := &Coordinator{
		gate:       g,
		store:      s,
		promotion:  p,
		navigator:  n,
		parse:      deeplink.Parse,
		deviceType: DefaultDeviceType,
		logger:     logger.Nop(),
		uploading:  collection.NewSyncMap[string, struct{}](),
	}
	for _, opt := range options {
		opt(ret)
	}
	return ret, nil
}

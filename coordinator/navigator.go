package coordinator

import (
	"context"

	"github.com/viant/resilient/deeplink"
	"github.com/viant/resilient/promotion"
)

// Tab represents main navigation tab
type Tab string

const (
	TabHome    Tab = "home"
	TabLatest  Tab = "latest"
	TabGenres  Tab = "genres"
	TabProfile Tab = "profile"
)

func tabOf(kind deeplink.Kind) (Tab, bool) {
	switch kind {
	case deeplink.KindHome:
		return TabHome, true
	case deeplink.KindLatest:
		return TabLatest, true
	case deeplink.KindGenres:
		return TabGenres, true
	case deeplink.KindProfile:
		return TabProfile, true
	}
	return "", false
}

// Navigator performs application navigation requested by deep links and SDK results
type Navigator interface {
	SelectTab(ctx context.Context, tab Tab)
	ShowModal(ctx context.Context, promptID string)
	OpenURL(ctx context.Context, URL string)
	StartPurchase(ctx context.Context, sku string) error
	HandlePromotion(ctx context.Context, result promotion.Result)
}

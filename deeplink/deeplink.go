// Package deeplink describes application deep links and parses the redflix:// scheme.
package deeplink

import "strings"

// Scheme is the application deep link prefix
const Scheme = "redflix://"

// Kind represents deep link destination
type Kind string

const (
	KindUnknown       Kind = "unknown"
	KindHome          Kind = "home"
	KindLatest        Kind = "latest"
	KindGenres        Kind = "genres"
	KindProfile       Kind = "profile"
	KindPrompt        Kind = "prompt"
	KindInAppPurchase Kind = "inapp"
	KindWeb           Kind = "web"
)

// Link is a parsed deep link; Value holds prompt id, purchase sku or web URL
type Link struct {
	Kind  Kind
	Value string
	Raw   string
}

// IsTab returns true for links selecting a main tab
func (l Link) IsTab() bool {
	switch l.Kind {
	case KindHome, KindLatest, KindGenres, KindProfile:
		return true
	}
	return false
}

// Parse parses raw deep link, unsupported links have KindUnknown
func Parse(raw string) Link {
	ret := Link{Kind: KindUnknown, Raw: raw}
	idx := strings.Index(raw, Scheme)
	if idx == -1 {
		return ret
	}
	head, tail, _ := strings.Cut(strings.TrimLeft(raw[idx+len(Scheme):], "/"), "/")
	switch kind := Kind(head); kind {
	case KindHome, KindLatest, KindGenres, KindProfile:
		ret.Kind = kind
	case KindPrompt, KindInAppPurchase, KindWeb:
		if tail == "" {
			return ret
		}
		ret.Kind = kind
		ret.Value = tail
	}
	return ret
}

// Package portfolio computes portfolio-card visibility for a category
// filter and tracks the active filter selection.
package portfolio

import (
	"strings"

	"wifi-estimator/core/types"
	"wifi-estimator/internal/errors"
)

// FilterAll is the sentinel token that matches every item.
const FilterAll = "all"

// DefaultFilters is the built-in filter button set, in display order.
func DefaultFilters() []string {
	return []string{FilterAll, "wifi", "networking", "cabling", "security", "cctv"}
}

// Matches reports whether an item is visible under the given token.
// The category string is tested for containment of the token, not
// equality: a card tagged "wifi security" matches both "wifi" and
// "security". Containment is intentional and must be preserved.
func Matches(item types.PortfolioItem, token string) bool {
	return token == FilterAll || strings.Contains(item.Category, token)
}

// Filter returns the items with Visible derived from the token.
// The output order equals the input order; the input slice is not
// mutated. Pure: same items and token always produce the same result.
func Filter(items []types.PortfolioItem, token string) []types.PortfolioItem {
	out := make([]types.PortfolioItem, len(items))
	for i, item := range items {
		item.Visible = Matches(item, token)
		out[i] = item
	}
	return out
}

// Selection is the active-filter state: a single token from a finite
// known set. It starts at FilterAll and changes only through Activate;
// it lives for the whole session and has no terminal state.
type Selection struct {
	known   map[string]struct{}
	current string
}

// NewSelection creates a selection over the given tokens. FilterAll is
// always known, even when absent from tokens, and is the initial state.
func NewSelection(tokens ...string) *Selection {
	s := &Selection{
		known:   make(map[string]struct{}, len(tokens)+1),
		current: FilterAll,
	}
	s.known[FilterAll] = struct{}{}
	for _, t := range tokens {
		s.known[t] = struct{}{}
	}
	return s
}

// Activate switches the selection to token. Unknown tokens are
// rejected and leave the current selection unchanged.
func (s *Selection) Activate(token string) error {
	if _, ok := s.known[token]; !ok {
		return errors.NotFound("filter", token)
	}
	s.current = token
	return nil
}

// Current returns the active filter token.
func (s *Selection) Current() string {
	return s.current
}

// Known reports whether a token is in the known set.
func (s *Selection) Known(token string) bool {
	_, ok := s.known[token]
	return ok
}

// Package labels assigns stable display numbers to unassigned decks. The
// game service identifies decks by opaque ids only; a deck keeps the number
// it was given on first sight for as long as it stays unassigned, no matter
// how reloads reorder or shrink the list.
package labels

import (
	"fmt"

	"github.com/zlarouche/deck-of-cards/internal/domain"
)

// Mapping holds the label currently assigned to each unassigned deck.
type Mapping map[domain.DeckID]int

// Apply reconciles prev against the freshly fetched list of unassigned deck
// ids and returns the updated mapping:
//
//   - ids already in prev keep their label;
//   - ids not in prev get max(current labels)+1, in list order;
//   - ids absent from the list are dropped, and their label is never handed
//     to another deck because only labels still held count toward the max.
//
// Apply is pure; prev is not modified. A duplicate id in the list is a
// caller bug and returns an error rather than silently breaking injectivity.
func Apply(prev Mapping, ids []domain.DeckID) (Mapping, error) {
	next := make(Mapping, len(ids))
	seen := make(map[domain.DeckID]struct{}, len(ids))

	maxLabel := 0
	for _, label := range prev {
		if label > maxLabel {
			maxLabel = label
		}
	}

	for _, id := range ids {
		if _, dup := seen[id]; dup {
			return nil, fmt.Errorf("duplicate deck id %q in unassigned list", id)
		}
		seen[id] = struct{}{}

		if label, ok := prev[id]; ok {
			next[id] = label
			continue
		}

		maxLabel++
		next[id] = maxLabel
	}

	return next, nil
}

// Next returns the label a brand-new deck would receive, for optimistic
// inserts before the next reload confirms the deck exists.
func Next(prev Mapping) int {
	maxLabel := 0
	for _, label := range prev {
		if label > maxLabel {
			maxLabel = label
		}
	}
	return maxLabel + 1
}

package guest

import (
	"strings"
	"time"

	"backoffice/domain"
)

// Filter values the guest list UI can send. Empty fields match everything.
const (
	ActivityOver14Days = ">14days"
	ActivityOver30Days = ">30days"

	SpendOver500  = ">500"
	SpendOver1000 = ">1000"
	SpendOver5000 = ">5000"
)

// Filter is the set of predicates applied to the full guest list. All set
// predicates must hold for a guest to be included.
type Filter struct {
	Search   string
	Segment  string
	Activity string
	Spend    string
}

// Apply derives the filtered list. It is a pure function of its inputs: no
// state, same output for the same (guests, filter, now).
func Apply(guests []domain.Guest, f Filter, now time.Time) []domain.Guest {
	filtered := make([]domain.Guest, 0, len(guests))
	for _, g := range guests {
		if matchesSearch(g, f.Search) &&
			matchesSegment(g, f.Segment) &&
			matchesActivity(g, f.Activity, now) &&
			matchesSpend(g, f.Spend) {
			filtered = append(filtered, g)
		}
	}

	return filtered
}

// matchesSearch does a case-insensitive substring match on the name and a
// raw substring match on the phone number.
func matchesSearch(g domain.Guest, term string) bool {
	if term == "" {
		return true
	}

	return strings.Contains(strings.ToLower(g.Name), strings.ToLower(term)) ||
		strings.Contains(g.PhoneNumber, term)
}

func matchesSegment(g domain.Guest, segment string) bool {
	return segment == "" || g.Segment == segment
}

// matchesActivity compares whole days since the last order against the
// window. Guests who never ordered fail any set window.
func matchesActivity(g domain.Guest, activity string, now time.Time) bool {
	if activity == "" {
		return true
	}
	if g.LastOrderDate == nil {
		return false
	}

	days := int(now.Sub(*g.LastOrderDate).Hours() / 24)

	switch activity {
	case ActivityOver14Days:
		return days > 14
	case ActivityOver30Days:
		return days > 30
	default:
		return true
	}
}

func matchesSpend(g domain.Guest, spend string) bool {
	switch spend {
	case SpendOver500:
		return g.TotalSpend > 500
	case SpendOver1000:
		return g.TotalSpend > 1000
	case SpendOver5000:
		return g.TotalSpend > 5000
	default:
		return true
	}
}

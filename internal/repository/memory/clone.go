// Package memory implements the repository contracts over process-local
// maps. Data lives for the lifetime of the process: seeded at startup,
// mutated in place, gone at exit.
package memory

import "backoffice/domain"

// Readers always get copies, never a handle into store internals.

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func cloneGuest(g domain.Guest) domain.Guest {
	if g.FavoriteAddresses != nil {
		g.FavoriteAddresses = append(domain.StringList(nil), g.FavoriteAddresses...)
	}
	g.LastOrderDate = clonePtr(g.LastOrderDate)
	g.AvgOrderValue = clonePtr(g.AvgOrderValue)
	g.DeliveryZone = clonePtr(g.DeliveryZone)
	g.BehaviorPattern = clonePtr(g.BehaviorPattern)

	return g
}

func cloneOrder(o domain.Order) domain.Order {
	o.DeliveredAt = clonePtr(o.DeliveredAt)

	return o
}

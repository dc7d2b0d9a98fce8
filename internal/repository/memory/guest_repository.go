package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"backoffice/domain"

	"github.com/google/uuid"
)

type GuestRepository struct {
	mu     sync.RWMutex
	guests map[string]domain.Guest
	order  []string // preserves insertion order for FindAll
}

func NewGuestRepository() *GuestRepository {
	return &GuestRepository{
		guests: make(map[string]domain.Guest),
	}
}

// Seed loads fixture records as-is, keeping their ids and timestamps.
func (r *GuestRepository) Seed(guests []domain.Guest) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, g := range guests {
		if _, ok := r.guests[g.ID]; !ok {
			r.order = append(r.order, g.ID)
		}
		r.guests[g.ID] = cloneGuest(g)
	}
}

func (r *GuestRepository) FindAll(ctx context.Context) ([]domain.Guest, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	guests := make([]domain.Guest, 0, len(r.order))
	for _, id := range r.order {
		guests = append(guests, cloneGuest(r.guests[id]))
	}

	return guests, nil
}

func (r *GuestRepository) FindByID(ctx context.Context, id string) (domain.Guest, error) {
	if err := ctx.Err(); err != nil {
		return domain.Guest{}, fmt.Errorf("context error: %w", err)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	guest, ok := r.guests[id]
	if !ok {
		return domain.Guest{}, domain.ErrGuestNotFound
	}

	return cloneGuest(guest), nil
}

// Create assigns a fresh id, stamps the creation time and stores the record.
func (r *GuestRepository) Create(ctx context.Context, guest *domain.Guest) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	guest.ID = uuid.NewString()
	guest.CreatedAt = time.Now().UTC()

	r.guests[guest.ID] = cloneGuest(*guest)
	r.order = append(r.order, guest.ID)

	return nil
}

// Update merges the patch over the stored record. ID and CreatedAt are not
// part of the patch, so they survive every merge.
func (r *GuestRepository) Update(ctx context.Context, id string, patch domain.GuestPatch) (domain.Guest, error) {
	if err := ctx.Err(); err != nil {
		return domain.Guest{}, fmt.Errorf("context error: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	guest, ok := r.guests[id]
	if !ok {
		return domain.Guest{}, domain.ErrGuestNotFound
	}

	if patch.Name != nil {
		guest.Name = *patch.Name
	}
	if patch.PhoneNumber != nil {
		guest.PhoneNumber = *patch.PhoneNumber
	}
	if patch.TotalOrders != nil {
		guest.TotalOrders = *patch.TotalOrders
	}
	if patch.TotalSpend != nil {
		guest.TotalSpend = *patch.TotalSpend
	}
	if patch.LastOrderDate != nil {
		guest.LastOrderDate = patch.LastOrderDate
	}
	if patch.Segment != nil {
		guest.Segment = *patch.Segment
	}
	if patch.FavoriteAddresses != nil {
		guest.FavoriteAddresses = patch.FavoriteAddresses
	}
	if patch.AvgOrderValue != nil {
		guest.AvgOrderValue = patch.AvgOrderValue
	}
	if patch.DeliveryZone != nil {
		guest.DeliveryZone = patch.DeliveryZone
	}
	if patch.BehaviorPattern != nil {
		guest.BehaviorPattern = patch.BehaviorPattern
	}

	r.guests[id] = cloneGuest(guest)

	return cloneGuest(guest), nil
}

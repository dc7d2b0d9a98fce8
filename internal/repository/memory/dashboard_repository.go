package memory

import (
	"context"
	"fmt"
	"sync"

	"backoffice/domain"
)

// OrderRepository is read-only: the back office displays courier orders but
// never creates or mutates them.
type OrderRepository struct {
	mu     sync.RWMutex
	orders []domain.Order
}

func NewOrderRepository() *OrderRepository {
	return &OrderRepository{}
}

func (r *OrderRepository) Seed(orders []domain.Order) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.orders = append(r.orders, orders...)
}

func (r *OrderRepository) FindAll(ctx context.Context) ([]domain.Order, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	orders := make([]domain.Order, 0, len(r.orders))
	for _, o := range r.orders {
		orders = append(orders, cloneOrder(o))
	}

	return orders, nil
}

// StatisticsRepository holds the dashboard's headline numbers for the
// current reporting period.
type StatisticsRepository struct {
	mu     sync.RWMutex
	stats  domain.Statistics
	seeded bool
}

func NewStatisticsRepository() *StatisticsRepository {
	return &StatisticsRepository{}
}

func (r *StatisticsRepository) Seed(stats domain.Statistics) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.stats = stats
	r.seeded = true
}

func (r *StatisticsRepository) Current(ctx context.Context) (domain.Statistics, error) {
	if err := ctx.Err(); err != nil {
		return domain.Statistics{}, fmt.Errorf("context error: %w", err)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	if !r.seeded {
		return domain.Statistics{}, domain.ErrStatsNotFound
	}

	return r.stats, nil
}

package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"backoffice/domain"

	"github.com/google/uuid"
)

type TriggerRepository struct {
	mu       sync.RWMutex
	triggers map[string]domain.MarketingTrigger
	order    []string
}

func NewTriggerRepository() *TriggerRepository {
	return &TriggerRepository{
		triggers: make(map[string]domain.MarketingTrigger),
	}
}

// Seed loads fixture records as-is, keeping their ids, timestamps and
// display metrics.
func (r *TriggerRepository) Seed(triggers []domain.MarketingTrigger) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, t := range triggers {
		if _, ok := r.triggers[t.ID]; !ok {
			r.order = append(r.order, t.ID)
		}
		r.triggers[t.ID] = t
	}
}

func (r *TriggerRepository) FindAll(ctx context.Context) ([]domain.MarketingTrigger, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	triggers := make([]domain.MarketingTrigger, 0, len(r.order))
	for _, id := range r.order {
		triggers = append(triggers, r.triggers[id])
	}

	return triggers, nil
}

func (r *TriggerRepository) FindByID(ctx context.Context, id string) (domain.MarketingTrigger, error) {
	if err := ctx.Err(); err != nil {
		return domain.MarketingTrigger{}, fmt.Errorf("context error: %w", err)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	trigger, ok := r.triggers[id]
	if !ok {
		return domain.MarketingTrigger{}, domain.ErrTriggerNotFound
	}

	return trigger, nil
}

// Create assigns a fresh id and creation time. The metric fields come in
// zeroed from the service and stay that way until fixtures or a future
// delivery engine say otherwise.
func (r *TriggerRepository) Create(ctx context.Context, trigger *domain.MarketingTrigger) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	trigger.ID = uuid.NewString()
	trigger.CreatedAt = time.Now().UTC()

	r.triggers[trigger.ID] = *trigger
	r.order = append(r.order, trigger.ID)

	return nil
}

func (r *TriggerRepository) Update(ctx context.Context, id string, patch domain.TriggerPatch) (domain.MarketingTrigger, error) {
	if err := ctx.Err(); err != nil {
		return domain.MarketingTrigger{}, fmt.Errorf("context error: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	trigger, ok := r.triggers[id]
	if !ok {
		return domain.MarketingTrigger{}, domain.ErrTriggerNotFound
	}

	if patch.Name != nil {
		trigger.Name = *patch.Name
	}
	if patch.TriggerType != nil {
		trigger.TriggerType = *patch.TriggerType
	}
	if patch.Conditions != nil {
		trigger.Conditions = *patch.Conditions
	}
	if patch.MessageTemplate != nil {
		trigger.MessageTemplate = *patch.MessageTemplate
	}
	if patch.Channel != nil {
		trigger.Channel = *patch.Channel
	}
	if patch.IsActive != nil {
		trigger.IsActive = *patch.IsActive
	}

	r.triggers[id] = trigger

	return trigger, nil
}

func (r *TriggerRepository) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.triggers[id]; !ok {
		return domain.ErrTriggerNotFound
	}

	delete(r.triggers, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}

	return nil
}

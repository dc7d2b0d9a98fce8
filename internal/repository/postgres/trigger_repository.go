package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"backoffice/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TriggerRepository struct {
	DB *gorm.DB
}

func NewTriggerRepository(db *gorm.DB) *TriggerRepository {
	return &TriggerRepository{
		DB: db,
	}
}

func (r *TriggerRepository) FindAll(ctx context.Context) ([]domain.MarketingTrigger, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var triggers []domain.MarketingTrigger
	err := r.DB.WithContext(ctx).Order("created_at").Find(&triggers).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find marketing triggers: %w", err)
	}

	return triggers, nil
}

func (r *TriggerRepository) FindByID(ctx context.Context, id string) (domain.MarketingTrigger, error) {
	if err := ctx.Err(); err != nil {
		return domain.MarketingTrigger{}, fmt.Errorf("context error: %w", err)
	}

	var trigger domain.MarketingTrigger

	err := r.DB.WithContext(ctx).Where("id = ?", id).First(&trigger).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.MarketingTrigger{}, domain.ErrTriggerNotFound
		}
		return domain.MarketingTrigger{}, fmt.Errorf("failed to find marketing trigger: %w", err)
	}

	return trigger, nil
}

func (r *TriggerRepository) Create(ctx context.Context, trigger *domain.MarketingTrigger) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	trigger.ID = uuid.NewString()
	trigger.CreatedAt = time.Now().UTC()

	if err := r.DB.WithContext(ctx).Create(trigger).Error; err != nil {
		return fmt.Errorf("failed to create marketing trigger: %w", err)
	}

	return nil
}

func (r *TriggerRepository) Update(ctx context.Context, id string, patch domain.TriggerPatch) (domain.MarketingTrigger, error) {
	if err := ctx.Err(); err != nil {
		return domain.MarketingTrigger{}, fmt.Errorf("context error: %w", err)
	}

	updateData := map[string]interface{}{}
	if patch.Name != nil {
		updateData["name"] = *patch.Name
	}
	if patch.TriggerType != nil {
		updateData["trigger_type"] = *patch.TriggerType
	}
	if patch.Conditions != nil {
		updateData["conditions"] = *patch.Conditions
	}
	if patch.MessageTemplate != nil {
		updateData["message_template"] = *patch.MessageTemplate
	}
	if patch.Channel != nil {
		updateData["channel"] = *patch.Channel
	}
	if patch.IsActive != nil {
		updateData["is_active"] = *patch.IsActive
	}

	if len(updateData) > 0 {
		result := r.DB.WithContext(ctx).Model(&domain.MarketingTrigger{}).Where("id = ?", id).Updates(updateData)
		if result.Error != nil {
			return domain.MarketingTrigger{}, fmt.Errorf("failed to update marketing trigger: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return domain.MarketingTrigger{}, domain.ErrTriggerNotFound
		}
	}

	return r.FindByID(ctx, id)
}

func (r *TriggerRepository) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	result := r.DB.WithContext(ctx).Where("id = ?", id).Delete(&domain.MarketingTrigger{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete marketing trigger: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrTriggerNotFound
	}

	return nil
}

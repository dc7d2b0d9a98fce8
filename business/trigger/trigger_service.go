package trigger

import (
	"context"
	"fmt"

	"backoffice/domain"
	"backoffice/pkg/logger"
)

// TriggerRepository contract interface
type TriggerRepository interface {
	FindAll(ctx context.Context) ([]domain.MarketingTrigger, error)
	FindByID(ctx context.Context, id string) (domain.MarketingTrigger, error)
	Create(ctx context.Context, trigger *domain.MarketingTrigger) error
	Update(ctx context.Context, id string, patch domain.TriggerPatch) (domain.MarketingTrigger, error)
	Delete(ctx context.Context, id string) error
}

type triggerService struct {
	triggerRepo TriggerRepository
}

func NewTriggerService(triggerRepo TriggerRepository) *triggerService {
	return &triggerService{
		triggerRepo: triggerRepo,
	}
}

func (s *triggerService) ListTriggers(ctx context.Context) ([]domain.MarketingTrigger, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when listing marketing triggers")
		return nil, fmt.Errorf("context error: %w", err)
	}

	triggers, err := s.triggerRepo.FindAll(ctx)
	if err != nil {
		logger.Error("Failed to find all marketing triggers", err)
		return nil, err
	}

	return triggers, nil
}

func (s *triggerService) GetTriggerByID(ctx context.Context, id string) (domain.MarketingTrigger, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when getting marketing trigger by id")
		return domain.MarketingTrigger{}, fmt.Errorf("context error: %w", err)
	}

	trigger, err := s.triggerRepo.FindByID(ctx, id)
	if err != nil {
		return domain.MarketingTrigger{}, err
	}

	return trigger, nil
}

// CreateTrigger stores a new campaign rule. The metric fields start at zero
// no matter what the caller holds; only fixtures set them.
func (s *triggerService) CreateTrigger(ctx context.Context, trigger *domain.MarketingTrigger) (*domain.MarketingTrigger, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when creating marketing trigger")
		return nil, fmt.Errorf("context error: %w", err)
	}

	trigger.SentCount = 0
	trigger.OpenRate = 0
	trigger.ClickRate = 0
	trigger.ConversionRate = 0

	if err := s.triggerRepo.Create(ctx, trigger); err != nil {
		logger.Error("failed to create new marketing trigger", err)
		return nil, fmt.Errorf("failed to create marketing trigger: %w", err)
	}

	logger.Info("marketing trigger created successfully", "trigger_id", trigger.ID)

	return trigger, nil
}

func (s *triggerService) UpdateTrigger(ctx context.Context, id string, patch domain.TriggerPatch) (domain.MarketingTrigger, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when updating marketing trigger")
		return domain.MarketingTrigger{}, fmt.Errorf("context error: %w", err)
	}

	trigger, err := s.triggerRepo.Update(ctx, id, patch)
	if err != nil {
		return domain.MarketingTrigger{}, err
	}

	logger.Info("marketing trigger updated successfully", "trigger_id", id)

	return trigger, nil
}

func (s *triggerService) DeleteTrigger(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when deleting marketing trigger")
		return fmt.Errorf("context error: %w", err)
	}

	if err := s.triggerRepo.Delete(ctx, id); err != nil {
		return err
	}

	logger.Info("marketing trigger deleted successfully", "trigger_id", id)

	return nil
}

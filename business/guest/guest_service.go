package guest

import (
	"context"
	"fmt"
	"time"

	"backoffice/domain"
	"backoffice/pkg/logger"
)

// GuestRepository contract interface
type GuestRepository interface {
	FindAll(ctx context.Context) ([]domain.Guest, error)
	FindByID(ctx context.Context, id string) (domain.Guest, error)
	Create(ctx context.Context, guest *domain.Guest) error
	Update(ctx context.Context, id string, patch domain.GuestPatch) (domain.Guest, error)
}

type guestService struct {
	guestRepo GuestRepository
}

func NewGuestService(guestRepo GuestRepository) *guestService {
	return &guestService{
		guestRepo: guestRepo,
	}
}

// ListGuests fetches the full guest base and applies the filter in memory.
// The filter is recomputed on every call; at dashboard scale nothing is
// cached.
func (s *guestService) ListGuests(ctx context.Context, f Filter) ([]domain.Guest, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when listing guests")
		return nil, fmt.Errorf("context error: %w", err)
	}

	guests, err := s.guestRepo.FindAll(ctx)
	if err != nil {
		logger.Error("Failed to find all guests", err)
		return nil, err
	}

	return Apply(guests, f, time.Now()), nil
}

func (s *guestService) GetGuestByID(ctx context.Context, id string) (domain.Guest, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when getting guest by id")
		return domain.Guest{}, fmt.Errorf("context error: %w", err)
	}

	guest, err := s.guestRepo.FindByID(ctx, id)
	if err != nil {
		return domain.Guest{}, err
	}

	return guest, nil
}

func (s *guestService) CreateGuest(ctx context.Context, guest *domain.Guest) (*domain.Guest, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when creating guest")
		return nil, fmt.Errorf("context error: %w", err)
	}

	if err := s.guestRepo.Create(ctx, guest); err != nil {
		logger.Error("failed to create new guest", err)
		return nil, fmt.Errorf("failed to create guest: %w", err)
	}

	logger.Info("guest created successfully", "guest_id", guest.ID)

	return guest, nil
}

func (s *guestService) UpdateGuest(ctx context.Context, id string, patch domain.GuestPatch) (domain.Guest, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when updating guest")
		return domain.Guest{}, fmt.Errorf("context error: %w", err)
	}

	guest, err := s.guestRepo.Update(ctx, id, patch)
	if err != nil {
		return domain.Guest{}, err
	}

	logger.Info("guest updated successfully", "guest_id", id)

	return guest, nil
}

// Package postgres is the durable storage backend. It implements the same
// repository contracts as the memory package, so swapping it in is a config
// change, not a code change.
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

type GuestRepository struct {
	DB *gorm.DB
}

func NewGuestRepository(db *gorm.DB) *GuestRepository {
	return &GuestRepository{
		DB: db,
	}
}

func (r *GuestRepository) FindAll(ctx context.Context) ([]domain.Guest, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var guests []domain.Guest
	err := r.DB.WithContext(ctx).Order("created_at").Find(&guests).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find guests: %w", err)
	}

	return guests, nil
}

func (r *GuestRepository) FindByID(ctx context.Context, id string) (domain.Guest, error) {
	if err := ctx.Err(); err != nil {
		return domain.Guest{}, fmt.Errorf("context error: %w", err)
	}

	var guest domain.Guest

	err := r.DB.WithContext(ctx).Where("id = ?", id).First(&guest).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Guest{}, domain.ErrGuestNotFound
		}
		return domain.Guest{}, fmt.Errorf("failed to find guest: %w", err)
	}

	return guest, nil
}

func (r *GuestRepository) Create(ctx context.Context, guest *domain.Guest) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	guest.ID = uuid.NewString()
	guest.CreatedAt = time.Now().UTC()

	if err := r.DB.WithContext(ctx).Create(guest).Error; err != nil {
		return fmt.Errorf("failed to create guest: %w", err)
	}

	return nil
}

func (r *GuestRepository) Update(ctx context.Context, id string, patch domain.GuestPatch) (domain.Guest, error) {
	if err := ctx.Err(); err != nil {
		return domain.Guest{}, fmt.Errorf("context error: %w", err)
	}

	updateData := map[string]interface{}{}
	if patch.Name != nil {
		updateData["name"] = *patch.Name
	}
	if patch.PhoneNumber != nil {
		updateData["phone_number"] = *patch.PhoneNumber
	}
	if patch.TotalOrders != nil {
		updateData["total_orders"] = *patch.TotalOrders
	}
	if patch.TotalSpend != nil {
		updateData["total_spend"] = *patch.TotalSpend
	}
	if patch.LastOrderDate != nil {
		updateData["last_order_date"] = *patch.LastOrderDate
	}
	if patch.Segment != nil {
		updateData["segment"] = *patch.Segment
	}
	if patch.FavoriteAddresses != nil {
		updateData["favorite_addresses"] = patch.FavoriteAddresses
	}
	if patch.AvgOrderValue != nil {
		updateData["avg_order_value"] = *patch.AvgOrderValue
	}
	if patch.DeliveryZone != nil {
		updateData["delivery_zone"] = *patch.DeliveryZone
	}
	if patch.BehaviorPattern != nil {
		updateData["behavior_pattern"] = *patch.BehaviorPattern
	}

	if len(updateData) > 0 {
		result := r.DB.WithContext(ctx).Model(&domain.Guest{}).Where("id = ?", id).Updates(updateData)
		if result.Error != nil {
			return domain.Guest{}, fmt.Errorf("failed to update guest: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return domain.Guest{}, domain.ErrGuestNotFound
		}
	}

	return r.FindByID(ctx, id)
}

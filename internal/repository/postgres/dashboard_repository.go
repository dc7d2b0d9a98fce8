package postgres

import (
	"context"
	"errors"
	"fmt"

	"backoffice/domain"

	"gorm.io/gorm"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{
		DB: db,
	}
}

func (r *OrderRepository) FindAll(ctx context.Context) ([]domain.Order, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var orders []domain.Order
	err := r.DB.WithContext(ctx).Order("created_at").Find(&orders).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find orders: %w", err)
	}

	return orders, nil
}

type StatisticsRepository struct {
	DB *gorm.DB
}

func NewStatisticsRepository(db *gorm.DB) *StatisticsRepository {
	return &StatisticsRepository{
		DB: db,
	}
}

// Current returns the latest reporting period.
func (r *StatisticsRepository) Current(ctx context.Context) (domain.Statistics, error) {
	if err := ctx.Err(); err != nil {
		return domain.Statistics{}, fmt.Errorf("context error: %w", err)
	}

	var stats domain.Statistics

	err := r.DB.WithContext(ctx).Order("date_to DESC").First(&stats).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Statistics{}, domain.ErrStatsNotFound
		}
		return domain.Statistics{}, fmt.Errorf("failed to find statistics: %w", err)
	}

	return stats, nil
}

// Package analytics derives the dashboard's read models. Every number is
// recomputed from the stored records on each request; nothing is cached.
package analytics

import (
	"context"
	"fmt"
	"sort"

	"backoffice/domain"
	"backoffice/pkg/logger"
)

// GuestRepository contract interface (read side only)
type GuestRepository interface {
	FindAll(ctx context.Context) ([]domain.Guest, error)
}

// OrderRepository contract interface
type OrderRepository interface {
	FindAll(ctx context.Context) ([]domain.Order, error)
}

// StatisticsRepository contract interface
type StatisticsRepository interface {
	Current(ctx context.Context) (domain.Statistics, error)
}

type analyticsService struct {
	guestRepo GuestRepository
	orderRepo OrderRepository
	statsRepo StatisticsRepository
}

func NewAnalyticsService(
	guestRepo GuestRepository,
	orderRepo OrderRepository,
	statsRepo StatisticsRepository,
) *analyticsService {
	return &analyticsService{
		guestRepo: guestRepo,
		orderRepo: orderRepo,
		statsRepo: statsRepo,
	}
}

// CustomerAnalytics groups the guest base by segment and delivery zone.
func (s *analyticsService) CustomerAnalytics(ctx context.Context) (domain.CustomerAnalytics, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when computing customer analytics")
		return domain.CustomerAnalytics{}, fmt.Errorf("context error: %w", err)
	}

	guests, err := s.guestRepo.FindAll(ctx)
	if err != nil {
		logger.Error("Failed to find guests for analytics", err)
		return domain.CustomerAnalytics{}, err
	}

	report := domain.CustomerAnalytics{
		TotalGuests: len(guests),
		Segments:    segmentBreakdowns(guests),
		Zones:       zoneBreakdowns(guests),
	}

	for _, g := range guests {
		report.TotalOrders += g.TotalOrders
		report.TotalRevenue += g.TotalSpend
	}
	if report.TotalOrders > 0 {
		report.AvgOrderValue = report.TotalRevenue / float64(report.TotalOrders)
	}

	return report, nil
}

func (s *analyticsService) ActiveOrders(ctx context.Context) ([]domain.Order, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when listing active orders")
		return nil, fmt.Errorf("context error: %w", err)
	}

	orders, err := s.orderRepo.FindAll(ctx)
	if err != nil {
		logger.Error("Failed to find orders", err)
		return nil, err
	}

	return orders, nil
}

func (s *analyticsService) Statistics(ctx context.Context) (domain.Statistics, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when fetching statistics")
		return domain.Statistics{}, fmt.Errorf("context error: %w", err)
	}

	stats, err := s.statsRepo.Current(ctx)
	if err != nil {
		return domain.Statistics{}, err
	}

	return stats, nil
}

func segmentBreakdowns(guests []domain.Guest) []domain.SegmentBreakdown {
	type acc struct {
		count int
		spend float64
	}
	bySegment := make(map[string]*acc)
	for _, g := range guests {
		a, ok := bySegment[g.Segment]
		if !ok {
			a = &acc{}
			bySegment[g.Segment] = a
		}
		a.count++
		a.spend += g.TotalSpend
	}

	breakdowns := make([]domain.SegmentBreakdown, 0, len(bySegment))
	for segment, a := range bySegment {
		b := domain.SegmentBreakdown{
			Segment:  segment,
			Count:    a.count,
			AvgSpend: a.spend / float64(a.count),
		}
		if len(guests) > 0 {
			b.Percentage = float64(a.count) / float64(len(guests)) * 100
		}
		breakdowns = append(breakdowns, b)
	}

	// biggest segments first, name as tiebreaker for a stable report
	sort.Slice(breakdowns, func(i, j int) bool {
		if breakdowns[i].Count != breakdowns[j].Count {
			return breakdowns[i].Count > breakdowns[j].Count
		}
		return breakdowns[i].Segment < breakdowns[j].Segment
	})

	return breakdowns
}

func zoneBreakdowns(guests []domain.Guest) []domain.ZoneBreakdown {
	type acc struct {
		orders  int
		revenue float64
	}
	byZone := make(map[string]*acc)
	for _, g := range guests {
		if g.DeliveryZone == nil || *g.DeliveryZone == "" {
			continue
		}
		a, ok := byZone[*g.DeliveryZone]
		if !ok {
			a = &acc{}
			byZone[*g.DeliveryZone] = a
		}
		a.orders += g.TotalOrders
		a.revenue += g.TotalSpend
	}

	breakdowns := make([]domain.ZoneBreakdown, 0, len(byZone))
	for zone, a := range byZone {
		b := domain.ZoneBreakdown{
			Zone:       zone,
			OrderCount: a.orders,
			Revenue:    a.revenue,
		}
		if a.orders > 0 {
			b.AvgOrderValue = a.revenue / float64(a.orders)
		}
		breakdowns = append(breakdowns, b)
	}

	sort.Slice(breakdowns, func(i, j int) bool {
		if breakdowns[i].Revenue != breakdowns[j].Revenue {
			return breakdowns[i].Revenue > breakdowns[j].Revenue
		}
		return breakdowns[i].Zone < breakdowns[j].Zone
	})

	return breakdowns
}

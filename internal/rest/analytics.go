package rest

import (
	"context"
	"errors"
	"net/http"
	"time"

	"backoffice/domain"
	"backoffice/pkg/logger"

	"github.com/labstack/echo/v4"
)

type AnalyticsService interface {
	CustomerAnalytics(ctx context.Context) (domain.CustomerAnalytics, error)
	ActiveOrders(ctx context.Context) ([]domain.Order, error)
	Statistics(ctx context.Context) (domain.Statistics, error)
}

type AnalyticsHandler struct {
	analyticsService AnalyticsService
	timeout          time.Duration
}

func NewAnalyticsHandler(analyticsService AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{
		analyticsService: analyticsService,
		timeout:          10 * time.Second,
	}
}

type SegmentBreakdownResponse struct {
	Segment    string  `json:"segment"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
	AvgSpend   string  `json:"avgSpend"`
}

type ZoneBreakdownResponse struct {
	Zone          string `json:"zone"`
	OrderCount    int    `json:"orderCount"`
	Revenue       string `json:"revenue"`
	AvgOrderValue string `json:"avgOrderValue"`
}

type CustomerAnalyticsResponse struct {
	TotalGuests   int                        `json:"totalGuests"`
	TotalOrders   int                        `json:"totalOrders"`
	TotalRevenue  string                     `json:"totalRevenue"`
	AvgOrderValue string                     `json:"avgOrderValue"`
	Segments      []SegmentBreakdownResponse `json:"segments"`
	Zones         []ZoneBreakdownResponse    `json:"zones"`
}

type OrderResponse struct {
	ID           string     `json:"id"`
	Status       string     `json:"status"`
	EmployeeName string     `json:"employeeName"`
	EmployeeID   string     `json:"employeeId"`
	CreatedAt    time.Time  `json:"createdAt"`
	DeliveredAt  *time.Time `json:"deliveredAt"`
	Route        string     `json:"route"`
	Address      string     `json:"address"`
}

type StatisticsResponse struct {
	ID             string    `json:"id"`
	CurrentBalance string    `json:"currentBalance"`
	TotalExpenses  string    `json:"totalExpenses"`
	OrderCount     string    `json:"orderCount"`
	DateFrom       time.Time `json:"dateFrom"`
	DateTo         time.Time `json:"dateTo"`
}

func (h *AnalyticsHandler) GetCustomerAnalytics(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	report, err := h.analyticsService.CustomerAnalytics(ctx)
	if err != nil {
		logger.Error("Failed to compute customer analytics", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Error: "Failed to compute customer analytics"})
	}

	resp := CustomerAnalyticsResponse{
		TotalGuests:   report.TotalGuests,
		TotalOrders:   report.TotalOrders,
		TotalRevenue:  formatAmount(report.TotalRevenue),
		AvgOrderValue: formatAmount(report.AvgOrderValue),
		Segments:      make([]SegmentBreakdownResponse, 0, len(report.Segments)),
		Zones:         make([]ZoneBreakdownResponse, 0, len(report.Zones)),
	}
	for _, s := range report.Segments {
		resp.Segments = append(resp.Segments, SegmentBreakdownResponse{
			Segment:    s.Segment,
			Count:      s.Count,
			Percentage: s.Percentage,
			AvgSpend:   formatAmount(s.AvgSpend),
		})
	}
	for _, z := range report.Zones {
		resp.Zones = append(resp.Zones, ZoneBreakdownResponse{
			Zone:          z.Zone,
			OrderCount:    z.OrderCount,
			Revenue:       formatAmount(z.Revenue),
			AvgOrderValue: formatAmount(z.AvgOrderValue),
		})
	}

	return c.JSON(http.StatusOK, resp)
}

func (h *AnalyticsHandler) GetActiveOrders(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	orders, err := h.analyticsService.ActiveOrders(ctx)
	if err != nil {
		logger.Error("Failed to find orders", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Error: "Failed to fetch orders"})
	}

	responses := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		responses = append(responses, OrderResponse{
			ID:           o.ID,
			Status:       o.Status,
			EmployeeName: o.EmployeeName,
			EmployeeID:   o.EmployeeID,
			CreatedAt:    o.CreatedAt,
			DeliveredAt:  o.DeliveredAt,
			Route:        o.Route,
			Address:      o.Address,
		})
	}

	return c.JSON(http.StatusOK, responses)
}

func (h *AnalyticsHandler) GetStatistics(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	stats, err := h.analyticsService.Statistics(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrStatsNotFound) {
			return c.JSON(http.StatusNotFound, ResponseError{Error: "Statistics not found"})
		}
		logger.Error("Failed to fetch statistics", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Error: "Failed to fetch statistics"})
	}

	return c.JSON(http.StatusOK, StatisticsResponse{
		ID:             stats.ID,
		CurrentBalance: formatAmount(stats.CurrentBalance),
		TotalExpenses:  formatAmount(stats.TotalExpenses),
		OrderCount:     formatCount(stats.OrderCount),
		DateFrom:       stats.DateFrom,
		DateTo:         stats.DateTo,
	})
}

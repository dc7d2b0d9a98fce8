package rest

import (
	"context"
	"errors"
	"net/http"
	"time"

	"backoffice/business/guest"
	"backoffice/domain"
	"backoffice/pkg/logger"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type GuestService interface {
	ListGuests(ctx context.Context, f guest.Filter) ([]domain.Guest, error)
	GetGuestByID(ctx context.Context, id string) (domain.Guest, error)
	CreateGuest(ctx context.Context, guest *domain.Guest) (*domain.Guest, error)
	UpdateGuest(ctx context.Context, id string, patch domain.GuestPatch) (domain.Guest, error)
}

type GuestHandler struct {
	guestService GuestService
	validator    *validator.Validate
	timeout      time.Duration
}

func NewGuestHandler(guestService GuestService) *GuestHandler {
	return &GuestHandler{
		guestService: guestService,
		validator:    validator.New(),
		timeout:      10 * time.Second,
	}
}

// CreateGuestRequest is the insertable guest shape: everything the server
// owns (id, createdAt) is absent. Amounts and counters arrive as the
// decimal strings the dashboard sends.
type CreateGuestRequest struct {
	Name              string     `json:"name" validate:"required"`
	PhoneNumber       string     `json:"phoneNumber" validate:"required"`
	Segment           string     `json:"segment" validate:"required"`
	TotalOrders       *string    `json:"totalOrders"`
	TotalSpend        *string    `json:"totalSpend"`
	LastOrderDate     *time.Time `json:"lastOrderDate"`
	FavoriteAddresses []string   `json:"favoriteAddresses"`
	AvgOrderValue     *string    `json:"avgOrderValue"`
	DeliveryZone      *string    `json:"deliveryZone"`
	BehaviorPattern   *string    `json:"behaviorPattern"`
}

// UpdateGuestRequest makes every field optional; an empty body is a valid
// no-op update.
type UpdateGuestRequest struct {
	Name              *string    `json:"name"`
	PhoneNumber       *string    `json:"phoneNumber"`
	Segment           *string    `json:"segment"`
	TotalOrders       *string    `json:"totalOrders"`
	TotalSpend        *string    `json:"totalSpend"`
	LastOrderDate     *time.Time `json:"lastOrderDate"`
	FavoriteAddresses []string   `json:"favoriteAddresses"`
	AvgOrderValue     *string    `json:"avgOrderValue"`
	DeliveryZone      *string    `json:"deliveryZone"`
	BehaviorPattern   *string    `json:"behaviorPattern"`
}

type GuestResponse struct {
	ID                string     `json:"id"`
	Name              string     `json:"name"`
	PhoneNumber       string     `json:"phoneNumber"`
	TotalOrders       string     `json:"totalOrders"`
	TotalSpend        string     `json:"totalSpend"`
	LastOrderDate     *time.Time `json:"lastOrderDate"`
	Segment           string     `json:"segment"`
	CreatedAt         time.Time  `json:"createdAt"`
	FavoriteAddresses []string   `json:"favoriteAddresses"`
	AvgOrderValue     *string    `json:"avgOrderValue"`
	DeliveryZone      *string    `json:"deliveryZone"`
	BehaviorPattern   *string    `json:"behaviorPattern"`
}

func toGuestResponse(g domain.Guest) GuestResponse {
	return GuestResponse{
		ID:                g.ID,
		Name:              g.Name,
		PhoneNumber:       g.PhoneNumber,
		TotalOrders:       formatCount(g.TotalOrders),
		TotalSpend:        formatAmount(g.TotalSpend),
		LastOrderDate:     g.LastOrderDate,
		Segment:           g.Segment,
		CreatedAt:         g.CreatedAt,
		FavoriteAddresses: g.FavoriteAddresses,
		AvgOrderValue:     formatAmountPtr(g.AvgOrderValue),
		DeliveryZone:      g.DeliveryZone,
		BehaviorPattern:   g.BehaviorPattern,
	}
}

func (h *GuestHandler) GetAllGuests(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	f := guest.Filter{
		Search:   c.QueryParam("search"),
		Segment:  c.QueryParam("segment"),
		Activity: c.QueryParam("activity"),
		Spend:    c.QueryParam("spend"),
	}

	guests, err := h.guestService.ListGuests(ctx, f)
	if err != nil {
		logger.Error("Failed to find all guests", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Error: "Failed to fetch guests"})
	}

	responses := make([]GuestResponse, 0, len(guests))
	for _, g := range guests {
		responses = append(responses, toGuestResponse(g))
	}

	return c.JSON(http.StatusOK, responses)
}

func (h *GuestHandler) GetGuestByID(c echo.Context) error {
	id := c.Param("id")

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	g, err := h.guestService.GetGuestByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrGuestNotFound) {
			return c.JSON(http.StatusNotFound, ResponseError{Error: "Guest not found"})
		}
		logger.Error("Failed to find guest", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Error: "Failed to fetch guest"})
	}

	return c.JSON(http.StatusOK, toGuestResponse(g))
}

func (h *GuestHandler) CreateGuest(c echo.Context) error {
	var req CreateGuestRequest

	if err := c.Bind(&req); err != nil {
		logger.Error("Failed to bind guest request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Error: "Invalid guest data"})
	}

	if err := h.validator.Struct(&req); err != nil {
		logger.Error("Failed to validate guest request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Error: validationMessage(err)})
	}

	g, err := guestFromCreateRequest(req)
	if err != nil {
		logger.Error("Invalid guest numeric field", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Error: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	created, err := h.guestService.CreateGuest(ctx, g)
	if err != nil {
		logger.Error("Failed to create guest", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Error: "Failed to create guest"})
	}

	return c.JSON(http.StatusCreated, toGuestResponse(*created))
}

func (h *GuestHandler) UpdateGuest(c echo.Context) error {
	id := c.Param("id")

	var req UpdateGuestRequest
	if err := c.Bind(&req); err != nil {
		logger.Error("Failed to bind guest request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Error: "Invalid guest data"})
	}

	if err := h.validator.Struct(&req); err != nil {
		logger.Error("Failed to validate guest request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Error: validationMessage(err)})
	}

	patch, err := guestPatchFromRequest(req)
	if err != nil {
		logger.Error("Invalid guest numeric field", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Error: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	updated, err := h.guestService.UpdateGuest(ctx, id, patch)
	if err != nil {
		if errors.Is(err, domain.ErrGuestNotFound) {
			return c.JSON(http.StatusNotFound, ResponseError{Error: "Guest not found"})
		}
		logger.Error("Failed to update guest", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Error: "Failed to update guest"})
	}

	return c.JSON(http.StatusOK, toGuestResponse(updated))
}

func guestFromCreateRequest(req CreateGuestRequest) (*domain.Guest, error) {
	g := &domain.Guest{
		Name:              req.Name,
		PhoneNumber:       req.PhoneNumber,
		Segment:           req.Segment,
		LastOrderDate:     req.LastOrderDate,
		FavoriteAddresses: domain.StringList(req.FavoriteAddresses),
		DeliveryZone:      req.DeliveryZone,
		BehaviorPattern:   req.BehaviorPattern,
	}

	// omitted counters default to zero
	if req.TotalOrders != nil {
		n, err := parseCount(*req.TotalOrders)
		if err != nil {
			return nil, err
		}
		g.TotalOrders = n
	}
	if req.TotalSpend != nil {
		f, err := parseAmount(*req.TotalSpend)
		if err != nil {
			return nil, err
		}
		g.TotalSpend = f
	}
	if req.AvgOrderValue != nil {
		f, err := parseAmount(*req.AvgOrderValue)
		if err != nil {
			return nil, err
		}
		g.AvgOrderValue = &f
	}

	return g, nil
}

func guestPatchFromRequest(req UpdateGuestRequest) (domain.GuestPatch, error) {
	patch := domain.GuestPatch{
		Name:              req.Name,
		PhoneNumber:       req.PhoneNumber,
		Segment:           req.Segment,
		LastOrderDate:     req.LastOrderDate,
		FavoriteAddresses: domain.StringList(req.FavoriteAddresses),
		DeliveryZone:      req.DeliveryZone,
		BehaviorPattern:   req.BehaviorPattern,
	}

	if req.TotalOrders != nil {
		n, err := parseCount(*req.TotalOrders)
		if err != nil {
			return domain.GuestPatch{}, err
		}
		patch.TotalOrders = &n
	}
	if req.TotalSpend != nil {
		f, err := parseAmount(*req.TotalSpend)
		if err != nil {
			return domain.GuestPatch{}, err
		}
		patch.TotalSpend = &f
	}
	if req.AvgOrderValue != nil {
		f, err := parseAmount(*req.AvgOrderValue)
		if err != nil {
			return domain.GuestPatch{}, err
		}
		patch.AvgOrderValue = &f
	}

	return patch, nil
}

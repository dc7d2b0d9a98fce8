package rest

import (
	"context"
	"errors"
	"net/http"
	"time"

	"backoffice/domain"
	"backoffice/pkg/logger"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type TriggerService interface {
	ListTriggers(ctx context.Context) ([]domain.MarketingTrigger, error)
	GetTriggerByID(ctx context.Context, id string) (domain.MarketingTrigger, error)
	CreateTrigger(ctx context.Context, trigger *domain.MarketingTrigger) (*domain.MarketingTrigger, error)
	UpdateTrigger(ctx context.Context, id string, patch domain.TriggerPatch) (domain.MarketingTrigger, error)
	DeleteTrigger(ctx context.Context, id string) error
}

type TriggerHandler struct {
	triggerService TriggerService
	validator      *validator.Validate
	timeout        time.Duration
}

func NewTriggerHandler(triggerService TriggerService) *TriggerHandler {
	return &TriggerHandler{
		triggerService: triggerService,
		validator:      validator.New(),
		timeout:        10 * time.Second,
	}
}

// CreateTriggerRequest is the insertable trigger shape: id, createdAt and
// the metric fields are server-owned and not accepted here.
type CreateTriggerRequest struct {
	Name            string  `json:"name" validate:"required"`
	TriggerType     string  `json:"triggerType" validate:"required"`
	Conditions      string  `json:"conditions" validate:"required"`
	MessageTemplate string  `json:"messageTemplate" validate:"required"`
	Channel         string  `json:"channel" validate:"required,oneof=Push SMS"`
	IsActive        *string `json:"isActive" validate:"omitempty,oneof=true false"`
}

type UpdateTriggerRequest struct {
	Name            *string `json:"name"`
	TriggerType     *string `json:"triggerType"`
	Conditions      *string `json:"conditions"`
	MessageTemplate *string `json:"messageTemplate"`
	Channel         *string `json:"channel" validate:"omitempty,oneof=Push SMS"`
	IsActive        *string `json:"isActive" validate:"omitempty,oneof=true false"`
}

type TriggerResponse struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	TriggerType     string    `json:"triggerType"`
	Conditions      string    `json:"conditions"`
	MessageTemplate string    `json:"messageTemplate"`
	Channel         string    `json:"channel"`
	IsActive        string    `json:"isActive"`
	CreatedAt       time.Time `json:"createdAt"`
	SentCount       string    `json:"sentCount"`
	OpenRate        string    `json:"openRate"`
	ClickRate       string    `json:"clickRate"`
	ConversionRate  string    `json:"conversionRate"`
}

func toTriggerResponse(t domain.MarketingTrigger) TriggerResponse {
	isActive := "false"
	if t.IsActive {
		isActive = "true"
	}

	return TriggerResponse{
		ID:              t.ID,
		Name:            t.Name,
		TriggerType:     t.TriggerType,
		Conditions:      t.Conditions,
		MessageTemplate: t.MessageTemplate,
		Channel:         t.Channel,
		IsActive:        isActive,
		CreatedAt:       t.CreatedAt,
		SentCount:       formatCount(t.SentCount),
		OpenRate:        formatAmount(t.OpenRate),
		ClickRate:       formatAmount(t.ClickRate),
		ConversionRate:  formatAmount(t.ConversionRate),
	}
}

func (h *TriggerHandler) GetAllTriggers(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	triggers, err := h.triggerService.ListTriggers(ctx)
	if err != nil {
		logger.Error("Failed to find all marketing triggers", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Error: "Failed to fetch marketing triggers"})
	}

	responses := make([]TriggerResponse, 0, len(triggers))
	for _, t := range triggers {
		responses = append(responses, toTriggerResponse(t))
	}

	return c.JSON(http.StatusOK, responses)
}

func (h *TriggerHandler) GetTriggerByID(c echo.Context) error {
	id := c.Param("id")

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	t, err := h.triggerService.GetTriggerByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrTriggerNotFound) {
			return c.JSON(http.StatusNotFound, ResponseError{Error: "Marketing trigger not found"})
		}
		logger.Error("Failed to find marketing trigger", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Error: "Failed to fetch marketing trigger"})
	}

	return c.JSON(http.StatusOK, toTriggerResponse(t))
}

func (h *TriggerHandler) CreateTrigger(c echo.Context) error {
	var req CreateTriggerRequest

	if err := c.Bind(&req); err != nil {
		logger.Error("Failed to bind trigger request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Error: "Invalid marketing trigger data"})
	}

	if err := h.validator.Struct(&req); err != nil {
		logger.Error("Failed to validate trigger request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Error: validationMessage(err)})
	}

	t := &domain.MarketingTrigger{
		Name:            req.Name,
		TriggerType:     req.TriggerType,
		Conditions:      req.Conditions,
		MessageTemplate: req.MessageTemplate,
		Channel:         req.Channel,
		IsActive:        req.IsActive == nil || *req.IsActive == "true",
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	created, err := h.triggerService.CreateTrigger(ctx, t)
	if err != nil {
		logger.Error("Failed to create marketing trigger", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Error: "Failed to create marketing trigger"})
	}

	return c.JSON(http.StatusCreated, toTriggerResponse(*created))
}

func (h *TriggerHandler) UpdateTrigger(c echo.Context) error {
	id := c.Param("id")

	var req UpdateTriggerRequest
	if err := c.Bind(&req); err != nil {
		logger.Error("Failed to bind trigger request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Error: "Invalid marketing trigger data"})
	}

	if err := h.validator.Struct(&req); err != nil {
		logger.Error("Failed to validate trigger request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Error: validationMessage(err)})
	}

	patch := domain.TriggerPatch{
		Name:            req.Name,
		TriggerType:     req.TriggerType,
		Conditions:      req.Conditions,
		MessageTemplate: req.MessageTemplate,
		Channel:         req.Channel,
	}
	if req.IsActive != nil {
		active := *req.IsActive == "true"
		patch.IsActive = &active
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	updated, err := h.triggerService.UpdateTrigger(ctx, id, patch)
	if err != nil {
		if errors.Is(err, domain.ErrTriggerNotFound) {
			return c.JSON(http.StatusNotFound, ResponseError{Error: "Marketing trigger not found"})
		}
		logger.Error("Failed to update marketing trigger", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Error: "Failed to update marketing trigger"})
	}

	return c.JSON(http.StatusOK, toTriggerResponse(updated))
}

func (h *TriggerHandler) DeleteTrigger(c echo.Context) error {
	id := c.Param("id")

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	if err := h.triggerService.DeleteTrigger(ctx, id); err != nil {
		if errors.Is(err, domain.ErrTriggerNotFound) {
			return c.JSON(http.StatusNotFound, ResponseError{Error: "Marketing trigger not found"})
		}
		logger.Error("Failed to delete marketing trigger", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Error: "Failed to delete marketing trigger"})
	}

	return c.NoContent(http.StatusNoContent)
}

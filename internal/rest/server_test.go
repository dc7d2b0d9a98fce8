package rest_test

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"backoffice/app/echo-server/router"
	"backoffice/business/analytics"
	"backoffice/business/guest"
	"backoffice/business/trigger"
	"backoffice/business/user"
	memoryRepo "backoffice/internal/repository/memory"
	"backoffice/internal/rest"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

// newTestServer wires the full HTTP surface against the in-memory store
// pre-loaded with the demo dataset.
func newTestServer(t *testing.T) *echo.Echo {
	t.Helper()

	guestRepo := memoryRepo.NewGuestRepository()
	guestRepo.Seed(memoryRepo.SampleGuests())

	triggerRepo := memoryRepo.NewTriggerRepository()
	triggerRepo.Seed(memoryRepo.SampleTriggers())

	orderRepo := memoryRepo.NewOrderRepository()
	orderRepo.Seed(memoryRepo.SampleOrders())

	statsRepo := memoryRepo.NewStatisticsRepository()
	statsRepo.Seed(memoryRepo.SampleStatistics())

	e := echo.New()
	api := e.Group("/api")

	router.SetupGuestRoutes(api, rest.NewGuestHandler(guest.NewGuestService(guestRepo)))
	router.SetupTriggerRoutes(api, rest.NewTriggerHandler(trigger.NewTriggerService(triggerRepo)))
	router.SetupUserRoutes(api, rest.NewUserHandler(user.NewUserService(memoryRepo.NewUserRepository())))
	router.SetupDashboardRoutes(api, rest.NewAnalyticsHandler(
		analytics.NewAnalyticsService(guestRepo, orderRepo, statsRepo),
	))

	return e
}

func doRequest(t *testing.T, e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), v))
}

func errorMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	var body struct {
		Error string `json:"error"`
	}
	decodeBody(t, rec, &body)
	return body.Error
}

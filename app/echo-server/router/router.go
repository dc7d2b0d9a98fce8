package router

import (
	"backoffice/internal/rest"

	"github.com/labstack/echo/v4"
)

func SetupGuestRoutes(api *echo.Group, handler *rest.GuestHandler) {
	guests := api.Group("/guests")

	guests.GET("", handler.GetAllGuests)
	guests.GET("/:id", handler.GetGuestByID)
	guests.POST("", handler.CreateGuest)
	guests.PATCH("/:id", handler.UpdateGuest)
}

func SetupTriggerRoutes(api *echo.Group, handler *rest.TriggerHandler) {
	triggers := api.Group("/marketing-triggers")

	triggers.GET("", handler.GetAllTriggers)
	triggers.GET("/:id", handler.GetTriggerByID)
	triggers.POST("", handler.CreateTrigger)
	triggers.PATCH("/:id", handler.UpdateTrigger)
	triggers.DELETE("/:id", handler.DeleteTrigger)
}

func SetupUserRoutes(api *echo.Group, handler *rest.UserHandler) {
	users := api.Group("/users")

	users.POST("/register", handler.Register)
}

func SetupDashboardRoutes(api *echo.Group, handler *rest.AnalyticsHandler) {
	api.GET("/analytics/customers", handler.GetCustomerAnalytics)
	api.GET("/orders", handler.GetActiveOrders)
	api.GET("/statistics", handler.GetStatistics)
}

// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"alertstream/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AlertHandler    *handler.AlertHandler
	ScheduleHandler *handler.ScheduleHandler
	StreamHandler   *handler.StreamHandler
	AuthHandler     *handler.AuthHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	alertHandler    *handler.AlertHandler
	scheduleHandler *handler.ScheduleHandler
	streamHandler   *handler.StreamHandler
	authHandler     *handler.AuthHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		alertHandler:    params.AlertHandler,
		scheduleHandler: params.ScheduleHandler,
		streamHandler:   params.StreamHandler,
		authHandler:     params.AuthHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/", handler.Root)
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/api/auth")
	{
		authGroup.POST("/login", r.authHandler.Login)
	}

	alertsGroup := e.Group("/api/alerts")

	// Push streams. The static close route must be registered next to the user route.
	{
		alertsGroup.GET("/events/close", r.streamHandler.CloseEvents)
		alertsGroup.GET("/events/:userId", r.streamHandler.Events)
		alertsGroup.GET("/stream/stats", r.streamHandler.Stats)
	}

	// Recurring automatic alerts
	{
		alertsGroup.GET("/set-interval", r.scheduleHandler.GetInterval)
		alertsGroup.POST("/set-interval", r.scheduleHandler.SetInterval)
		alertsGroup.DELETE("/set-interval", r.scheduleHandler.CancelInterval)
	}

	// Alert management
	{
		alertsGroup.POST("", r.alertHandler.CreateAlert)
		alertsGroup.GET("", r.alertHandler.ListAlerts)
		alertsGroup.PUT("/markAllAsRead", r.alertHandler.MarkAllAsRead)
		alertsGroup.GET("/:userId", r.alertHandler.GetUserAlerts)
		alertsGroup.PATCH("/:id/read", r.alertHandler.MarkAlertRead)
		alertsGroup.PUT("/:userId/read-all", r.alertHandler.MarkUserAlertsRead)
	}
}

package handler

import (
	"log/slog"
	"net/http"

	"alertstream/internal/delivery/api/response"
	"alertstream/internal/domain/entity"
	"alertstream/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AlertHandlerParams holds dependencies for AlertHandler, injected by Fx.
type AlertHandlerParams struct {
	fx.In

	AlertUC usecase.AlertUsecase
	Logger  *slog.Logger
}

// AlertHandler holds dependencies for alert-related handlers
type AlertHandler struct {
	alertUC usecase.AlertUsecase
	logger  *slog.Logger
}

// NewAlertHandler is the constructor for AlertHandler
func NewAlertHandler(params AlertHandlerParams) *AlertHandler {
	return &AlertHandler{
		alertUC: params.AlertUC,
		logger:  params.Logger,
	}
}

// CreateAlertRequest represents the request body for creating an alert.
// A missing userId addresses the alert to everyone.
type CreateAlertRequest struct {
	UserID  string `json:"userId"`
	Message string `json:"message" validate:"required"`
	Type    string `json:"type" validate:"omitempty,oneof=manual automatic"`
}

// ListAlertsRequest holds the query of GET /api/alerts
type ListAlertsRequest struct {
	UserID string `query:"userId"`
	Page   int    `query:"page"`
	Limit  int    `query:"limit"`
}

// UserAlertsRequest holds the path and query of GET /api/alerts/:userId
type UserAlertsRequest struct {
	UserID string `param:"userId"`
	Page   int    `query:"page"`
	Limit  int    `query:"limit"`
	Filter string `query:"filter" validate:"omitempty,oneof=all read unread"`
}

// MarkAllReadRequest represents the request body of PUT /api/alerts/markAllAsRead
type MarkAllReadRequest struct {
	UserID string `json:"userId" validate:"required"`
}

// AlertListResponse is one page of alerts
type AlertListResponse struct {
	Alerts      []*entity.Alert `json:"alerts"`
	CurrentPage int             `json:"currentPage"`
	TotalPages  int             `json:"totalPages"`
	TotalAlerts int64           `json:"totalAlerts"`
}

// UserAlertsResponse is one page of a user's alerts with their read statistics
type UserAlertsResponse struct {
	Alerts      []*entity.Alert    `json:"alerts"`
	CurrentPage int                `json:"currentPage"`
	TotalPages  int                `json:"totalPages"`
	Stats       *entity.AlertStats `json:"stats"`
}

// MarkAllReadResponse reports how many alerts changed state
type MarkAllReadResponse struct {
	Message string `json:"message"`
	Updated int64  `json:"updated"`
}

// CreateAlert handles POST /api/alerts
func (h *AlertHandler) CreateAlert(c echo.Context) error {
	var req CreateAlertRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid alert input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	alert, err := h.alertUC.CreateAlert(c.Request().Context(), usecase.CreateAlertInput{
		Message: req.Message,
		Kind:    entity.AlertKind(req.Type),
		UserID:  req.UserID,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, alert)
}

// ListAlerts handles GET /api/alerts
func (h *AlertHandler) ListAlerts(c echo.Context) error {
	var req ListAlertsRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid pagination parameters")
	}

	page, err := h.alertUC.ListAlerts(c.Request().Context(), usecase.ListAlertsInput{
		UserID: req.UserID,
		Filter: entity.ReadFilterAll,
		Page:   req.Page,
		Limit:  req.Limit,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, AlertListResponse{
		Alerts:      page.Alerts,
		CurrentPage: page.CurrentPage,
		TotalPages:  page.TotalPages,
		TotalAlerts: page.Total,
	})
}

// GetUserAlerts handles GET /api/alerts/:userId
func (h *AlertHandler) GetUserAlerts(c echo.Context) error {
	var req UserAlertsRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid pagination parameters")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	output, err := h.alertUC.GetUserAlerts(c.Request().Context(), usecase.ListAlertsInput{
		UserID: req.UserID,
		Filter: entity.ParseReadFilter(req.Filter),
		Page:   req.Page,
		Limit:  req.Limit,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, UserAlertsResponse{
		Alerts:      output.Page.Alerts,
		CurrentPage: output.Page.CurrentPage,
		TotalPages:  output.Page.TotalPages,
		Stats:       output.Stats,
	})
}

// MarkAlertRead handles PATCH /api/alerts/:id/read
func (h *AlertHandler) MarkAlertRead(c echo.Context) error {
	alertID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid alert ID")
	}

	alert, err := h.alertUC.MarkAlertRead(c.Request().Context(), alertID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, alert)
}

// MarkAllAsRead handles PUT /api/alerts/markAllAsRead
func (h *AlertHandler) MarkAllAsRead(c echo.Context) error {
	var req MarkAllReadRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	return h.markAllRead(c, req.UserID)
}

// MarkUserAlertsRead handles PUT /api/alerts/:userId/read-all
func (h *AlertHandler) MarkUserAlertsRead(c echo.Context) error {
	return h.markAllRead(c, c.Param("userId"))
}

func (h *AlertHandler) markAllRead(c echo.Context, userID string) error {
	updated, err := h.alertUC.MarkAllRead(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, MarkAllReadResponse{
		Message: "All alerts marked as read",
		Updated: updated,
	})
}

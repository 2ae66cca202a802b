package handler

import (
	"fmt"
	"net/http"

	"alertstream/internal/delivery/api/response"
	"alertstream/internal/usecase"

	"github.com/labstack/echo/v4"
)

// ScheduleHandler controls the recurring automatic alerts
type ScheduleHandler struct {
	scheduleUC usecase.ScheduleUsecase
}

// NewScheduleHandler is the constructor for ScheduleHandler
func NewScheduleHandler(scheduleUC usecase.ScheduleUsecase) *ScheduleHandler {
	return &ScheduleHandler{
		scheduleUC: scheduleUC,
	}
}

// SetIntervalRequest carries the interval in whole minutes
type SetIntervalRequest struct {
	Interval int `json:"interval"`
}

// ScheduleResponse describes the recurring timer after a change
type ScheduleResponse struct {
	Message         string `json:"message,omitempty"`
	Armed           bool   `json:"armed"`
	IntervalMinutes int    `json:"intervalMinutes"`
}

// SetInterval handles POST /api/alerts/set-interval
func (h *ScheduleHandler) SetInterval(c echo.Context) error {
	var req SetIntervalRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid interval")
	}

	status, err := h.scheduleUC.SetIntervalMinutes(c.Request().Context(), req.Interval)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newScheduleResponse(
		status,
		fmt.Sprintf("Auto-notification interval set to %d minutes", req.Interval),
	))
}

// CancelInterval handles DELETE /api/alerts/set-interval
func (h *ScheduleHandler) CancelInterval(c echo.Context) error {
	status := h.scheduleUC.CancelInterval(c.Request().Context())

	return response.Success(c, http.StatusOK, newScheduleResponse(status, "Auto-notification interval cancelled"))
}

// GetInterval handles GET /api/alerts/set-interval
func (h *ScheduleHandler) GetInterval(c echo.Context) error {
	status := h.scheduleUC.Status(c.Request().Context())

	return response.Success(c, http.StatusOK, newScheduleResponse(status, ""))
}

func newScheduleResponse(status *usecase.ScheduleStatus, message string) ScheduleResponse {
	return ScheduleResponse{
		Message:         message,
		Armed:           status.Armed,
		IntervalMinutes: int(status.Interval.Minutes()),
	}
}

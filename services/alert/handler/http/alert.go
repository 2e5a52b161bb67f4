package http

import (
	"net/http"
	"strings"

	"github.com/code01-66/Digi-Sanchaar/internal/pkg/logger"
	"github.com/code01-66/Digi-Sanchaar/internal/pkg/middleware"
	"github.com/code01-66/Digi-Sanchaar/internal/pkg/models"
	"github.com/code01-66/Digi-Sanchaar/internal/utils"
	"github.com/code01-66/Digi-Sanchaar/services/alert"
	"github.com/labstack/echo/v4"
)

// AlertHandler handles HTTP requests for SOS alerts
type AlertHandler struct {
	alertUC alert.AlertUC
}

// NewAlertHandler creates a new alert handler
func NewAlertHandler(alertUC alert.AlertUC) *AlertHandler {
	return &AlertHandler{
		alertUC: alertUC,
	}
}

type sosRequest struct {
	Latitude  float64  `json:"latitude"`
	Longitude float64  `json:"longitude"`
	Situation string   `json:"situation"`
	Keywords  []string `json:"keywords"`
}

// TriggerSOS handles an SOS alert from the authenticated user. The
// response reports the full fan-out outcome, including per-attempt
// failures, so the client can show what actually went out.
func (h *AlertHandler) TriggerSOS(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req sosRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	if req.Latitude < -90 || req.Latitude > 90 {
		return utils.BadRequestResponse(c, "Latitude must be between -90 and 90")
	}
	if req.Longitude < -180 || req.Longitude > 180 {
		return utils.BadRequestResponse(c, "Longitude must be between -180 and 180")
	}
	if strings.TrimSpace(req.Situation) == "" {
		return utils.BadRequestResponse(c, "Situation description is required")
	}

	alertReq := &models.AlertRequest{
		UserID:    userID,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		Situation: req.Situation,
		Keywords:  req.Keywords,
	}

	outcome, err := h.alertUC.HandleAlert(c.Request().Context(), alertReq)
	if err != nil {
		logger.Error("Failed to handle SOS alert",
			logger.String("user_id", userID.String()),
			logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to dispatch alert")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Alert dispatched", outcome)
}

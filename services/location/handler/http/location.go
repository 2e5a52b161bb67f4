package http

import (
	"net/http"
	"time"

	"github.com/code01-66/Digi-Sanchaar/internal/pkg/logger"
	"github.com/code01-66/Digi-Sanchaar/internal/pkg/middleware"
	"github.com/code01-66/Digi-Sanchaar/internal/pkg/models"
	"github.com/code01-66/Digi-Sanchaar/internal/utils"
	"github.com/code01-66/Digi-Sanchaar/services/location"
	"github.com/labstack/echo/v4"
)

// LocationHandler handles HTTP requests for location updates
type LocationHandler struct {
	locationUC location.LocationUC
}

// NewLocationHandler creates a new location handler
func NewLocationHandler(locationUC location.LocationUC) *LocationHandler {
	return &LocationHandler{
		locationUC: locationUC,
	}
}

type updateLocationRequest struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// UpdateLocation handles a device location fix for the authenticated user
func (h *LocationHandler) UpdateLocation(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req updateLocationRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	update := &models.LocationUpdate{
		UserID:    userID.String(),
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		Timestamp: time.Now(),
	}

	if err := h.locationUC.UpdateLocation(c.Request().Context(), update); err != nil {
		logger.Warn("Failed to update location",
			logger.String("user_id", update.UserID),
			logger.Err(err))
		return utils.BadRequestResponse(c, err.Error())
	}

	return utils.SuccessResponse(c, http.StatusOK, "Location updated", nil)
}

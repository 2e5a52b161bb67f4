package http

import (
	"net/http"

	"github.com/code01-66/Digi-Sanchaar/internal/pkg/logger"
	"github.com/code01-66/Digi-Sanchaar/internal/pkg/middleware"
	"github.com/code01-66/Digi-Sanchaar/internal/pkg/models"
	"github.com/code01-66/Digi-Sanchaar/internal/utils"
	"github.com/code01-66/Digi-Sanchaar/services/user"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// UserHandler handles HTTP requests for user operations
type UserHandler struct {
	userUC user.UserUC
}

// NewUserHandler creates a new user handler
func NewUserHandler(userUC user.UserUC) *UserHandler {
	return &UserHandler{
		userUC: userUC,
	}
}

// Register handles user registration requests
func (h *UserHandler) Register(c echo.Context) error {
	var req models.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	created, err := h.userUC.Register(c.Request().Context(), &req)
	if err != nil {
		logger.Warn("Failed to register user", logger.Err(err))
		return utils.BadRequestResponse(c, err.Error())
	}

	return utils.SuccessResponse(c, http.StatusCreated, "User registered successfully", created)
}

type pushSubscriptionRequest struct {
	Subscription string `json:"subscription"`
}

// SavePushSubscription stores the caller's Web Push subscription
func (h *UserHandler) SavePushSubscription(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req pushSubscriptionRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	if err := h.userUC.SavePushSubscription(c.Request().Context(), userID, req.Subscription); err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	return utils.SuccessResponse(c, http.StatusOK, "Push subscription saved", nil)
}

// AddContact appends an emergency contact for the caller
func (h *UserHandler) AddContact(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var contact models.EmergencyContact
	if err := c.Bind(&contact); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	created, err := h.userUC.AddContact(c.Request().Context(), userID, &contact)
	if err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Emergency contact added", created)
}

// ListContacts returns the caller's emergency contacts
func (h *UserHandler) ListContacts(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	contacts, err := h.userUC.ListContacts(c.Request().Context(), userID)
	if err != nil {
		logger.Error("Failed to list emergency contacts",
			logger.String("user_id", userID.String()),
			logger.Err(err))
		return utils.InternalServerErrorResponse(c, "")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Emergency contacts retrieved", contacts)
}

// RemoveContact deletes one of the caller's emergency contacts
func (h *UserHandler) RemoveContact(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	contactID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid contact ID")
	}

	if err := h.userUC.RemoveContact(c.Request().Context(), userID, contactID); err != nil {
		return utils.NotFoundResponse(c, err.Error())
	}

	return utils.SuccessResponse(c, http.StatusOK, "Emergency contact removed", nil)
}

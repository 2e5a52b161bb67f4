package http

import (
	"net/http"

	"github.com/code01-66/Digi-Sanchaar/internal/pkg/models"
	"github.com/code01-66/Digi-Sanchaar/internal/utils"
	"github.com/code01-66/Digi-Sanchaar/services/user"
	"github.com/labstack/echo/v4"
)

// AuthHandler handles authentication requests
type AuthHandler struct {
	userUC user.UserUC
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(userUC user.UserUC) *AuthHandler {
	return &AuthHandler{
		userUC: userUC,
	}
}

// Login authenticates a user and returns a JWT
func (h *AuthHandler) Login(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	auth, err := h.userUC.Login(c.Request().Context(), &req)
	if err != nil {
		return utils.UnauthorizedResponse(c, err.Error())
	}

	return utils.SuccessResponse(c, http.StatusOK, "Login successful", auth)
}

package usecase

import (
	"context"
	"fmt"

	jwtpkg "github.com/code01-66/Digi-Sanchaar/internal/pkg/jwt"
	"github.com/code01-66/Digi-Sanchaar/internal/pkg/logger"
	"github.com/code01-66/Digi-Sanchaar/internal/pkg/models"
	"github.com/code01-66/Digi-Sanchaar/internal/utils"
	"golang.org/x/crypto/bcrypt"
)

// Register creates a new user account with a hashed password
func (uc *UserUC) Register(ctx context.Context, req *models.RegisterRequest) (*models.User, error) {
	if req.FullName == "" {
		return nil, fmt.Errorf("full name is required")
	}
	if !utils.IsValidEmail(req.Email) {
		return nil, fmt.Errorf("invalid email address")
	}
	if len(req.Password) < 8 {
		return nil, fmt.Errorf("password must be at least 8 characters")
	}

	phone, err := utils.NormalizePhone(req.Phone)
	if err != nil {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	newUser := &models.User{
		FullName: req.FullName,
		Email:    req.Email,
		Phone:    phone,
		Password: string(hashed),
	}

	if err := uc.userRepo.CreateUser(ctx, newUser); err != nil {
		return nil, err
	}

	logger.Info("Registered user", logger.String("user_id", newUser.ID.String()))

	// Never echo the hash back to the caller
	newUser.Password = ""
	return newUser, nil
}

// Login verifies credentials and issues a JWT
func (uc *UserUC) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
	account, err := uc.userRepo.GetUserByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.Password), []byte(req.Password)); err != nil {
		return nil, fmt.Errorf("invalid credentials")
	}

	token, expiresAt, err := jwtpkg.GenerateToken(account.ID, account.Email, uc.cfg.JWT)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &models.AuthResponse{
		UserID:    account.ID.String(),
		Token:     token,
		ExpiresAt: expiresAt,
	}, nil
}

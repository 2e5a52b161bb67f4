package user

import (
	"context"

	"github.com/code01-66/Digi-Sanchaar/internal/pkg/models"
	"github.com/google/uuid"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/code01-66/Digi-Sanchaar/services/user UserUC

// UserUC defines the user service use cases
type UserUC interface {
	Register(ctx context.Context, req *models.RegisterRequest) (*models.User, error)
	Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error)

	SavePushSubscription(ctx context.Context, userID uuid.UUID, subscription string) error

	AddContact(ctx context.Context, userID uuid.UUID, contact *models.EmergencyContact) (*models.EmergencyContact, error)
	RemoveContact(ctx context.Context, userID, contactID uuid.UUID) error
	ListContacts(ctx context.Context, userID uuid.UUID) ([]models.EmergencyContact, error)
}

package user

import (
	"context"

	"github.com/code01-66/Digi-Sanchaar/internal/pkg/models"
	"github.com/google/uuid"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/code01-66/Digi-Sanchaar/services/user UserRepo

// UserRepo defines the user registry operations
type UserRepo interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)

	UpdatePushSubscription(ctx context.Context, userID uuid.UUID, subscription string) error
	// GetPushSubscriptions returns the stored push endpoint for each of
	// the given user IDs that has one registered.
	GetPushSubscriptions(ctx context.Context, userIDs []string) (map[string]string, error)

	AddEmergencyContact(ctx context.Context, contact *models.EmergencyContact) error
	DeleteEmergencyContact(ctx context.Context, userID, contactID uuid.UUID) error
	GetEmergencyContacts(ctx context.Context, userID uuid.UUID) ([]models.EmergencyContact, error)
}

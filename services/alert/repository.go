package alert

import (
	"context"

	"github.com/code01-66/Digi-Sanchaar/internal/pkg/geo"
	"github.com/code01-66/Digi-Sanchaar/internal/pkg/models"
	"github.com/google/uuid"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/code01-66/Digi-Sanchaar/services/alert LocationQuerier,UserReader

// LocationQuerier is the slice of the location store the resolver needs
type LocationQuerier interface {
	QueryRange(ctx context.Context, keyRange geo.Range) ([]*models.RecipientLocation, error)
}

// UserReader is the slice of the user registry the alert flow needs
type UserReader interface {
	GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetEmergencyContacts(ctx context.Context, userID uuid.UUID) ([]models.EmergencyContact, error)
	GetPushSubscriptions(ctx context.Context, userIDs []string) (map[string]string, error)
}

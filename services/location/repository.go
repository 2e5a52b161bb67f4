package location

import (
	"context"

	"github.com/code01-66/Digi-Sanchaar/internal/pkg/geo"
	"github.com/code01-66/Digi-Sanchaar/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/code01-66/Digi-Sanchaar/services/location LocationRepo,LocationUC

// LocationRepo defines the location store operations
type LocationRepo interface {
	// UpsertLocation stores a user's latest location fix and keeps the
	// geohash index member in sync with it.
	UpsertLocation(ctx context.Context, update *models.LocationUpdate) error

	// GetLocation returns a user's last known location, or nil when the
	// user has no stored fix.
	GetLocation(ctx context.Context, userID string) (*models.RecipientLocation, error)

	// QueryRange returns every stored location whose geohash falls in
	// the half-open key range.
	QueryRange(ctx context.Context, keyRange geo.Range) ([]*models.RecipientLocation, error)
}

// LocationUC defines the location service use cases
type LocationUC interface {
	UpdateLocation(ctx context.Context, update *models.LocationUpdate) error
}

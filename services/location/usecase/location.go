package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/code01-66/Digi-Sanchaar/internal/pkg/logger"
	"github.com/code01-66/Digi-Sanchaar/internal/pkg/models"
	"github.com/code01-66/Digi-Sanchaar/services/location"
)

// LocationUC implements the location use cases
type LocationUC struct {
	locationRepo location.LocationRepo
}

// NewLocationUC creates a new location usecase
func NewLocationUC(locationRepo location.LocationRepo) *LocationUC {
	return &LocationUC{
		locationRepo: locationRepo,
	}
}

// UpdateLocation validates and stores a device location fix
func (uc *LocationUC) UpdateLocation(ctx context.Context, update *models.LocationUpdate) error {
	if update.UserID == "" {
		return fmt.Errorf("location update is missing a user id")
	}
	if update.Latitude < -90 || update.Latitude > 90 {
		return fmt.Errorf("latitude %f out of range", update.Latitude)
	}
	if update.Longitude < -180 || update.Longitude > 180 {
		return fmt.Errorf("longitude %f out of range", update.Longitude)
	}
	if update.Timestamp.IsZero() {
		update.Timestamp = time.Now()
	}

	if err := uc.locationRepo.UpsertLocation(ctx, update); err != nil {
		return fmt.Errorf("failed to store location fix: %w", err)
	}

	logger.Debug("Stored location fix",
		logger.String("user_id", update.UserID),
		logger.Float64("latitude", update.Latitude),
		logger.Float64("longitude", update.Longitude))

	return nil
}

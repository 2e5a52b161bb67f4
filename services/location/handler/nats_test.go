package handler

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/code01-66/Digi-Sanchaar/internal/pkg/models"
	"github.com/code01-66/Digi-Sanchaar/services/location/mocks"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleLocationUpdate_Success(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockLocationUC(ctrl)
	h := &NatsHandler{locationUC: mockUC}

	update := models.LocationUpdate{
		UserID:    "user-123",
		Latitude:  19.0760,
		Longitude: 72.8777,
		Timestamp: time.Now().UTC(),
	}
	message, err := json.Marshal(update)
	require.NoError(t, err)

	mockUC.EXPECT().
		UpdateLocation(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, got *models.LocationUpdate) error {
			assert.Equal(t, update.UserID, got.UserID)
			assert.Equal(t, update.Latitude, got.Latitude)
			assert.Equal(t, update.Longitude, got.Longitude)
			return nil
		})

	// Act
	err = h.handleLocationUpdate(message)

	// Assert
	assert.NoError(t, err)
}

func TestHandleLocationUpdate_InvalidJSON(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockLocationUC(ctrl)
	h := &NatsHandler{locationUC: mockUC}

	err := h.handleLocationUpdate([]byte("{not json"))

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unmarshal")
}

func TestHandleLocationUpdate_UsecaseError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockLocationUC(ctrl)
	h := &NatsHandler{locationUC: mockUC}

	mockUC.EXPECT().
		UpdateLocation(gomock.Any(), gomock.Any()).
		Return(errors.New("latitude out of range"))

	message, err := json.Marshal(models.LocationUpdate{UserID: "user-123", Latitude: 91})
	require.NoError(t, err)

	err = h.handleLocationUpdate(message)

	assert.Error(t, err)
}

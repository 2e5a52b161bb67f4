package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/code01-66/Digi-Sanchaar/internal/pkg/geo"
	"github.com/code01-66/Digi-Sanchaar/internal/pkg/models"
	"github.com/code01-66/Digi-Sanchaar/services/alert/mocks"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

// Mumbai city center, used as the alert origin in these tests
var testCenter = geo.Point{Latitude: 19.0760, Longitude: 72.8777}

// offsetNorth returns a point the given number of meters north of testCenter
func offsetNorth(meters float64) (float64, float64) {
	return testCenter.Latitude + meters/111320.0, testCenter.Longitude
}

func TestFindNearby_FiltersByDistance(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	nearLat, nearLng := offsetNorth(2000)
	farLat, farLng := offsetNorth(6000)

	records := []*models.RecipientLocation{
		{UserID: "near-user", Latitude: nearLat, Longitude: nearLng},
		{UserID: "far-user", Latitude: farLat, Longitude: farLng},
	}

	// The same records come back for every planned range; dedupe keeps one copy
	mockLocation := mocks.NewMockLocationQuerier(ctrl)
	mockLocation.EXPECT().
		QueryRange(gomock.Any(), gomock.Any()).
		Return(records, nil).
		AnyTimes()

	uc := NewAlertUC(mockLocation, nil, nil, nil, nil, nil, testConfig())

	// Act
	nearby := uc.findNearby(context.Background(), testCenter, 5000, "caller")

	// Assert - the candidate inside the range cell but outside the radius is dropped
	assert.Len(t, nearby, 1)
	assert.Equal(t, "near-user", nearby[0].UserID)
	assert.InDelta(t, 2000, nearby[0].DistanceMeters, 50)
}

func TestFindNearby_RadiusBoundaryIsInclusive(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	lat, lng := offsetNorth(5000)
	records := []*models.RecipientLocation{
		{UserID: "edge-user", Latitude: lat, Longitude: lng},
	}

	// The record's exact great-circle distance anchors the boundary
	distance := geo.Distance(testCenter, geo.Point{Latitude: lat, Longitude: lng})

	mockLocation := mocks.NewMockLocationQuerier(ctrl)
	mockLocation.EXPECT().
		QueryRange(gomock.Any(), gomock.Any()).
		Return(records, nil).
		AnyTimes()

	uc := NewAlertUC(mockLocation, nil, nil, nil, nil, nil, testConfig())

	// Act / Assert - one meter inside the radius the user is included
	nearby := uc.findNearby(context.Background(), testCenter, distance+1, "caller")
	assert.Len(t, nearby, 1)

	// One meter outside the radius the user is excluded
	nearby = uc.findNearby(context.Background(), testCenter, distance-1, "caller")
	assert.Empty(t, nearby)
}

func TestFindNearby_ExcludesTriggeringUser(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	lat, lng := offsetNorth(100)
	records := []*models.RecipientLocation{
		{UserID: "caller", Latitude: testCenter.Latitude, Longitude: testCenter.Longitude},
		{UserID: "other", Latitude: lat, Longitude: lng},
	}

	mockLocation := mocks.NewMockLocationQuerier(ctrl)
	mockLocation.EXPECT().
		QueryRange(gomock.Any(), gomock.Any()).
		Return(records, nil).
		AnyTimes()

	uc := NewAlertUC(mockLocation, nil, nil, nil, nil, nil, testConfig())

	// Act
	nearby := uc.findNearby(context.Background(), testCenter, 5000, "caller")

	// Assert
	assert.Len(t, nearby, 1)
	assert.Equal(t, "other", nearby[0].UserID)
}

func TestFindNearby_SortedByDistance(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	lat3k, lng3k := offsetNorth(3000)
	lat1k, lng1k := offsetNorth(1000)
	lat4k, lng4k := offsetNorth(4000)

	records := []*models.RecipientLocation{
		{UserID: "u-3000", Latitude: lat3k, Longitude: lng3k},
		{UserID: "u-1000", Latitude: lat1k, Longitude: lng1k},
		{UserID: "u-4000", Latitude: lat4k, Longitude: lng4k},
	}

	mockLocation := mocks.NewMockLocationQuerier(ctrl)
	mockLocation.EXPECT().
		QueryRange(gomock.Any(), gomock.Any()).
		Return(records, nil).
		AnyTimes()

	uc := NewAlertUC(mockLocation, nil, nil, nil, nil, nil, testConfig())

	// Act
	nearby := uc.findNearby(context.Background(), testCenter, 5000, "caller")

	// Assert
	assert.Len(t, nearby, 3)
	assert.Equal(t, "u-1000", nearby[0].UserID)
	assert.Equal(t, "u-3000", nearby[1].UserID)
	assert.Equal(t, "u-4000", nearby[2].UserID)
}

func TestFindNearby_RangeFailureDegradesToEmpty(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLocation := mocks.NewMockLocationQuerier(ctrl)
	mockLocation.EXPECT().
		QueryRange(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("redis: connection refused")).
		AnyTimes()

	uc := NewAlertUC(mockLocation, nil, nil, nil, nil, nil, testConfig())

	// Act
	nearby := uc.findNearby(context.Background(), testCenter, 5000, "caller")

	// Assert - a failing store yields zero candidates, not an error
	assert.Empty(t, nearby)
}

func TestFindNearby_DeduplicatesAcrossRanges(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	lat, lng := offsetNorth(500)
	record := &models.RecipientLocation{UserID: "dup-user", Latitude: lat, Longitude: lng}

	mockLocation := mocks.NewMockLocationQuerier(ctrl)
	mockLocation.EXPECT().
		QueryRange(gomock.Any(), gomock.Any()).
		Return([]*models.RecipientLocation{record}, nil).
		AnyTimes()

	uc := NewAlertUC(mockLocation, nil, nil, nil, nil, nil, testConfig())

	// Act
	nearby := uc.findNearby(context.Background(), testCenter, 5000, "caller")

	// Assert
	assert.Len(t, nearby, 1)
}

package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/code01-66/Digi-Sanchaar/internal/pkg/constants"
	"github.com/code01-66/Digi-Sanchaar/internal/pkg/database"
	"github.com/code01-66/Digi-Sanchaar/internal/pkg/geo"
	"github.com/code01-66/Digi-Sanchaar/internal/pkg/models"
	"github.com/go-redis/redis/v8"
	"github.com/mmcloughlin/geohash"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupMiniredis creates a new miniredis server and returns a Redis client connected to it
func setupMiniredis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	mr, err := miniredis.Run()
	require.NoError(t, err)

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})

	return mr, client
}

func newTestRepo(client *redis.Client) *locationRepo {
	return NewLocationRepository(&database.RedisClient{
		Client: client,
	}, 9).(*locationRepo)
}

func TestUpsertLocation(t *testing.T) {
	// Setup miniredis
	mr, client := setupMiniredis(t)
	defer mr.Close()

	repo := newTestRepo(client)

	ctx := context.Background()
	update := &models.LocationUpdate{
		UserID:    "user-123",
		Latitude:  19.0760,
		Longitude: 72.8777,
		Timestamp: time.Now(),
	}

	// Act
	err := repo.UpsertLocation(ctx, update)

	// Assert
	assert.NoError(t, err)

	// The per-user hash holds the coordinates
	locationKey := fmt.Sprintf(constants.KeyUserLocation, update.UserID)
	assert.True(t, mr.Exists(locationKey))

	expectedHash := geohash.EncodeWithPrecision(update.Latitude, update.Longitude, 9)
	storedHash := mr.HGet(locationKey, constants.FieldGeohash)
	assert.Equal(t, expectedHash, storedHash)

	// The geo index holds the geohash-prefixed member
	members, err := client.ZRangeByLex(ctx, constants.KeyGeoIndex, &redis.ZRangeBy{Min: "-", Max: "+"}).Result()
	require.NoError(t, err)
	assert.Equal(t, []string{expectedHash + ":user-123"}, members)

	// The hash must age out without a refresh
	ttl := mr.TTL(locationKey)
	assert.Greater(t, ttl, time.Duration(0))
	assert.LessOrEqual(t, ttl, LocationTTL)
}

func TestUpsertLocation_MoveSwapsIndexMember(t *testing.T) {
	mr, client := setupMiniredis(t)
	defer mr.Close()

	repo := newTestRepo(client)
	ctx := context.Background()

	// First fix in Mumbai
	err := repo.UpsertLocation(ctx, &models.LocationUpdate{
		UserID:    "user-123",
		Latitude:  19.0760,
		Longitude: 72.8777,
		Timestamp: time.Now(),
	})
	require.NoError(t, err)

	// Second fix in Pune, a different geohash cell
	err = repo.UpsertLocation(ctx, &models.LocationUpdate{
		UserID:    "user-123",
		Latitude:  18.5204,
		Longitude: 73.8567,
		Timestamp: time.Now(),
	})
	require.NoError(t, err)

	// Only the new member remains in the index
	members, err := client.ZRangeByLex(ctx, constants.KeyGeoIndex, &redis.ZRangeBy{Min: "-", Max: "+"}).Result()
	require.NoError(t, err)
	newHash := geohash.EncodeWithPrecision(18.5204, 73.8567, 9)
	assert.Equal(t, []string{newHash + ":user-123"}, members)
}

func TestGetLocation(t *testing.T) {
	mr, client := setupMiniredis(t)
	defer mr.Close()

	repo := newTestRepo(client)
	ctx := context.Background()

	err := repo.UpsertLocation(ctx, &models.LocationUpdate{
		UserID:    "user-123",
		Latitude:  19.0760,
		Longitude: 72.8777,
		Timestamp: time.Now(),
	})
	require.NoError(t, err)

	// Act
	record, err := repo.GetLocation(ctx, "user-123")

	// Assert
	require.NoError(t, err)
	require.NotNil(t, record)
	assert.Equal(t, "user-123", record.UserID)
	assert.InDelta(t, 19.0760, record.Latitude, 1e-6)
	assert.InDelta(t, 72.8777, record.Longitude, 1e-6)
	assert.NotEmpty(t, record.Geohash)
}

func TestGetLocation_NotFound(t *testing.T) {
	mr, client := setupMiniredis(t)
	defer mr.Close()

	repo := newTestRepo(client)

	record, err := repo.GetLocation(context.Background(), "ghost")

	assert.NoError(t, err)
	assert.Nil(t, record)
}

func TestQueryRange(t *testing.T) {
	mr, client := setupMiniredis(t)
	defer mr.Close()

	repo := newTestRepo(client)
	ctx := context.Background()

	// Two users in Mumbai, one in Pune
	fixes := []*models.LocationUpdate{
		{UserID: "mumbai-1", Latitude: 19.0760, Longitude: 72.8777, Timestamp: time.Now()},
		{UserID: "mumbai-2", Latitude: 19.0770, Longitude: 72.8780, Timestamp: time.Now()},
		{UserID: "pune-1", Latitude: 18.5204, Longitude: 73.8567, Timestamp: time.Now()},
	}
	for _, fix := range fixes {
		require.NoError(t, repo.UpsertLocation(ctx, fix))
	}

	// Range covering the Mumbai prefix only
	mumbaiPrefix := geohash.EncodeWithPrecision(19.0760, 72.8777, 5)
	keyRange := geo.Range{Start: mumbaiPrefix, End: mumbaiPrefix + "~"}

	// Act
	records, err := repo.QueryRange(ctx, keyRange)

	// Assert
	require.NoError(t, err)
	ids := make([]string, 0, len(records))
	for _, record := range records {
		ids = append(ids, record.UserID)
	}
	assert.ElementsMatch(t, []string{"mumbai-1", "mumbai-2"}, ids)
}

func TestQueryRange_CoarseIndexPrecision(t *testing.T) {
	mr, client := setupMiniredis(t)
	defer mr.Close()

	// The store indexes at 5 characters while the search radius is small
	// enough that the planner would prefer finer cells. A user standing
	// at the alert center must still be found through the planned ranges.
	repo := NewLocationRepository(&database.RedisClient{Client: client}, 5)
	ctx := context.Background()

	center := geo.Point{Latitude: 19.0760, Longitude: 72.8777}
	require.NoError(t, repo.UpsertLocation(ctx, &models.LocationUpdate{
		UserID:    "user-123",
		Latitude:  center.Latitude,
		Longitude: center.Longitude,
		Timestamp: time.Now(),
	}))

	var found []*models.RecipientLocation
	for _, keyRange := range geo.PlanRanges(center, 100, 5) {
		records, err := repo.QueryRange(ctx, keyRange)
		require.NoError(t, err)
		found = append(found, records...)
	}

	require.Len(t, found, 1)
	assert.Equal(t, "user-123", found[0].UserID)
}

func TestQueryRange_SkipsExpiredRecords(t *testing.T) {
	mr, client := setupMiniredis(t)
	defer mr.Close()

	repo := newTestRepo(client)
	ctx := context.Background()

	require.NoError(t, repo.UpsertLocation(ctx, &models.LocationUpdate{
		UserID:    "user-123",
		Latitude:  19.0760,
		Longitude: 72.8777,
		Timestamp: time.Now(),
	}))

	// Expire the hash but leave the index member behind
	mr.FastForward(LocationTTL + time.Minute)

	records, err := repo.QueryRange(ctx, geo.Range{Start: "0", End: ""})

	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestQueryRange_UnboundedEnd(t *testing.T) {
	mr, client := setupMiniredis(t)
	defer mr.Close()

	repo := newTestRepo(client)
	ctx := context.Background()

	require.NoError(t, repo.UpsertLocation(ctx, &models.LocationUpdate{
		UserID:    "user-123",
		Latitude:  19.0760,
		Longitude: 72.8777,
		Timestamp: time.Now(),
	}))

	// An empty End means the range extends to the end of the key space
	records, err := repo.QueryRange(ctx, geo.Range{Start: "0", End: ""})

	require.NoError(t, err)
	assert.Len(t, records, 1)
	assert.Equal(t, "user-123", records[0].UserID)
}

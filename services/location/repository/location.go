package repository

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/code01-66/Digi-Sanchaar/internal/pkg/constants"
	"github.com/code01-66/Digi-Sanchaar/internal/pkg/database"
	"github.com/code01-66/Digi-Sanchaar/internal/pkg/geo"
	"github.com/code01-66/Digi-Sanchaar/internal/pkg/logger"
	"github.com/code01-66/Digi-Sanchaar/internal/pkg/models"
	"github.com/code01-66/Digi-Sanchaar/services/location"
	"github.com/mmcloughlin/geohash"
)

// LocationTTL is how long a location fix stays queryable without a
// refresh. Stale fixes must age out or alerts would notify users who
// left the area days ago.
const LocationTTL = 24 * time.Hour

type locationRepo struct {
	redisClient *database.RedisClient
	precision   uint
}

// NewLocationRepository creates a new location repository. precision is
// the geohash character precision of stored index members and bounds
// the prefix length of supported range queries.
func NewLocationRepository(redisClient *database.RedisClient, precision uint) location.LocationRepo {
	return &locationRepo{
		redisClient: redisClient,
		precision:   precision,
	}
}

// geoMember builds the sorted-set member for a user's position. The
// geohash leads so lexicographic member order follows geohash order.
// Every stored hash has the same fixed length and query prefixes never
// exceed it, so a prefix range boundary always falls between members,
// regardless of how the separator sorts against the geohash alphabet.
func geoMember(hash, userID string) string {
	return hash + ":" + userID
}

func splitGeoMember(member string) (hash, userID string, ok bool) {
	idx := strings.IndexByte(member, ':')
	if idx <= 0 || idx == len(member)-1 {
		return "", "", false
	}
	return member[:idx], member[idx+1:], true
}

// UpsertLocation stores a location fix in the user hash and swaps the
// geohash index member when the user moved to a different cell.
func (r *locationRepo) UpsertLocation(ctx context.Context, update *models.LocationUpdate) error {
	newHash := geohash.EncodeWithPrecision(update.Latitude, update.Longitude, r.precision)
	locationKey := fmt.Sprintf(constants.KeyUserLocation, update.UserID)

	existing, err := r.redisClient.HGetAll(ctx, locationKey)
	if err != nil {
		return fmt.Errorf("failed to read existing location: %w", err)
	}

	if oldHash := existing[constants.FieldGeohash]; oldHash != "" && oldHash != newHash {
		if err := r.redisClient.ZRemMember(ctx, constants.KeyGeoIndex, geoMember(oldHash, update.UserID)); err != nil {
			return fmt.Errorf("failed to remove stale geo index member: %w", err)
		}
	}

	locationData := map[string]interface{}{
		constants.FieldLatitude:  strconv.FormatFloat(update.Latitude, 'f', -1, 64),
		constants.FieldLongitude: strconv.FormatFloat(update.Longitude, 'f', -1, 64),
		constants.FieldGeohash:   newHash,
		constants.FieldUpdatedAt: strconv.FormatInt(update.Timestamp.Unix(), 10),
	}
	if err := r.redisClient.HSet(ctx, locationKey, locationData); err != nil {
		return fmt.Errorf("failed to store location update: %w", err)
	}
	if err := r.redisClient.Expire(ctx, locationKey, LocationTTL); err != nil {
		return fmt.Errorf("failed to set location TTL: %w", err)
	}

	if err := r.redisClient.ZAddLex(ctx, constants.KeyGeoIndex, geoMember(newHash, update.UserID)); err != nil {
		return fmt.Errorf("failed to add geo index member: %w", err)
	}

	return nil
}

// GetLocation returns a user's last stored location fix
func (r *locationRepo) GetLocation(ctx context.Context, userID string) (*models.RecipientLocation, error) {
	locationKey := fmt.Sprintf(constants.KeyUserLocation, userID)

	values, err := r.redisClient.HGetAll(ctx, locationKey)
	if err != nil {
		return nil, fmt.Errorf("failed to get location data: %w", err)
	}
	if len(values) == 0 {
		return nil, nil
	}

	record, err := recordFromHash(userID, values)
	if err != nil {
		return nil, err
	}
	return record, nil
}

// QueryRange resolves index members in [Start, End) to full location
// records. Members whose hash record expired between the index read and
// the hash read are skipped, not errored.
func (r *locationRepo) QueryRange(ctx context.Context, keyRange geo.Range) ([]*models.RecipientLocation, error) {
	members, err := r.redisClient.ZRangeByLex(ctx, constants.KeyGeoIndex, keyRange.Start, keyRange.End)
	if err != nil {
		return nil, fmt.Errorf("failed to query geo index range [%s, %s): %w", keyRange.Start, keyRange.End, err)
	}

	records := make([]*models.RecipientLocation, 0, len(members))
	for _, member := range members {
		_, userID, ok := splitGeoMember(member)
		if !ok {
			logger.Warn("Malformed geo index member", logger.String("member", member))
			continue
		}

		values, err := r.redisClient.HGetAll(ctx, fmt.Sprintf(constants.KeyUserLocation, userID))
		if err != nil {
			return nil, fmt.Errorf("failed to load location record for user %s: %w", userID, err)
		}
		if len(values) == 0 {
			continue
		}

		record, err := recordFromHash(userID, values)
		if err != nil {
			logger.Warn("Dropping location record with invalid coordinates",
				logger.String("user_id", userID),
				logger.Err(err))
			continue
		}
		records = append(records, record)
	}

	return records, nil
}

func recordFromHash(userID string, values map[string]string) (*models.RecipientLocation, error) {
	latStr, latOK := values[constants.FieldLatitude]
	lngStr, lngOK := values[constants.FieldLongitude]
	if !latOK || !lngOK {
		return nil, fmt.Errorf("location record for user %s is missing coordinates", userID)
	}

	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid latitude: %w", err)
	}
	lng, err := strconv.ParseFloat(lngStr, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid longitude: %w", err)
	}

	return &models.RecipientLocation{
		UserID:    userID,
		Latitude:  lat,
		Longitude: lng,
		Geohash:   values[constants.FieldGeohash],
	}, nil
}

package usecase

import (
	"context"
	"sort"
	"sync"

	"github.com/code01-66/Digi-Sanchaar/internal/pkg/geo"
	"github.com/code01-66/Digi-Sanchaar/internal/pkg/logger"
	"github.com/code01-66/Digi-Sanchaar/internal/pkg/models"
)

// findNearby resolves every user within radiusMeters of center, excluding
// the triggering user. Ranges are queried concurrently; a range that fails
// contributes zero candidates instead of failing the resolution.
func (uc *AlertUC) findNearby(ctx context.Context, center geo.Point, radiusMeters float64, excludeUserID string) []*models.RecipientLocation {
	ranges := geo.PlanRanges(center, radiusMeters, uc.cfg.Alert.GeohashPrecision)
	if len(ranges) == 0 {
		return nil
	}

	var (
		mu      sync.Mutex
		wg      sync.WaitGroup
		records []*models.RecipientLocation
	)

	for _, r := range ranges {
		wg.Add(1)
		go func(r geo.Range) {
			defer wg.Done()

			found, err := uc.locationRepo.QueryRange(ctx, r)
			if err != nil {
				logger.Warn("Location range query failed",
					logger.String("range_start", r.Start),
					logger.String("range_end", r.End),
					logger.Err(err))
				return
			}

			mu.Lock()
			records = append(records, found...)
			mu.Unlock()
		}(r)
	}
	wg.Wait()

	seen := make(map[string]bool, len(records))
	nearby := make([]*models.RecipientLocation, 0, len(records))
	for _, record := range records {
		if record.UserID == excludeUserID || seen[record.UserID] {
			continue
		}
		seen[record.UserID] = true

		distance := geo.Distance(center, geo.Point{
			Latitude:  record.Latitude,
			Longitude: record.Longitude,
		})
		if distance > radiusMeters {
			continue
		}
		record.DistanceMeters = distance
		nearby = append(nearby, record)
	}

	sort.Slice(nearby, func(i, j int) bool {
		return nearby[i].DistanceMeters < nearby[j].DistanceMeters
	})

	return nearby
}

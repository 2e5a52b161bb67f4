package geo

import (
	"math"
	"sort"
	"strings"

	"github.com/mmcloughlin/geohash"
)

// base32Alphabet is the geohash character set in lexicographic order
const base32Alphabet = "0123456789bcdefghjkmnpqrstuvwxyz"

const (
	minPrecision = 1
	// maxPrecision is the finest character precision a geohash can carry.
	maxPrecision = 9
)

// Range is a half-open interval [Start, End) over the geohash key space.
// An empty End means the range is unbounded above.
type Range struct {
	Start string
	End   string
}

// Contains reports whether key falls inside the range
func (r Range) Contains(key string) bool {
	return key >= r.Start && (r.End == "" || key < r.End)
}

// PlanRanges returns a sorted, non-overlapping set of geohash key ranges
// that together cover the bounding square of the search circle. The
// union may over-cover; callers filter candidates by exact distance.
// indexPrecision is the character precision of the stored keys; planned
// prefixes never exceed it, since a longer prefix matches no stored key.
// The result is never empty and the function never fails.
func PlanRanges(center Point, radiusMeters float64, indexPrecision uint) []Range {
	if radiusMeters <= 0 {
		radiusMeters = 1
	}
	if indexPrecision < minPrecision {
		indexPrecision = minPrecision
	}
	if indexPrecision > maxPrecision {
		indexPrecision = maxPrecision
	}

	precision := pickPrecision(center.Latitude, radiusMeters, indexPrecision)
	cellHeight, cellWidth := cellSize(precision)

	latDelta := radiusMeters / metersPerDegreeLat
	minLat := math.Max(center.Latitude-latDelta, -90)
	maxLat := math.Min(center.Latitude+latDelta, 90)

	// The longitude half-width must be computed at the poleward edge of
	// the square, where a degree of longitude is shortest; anything less
	// under-covers the circle there.
	lngDelta := lngDegreeDelta(math.Max(math.Abs(minLat), math.Abs(maxLat)), radiusMeters)

	cells := make(map[string]struct{})
	for _, seg := range lngSegments(center.Longitude, lngDelta) {
		collectCells(cells, precision, minLat, maxLat, seg[0], seg[1], cellHeight, cellWidth)
	}

	prefixes := make([]string, 0, len(cells))
	for prefix := range cells {
		prefixes = append(prefixes, prefix)
	}
	sort.Strings(prefixes)

	return mergeRanges(prefixes)
}

// pickPrecision chooses the finest geohash character precision, at most
// ceiling, at which a single cell is still at least as wide and tall as
// the search diameter, so the bounding square spans only a handful of
// cells.
func pickPrecision(lat, radiusMeters float64, ceiling uint) uint {
	diameter := 2 * radiusMeters
	for p := ceiling; p > minPrecision; p-- {
		cellHeight, cellWidth := cellSize(p)
		heightMeters := cellHeight * metersPerDegreeLat
		widthMeters := cellWidth * metersPerDegreeLat * math.Cos(lat*math.Pi/180.0)
		if heightMeters >= diameter && widthMeters >= diameter {
			return p
		}
	}
	return minPrecision
}

// cellSize returns the height and width in degrees of one geohash cell
// at the given character precision. Each character encodes five bits,
// interleaved longitude first.
func cellSize(precision uint) (heightDeg, widthDeg float64) {
	totalBits := 5 * precision
	latBits := totalBits / 2
	lngBits := totalBits - latBits
	return 180.0 / float64(uint64(1)<<latBits), 360.0 / float64(uint64(1)<<lngBits)
}

// lngDegreeDelta converts a radius in meters to a longitude half-width
// in degrees at the given latitude, saturating to the full hemisphere
// near the poles where circles wrap the globe.
func lngDegreeDelta(lat, radiusMeters float64) float64 {
	cosLat := math.Cos(lat * math.Pi / 180.0)
	if cosLat < 1e-6 {
		return 180
	}
	delta := radiusMeters / (metersPerDegreeLat * cosLat)
	if delta > 180 {
		return 180
	}
	return delta
}

// lngSegments splits the longitude span of the bounding square at the
// antimeridian, yielding one or two in-bounds [min, max] intervals.
func lngSegments(centerLng, delta float64) [][2]float64 {
	minLng := centerLng - delta
	maxLng := centerLng + delta
	switch {
	case delta >= 180:
		return [][2]float64{{-180, 180}}
	case minLng < -180:
		return [][2]float64{{-180, maxLng}, {minLng + 360, 180}}
	case maxLng > 180:
		return [][2]float64{{minLng, 180}, {-180, maxLng - 360}}
	default:
		return [][2]float64{{minLng, maxLng}}
	}
}

// collectCells walks the cell grid across the lat/lng rectangle and
// records the geohash prefix of every cell it touches. Stepping by
// exactly one cell dimension visits consecutive grid rows and columns,
// so no intersecting cell is skipped.
func collectCells(cells map[string]struct{}, precision uint, minLat, maxLat, minLng, maxLng, cellHeight, cellWidth float64) {
	for lat := minLat; ; lat += cellHeight {
		rowLat := math.Min(lat, maxLat)
		for lng := minLng; ; lng += cellWidth {
			colLng := math.Min(lng, maxLng)
			hash := geohash.EncodeWithPrecision(clampLat(rowLat), clampLng(colLng), precision)
			cells[hash] = struct{}{}
			if colLng >= maxLng {
				break
			}
		}
		if rowLat >= maxLat {
			break
		}
	}
}

func clampLat(lat float64) float64 {
	return math.Min(math.Max(lat, -90), 90-1e-9)
}

func clampLng(lng float64) float64 {
	return math.Min(math.Max(lng, -180), 180-1e-9)
}

// mergeRanges turns sorted cell prefixes into half-open key ranges,
// coalescing lexicographically adjacent cells into a single range.
func mergeRanges(prefixes []string) []Range {
	ranges := make([]Range, 0, len(prefixes))
	for _, prefix := range prefixes {
		end := nextPrefix(prefix)
		if n := len(ranges); n > 0 && ranges[n-1].End == prefix {
			ranges[n-1].End = end
			continue
		}
		ranges = append(ranges, Range{Start: prefix, End: end})
	}
	return ranges
}

// nextPrefix returns the smallest geohash prefix lexicographically
// greater than every key that starts with the given prefix. It returns
// an empty string when the prefix is the last one in the key space.
func nextPrefix(prefix string) string {
	b := []byte(prefix)
	for i := len(b) - 1; i >= 0; i-- {
		idx := strings.IndexByte(base32Alphabet, b[i])
		if idx < len(base32Alphabet)-1 {
			b[i] = base32Alphabet[idx+1]
			return string(b[:i+1])
		}
	}
	return ""
}

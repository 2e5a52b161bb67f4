package constants

// Redis keys for the location store
const (
	// KeyUserLocation is the hash holding one user's last location fix
	KeyUserLocation = "location:user:%s"
	// KeyGeoIndex is the zero-scored sorted set ordered by geohash-prefixed members
	KeyGeoIndex = "location:geo"
)

// Fields of the user location hash
const (
	FieldLatitude  = "latitude"
	FieldLongitude = "longitude"
	FieldGeohash   = "geohash"
	FieldUpdatedAt = "updated_at"
)

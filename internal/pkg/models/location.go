package models

import "time"

// LocationUpdate represents a device location fix reported by a user
type LocationUpdate struct {
	UserID    string    `json:"user_id"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Timestamp time.Time `json:"timestamp"`
}

// RecipientLocation is one registered user's last known position as read
// back from the location store. PushSubscription is filled in from the
// user registry before dispatch; it stays nil for users that never
// registered a push endpoint.
type RecipientLocation struct {
	UserID           string  `json:"user_id"`
	Latitude         float64 `json:"latitude"`
	Longitude        float64 `json:"longitude"`
	Geohash          string  `json:"geohash"`
	DistanceMeters   float64 `json:"distance_meters"`
	PushSubscription *string `json:"-"`
}

package models

import (
	"time"

	"github.com/google/uuid"
)

// User represents a registered user of the SOS network
type User struct {
	ID               uuid.UUID          `json:"id" db:"id"`
	FullName         string             `json:"full_name" db:"full_name"`
	Email            string             `json:"email" db:"email"`
	Phone            string             `json:"phone" db:"phone"`
	Password         string             `json:"password,omitempty" db:"password"`
	PushSubscription *string            `json:"push_subscription,omitempty" db:"push_subscription"`
	IsActive         bool               `json:"is_active" db:"is_active"`
	CreatedAt        time.Time          `json:"created_at" db:"created_at"`
	UpdatedAt        time.Time          `json:"updated_at" db:"updated_at"`
	Contacts         []EmergencyContact `json:"contacts,omitempty" db:"-"`
}

// EmergencyContact is a person notified by email and voice call when the
// owning user triggers an SOS alert. Contacts are ordered by position.
type EmergencyContact struct {
	ID        uuid.UUID `json:"id" db:"id"`
	UserID    uuid.UUID `json:"user_id" db:"user_id"`
	Name      string    `json:"name" db:"name"`
	Phone     string    `json:"phone" db:"phone"`
	Email     string    `json:"email" db:"email"`
	Position  int       `json:"position" db:"position"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// RegisterRequest is the payload for user registration
type RegisterRequest struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

// LoginRequest is the payload for credential authentication
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse contains the issued token for an authenticated user
type AuthResponse struct {
	UserID    string `json:"user_id"`
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expires_at"`
}

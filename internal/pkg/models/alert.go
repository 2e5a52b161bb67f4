package models

import (
	"time"

	"github.com/google/uuid"
)

// Channel identifies one of the independent notification channels
type Channel string

const (
	ChannelPush  Channel = "push"
	ChannelEmail Channel = "email"
	ChannelCall  Channel = "call"
)

// AttemptStatus is the terminal state of a single notification attempt
type AttemptStatus string

const (
	AttemptSent   AttemptStatus = "sent"
	AttemptFailed AttemptStatus = "failed"
)

// AlertRequest is the validated input for one SOS alert. Contacts may
// be supplied inline; when empty the caller's stored emergency contacts
// are used instead.
type AlertRequest struct {
	UserID    uuid.UUID          `json:"user_id"`
	Latitude  float64            `json:"latitude"`
	Longitude float64            `json:"longitude"`
	Situation string             `json:"situation"`
	Keywords  []string           `json:"keywords"`
	Contacts  []EmergencyContact `json:"contacts,omitempty"`
}

// NotificationAttempt records the outcome of one recipient/channel pair.
// Attempts live only for the duration of the request that produced them.
type NotificationAttempt struct {
	RecipientID string        `json:"recipient_id"`
	Channel     Channel       `json:"channel"`
	Status      AttemptStatus `json:"status"`
	Reason      string        `json:"reason,omitempty"`
}

// DispatchOutcome is the aggregate result of one alert fan-out
type DispatchOutcome struct {
	AlertID         string                `json:"alert_id"`
	NearbyFound     int                   `json:"nearby_found"`
	NearbyPushSent  int                   `json:"nearby_push_sent"`
	EmailsSent      int                   `json:"emails_sent"`
	CallsMade       int                   `json:"calls_made"`
	Failures        []NotificationAttempt `json:"failures"`
	SkippedChannels []Channel             `json:"skipped_channels"`
}

// AlertPayloads carries the pre-built per-channel message content for
// one alert; builders run once, attempts reuse the result.
type AlertPayloads struct {
	Push          []byte
	EmailSubject  string
	EmailBody     string
	SpokenMessage string
}

// AlertEvent is published after a fan-out completes
type AlertEvent struct {
	AlertID        string    `json:"alert_id"`
	UserID         string    `json:"user_id"`
	Latitude       float64   `json:"latitude"`
	Longitude      float64   `json:"longitude"`
	NearbyFound    int       `json:"nearby_found"`
	NearbyPushSent int       `json:"nearby_push_sent"`
	EmailsSent     int       `json:"emails_sent"`
	CallsMade      int       `json:"calls_made"`
	FailureCount   int       `json:"failure_count"`
	DispatchedAt   time.Time `json:"dispatched_at"`
}

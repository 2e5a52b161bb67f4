package alert

import (
	"context"
	"errors"

	"github.com/code01-66/Digi-Sanchaar/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateways.go -package=mocks github.com/code01-66/Digi-Sanchaar/services/alert PushSender,EmailSender,CallSender,AlertGW

// ErrSubscriptionGone is returned by PushSender implementations when the
// push service reports the subscription no longer exists. Stale
// subscriptions are recorded as failures but deliberately left in the
// store; pruning them is a separate cleanup concern.
var ErrSubscriptionGone = errors.New("push subscription is gone")

// PushSender delivers a real-time notification to one push subscription
type PushSender interface {
	Send(ctx context.Context, subscription string, payload []byte) error
}

// EmailSender delivers one email message
type EmailSender interface {
	Send(ctx context.Context, to, subject, body string) error
}

// CallSender initiates one outbound voice call that speaks the message
type CallSender interface {
	Initiate(ctx context.Context, to, message string) error
}

// AlertGW publishes alert lifecycle events
type AlertGW interface {
	PublishAlertDispatched(ctx context.Context, event *models.AlertEvent) error
}

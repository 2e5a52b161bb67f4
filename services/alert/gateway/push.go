package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	webpush "github.com/SherClockHolmes/webpush-go"
	"github.com/code01-66/Digi-Sanchaar/internal/pkg/models"
	"github.com/code01-66/Digi-Sanchaar/services/alert"
)

// PushGW delivers alert payloads over the Web Push protocol
type PushGW struct {
	options webpush.Options
}

func NewPushGW(cfg models.PushConfig) *PushGW {
	return &PushGW{
		options: webpush.Options{
			Subscriber:      cfg.Subscriber,
			VAPIDPublicKey:  cfg.VAPIDPublicKey,
			VAPIDPrivateKey: cfg.VAPIDPrivateKey,
			TTL:             cfg.TTLSeconds,
		},
	}
}

// Send pushes payload to one subscription. subscription is the JSON
// document captured from the browser's PushManager.
func (g *PushGW) Send(ctx context.Context, subscription string, payload []byte) error {
	var sub webpush.Subscription
	if err := json.Unmarshal([]byte(subscription), &sub); err != nil {
		return fmt.Errorf("invalid push subscription: %w", err)
	}

	opts := g.options
	resp, err := webpush.SendNotificationWithContext(ctx, payload, &sub, &opts)
	if err != nil {
		return fmt.Errorf("failed to send push notification: %w", err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	switch {
	case resp.StatusCode == http.StatusNotFound || resp.StatusCode == http.StatusGone:
		return alert.ErrSubscriptionGone
	case resp.StatusCode >= 400:
		return fmt.Errorf("push service returned status %d", resp.StatusCode)
	}

	return nil
}

package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/code01-66/Digi-Sanchaar/internal/pkg/logger"
	"github.com/code01-66/Digi-Sanchaar/internal/pkg/models"
)

// attemptCollector gathers notification attempts from concurrent
// channel workers. Safe for use from multiple goroutines.
type attemptCollector struct {
	mu       sync.Mutex
	attempts []models.NotificationAttempt
}

func (c *attemptCollector) record(recipientID string, channel models.Channel, err error) {
	attempt := models.NotificationAttempt{
		RecipientID: recipientID,
		Channel:     channel,
		Status:      models.AttemptSent,
	}
	if err != nil {
		attempt.Status = models.AttemptFailed
		attempt.Reason = err.Error()
	}

	c.mu.Lock()
	c.attempts = append(c.attempts, attempt)
	c.mu.Unlock()
}

func (c *attemptCollector) all() []models.NotificationAttempt {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]models.NotificationAttempt(nil), c.attempts...)
}

// dispatch fans one alert out across all configured channels. Every
// recipient/channel pair is attempted independently; a failed attempt is
// recorded and never blocks the remaining attempts. A nil gateway skips
// its channel wholesale.
func (uc *AlertUC) dispatch(
	ctx context.Context,
	alertID string,
	nearby []*models.RecipientLocation,
	contacts []models.EmergencyContact,
	payloads *models.AlertPayloads,
) *models.DispatchOutcome {
	collector := &attemptCollector{}
	var skipped []models.Channel
	var wg sync.WaitGroup

	if uc.pushGW != nil {
		for _, recipient := range nearby {
			if recipient.PushSubscription == nil {
				// No registered subscription means nothing to attempt.
				continue
			}

			wg.Add(1)
			go func(userID, subscription string) {
				defer wg.Done()
				err := uc.pushGW.Send(ctx, subscription, payloads.Push)
				if err != nil {
					logger.Warn("Push notification failed",
						logger.String("alert_id", alertID),
						logger.String("recipient_id", userID),
						logger.Err(err))
				}
				collector.record(userID, models.ChannelPush, err)
			}(recipient.UserID, *recipient.PushSubscription)
		}
	} else {
		skipped = append(skipped, models.ChannelPush)
	}

	emailEnabled := uc.emailGW != nil
	callEnabled := uc.callGW != nil
	if !emailEnabled {
		skipped = append(skipped, models.ChannelEmail)
	}
	if !callEnabled {
		skipped = append(skipped, models.ChannelCall)
	}

	for _, contact := range contacts {
		if emailEnabled && contact.Email != "" {
			wg.Add(1)
			go func(contact models.EmergencyContact) {
				defer wg.Done()
				err := uc.emailGW.Send(ctx, contact.Email, payloads.EmailSubject, payloads.EmailBody)
				if err != nil {
					logger.Warn("Alert email failed",
						logger.String("alert_id", alertID),
						logger.String("contact_id", contact.ID.String()),
						logger.Err(err))
				}
				collector.record(contact.ID.String(), models.ChannelEmail, err)
			}(contact)
		}

		if callEnabled && contact.Phone != "" {
			wg.Add(1)
			go func(contact models.EmergencyContact) {
				defer wg.Done()
				err := uc.callGW.Initiate(ctx, contact.Phone, payloads.SpokenMessage)
				if err != nil {
					logger.Warn("Alert call failed",
						logger.String("alert_id", alertID),
						logger.String("contact_id", contact.ID.String()),
						logger.Err(err))
				}
				collector.record(contact.ID.String(), models.ChannelCall, err)
			}(contact)
		}
	}

	wg.Wait()

	return aggregate(alertID, collector.all(), skipped)
}

// buildPayloads renders the per-channel message content once per alert
func buildPayloads(callerName string, req *models.AlertRequest) *models.AlertPayloads {
	situation := strings.TrimSpace(req.Situation)

	push, _ := json.Marshal(map[string]interface{}{
		"type":      "sos_alert",
		"title":     fmt.Sprintf("SOS: %s needs help nearby", callerName),
		"body":      situation,
		"latitude":  req.Latitude,
		"longitude": req.Longitude,
		"keywords":  req.Keywords,
	})

	subject := fmt.Sprintf("SOS alert from %s", callerName)

	var body strings.Builder
	fmt.Fprintf(&body, "%s has triggered an SOS alert.\n\n", callerName)
	fmt.Fprintf(&body, "Situation: %s\n", situation)
	if len(req.Keywords) > 0 {
		fmt.Fprintf(&body, "Keywords: %s\n", strings.Join(req.Keywords, ", "))
	}
	fmt.Fprintf(&body, "Last known location: https://maps.google.com/?q=%f,%f\n", req.Latitude, req.Longitude)

	spoken := fmt.Sprintf(
		"This is an automated emergency alert from Digi-Sanchaar. %s has triggered an S O S alert. The reported situation is: %s. Please try to reach them immediately.",
		callerName, situation)

	return &models.AlertPayloads{
		Push:          push,
		EmailSubject:  subject,
		EmailBody:     body.String(),
		SpokenMessage: spoken,
	}
}

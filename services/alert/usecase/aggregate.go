package usecase

import (
	"github.com/code01-66/Digi-Sanchaar/internal/pkg/models"
)

// aggregate folds a set of notification attempts into a dispatch outcome.
// The result depends only on the multiset of attempts, never on the order
// the concurrent workers finished in.
func aggregate(alertID string, attempts []models.NotificationAttempt, skipped []models.Channel) *models.DispatchOutcome {
	outcome := &models.DispatchOutcome{
		AlertID:         alertID,
		Failures:        []models.NotificationAttempt{},
		SkippedChannels: skipped,
	}
	if outcome.SkippedChannels == nil {
		outcome.SkippedChannels = []models.Channel{}
	}

	for _, attempt := range attempts {
		if attempt.Status == models.AttemptFailed {
			outcome.Failures = append(outcome.Failures, attempt)
			continue
		}

		switch attempt.Channel {
		case models.ChannelPush:
			outcome.NearbyPushSent++
		case models.ChannelEmail:
			outcome.EmailsSent++
		case models.ChannelCall:
			outcome.CallsMade++
		}
	}

	return outcome
}

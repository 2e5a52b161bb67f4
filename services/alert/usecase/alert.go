package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/code01-66/Digi-Sanchaar/internal/pkg/geo"
	"github.com/code01-66/Digi-Sanchaar/internal/pkg/logger"
	"github.com/code01-66/Digi-Sanchaar/internal/pkg/models"
	"github.com/code01-66/Digi-Sanchaar/services/alert"
	"github.com/google/uuid"
)

// AlertUC implements the SOS alert use cases
type AlertUC struct {
	locationRepo alert.LocationQuerier
	userRepo     alert.UserReader
	pushGW       alert.PushSender
	emailGW      alert.EmailSender
	callGW       alert.CallSender
	alertGW      alert.AlertGW
	cfg          *models.Config
}

// NewAlertUC creates a new alert usecase. Any of the channel gateways
// may be nil when unconfigured; the matching channel is then skipped
// wholesale and reported as such in the outcome.
func NewAlertUC(
	locationRepo alert.LocationQuerier,
	userRepo alert.UserReader,
	pushGW alert.PushSender,
	emailGW alert.EmailSender,
	callGW alert.CallSender,
	alertGW alert.AlertGW,
	cfg *models.Config,
) *AlertUC {
	return &AlertUC{
		locationRepo: locationRepo,
		userRepo:     userRepo,
		pushGW:       pushGW,
		emailGW:      emailGW,
		callGW:       callGW,
		alertGW:      alertGW,
		cfg:          cfg,
	}
}

// HandleAlert resolves nearby users and fans the alert out across all
// configured channels. It errors only on malformed input; store and
// gateway failures degrade the outcome instead of aborting it.
func (uc *AlertUC) HandleAlert(ctx context.Context, req *models.AlertRequest) (*models.DispatchOutcome, error) {
	if req.UserID == uuid.Nil {
		return nil, fmt.Errorf("alert request is missing a user id")
	}
	if req.Latitude < -90 || req.Latitude > 90 {
		return nil, fmt.Errorf("latitude %f out of range", req.Latitude)
	}
	if req.Longitude < -180 || req.Longitude > 180 {
		return nil, fmt.Errorf("longitude %f out of range", req.Longitude)
	}
	if strings.TrimSpace(req.Situation) == "" {
		return nil, fmt.Errorf("situation summary is required")
	}

	alertID := uuid.NewString()
	center := geo.Point{Latitude: req.Latitude, Longitude: req.Longitude}
	radius := uc.cfg.Alert.SearchRadiusMeters

	callerName := uc.callerName(ctx, req.UserID)

	nearby := uc.findNearby(ctx, center, radius, req.UserID.String())
	uc.attachSubscriptions(ctx, nearby)

	contacts := req.Contacts
	if len(contacts) == 0 {
		stored, err := uc.userRepo.GetEmergencyContacts(ctx, req.UserID)
		if err != nil {
			// Contact lookup failing must not stop the nearby push flow.
			logger.Error("Failed to load emergency contacts",
				logger.String("alert_id", alertID),
				logger.String("user_id", req.UserID.String()),
				logger.Err(err))
		} else {
			contacts = stored
		}
	}

	payloads := buildPayloads(callerName, req)

	outcome := uc.dispatch(ctx, alertID, nearby, contacts, payloads)
	outcome.NearbyFound = len(nearby)

	uc.publishDispatched(ctx, req, outcome)

	logger.Info("Alert dispatched",
		logger.String("alert_id", alertID),
		logger.String("user_id", req.UserID.String()),
		logger.Int("nearby_found", outcome.NearbyFound),
		logger.Int("push_sent", outcome.NearbyPushSent),
		logger.Int("emails_sent", outcome.EmailsSent),
		logger.Int("calls_made", outcome.CallsMade),
		logger.Int("failures", len(outcome.Failures)))

	return outcome, nil
}

// callerName resolves the triggering user's display name for payloads.
// A registry failure falls back to a generic name; the alert still goes out.
func (uc *AlertUC) callerName(ctx context.Context, userID uuid.UUID) string {
	caller, err := uc.userRepo.GetUserByID(ctx, userID)
	if err != nil || caller.FullName == "" {
		if err != nil {
			logger.Warn("Failed to load triggering user",
				logger.String("user_id", userID.String()),
				logger.Err(err))
		}
		return "A Digi-Sanchaar user"
	}
	return caller.FullName
}

// attachSubscriptions fills push endpoints into the nearby records. A
// registry failure leaves all records without subscriptions, which the
// dispatcher treats as skipped push recipients.
func (uc *AlertUC) attachSubscriptions(ctx context.Context, nearby []*models.RecipientLocation) {
	if len(nearby) == 0 {
		return
	}

	ids := make([]string, 0, len(nearby))
	for _, record := range nearby {
		ids = append(ids, record.UserID)
	}

	subscriptions, err := uc.userRepo.GetPushSubscriptions(ctx, ids)
	if err != nil {
		logger.Error("Failed to load push subscriptions", logger.Err(err))
		return
	}

	for _, record := range nearby {
		if sub, ok := subscriptions[record.UserID]; ok {
			s := sub
			record.PushSubscription = &s
		}
	}
}

func (uc *AlertUC) publishDispatched(ctx context.Context, req *models.AlertRequest, outcome *models.DispatchOutcome) {
	if uc.alertGW == nil {
		return
	}

	event := &models.AlertEvent{
		AlertID:        outcome.AlertID,
		UserID:         req.UserID.String(),
		Latitude:       req.Latitude,
		Longitude:      req.Longitude,
		NearbyFound:    outcome.NearbyFound,
		NearbyPushSent: outcome.NearbyPushSent,
		EmailsSent:     outcome.EmailsSent,
		CallsMade:      outcome.CallsMade,
		FailureCount:   len(outcome.Failures),
		DispatchedAt:   time.Now(),
	}

	if err := uc.alertGW.PublishAlertDispatched(ctx, event); err != nil {
		logger.Warn("Failed to publish alert dispatched event",
			logger.String("alert_id", outcome.AlertID),
			logger.Err(err))
	}
}

package handler

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/code01-66/Digi-Sanchaar/internal/pkg/constants"
	"github.com/code01-66/Digi-Sanchaar/internal/pkg/logger"
	"github.com/code01-66/Digi-Sanchaar/internal/pkg/models"
	natspkg "github.com/code01-66/Digi-Sanchaar/internal/pkg/nats"
	"github.com/code01-66/Digi-Sanchaar/services/location"
)

// NatsHandler consumes location fixes published by device gateways
type NatsHandler struct {
	locationUC location.LocationUC
	consumer   *natspkg.Consumer
}

// NewNatsHandler creates a new location NATS handler
func NewNatsHandler(locationUC location.LocationUC, client *natspkg.Client) *NatsHandler {
	return &NatsHandler{
		locationUC: locationUC,
		consumer:   natspkg.NewConsumer(client),
	}
}

// InitConsumers subscribes to the location update subject
func (h *NatsHandler) InitConsumers() error {
	if err := h.consumer.Subscribe(constants.SubjectLocationUpdate, constants.QueueGroupLocation, h.handleLocationUpdate); err != nil {
		return fmt.Errorf("failed to subscribe to location updates: %w", err)
	}

	logger.Info("Subscribed to location updates",
		logger.String("subject", constants.SubjectLocationUpdate))
	return nil
}

// Stop drains the handler's subscriptions
func (h *NatsHandler) Stop() {
	h.consumer.Stop()
}

func (h *NatsHandler) handleLocationUpdate(message []byte) error {
	var update models.LocationUpdate
	if err := json.Unmarshal(message, &update); err != nil {
		return fmt.Errorf("failed to unmarshal location update: %w", err)
	}

	return h.locationUC.UpdateLocation(context.Background(), &update)
}

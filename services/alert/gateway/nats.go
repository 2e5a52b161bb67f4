package gateway

import (
	"context"

	"github.com/code01-66/Digi-Sanchaar/internal/pkg/constants"
	"github.com/code01-66/Digi-Sanchaar/internal/pkg/models"
	natspkg "github.com/code01-66/Digi-Sanchaar/internal/pkg/nats"
)

// AlertGW publishes alert lifecycle events to NATS
type AlertGW struct {
	producer *natspkg.Producer
}

func NewAlertGW(client *natspkg.Client) *AlertGW {
	return &AlertGW{
		producer: natspkg.NewProducer(client),
	}
}

func (g *AlertGW) PublishAlertDispatched(_ context.Context, event *models.AlertEvent) error {
	return g.producer.Publish(constants.SubjectAlertDispatched, event)
}

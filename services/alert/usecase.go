package alert

import (
	"context"

	"github.com/code01-66/Digi-Sanchaar/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/code01-66/Digi-Sanchaar/services/alert AlertUC

// AlertUC defines the SOS alert use cases
type AlertUC interface {
	// HandleAlert fans one SOS alert out to nearby users and emergency
	// contacts. Partial failures never surface as errors; they are
	// folded into the returned outcome.
	HandleAlert(ctx context.Context, req *models.AlertRequest) (*models.DispatchOutcome, error)
}

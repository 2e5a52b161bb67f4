package gateway

import (
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/code01-66/Digi-Sanchaar/internal/pkg/circuitbreaker"
	pkghttp "github.com/code01-66/Digi-Sanchaar/internal/pkg/http"
	"github.com/code01-66/Digi-Sanchaar/internal/pkg/logger"
	"github.com/code01-66/Digi-Sanchaar/internal/pkg/models"
	"github.com/code01-66/Digi-Sanchaar/internal/pkg/retry"
)

// CallGW places automated voice calls through the Twilio REST API.
// Transient provider failures are retried with backoff behind a circuit
// breaker; the caller sees a single success or failure per call.
type CallGW struct {
	client     *pkghttp.Client
	retrier    *retry.Retrier
	breaker    *circuitbreaker.CircuitBreaker
	accountSID string
	fromNumber string
}

type twimlResponse struct {
	XMLName xml.Name `xml:"Response"`
	Say     string   `xml:"Say"`
}

type callResponse struct {
	SID    string `json:"sid"`
	Status string `json:"status"`
}

func NewCallGW(cfg models.CallConfig, zapLogger *logger.ZapLogger) *CallGW {
	client := pkghttp.NewClient(cfg.BaseURL, time.Duration(cfg.TimeoutSec)*time.Second).
		WithBasicAuth(cfg.AccountSID, cfg.AuthToken)

	retryConfig := retry.DefaultConfig()
	retryConfig.RetryableFunc = func(err error) bool {
		var statusErr *pkghttp.StatusError
		if errors.As(err, &statusErr) {
			return statusErr.Retryable()
		}
		return true
	}

	return &CallGW{
		client:     client,
		retrier:    retry.New(retryConfig, zapLogger),
		breaker:    circuitbreaker.New(circuitbreaker.DefaultConfig("twilio-calls"), zapLogger),
		accountSID: cfg.AccountSID,
		fromNumber: cfg.FromNumber,
	}
}

// Initiate places one outbound call that speaks message to the callee
func (g *CallGW) Initiate(ctx context.Context, to string, message string) error {
	twiml, err := xml.Marshal(twimlResponse{Say: message})
	if err != nil {
		return fmt.Errorf("failed to build call instructions: %w", err)
	}

	form := url.Values{}
	form.Set("To", to)
	form.Set("From", g.fromNumber)
	form.Set("Twiml", string(twiml))

	path := fmt.Sprintf("/2010-04-01/Accounts/%s/Calls.json", g.accountSID)

	return g.breaker.Execute(ctx, func(ctx context.Context) error {
		return g.retrier.Execute(ctx, func(ctx context.Context) error {
			var resp callResponse
			if err := g.client.PostForm(ctx, path, form, &resp); err != nil {
				return fmt.Errorf("failed to initiate call: %w", err)
			}
			return nil
		})
	})
}

package gateway

import (
	"context"
	"fmt"

	"github.com/code01-66/Digi-Sanchaar/internal/pkg/models"
	"github.com/mrz1836/postmark"
)

// EmailGW delivers alert emails through Postmark's transactional API
type EmailGW struct {
	client *postmark.Client
	sender string
}

func NewEmailGW(cfg models.EmailConfig) (*EmailGW, error) {
	if cfg.ServerToken == "" || cfg.SenderEmail == "" {
		return nil, fmt.Errorf("postmark server token and sender email are required")
	}

	return &EmailGW{
		client: postmark.NewClient(cfg.ServerToken, cfg.AccountToken),
		sender: cfg.SenderEmail,
	}, nil
}

func (g *EmailGW) Send(ctx context.Context, to string, subject string, body string) error {
	resp, err := g.client.SendEmail(ctx, postmark.Email{
		From:     g.sender,
		To:       to,
		Subject:  subject,
		TextBody: body,
		Tag:      "sos-alert",
	})
	if err != nil {
		return fmt.Errorf("failed to send alert email: %w", err)
	}
	if resp.ErrorCode > 0 {
		return fmt.Errorf("postmark error %d: %s", resp.ErrorCode, resp.Message)
	}

	return nil
}

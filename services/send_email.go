package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/rpupo63/portfolio-site/config"
	"github.com/rpupo63/portfolio-site/errs"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const resendEndpoint = "https://api.resend.com/emails"

// ResendEmailRequest represents the request payload for Resend API
type ResendEmailRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	Html    string   `json:"html,omitempty"`
	Text    string   `json:"text,omitempty"`
	ReplyTo string   `json:"reply_to,omitempty"`
}

// ResendEmailResponse represents the response from Resend API
type ResendEmailResponse struct {
	ID string `json:"id"`
}

// ResendErrorResponse represents an error response from Resend API
type ResendErrorResponse struct {
	Message string `json:"message"`
}

// Mailer sends email through the Resend API.
type Mailer struct {
	apiKey     string
	fromEmail  string
	endpoint   string
	httpClient *http.Client
	logger     zerolog.Logger
}

type MailerOption func(*Mailer)

// WithResendEndpoint points the mailer at another Resend-compatible endpoint
func WithResendEndpoint(endpoint string) MailerOption {
	return func(m *Mailer) {
		m.endpoint = endpoint
	}
}

// NewMailer builds a mailer from configuration.
//
// Requires:
//   - RESEND_API_KEY: Your Resend API key
//   - RESEND_FROM_EMAIL: The sender email address (e.g., "Your Name <[email protected]>")
func NewMailer(cfg map[string]string, opts ...MailerOption) (*Mailer, error) {
	apiKey := config.GetString(cfg, config.KeyResendAPIKey, "")
	if apiKey == "" {
		return nil, errs.NewConfigError("mailer", errs.NewEnvironmentVariableError(config.KeyResendAPIKey))
	}

	fromEmail := config.GetString(cfg, config.KeyResendFromEmail, "")
	if fromEmail == "" {
		return nil, errs.NewConfigError("mailer", errs.NewEnvironmentVariableError(config.KeyResendFromEmail))
	}

	m := &Mailer{
		apiKey:     apiKey,
		fromEmail:  fromEmail,
		endpoint:   resendEndpoint,
		httpClient: &http.Client{},
		logger:     log.With().Str("service", "mailer").Logger(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m, nil
}

// SendEmail sends an email using the Resend API
// Parameters:
//   - subject: The email subject line
//   - body: The email body as HTML
//   - replyTo: Optional Reply-To address
//   - recipients: A list of recipient email addresses
func (m *Mailer) SendEmail(ctx context.Context, subject, body, replyTo string, recipients []string) error {
	if len(recipients) == 0 {
		return fmt.Errorf("at least one recipient is required")
	}

	payload := ResendEmailRequest{
		From:    m.fromEmail,
		To:      recipients,
		Subject: subject,
		Html:    body,
		ReplyTo: replyTo,
	}

	jsonPayload, err := json.Marshal(payload)
	if err != nil {
		return errs.NewJSONMarshalError("send email", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.endpoint, bytes.NewBuffer(jsonPayload))
	if err != nil {
		return fmt.Errorf("failed to create Resend API request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+m.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.httpClient.Do(req)
	if err != nil {
		return errs.NewServiceUnreachableError("resend", err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read Resend API response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var errorResp ResendErrorResponse
		if err := json.Unmarshal(bodyBytes, &errorResp); err == nil && errorResp.Message != "" {
			return errs.NewUpstreamStatusError("resend", resp.StatusCode, errorResp.Message)
		}
		return errs.NewUpstreamStatusError("resend", resp.StatusCode, string(bodyBytes))
	}

	var emailResponse ResendEmailResponse
	if err := json.Unmarshal(bodyBytes, &emailResponse); err != nil {
		m.logger.Warn().Err(err).Msg("Failed to parse Resend email response, but email was sent")
	} else {
		m.logger.Info().Str("emailId", emailResponse.ID).Msg("Successfully sent email via Resend")
	}

	return nil
}

package services_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rpupo63/portfolio-site/errs"
	"github.com/rpupo63/portfolio-site/models"
	"github.com/rpupo63/portfolio-site/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMailer_RequiresConfig(t *testing.T) {
	_, err := services.NewMailer(map[string]string{})
	require.Error(t, err)
	assert.True(t, errs.IsConfigError(err))
	assert.Contains(t, err.(*errs.ApiErr).GetFullError(), "RESEND_API_KEY")

	_, err = services.NewMailer(map[string]string{"RESEND_API_KEY": "key"})
	require.Error(t, err)
	assert.True(t, errs.IsConfigError(err))
	assert.Contains(t, err.(*errs.ApiErr).GetFullError(), "RESEND_FROM_EMAIL")
}

func TestMailer_SendEmail(t *testing.T) {
	var got services.ResendEmailRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer key", r.Header.Get("Authorization"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = io.WriteString(w, `{"id": "email-1"}`)
	}))
	defer srv.Close()

	mailer, err := services.NewMailer(
		map[string]string{"RESEND_API_KEY": "key", "RESEND_FROM_EMAIL": "site@example.com"},
		services.WithResendEndpoint(srv.URL),
	)
	require.NoError(t, err)

	subject, body, err := services.ContactEmail(models.ContactForm{
		Name:    "Ada <script>",
		Email:   "ada@example.com",
		Message: "line one\nline two",
	})
	require.NoError(t, err)
	assert.Equal(t, "Portfolio Contact: Ada <script>", subject)
	assert.Contains(t, body, "Ada &lt;script&gt;")
	assert.Contains(t, body, "<p>line two</p>")

	err = mailer.SendEmail(context.Background(), subject, body, "ada@example.com", []string{"me@example.com"})
	require.NoError(t, err)
	assert.Equal(t, "site@example.com", got.From)
	assert.Equal(t, []string{"me@example.com"}, got.To)
	assert.Equal(t, "ada@example.com", got.ReplyTo)
}

func TestMailer_SendEmailRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = io.WriteString(w, `{"message": "invalid from"}`)
	}))
	defer srv.Close()

	mailer, err := services.NewMailer(
		map[string]string{"RESEND_API_KEY": "key", "RESEND_FROM_EMAIL": "site@example.com"},
		services.WithResendEndpoint(srv.URL),
	)
	require.NoError(t, err)

	err = mailer.SendEmail(context.Background(), "s", "b", "", []string{"me@example.com"})
	require.Error(t, err)
	assert.Equal(t, "invalid from", errs.UpstreamMessage(err))

	assert.Error(t, mailer.SendEmail(context.Background(), "s", "b", "", nil))
}

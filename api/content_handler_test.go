package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rpupo63/portfolio-site/content"
	"github.com/rpupo63/portfolio-site/errs"
	"github.com/rpupo63/portfolio-site/models"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMailer struct {
	err     error
	subject string
	replyTo string
	to      []string
}

func (m *fakeMailer) SendEmail(_ context.Context, subject, _, replyTo string, recipients []string) error {
	m.subject = subject
	m.replyTo = replyTo
	m.to = recipients
	return m.err
}

func newTestStore(t *testing.T) *content.Store {
	t.Helper()
	store, err := content.NewStore(afero.NewMemMapFs(), "")
	require.NoError(t, err)
	return store
}

func TestContentRoutes(t *testing.T) {
	store := newTestStore(t)
	router := newContentRouter(store, nil)

	t.Run("profile", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/profile", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Header().Get("Content-Type"), "application/json")
		var profile models.Profile
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &profile))
		assert.Equal(t, store.Profile().Name, profile.Name)
	})

	t.Run("projects", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/projects", nil))

		var projects []models.Project
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &projects))
		assert.Len(t, projects, len(store.Projects()))
	})

	t.Run("skills are wrapped", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/skills", nil))

		var skills []models.SkillsResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &skills))
		require.Len(t, skills, 1)
		assert.NotEmpty(t, skills[0].SkillSet)
	})

	t.Run("experience keeps the TechnologiesUsed key", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/experience", nil))

		assert.Contains(t, rec.Body.String(), `"TechnologiesUsed"`)
	})

	t.Run("health", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

		var health HealthResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &health))
		assert.Equal(t, "ok", health.Status)
		assert.Equal(t, "content", health.Service)
	})
}

func TestContactEndpoint(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		mailErr        error
		expectedStatus int
		expectedError  string
	}{
		{
			name:           "valid submission",
			body:           `{"name": "Ada", "email": "ada@example.com", "message": "Hello"}`,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "invalid email",
			body:           `{"name": "Ada", "email": "not-an-email", "message": "Hello"}`,
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Invalid email",
		},
		{
			name:           "missing name",
			body:           `{"email": "ada@example.com", "message": "Hello"}`,
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Name is required",
		},
		{
			name:           "blank message",
			body:           `{"name": "Ada", "email": "ada@example.com", "message": "   "}`,
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Message is required",
		},
		{
			name:           "empty body",
			body:           ``,
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Name is required",
		},
		{
			name:           "mail delivery fails",
			body:           `{"name": "Ada", "email": "ada@example.com", "message": "Hello"}`,
			mailErr:        errors.New("resend down"),
			expectedStatus: http.StatusBadGateway,
			expectedError:  "Failed to send message",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mailer := &fakeMailer{err: tt.mailErr}
			router := newContentRouter(newTestStore(t), mailer,
				withConfig(map[string]string{"CONTACT_RECIPIENTS": "me@example.com"}))

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			router.ServeHTTP(rec, req)

			require.Equal(t, tt.expectedStatus, rec.Code)
			var resp models.ContactErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tt.expectedError, resp.Error)

			if tt.expectedStatus != http.StatusBadRequest {
				assert.Equal(t, "Portfolio Contact: Ada", mailer.subject)
				assert.Equal(t, "ada@example.com", mailer.replyTo)
				assert.Equal(t, []string{"me@example.com"}, mailer.to)
			} else {
				assert.Empty(t, mailer.subject)
			}
		})
	}
}

func TestContactEndpoint_WithoutMailer(t *testing.T) {
	router := newContentRouter(newTestStore(t), nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/contact",
		strings.NewReader(`{"name": "Ada", "email": "ada@example.com", "message": "Hello"}`))
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{}`, rec.Body.String())
}

func TestContactEndpoint_MalformedJSON(t *testing.T) {
	router := newContentRouter(newTestStore(t), nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(`{"name":`)))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "payload", resp.Field)
}

func TestContactHandler_ValidationError(t *testing.T) {
	h := newContactHandler(nil, nil)

	assert.Nil(t, h.validationError(models.ContactForm{Name: "Ada", Email: "ada@example.com", Message: "Hi"}))

	err := h.validationError(models.ContactForm{Email: "ada@example.com", Message: "Hi"})
	require.NotNil(t, err)
	assert.True(t, errs.IsMissingRequiredFieldError(err))
	assert.Equal(t, "Name", err.Field)

	err = h.validationError(models.ContactForm{Name: "Ada", Email: "not-an-email", Message: "Hi"})
	require.NotNil(t, err)
	assert.True(t, errs.IsInvalidFieldError(err))
	assert.Equal(t, "Email", err.Field)
	assert.Equal(t, "Invalid email", h.validationMessage(models.ContactForm{Name: "Ada", Email: "not-an-email", Message: "Hi"}))
}

func TestContentRoutes_CORS(t *testing.T) {
	router := newContentRouter(newTestStore(t), nil,
		withConfig(map[string]string{"ACCEPTED_ORIGINS": "https://site.example"}))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodOptions, "/api/contact", nil)
	req.Header.Set("Origin", "https://site.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	router.ServeHTTP(rec, req)
	assert.Equal(t, "https://site.example", rec.Header().Get("Access-Control-Allow-Origin"))

	rec = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/api/profile", nil)
	req.Header.Set("Origin", "https://other.example")
	router.ServeHTTP(rec, req)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/rpupo63/portfolio-site/errs"
	"github.com/rpupo63/portfolio-site/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Fixed endpoints of the portfolio API
const (
	ProfilePath    = "/api/profile"
	ProjectsPath   = "/api/projects"
	SkillsPath     = "/api/skills"
	ExperiencePath = "/api/experience"
	ContactPath    = "/api/contact"
)

// upper bound on how much of a rejected response we read looking for its error field
const maxErrorBodySize = 64 * 1024

// PortfolioClient issues the site's requests against the portfolio API.
// Every call is a single request: no retries, no caching between calls.
type PortfolioClient struct {
	baseURL    string
	httpClient *http.Client
	logger     zerolog.Logger
}

type ClientOption func(*PortfolioClient)

func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *PortfolioClient) {
		c.httpClient = httpClient
	}
}

func WithLogger(logger zerolog.Logger) ClientOption {
	return func(c *PortfolioClient) {
		c.logger = logger
	}
}

func NewPortfolioClient(baseURL string, opts ...ClientOption) *PortfolioClient {
	client := &PortfolioClient{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{},
		logger:     log.With().Str("service", "portfolioClient").Logger(),
	}
	for _, opt := range opts {
		opt(client)
	}
	return client
}

// BaseURL returns the API root the client was built with
func (c *PortfolioClient) BaseURL() string {
	return c.baseURL
}

// FetchProfile retrieves the singleton profile record
func (c *PortfolioClient) FetchProfile(ctx context.Context) (*models.Profile, error) {
	var profile models.Profile
	if err := c.getJSON(ctx, ProfilePath, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// FetchProjects retrieves the project list
func (c *PortfolioClient) FetchProjects(ctx context.Context) ([]models.Project, error) {
	var projects []models.Project
	if err := c.getJSON(ctx, ProjectsPath, &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

// FetchSkills retrieves the skills collection. Callers only use element 0.
func (c *PortfolioClient) FetchSkills(ctx context.Context) ([]models.SkillsResponse, error) {
	var skills []models.SkillsResponse
	if err := c.getJSON(ctx, SkillsPath, &skills); err != nil {
		return nil, err
	}
	return skills, nil
}

// FetchExperience retrieves the employment records in API order
func (c *PortfolioClient) FetchExperience(ctx context.Context) ([]models.Experience, error) {
	var experience []models.Experience
	if err := c.getJSON(ctx, ExperiencePath, &experience); err != nil {
		return nil, err
	}
	return experience, nil
}

// SubmitContact posts the contact form. Any 2xx answer is a success; otherwise
// the returned error carries the upstream status and, when the body has one, its
// error message (see errs.UpstreamMessage).
func (c *PortfolioClient) SubmitContact(ctx context.Context, form models.ContactForm) error {
	payload, err := json.Marshal(form)
	if err != nil {
		return errs.NewJSONMarshalError("submit contact", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+ContactPath, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to create contact request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errs.NewServiceUnreachableError(c.baseURL, err)
	}
	defer resp.Body.Close()

	if isSuccess(resp.StatusCode) {
		_, _ = io.Copy(io.Discard, resp.Body)
		c.logger.Info().Str("path", ContactPath).Int("status", resp.StatusCode).Msg("contact form submitted")
		return nil
	}

	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
	c.logger.Warn().Str("path", ContactPath).Int("status", resp.StatusCode).Msg("contact form rejected")
	return errs.NewUpstreamStatusError(ContactPath, resp.StatusCode, errorMessage(body))
}

func (c *PortfolioClient) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("failed to create request for %s: %w", path, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errs.NewServiceUnreachableError(c.baseURL, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return errs.NewServiceUnreachableError(c.baseURL, err)
	}

	c.logger.Debug().
		Str("path", path).
		Int("status", resp.StatusCode).
		Int("bytes", len(body)).
		Msg("portfolio API response")

	if !isSuccess(resp.StatusCode) {
		return errs.NewUpstreamStatusError(path, resp.StatusCode, errorMessage(body))
	}

	if err := json.Unmarshal(body, out); err != nil {
		return errs.NewJSONUnmarshalError("GET "+path, err)
	}
	return nil
}

func isSuccess(statusCode int) bool {
	return statusCode >= 200 && statusCode < 300
}

// errorMessage extracts the `error` field of a JSON error body, "" if absent
func errorMessage(body []byte) string {
	var errorResp models.ContactErrorResponse
	if err := json.Unmarshal(body, &errorResp); err != nil {
		return ""
	}
	return strings.TrimSpace(errorResp.Error)
}

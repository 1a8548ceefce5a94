package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/rpupo63/portfolio-site/errs"
	"github.com/rpupo63/portfolio-site/models"
	"github.com/rpupo63/portfolio-site/services"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const maxContactBodySize = 64 * 1024

// ContactMailer delivers contact submissions. *services.Mailer satisfies it.
type ContactMailer interface {
	SendEmail(ctx context.Context, subject, body, replyTo string, recipients []string) error
}

type contactHandler struct {
	responder  Responder
	logger     zerolog.Logger
	validate   *validator.Validate
	mailer     ContactMailer
	recipients []string
}

// newContactHandler builds the contact endpoint. With no mailer or no
// recipients, valid submissions are only logged.
func newContactHandler(mailer ContactMailer, recipients []string) contactHandler {
	logger := log.With().Str("handlerName", "contactHandler").Logger()

	return contactHandler{
		responder:  NewResponder(logger),
		logger:     logger,
		validate:   validator.New(validator.WithRequiredStructEnabled()),
		mailer:     mailer,
		recipients: recipients,
	}
}

func (h contactHandler) submitContact() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var form models.ContactForm
		body := http.MaxBytesReader(w, r.Body, maxContactBodySize)
		if err := json.NewDecoder(body).Decode(&form); err != nil && !errors.Is(err, io.EOF) {
			h.responder.WriteError(w, errs.NewMalformedPayloadError("contact form", err))
			return
		}

		form.Name = strings.TrimSpace(form.Name)
		form.Email = strings.TrimSpace(form.Email)
		form.Message = strings.TrimSpace(form.Message)

		if msg := h.validationMessage(form); msg != "" {
			h.logger.Debug().Str("reason", msg).Msg("contact form rejected")
			h.responder.WriteJSONStatus(w, http.StatusBadRequest, models.ContactErrorResponse{Error: msg})
			return
		}

		if h.mailer == nil || len(h.recipients) == 0 {
			h.logger.Info().
				Str("name", form.Name).
				Str("email", form.Email).
				Int("messageLength", len(form.Message)).
				Msg("contact form received, mail delivery not configured")
			h.responder.WriteJSON(w, models.ContactErrorResponse{})
			return
		}

		subject, html, err := services.ContactEmail(form)
		if err != nil {
			h.responder.WriteError(w, errs.NewInternalErrorWithCause("failed to render contact email", err))
			return
		}
		if err := h.mailer.SendEmail(r.Context(), subject, html, form.Email, h.recipients); err != nil {
			h.logger.Error().Err(err).Msg("failed to forward contact form")
			h.responder.WriteJSONStatus(w, http.StatusBadGateway, models.ContactErrorResponse{Error: "Failed to send message"})
			return
		}

		h.logger.Info().Str("email", form.Email).Msg("contact form forwarded")
		h.responder.WriteJSON(w, models.ContactErrorResponse{})
	}
}

// validationMessage returns the message for the first failed rule, "" when
// the form is valid.
func (h contactHandler) validationMessage(form models.ContactForm) string {
	err := h.validationError(form)
	switch {
	case err == nil:
		return ""
	case errs.IsMissingRequiredFieldError(err):
		return fmt.Sprintf("%s is required", err.Field)
	case errs.IsInvalidFieldError(err) && err.Field == "Email":
		return "Invalid email"
	case errs.IsInvalidFieldError(err):
		return fmt.Sprintf("Invalid %s", strings.ToLower(err.Field))
	default:
		return "Invalid contact form"
	}
}

func (h contactHandler) validationError(form models.ContactForm) *errs.ApiErr {
	err := h.validate.Struct(form)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) || len(validationErrs) == 0 {
		return errs.NewMalformedPayloadError("contact form", err)
	}

	fieldErr := validationErrs[0]
	if fieldErr.Tag() == "required" {
		return errs.NewMissingRequiredFieldError(fieldErr.Field())
	}
	return errs.NewInvalidFieldError(fieldErr.Field(), fieldErr.Tag())
}

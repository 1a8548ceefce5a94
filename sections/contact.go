package sections

import (
	"context"
	"fmt"

	"github.com/rpupo63/portfolio-site/errs"
	"github.com/rpupo63/portfolio-site/models"
	"github.com/rs/zerolog"
)

// Messages shown by the contact section
const (
	MessageSent          = "Message sent successfully!"
	AlertRejected        = "Something went wrong."
	AlertSubmissionError = "Error submitting form."
)

// Contact is the controlled contact form. It fetches nothing on mount.
type Contact struct {
	*lifecycle
	api    ContactSubmitter
	logger zerolog.Logger

	form      models.ContactForm
	submitted bool
}

type ContactState struct {
	Form      models.ContactForm
	Submitted bool
}

// SubmitResult is the outcome of one submission. Alert is set on failure and is
// meant for a blocking browser alert.
type SubmitResult struct {
	OK    bool
	Alert string
}

func NewContact(api ContactSubmitter, opts ...Option) *Contact {
	o := buildOptions(opts)
	return &Contact{
		lifecycle: newLifecycle(),
		api:       api,
		logger:    o.logger.With().Str("section", "contact").Logger(),
	}
}

func (c *Contact) Name() string { return "contact" }

func (c *Contact) Mount(ctx context.Context) {
	c.mount(ctx, nil)
}

// SetField updates one form field by its input name.
func (c *Contact) SetField(name, value string) error {
	var err error
	c.apply(func() {
		switch name {
		case "name":
			c.form.Name = value
		case "email":
			c.form.Email = value
		case "message":
			c.form.Message = value
		default:
			err = fmt.Errorf("unknown contact field %q", name)
		}
	})
	return err
}

// Submit posts the current form. On success the fields are cleared and the
// confirmation is shown; on failure the fields keep their values.
func (c *Contact) Submit(ctx context.Context) SubmitResult {
	var form models.ContactForm
	if !c.apply(func() { form = c.form }) {
		return SubmitResult{Alert: AlertSubmissionError}
	}

	err := c.api.SubmitContact(ctx, form)
	if err == nil {
		c.apply(func() {
			c.submitted = true
			c.form = models.ContactForm{}
		})
		return SubmitResult{OK: true}
	}

	if errs.IsUpstreamStatusError(err) {
		c.logger.Warn().Err(err).Msg("contact submission rejected")
		if msg := errs.UpstreamMessage(err); msg != "" {
			return SubmitResult{Alert: msg}
		}
		return SubmitResult{Alert: AlertRejected}
	}

	c.logger.Error().Err(err).Msg("contact submission failed")
	return SubmitResult{Alert: AlertSubmissionError}
}

func (c *Contact) State() ContactState {
	c.mu.Lock()
	defer c.mu.Unlock()

	return ContactState{Form: c.form, Submitted: c.submitted}
}

package services

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/rpupo63/portfolio-site/models"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// ContactEmail renders the notification sent for a contact form submission.
func ContactEmail(form models.ContactForm) (subject string, body string, err error) {
	subject = fmt.Sprintf("Portfolio Contact: %s", form.Name)

	var paragraphs []g.Node
	for _, line := range strings.Split(form.Message, "\n") {
		paragraphs = append(paragraphs, h.P(g.Text(line)))
	}

	doc := h.Div(
		h.P(g.Text("New contact form submission from your portfolio:")),
		h.Ul(
			h.Li(h.Strong(g.Text("Name: ")), g.Text(form.Name)),
			h.Li(h.Strong(g.Text("Email: ")), h.A(h.Href("mailto:"+form.Email), g.Text(form.Email))),
		),
		h.Div(paragraphs...),
		h.Hr(),
		h.P(h.Small(g.Text("Sent from your portfolio contact form"))),
	)

	var buf bytes.Buffer
	if err := doc.Render(&buf); err != nil {
		return "", "", err
	}
	return subject, buf.String(), nil
}

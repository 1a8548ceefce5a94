package views

import (
	"github.com/google/uuid"
	"github.com/rpupo63/portfolio-site/sections"
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	h "maragu.dev/gomponents/html"
)

// Contact renders the contact form. Inputs carry the current field values so a
// failed submission keeps what the visitor typed.
func Contact(pageID uuid.UUID, state sections.ContactState) g.Node {
	return h.Section(
		h.ID("contact"),
		h.Class("py-24"),
		h.Div(
			h.Class("max-w-2xl mx-auto px-6"),
			sectionTitle("Get In Touch"),
			g.If(state.Submitted,
				h.P(
					h.Class("mb-6 rounded bg-emerald-500/20 p-4 text-center text-emerald-300"),
					g.Attr("role", "status"),
					g.Text(sections.MessageSent),
				),
			),
			h.Form(
				h.Class("flex flex-col gap-4"),
				Motion(FadeUp, CardStep),
				hx.Post(PagePath(pageID, "contact")),
				hx.Target("#contact"),
				hx.Swap("outerHTML"),
				contactInput("text", "name", "Your Name", state.Form.Name),
				contactInput("email", "email", "Your Email", state.Form.Email),
				h.Textarea(
					h.Name("message"),
					h.Placeholder("Your Message"),
					h.Required(),
					g.Attr("rows", "5"),
					h.Class(inputClass),
					g.Text(state.Form.Message),
				),
				h.Button(
					h.Type("submit"),
					h.Class("rounded bg-indigo-500 px-6 py-3 font-semibold hover:bg-indigo-400"),
					g.Text("Send Message"),
				),
			),
		),
	)
}

const inputClass = "rounded bg-slate-900 border border-slate-700 px-4 py-3 focus:border-indigo-500 focus:outline-none"

func contactInput(inputType, name, placeholder, value string) g.Node {
	return h.Input(
		h.Type(inputType),
		h.Name(name),
		h.Placeholder(placeholder),
		h.Value(value),
		h.Required(),
		h.Class(inputClass),
	)
}

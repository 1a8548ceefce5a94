package views

import (
	"github.com/google/uuid"
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	h "maragu.dev/gomponents/html"
)

// LoadingText is shown while a section's fetch is in flight
const LoadingText = "Loading..."

// loading renders the placeholder of a section that has not settled. It polls
// its own route and is replaced once the server has the data.
func loading(pageID uuid.UUID, section, anchor string) g.Node {
	return h.Section(
		h.ID(anchor),
		h.Class("min-h-[40vh] flex items-center justify-center"),
		hx.Get(SectionPath(pageID, section)),
		hx.Trigger("every 1s"),
		hx.Swap("outerHTML"),
		h.P(h.Class("text-slate-400 animate-pulse"), g.Text(LoadingText)),
	)
}

func sectionTitle(title string) g.Node {
	return h.H2(
		h.Class("text-3xl md:text-4xl font-bold mb-12 text-center"),
		Motion(FadeUp, 0),
		g.Text(title),
	)
}

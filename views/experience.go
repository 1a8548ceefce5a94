package views

import (
	"github.com/google/uuid"
	"github.com/rpupo63/portfolio-site/sections"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

func Experience(pageID uuid.UUID, state sections.ExperienceState) g.Node {
	if !state.Settled {
		return loading(pageID, "experience", "experience")
	}

	entries := make([]g.Node, 0, len(state.Entries))
	for _, entry := range state.Entries {
		entries = append(entries, timelineEntry(entry))
	}

	return h.Section(
		h.ID("experience"),
		h.Class("py-24 bg-slate-900/40"),
		h.Div(
			h.Class("max-w-5xl mx-auto px-6"),
			sectionTitle("Experience"),
			h.Div(
				h.Class("relative"),
				h.Div(h.Class("absolute left-1/2 top-0 bottom-0 w-px bg-slate-700 hidden md:block")),
				g.Group(entries),
			),
		),
	)
}

func timelineEntry(entry sections.TimelineEntry) g.Node {
	motion := FadeRight
	align := "md:ml-auto md:pl-12"
	if entry.Side == sections.SideLeft {
		motion = FadeLeft
		align = "md:mr-auto md:pr-12 md:text-right"
	}

	statusClass := "bg-slate-700 text-slate-300"
	if entry.CurrentlyWorking {
		statusClass = "bg-emerald-500/20 text-emerald-300"
	}

	return h.Div(
		h.Class("mb-12 md:w-1/2 "+align),
		h.Data("side", string(entry.Side)),
		Motion(motion, 0),
		h.Div(
			h.Class("rounded-xl bg-slate-900 p-6"),
			h.Div(
				h.Class("flex items-center justify-between gap-4 mb-2"),
				h.Span(h.Class("text-sm text-slate-400"), g.Text(entry.Period)),
				h.Span(h.Class("rounded-full px-3 py-1 text-xs "+statusClass), g.Text(entry.Status)),
			),
			h.H3(h.Class("text-xl font-bold"), g.Text(entry.Position)),
			h.P(h.Class("text-indigo-400 mb-4"), g.Text(entry.Company)),
			g.If(entry.Description != "", h.P(h.Class("text-slate-400 mb-4"), g.Text(entry.Description))),
			techChips(entry.TechnologiesUsed),
		),
	)
}

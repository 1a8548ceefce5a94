package views

import (
	"github.com/google/uuid"
	"github.com/rpupo63/portfolio-site/sections"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

const aboutBioID = "about-bio"

func About(pageID uuid.UUID, state sections.AboutState) g.Node {
	if !state.Settled {
		return loading(pageID, "about", "about")
	}
	if !state.Loaded {
		return h.Section(h.ID("about"), h.Class("py-24"))
	}

	return h.Section(
		h.ID("about"),
		h.Class("py-24"),
		h.Div(
			h.Class("max-w-6xl mx-auto px-6"),
			sectionTitle("About Me"),
			h.Div(
				h.Class("grid md:grid-cols-2 gap-12"),
				h.Div(
					Motion(FadeLeft, 0),
					AboutBio(pageID, state),
					g.If(state.ResumeURL != "",
						h.A(
							h.Href(state.ResumeURL),
							g.Attr("download"),
							h.Class("inline-block mt-8 rounded bg-indigo-500 px-6 py-3 font-semibold hover:bg-indigo-400"),
							g.Text("Download CV"),
						),
					),
				),
				h.Div(
					h.Class("grid grid-cols-2 gap-4"),
					g.Group(infoCards(state.Info)),
				),
			),
		),
	)
}

// AboutBio is the About paragraph with its toggle
func AboutBio(pageID uuid.UUID, state sections.AboutState) g.Node {
	return bioBlock(aboutBioID, PagePath(pageID, "about", "bio"), state.Bio, state.CanToggleBio, state.BioExpanded,
		"text-slate-300 leading-relaxed")
}

func infoCards(items []sections.InfoItem) []g.Node {
	cards := make([]g.Node, 0, len(items))
	for i, item := range items {
		cards = append(cards, h.Div(
			h.Class("rounded-lg bg-slate-900 p-4"),
			Motion(FadeUp, stagger(CardStep, i)),
			h.P(h.Class("text-sm text-slate-400"), g.Text(item.Label)),
			h.P(h.Class("font-semibold break-words"), g.Text(item.Value)),
		))
	}
	return cards
}

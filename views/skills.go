package views

import (
	"github.com/google/uuid"
	"github.com/rpupo63/portfolio-site/models"
	"github.com/rpupo63/portfolio-site/sections"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

func Skills(pageID uuid.UUID, state sections.SkillsState) g.Node {
	if !state.Settled {
		return loading(pageID, "skills", "skills")
	}

	tiles := make([]g.Node, 0, len(state.Skills))
	for i, skill := range state.Skills {
		tiles = append(tiles, skillTile(skill, i))
	}

	return h.Section(
		h.ID("skills"),
		h.Class("py-24"),
		h.Div(
			h.Class("max-w-6xl mx-auto px-6"),
			sectionTitle("Skills"),
			h.Div(h.Class("grid grid-cols-3 md:grid-cols-6 gap-6"), g.Group(tiles)),
		),
	)
}

func skillTile(skill models.SkillItem, i int) g.Node {
	return h.Div(
		h.Class("flex flex-col items-center gap-2 rounded-lg bg-slate-900 p-4"),
		Motion(Scale, stagger(ChipStep, i)),
		g.If(skill.Logo != "",
			h.Img(h.Src(skill.Logo), h.Alt(skill.Name), h.Class("h-12 w-12 object-contain"), g.Attr("loading", "lazy")),
		),
		h.Span(h.Class("text-sm"), g.Text(skill.Name)),
	)
}

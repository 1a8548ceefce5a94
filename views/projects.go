package views

import (
	"github.com/google/uuid"
	"github.com/rpupo63/portfolio-site/models"
	"github.com/rpupo63/portfolio-site/sections"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// Projects renders the work section. The nav links to it as "#work".
func Projects(pageID uuid.UUID, state sections.ProjectsState) g.Node {
	if state.Status == sections.ProjectsLoading {
		return loading(pageID, "projects", "work")
	}

	var body g.Node
	if state.Status == sections.ProjectsEmpty {
		body = h.P(h.Class("text-center text-slate-400"), g.Text(sections.EmptyProjectsMessage))
	} else {
		cards := make([]g.Node, 0, len(state.Projects))
		for i, project := range state.Projects {
			cards = append(cards, projectCard(project, i))
		}
		body = h.Div(h.Class("grid md:grid-cols-2 lg:grid-cols-3 gap-8"), g.Group(cards))
	}

	return h.Section(
		h.ID("work"),
		h.Class("py-24 bg-slate-900/40"),
		h.Div(
			h.Class("max-w-6xl mx-auto px-6"),
			sectionTitle("My Work"),
			body,
		),
	)
}

func projectCard(project models.Project, i int) g.Node {
	return h.Article(
		h.Class("rounded-xl bg-slate-900 overflow-hidden flex flex-col"),
		h.Data("project-id", project.ID.String()),
		Motion(FadeUp, stagger(CardStep, i)),
		g.If(project.ImageURL != "",
			h.Img(h.Src(project.ImageURL), h.Alt(project.Title), h.Class("h-48 w-full object-cover")),
		),
		h.Div(
			h.Class("p-6 flex flex-col flex-1"),
			h.H3(h.Class("text-xl font-bold mb-2"), g.Text(project.Title)),
			g.If(project.Description != "",
				h.P(h.Class("text-slate-400 mb-4 flex-1"), g.Text(project.Description)),
			),
			techChips(project.TechStack),
			h.Div(
				h.Class("flex gap-4 mt-6"),
				g.If(project.LiveLink != "", externalLink(project.LiveLink, "Live Demo")),
				g.If(project.GithubLink != "", externalLink(project.GithubLink, "GitHub")),
			),
		),
	)
}

func techChips(techs []string) g.Node {
	if len(techs) == 0 {
		return nil
	}
	chips := make([]g.Node, 0, len(techs))
	for i, tech := range techs {
		chips = append(chips, h.Span(
			h.Class("rounded-full bg-indigo-500/10 text-indigo-300 px-3 py-1 text-xs"),
			Motion(Scale, stagger(ChipStep, i)),
			g.Text(tech),
		))
	}
	return h.Div(h.Class("flex flex-wrap gap-2"), g.Group(chips))
}

func externalLink(href, label string) g.Node {
	return h.A(
		h.Href(href),
		h.Target("_blank"),
		h.Rel("noopener noreferrer"),
		h.Class("text-indigo-400 hover:underline"),
		g.Text(label),
	)
}

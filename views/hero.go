package views

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rpupo63/portfolio-site/models"
	"github.com/rpupo63/portfolio-site/sections"
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	h "maragu.dev/gomponents/html"
)

const (
	heroRoleID = "hero-role"
	heroBioID  = "hero-bio"
)

// Hero renders the landing section. roleEvery is the rotation interval the
// role element polls at.
func Hero(pageID uuid.UUID, state sections.HeroState, roleEvery time.Duration) g.Node {
	if !state.Settled {
		return loading(pageID, "hero", "home")
	}
	if !state.Loaded {
		return h.Section(h.ID("home"), h.Class("min-h-screen"))
	}

	profile := state.Profile
	return h.Section(
		h.ID("home"),
		h.Class("min-h-screen flex items-center pt-24"),
		h.Div(
			h.Class("max-w-6xl mx-auto px-6 grid md:grid-cols-2 gap-12 items-center"),
			h.Div(
				h.P(h.Class("text-indigo-400 mb-2"), Motion(FadeUp, 0), g.Text("Hello, I'm")),
				h.H1(
					h.Class("text-5xl md:text-6xl font-extrabold mb-4"),
					Motion(FadeUp, stagger(HeroStep, 1)),
					g.Text(profile.Name),
				),
				h.H2(
					h.Class("text-2xl md:text-3xl text-slate-300 mb-6"),
					Motion(FadeUp, stagger(HeroStep, 2)),
					HeroRole(pageID, state.Role, roleEvery),
				),
				h.Div(Motion(FadeUp, stagger(HeroStep, 3)), HeroBio(pageID, state)),
				h.Div(
					h.Class("flex flex-wrap gap-4 mt-8"),
					Motion(FadeUp, stagger(HeroStep, 4)),
					g.If(profile.ResumeURL != "",
						h.A(
							h.Href(profile.ResumeURL),
							g.Attr("download"),
							h.Class("rounded bg-indigo-500 px-6 py-3 font-semibold hover:bg-indigo-400"),
							g.Text("Download CV"),
						),
					),
					h.A(
						h.Href("#work"),
						h.Class("rounded border border-indigo-500 px-6 py-3 font-semibold hover:bg-indigo-500/10"),
						g.Text("View My Work"),
					),
				),
				socialLinks(profile.SocialLinks),
			),
			g.If(profile.AvatarURL != "",
				h.Img(
					h.Src(profile.AvatarURL),
					h.Alt(profile.Name),
					h.Class("w-72 h-72 md:w-96 md:h-96 rounded-full object-cover mx-auto"),
					Motion(Scale, stagger(HeroStep, 2)),
				),
			),
		),
	)
}

// HeroRole is the rotating role line. It polls for the current role so the
// rotation continues without a full re-render.
func HeroRole(pageID uuid.UUID, role string, every time.Duration) g.Node {
	if every <= 0 {
		every = sections.DefaultRoleInterval
	}
	return h.Span(
		h.ID(heroRoleID),
		h.Class("text-indigo-400"),
		hx.Get(PagePath(pageID, "hero", "role")),
		hx.Trigger(fmt.Sprintf("every %dms", every.Milliseconds())),
		hx.Swap("outerHTML"),
		g.Text(role),
	)
}

// HeroBio is the bio paragraph with its Read More / Read Less control
func HeroBio(pageID uuid.UUID, state sections.HeroState) g.Node {
	return bioBlock(heroBioID, PagePath(pageID, "hero", "bio"), state.Bio, state.CanToggleBio, state.BioExpanded,
		"text-lg text-slate-300 leading-relaxed")
}

func bioBlock(id, togglePath, text string, canToggle, expanded bool, class string) g.Node {
	label := "Read More"
	if expanded {
		label = "Read Less"
	}
	return h.Div(
		h.ID(id),
		h.P(h.Class(class), g.Text(text)),
		g.If(canToggle,
			h.Button(
				h.Type("button"),
				h.Class("mt-2 text-indigo-400 hover:underline"),
				hx.Post(togglePath),
				hx.Target("#"+id),
				hx.Swap("outerHTML"),
				g.Text(label),
			),
		),
	)
}

func socialLinks(links models.SocialLinks) g.Node {
	type social struct {
		label string
		href  string
	}
	all := []social{
		{label: "GitHub", href: links.Github},
		{label: "LinkedIn", href: links.Linkedin},
		{label: "Twitter", href: links.Twitter},
	}

	var nodes []g.Node
	for _, link := range all {
		if link.href == "" {
			continue
		}
		nodes = append(nodes, h.A(
			h.Href(link.href),
			h.Target("_blank"),
			h.Rel("noopener noreferrer"),
			h.Class("text-slate-400 hover:text-indigo-400"),
			g.Text(link.label),
		))
	}
	if len(nodes) == 0 {
		return nil
	}
	return h.Div(h.Class("flex gap-6 mt-8"), Motion(FadeUp, stagger(HeroStep, 5)), g.Group(nodes))
}

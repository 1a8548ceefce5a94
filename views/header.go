package views

import (
	"github.com/google/uuid"
	"github.com/rpupo63/portfolio-site/sections"
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	h "maragu.dev/gomponents/html"
)

const headerID = "site-header"

// Header renders the fixed navigation bar and, when open, the mobile panel.
func Header(pageID uuid.UUID, state sections.HeaderState) g.Node {
	menuPath := PagePath(pageID, "header", "menu")
	toggleLabel := "Open menu"
	if state.MenuOpen {
		toggleLabel = "Close menu"
	}

	return h.Header(
		h.ID(headerID),
		h.Class("fixed top-0 inset-x-0 z-50 bg-slate-950/80 backdrop-blur"),
		h.Div(
			h.Class("max-w-6xl mx-auto flex items-center justify-between px-6 py-4"),
			h.A(
				h.Href("#home"),
				h.Class("flex items-center gap-2 font-bold text-lg"),
				h.Span(h.Class("rounded bg-indigo-500 px-2 py-1"), g.Text(state.Initials)),
				h.Span(g.Text(state.SiteName)),
			),
			h.Nav(
				h.Class("hidden md:flex gap-8"),
				g.Map(state.Nav, func(item sections.NavItem) g.Node {
					return h.A(h.Href(item.Href), h.Class("hover:text-indigo-400"), g.Text(item.Label))
				}),
			),
			h.Button(
				h.Type("button"),
				h.Class("md:hidden"),
				h.Aria("label", toggleLabel),
				h.Aria("expanded", boolAttr(state.MenuOpen)),
				hx.Post(menuPath),
				hx.Target("#"+headerID),
				hx.Swap("outerHTML"),
				g.If(state.MenuOpen, g.Text("✕")),
				g.If(!state.MenuOpen, g.Text("☰")),
			),
		),
		g.If(state.MenuOpen,
			h.Nav(
				h.Class("md:hidden flex flex-col gap-4 px-6 pb-6"),
				g.Map(state.Nav, func(item sections.NavItem) g.Node {
					// following a link closes the panel, then scrolls to the section
					return h.A(
						h.Href(item.Href),
						hx.Post(menuPath+"?action=close"),
						hx.Target("#"+headerID),
						hx.Swap("outerHTML show:"+item.Href+":top"),
						g.Text(item.Label),
					)
				}),
			),
		),
	)
}

func boolAttr(b bool) string {
	if b {
		return "true"
	}
	return "false"
}

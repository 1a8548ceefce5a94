package views

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rpupo63/portfolio-site/sections"
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	h "maragu.dev/gomponents/html"
)

// Options are the render settings shared by every page
type Options struct {
	Title        string
	RoleInterval time.Duration
	// KeepAlive is how often an open page pings the server so the idle sweep
	// leaves it mounted. Zero disables the ping.
	KeepAlive time.Duration
}

// Page renders the whole document for a mounted page
func Page(page *sections.Page, opts Options) g.Node {
	title := opts.Title
	if title == "" {
		title = page.Header.State().SiteName
	}

	return Layout(title, page.ID,
		Header(page.ID, page.Header.State()),
		h.Main(
			Hero(page.ID, page.Hero.State(), opts.RoleInterval),
			About(page.ID, page.About.State()),
			Projects(page.ID, page.Projects.State()),
			Skills(page.ID, page.Skills.State()),
			Experience(page.ID, page.Experience.State()),
			Contact(page.ID, page.Contact.State()),
		),
		footer(page.Header.State().SiteName),
		keepAlive(page.ID, opts.KeepAlive),
	)
}

func keepAlive(pageID uuid.UUID, every time.Duration) g.Node {
	if every <= 0 {
		return nil
	}
	return h.Div(
		h.ID("keepalive"),
		h.Class("hidden"),
		hx.Post(PagePath(pageID, "keepalive")),
		hx.Trigger(fmt.Sprintf("every %dms", every.Milliseconds())),
		hx.Swap("none"),
	)
}

// Section renders a single section of page by name
func Section(page *sections.Page, name string, opts Options) (g.Node, bool) {
	switch name {
	case "header":
		return Header(page.ID, page.Header.State()), true
	case "hero":
		return Hero(page.ID, page.Hero.State(), opts.RoleInterval), true
	case "about":
		return About(page.ID, page.About.State()), true
	case "projects":
		return Projects(page.ID, page.Projects.State()), true
	case "skills":
		return Skills(page.ID, page.Skills.State()), true
	case "experience":
		return Experience(page.ID, page.Experience.State()), true
	case "contact":
		return Contact(page.ID, page.Contact.State()), true
	default:
		return nil, false
	}
}

func footer(siteName string) g.Node {
	return h.Footer(
		h.Class("py-8 text-center text-sm text-slate-500"),
		g.Textf("© %d %s", time.Now().Year(), siteName),
	)
}

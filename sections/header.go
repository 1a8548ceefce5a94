package sections

import (
	"context"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var navLabels = []string{"Home", "About", "Work", "Skills"}

type NavItem struct {
	Label string
	Href  string
}

// Header holds the mobile navigation toggle. It has no data dependency.
type Header struct {
	*lifecycle
	siteName string
	menuOpen bool
}

type HeaderState struct {
	SiteName string
	Initials string
	MenuOpen bool
	Nav      []NavItem
}

func NewHeader(siteName string) *Header {
	return &Header{lifecycle: newLifecycle(), siteName: siteName}
}

func (h *Header) Name() string { return "header" }

func (h *Header) Mount(ctx context.Context) {
	h.mount(ctx, nil)
}

// ToggleMenu opens or closes the mobile navigation panel
func (h *Header) ToggleMenu() bool {
	open := false
	h.apply(func() {
		h.menuOpen = !h.menuOpen
		open = h.menuOpen
	})
	return open
}

// CloseMenu closes the mobile panel after a navigation link was followed
func (h *Header) CloseMenu() {
	h.apply(func() {
		h.menuOpen = false
	})
}

func (h *Header) State() HeaderState {
	h.mu.Lock()
	defer h.mu.Unlock()

	return HeaderState{
		SiteName: h.siteName,
		Initials: Initials(h.siteName),
		MenuOpen: h.menuOpen,
		Nav:      NavItems(),
	}
}

// Initials returns the upper-cased first letter of each word of name
func Initials(name string) string {
	var b strings.Builder
	for _, word := range strings.Fields(name) {
		for _, r := range word {
			b.WriteRune(unicode.ToUpper(r))
			break
		}
	}
	return b.String()
}

// NavItems links each label to the section anchor of the same lower-cased name
func NavItems() []NavItem {
	lower := cases.Lower(language.Und)
	items := make([]NavItem, 0, len(navLabels))
	for _, label := range navLabels {
		items = append(items, NavItem{Label: label, Href: "#" + lower.String(label)})
	}
	return items
}

package views

import (
	"strings"

	"github.com/google/uuid"
)

// PagePath builds a fragment route of a mounted page
func PagePath(pageID uuid.UUID, parts ...string) string {
	return "/page/" + pageID.String() + "/" + strings.Join(parts, "/")
}

// SectionPath is the route that re-renders one section
func SectionPath(pageID uuid.UUID, section string) string {
	return PagePath(pageID, "sections", section)
}

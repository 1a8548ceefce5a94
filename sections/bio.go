package sections

import "unicode/utf8"

// BioPreviewLength is the number of characters shown before "Read More". The
// same length is used when collapsing an expanded bio.
const BioPreviewLength = 150

const ellipsis = "..."

// TruncateBio cuts s to n runes and appends an ellipsis. Strings of n runes or
// fewer are returned unchanged.
func TruncateBio(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return string(runes[:n]) + ellipsis
}

// bioToggle is the expanded/collapsed state of a bio paragraph
type bioToggle struct {
	full     string
	expanded bool
}

func (b bioToggle) text() string {
	if b.expanded {
		return b.full
	}
	return TruncateBio(b.full, BioPreviewLength)
}

func (b bioToggle) toggleable() bool {
	return utf8.RuneCountInString(b.full) > BioPreviewLength
}

func (b *bioToggle) toggle() {
	if !b.toggleable() {
		return
	}
	b.expanded = !b.expanded
}

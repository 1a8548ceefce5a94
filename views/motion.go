package views

import (
	"strconv"
	"time"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// Motion kinds understood by the layout's reveal script
const (
	FadeUp    = "fade-up"
	FadeLeft  = "fade-left"
	FadeRight = "fade-right"
	Scale     = "scale"
)

// Stagger steps between sibling elements
const (
	HeroStep = 200 * time.Millisecond
	CardStep = 100 * time.Millisecond
	ChipStep = 50 * time.Millisecond
)

// Motion marks an element to be revealed with the given animation once it
// scrolls into view.
func Motion(kind string, delay time.Duration) g.Node {
	return g.Group{
		h.Data("motion", kind),
		h.Data("motion-delay", strconv.FormatFloat(delay.Seconds(), 'f', -1, 64)),
	}
}

func stagger(step time.Duration, i int) time.Duration {
	return step * time.Duration(i)
}

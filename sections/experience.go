package sections

import (
	"context"

	"github.com/rpupo63/portfolio-site/models"
	"github.com/rs/zerolog"
)

type TimelineSide string

const (
	SideLeft  TimelineSide = "left"
	SideRight TimelineSide = "right"
)

// TimelineEntry is an experience record placed on the alternating timeline
type TimelineEntry struct {
	models.Experience
	Side   TimelineSide
	Status string
	Period string
}

// Experience renders the employment timeline. It has no interaction state.
type Experience struct {
	*lifecycle
	api    ExperienceFetcher
	logger zerolog.Logger

	records []models.Experience
}

type ExperienceState struct {
	Settled bool
	Entries []TimelineEntry
}

func NewExperience(api ExperienceFetcher, opts ...Option) *Experience {
	o := buildOptions(opts)
	return &Experience{
		lifecycle: newLifecycle(),
		api:       api,
		logger:    o.logger.With().Str("section", "experience").Logger(),
	}
}

func (e *Experience) Name() string { return "experience" }

func (e *Experience) Mount(ctx context.Context) {
	e.mount(ctx, e.load)
}

func (e *Experience) load(ctx context.Context) {
	records, err := e.api.FetchExperience(ctx)
	if err != nil {
		logFetchError(ctx, e.logger, "experience", err)
		return
	}

	e.apply(func() {
		e.records = records
	})
}

func (e *Experience) State() ExperienceState {
	e.mu.Lock()
	defer e.mu.Unlock()

	return ExperienceState{
		Settled: e.isSettled(),
		Entries: Timeline(e.records),
	}
}

// Timeline lays records out in API order, even positions on the left.
func Timeline(records []models.Experience) []TimelineEntry {
	entries := make([]TimelineEntry, 0, len(records))
	for i, record := range records {
		entry := TimelineEntry{
			Experience: record,
			Side:       SideLeft,
			Status:     "Past",
		}
		entry.TechnologiesUsed = append([]string(nil), record.TechnologiesUsed...)
		if i%2 == 1 {
			entry.Side = SideRight
		}
		if record.CurrentlyWorking {
			entry.Status = "Current"
		}
		entry.Period = period(record)
		entries = append(entries, entry)
	}
	return entries
}

func period(record models.Experience) string {
	switch {
	case record.CurrentlyWorking:
		return record.StartDate + " – Present"
	case record.EndDate != "":
		return record.StartDate + " – " + record.EndDate
	default:
		return record.StartDate
	}
}

package blog

import (
	"log/slog"
	"time"
)

const (
	defaultRecentLimit  = 4
	defaultRelatedLimit = 2
	scheduleHour        = 10
)

type Manager struct {
	store Store
	log   *slog.Logger
	now   func() time.Time
}

type Option func(*Manager)

// WithClock replaces time.Now, mostly for tests.
func WithClock(now func() time.Time) Option {
	return func(m *Manager) {
		m.now = now
	}
}

func NewManager(store Store, logger *slog.Logger, opts ...Option) *Manager {
	m := &Manager{
		store: store,
		log:   logger,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// tomorrowAt returns tomorrow at the schedule hour in now's location.
func tomorrowAt(now time.Time) time.Time {
	y, mo, d := now.Date()
	return time.Date(y, mo, d+1, scheduleHour, 0, 0, 0, now.Location())
}

// applyStatus is the only place that moves a post between statuses, so the
// publishedAt/scheduledAt pairing holds for every write path.
func applyStatus(p *Post, status Status, now time.Time) {
	p.Status = status
	switch status {
	case StatusPublished:
		if p.PublishedAt == nil {
			p.PublishedAt = &now
		}
	case StatusScheduled:
		p.PublishedAt = nil
		if p.ScheduledAt == nil {
			at := tomorrowAt(now)
			p.ScheduledAt = &at
		}
	case StatusDraft, StatusArchived:
		p.PublishedAt = nil
	}
}

// value treats nil and "" alike, matching how the editor sends blanks.
func value(s *string, def string) string {
	if s == nil || *s == "" {
		return def
	}
	return *s
}

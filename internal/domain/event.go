package domain

import (
	"time"

	"github.com/google/uuid"
)

const (
	DateLayout = "02/01/2006"
	TimeLayout = "15:04"
)

type Event struct {
	ID          uuid.UUID
	Name        string
	Address     string
	PostalCode  string
	Price       float64
	Category    string
	Date        time.Time
	Time        string
	Description string

	// Participants is derived from participation rows and rebuilt on
	// each listing, never persisted as-is.
	Participants []string
}

// StartsAt combines the event date with its HH:MM time-of-day in the
// date's location, which is local wall-clock time everywhere dates are
// parsed. An unparseable time counts as midnight.
func (e Event) StartsAt() time.Time {
	t, err := time.Parse(TimeLayout, e.Time)
	if err != nil {
		t = time.Time{}
	}
	return time.Date(e.Date.Year(), e.Date.Month(), e.Date.Day(), t.Hour(), t.Minute(), 0, 0, e.Date.Location())
}

func (e Event) IsActive(now time.Time) bool {
	return !now.Before(e.StartsAt())
}

func (e Event) IsUpcoming(now time.Time) bool {
	return now.Before(e.StartsAt())
}

func (e Event) IsPast(now time.Time) bool {
	return now.After(e.StartsAt())
}

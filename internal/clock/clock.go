// Package clock supplies the current calendar day to the scheduler so tests
// can freeze "today".
package clock

import (
	"time"

	"github.com/vytor/leetrecall/internal/models"
)

type Clock interface {
	Today() models.Date
}

// System reads the wall clock in the given location (local time when nil).
type System struct {
	Location *time.Location
}

func (s System) Today() models.Date {
	now := time.Now()
	if s.Location != nil {
		now = now.In(s.Location)
	}
	return models.DateOf(now)
}

// Fixed always reports the same day. Advance moves it forward.
type Fixed struct {
	Day models.Date
}

func NewFixed(day models.Date) *Fixed {
	return &Fixed{Day: day}
}

func (f *Fixed) Today() models.Date { return f.Day }

func (f *Fixed) Advance(days int) {
	f.Day = f.Day.AddDays(days)
}

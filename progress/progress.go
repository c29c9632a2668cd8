// progress/progress.go
package progress

import (
	"math"
	"time"

	"github.com/cmlsolutions-1/sgi-sub000/models"
)

// Aggregate states for a record's measure set.
const (
	StateFulfilled = "Fulfilled"
	StateOverdue   = "Overdue"
	StateActive    = "Active"
)

// Summary is the derived completion state of a measure collection. It is a
// projection recomputed on every read, never stored: recomputing it on an
// unchanged measure set always yields the same result.
type Summary struct {
	Total   int    `json:"total"`
	Done    int    `json:"done"`
	Percent int    `json:"percent"`
	Overdue bool   `json:"overdue"`
	State   string `json:"state"`
}

// Compute derives the aggregate completion state of the measures as of now.
// A measure is overdue when it is still Pending, has a due-date control type
// and its due date lies strictly before now's date. Fulfilled takes
// precedence over Overdue.
func Compute(measures []models.Measure, now time.Time) Summary {
	s := Summary{Total: len(measures)}

	today := truncateToDay(now)
	for _, m := range measures {
		if m.Status == models.StatusDone {
			s.Done++
			continue
		}
		if m.ControlType == models.ControlDueDate && m.DueDate != nil {
			if truncateToDay(*m.DueDate).Before(today) {
				s.Overdue = true
			}
		}
	}

	if s.Total > 0 {
		s.Percent = int(math.Round(float64(s.Done) / float64(s.Total) * 100))
	}

	switch {
	case s.Percent == 100:
		s.State = StateFulfilled
	case s.Overdue:
		s.State = StateOverdue
	default:
		s.State = StateActive
	}
	return s
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

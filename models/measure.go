package models

import (
	"time"

	"github.com/google/uuid"
)

// Hierarchy-of-controls categories. Every risk record carries exactly one
// measure per category, created with the record.
const (
	MeasureElimination            = "Elimination"
	MeasureSubstitution           = "Substitution"
	MeasureEngineeringControls    = "EngineeringControls"
	MeasureAdministrativeControls = "AdministrativeControls"
	MeasurePPE                    = "PPE"
)

// Measure control types and statuses.
const (
	ControlDueDate   = "DueDate"
	ControlPermanent = "Permanent"

	StatusPending = "Pending"
	StatusDone    = "Done"
)

type Measure struct {
	ID             string     `bson:"id" json:"id"`
	Category       string     `bson:"category" json:"category"`
	Title          string     `bson:"title" json:"title"`
	Description    string     `bson:"description,omitempty" json:"description,omitempty"`
	ControlType    string     `bson:"controlType" json:"controlType"` // DueDate or Permanent
	DueDate        *time.Time `bson:"dueDate,omitempty" json:"dueDate,omitempty"`
	Status         string     `bson:"status" json:"status"`
	CompletionDate *time.Time `bson:"completionDate,omitempty" json:"completionDate,omitempty"`
}

// SetStatus transitions the measure between Pending and Done. Moving to Done
// stamps the completion date; moving back to Pending clears it. No other
// field is touched.
func (m *Measure) SetStatus(status string, now time.Time) {
	if status != StatusPending && status != StatusDone {
		return
	}
	if m.Status == status {
		return
	}
	m.Status = status
	if status == StatusDone {
		t := now
		m.CompletionDate = &t
	} else {
		m.CompletionDate = nil
	}
}

// DefaultMeasures builds the five fixed-category measures a new record starts
// with: all Pending, Permanent type, no due date.
func DefaultMeasures() []Measure {
	categories := []struct {
		key   string
		title string
	}{
		{MeasureElimination, "Elimination"},
		{MeasureSubstitution, "Substitution"},
		{MeasureEngineeringControls, "Engineering controls"},
		{MeasureAdministrativeControls, "Administrative controls, signage, warnings"},
		{MeasurePPE, "Personal protective equipment"},
	}

	measures := make([]Measure, 0, len(categories))
	for _, c := range categories {
		measures = append(measures, Measure{
			ID:          uuid.NewString(),
			Category:    c.key,
			Title:       c.title,
			ControlType: ControlPermanent,
			Status:      StatusPending,
		})
	}
	return measures
}

package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/cmlsolutions-1/sgi-sub000/catalog"
	"github.com/cmlsolutions-1/sgi-sub000/classification"
)

// RiskRecord is the aggregate root of the risk matrix: one workplace hazard
// with its context, scoring, corrective measures and supporting evidence.
// Stored as a single document per record.
type RiskRecord struct {
	ID primitive.ObjectID `bson:"_id,omitempty" json:"id"`

	// Context
	Process  string `bson:"process" json:"process"`
	Location string `bson:"location" json:"location"`
	Activity string `bson:"activity" json:"activity"`
	Tasks    string `bson:"tasks" json:"tasks"`
	Routine  bool   `bson:"routine" json:"routine"`

	// Hazard
	HazardCategory    string `bson:"hazardCategory" json:"hazardCategory"`
	HazardDescription string `bson:"hazardDescription" json:"hazardDescription"`
	PossibleEffects   string `bson:"possibleEffects,omitempty" json:"possibleEffects,omitempty"`

	// Existing controls
	ControlSource string `bson:"controlSource,omitempty" json:"controlSource,omitempty"`
	ControlMedium string `bson:"controlMedium,omitempty" json:"controlMedium,omitempty"`
	ControlPerson string `bson:"controlPerson,omitempty" json:"controlPerson,omitempty"`

	// Selected qualitative levels
	DeficiencyLevel  string `bson:"deficiencyLevel" json:"deficiencyLevel"`
	ExposureLevel    string `bson:"exposureLevel" json:"exposureLevel"`
	ConsequenceLevel string `bson:"consequenceLevel" json:"consequenceLevel"`

	// Derived scores. Recomputed from the level keys, never hand-edited.
	Scores classification.Scores `bson:"scores" json:"scores"`

	// Legal / criteria fields
	ExposedPersons   int    `bson:"exposedPersons" json:"exposedPersons"`
	WorstConsequence string `bson:"worstConsequence,omitempty" json:"worstConsequence,omitempty"`
	LegalRequirement bool   `bson:"legalRequirement" json:"legalRequirement"`

	Measures []Measure  `bson:"measures" json:"measures"`
	Evidence []Evidence `bson:"evidence" json:"evidence"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// NewRiskRecord creates an empty record with the five default measures and no
// evidence. Derived scores start at the "not assessed" baseline.
func NewRiskRecord() *RiskRecord {
	r := &RiskRecord{
		Measures: DefaultMeasures(),
		Evidence: []Evidence{},
	}
	r.Reclassify()
	return r
}

// ApplyLevels sets the three qualitative level keys and recomputes every
// derived field in the same call. Callers must not set level keys directly.
func (r *RiskRecord) ApplyLevels(deficiencyKey, exposureKey, consequenceKey string) {
	r.DeficiencyLevel = deficiencyKey
	r.ExposureLevel = exposureKey
	r.ConsequenceLevel = consequenceKey
	r.Reclassify()
}

// Reclassify recomputes the derived scores from the current level keys. The
// store calls this before every write so persisted scores can never drift
// from their inputs.
func (r *RiskRecord) Reclassify() {
	r.Scores = classification.Evaluate(r.DeficiencyLevel, r.ExposureLevel, r.ConsequenceLevel)
}

// SetHazard selects a hazard category and description. A description that
// does not belong to the category is cleared, so switching categories
// invalidates the previous selection.
func (r *RiskRecord) SetHazard(category, description string) {
	r.HazardCategory = category
	if catalog.ValidDescription(category, description) {
		r.HazardDescription = description
	} else {
		r.HazardDescription = ""
	}
}

// Clone deep-copies the record for an edit session. Mutating the clone leaves
// the original untouched; an abandoned edit is simply discarded.
func (r *RiskRecord) Clone() *RiskRecord {
	out := *r

	out.Measures = make([]Measure, len(r.Measures))
	copy(out.Measures, r.Measures)
	for i := range r.Measures {
		if r.Measures[i].DueDate != nil {
			d := *r.Measures[i].DueDate
			out.Measures[i].DueDate = &d
		}
		if r.Measures[i].CompletionDate != nil {
			d := *r.Measures[i].CompletionDate
			out.Measures[i].CompletionDate = &d
		}
	}

	out.Evidence = make([]Evidence, len(r.Evidence))
	copy(out.Evidence, r.Evidence)
	for i := range r.Evidence {
		data := make([]byte, len(r.Evidence[i].Data))
		copy(data, r.Evidence[i].Data)
		out.Evidence[i].Data = data
	}

	return &out
}

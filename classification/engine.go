// classification/engine.go
package classification

import "github.com/cmlsolutions-1/sgi-sub000/catalog"

// Intervention level labels. An empty string means the magnitude did not
// reach any band.
const (
	LevelI   = "I"
	LevelII  = "II"
	LevelIII = "III"
	LevelIV  = "IV"
)

// Scores holds every derived classification field for one set of qualitative
// level keys. Callers must treat it as a unit: the fields are only meaningful
// when produced together by Evaluate.
type Scores struct {
	ExposureProbability      int    `bson:"exposureProbability" json:"exposureProbability"`
	ExposureProbabilityLabel string `bson:"exposureProbabilityLabel" json:"exposureProbabilityLabel"`
	RiskMagnitude            int    `bson:"riskMagnitude" json:"riskMagnitude"`
	InterventionLevel        string `bson:"interventionLevel" json:"interventionLevel"`
	Interpretation           string `bson:"interventionInterpretation" json:"interventionInterpretation"`
	Acceptability            string `bson:"acceptability" json:"acceptability"`
}

// ExposureProbability is the NP product: deficiency weight times exposure
// weight. Unknown keys weigh 0.
func ExposureProbability(deficiencyKey, exposureKey string) int {
	return catalog.DeficiencyWeight(deficiencyKey) * catalog.ExposureWeight(exposureKey)
}

// InterpretExposureProbability maps an NP value to its qualitative band.
// Bands are inclusive lower bounds checked highest first.
func InterpretExposureProbability(value int) string {
	switch {
	case value >= 24:
		return "Very High"
	case value >= 10:
		return "High"
	case value >= 6:
		return "Medium"
	case value >= 2:
		return "Low"
	default:
		return "Not assessed"
	}
}

// RiskMagnitude is the NR product: exposure probability times consequence
// weight.
func RiskMagnitude(exposureProbability, consequenceWeight int) int {
	return exposureProbability * consequenceWeight
}

// InterventionLevel maps an NR value to one of the four intervention bands,
// or "" when the magnitude is below every band. Boundary values belong to the
// higher band.
func InterventionLevel(riskMagnitude int) string {
	switch {
	case riskMagnitude >= 400:
		return LevelI
	case riskMagnitude >= 150:
		return LevelII
	case riskMagnitude >= 40:
		return LevelIII
	case riskMagnitude >= 20:
		return LevelIV
	default:
		return ""
	}
}

// InterventionInterpretation returns the fixed guidance text for a level.
func InterventionInterpretation(level string) string {
	switch level {
	case LevelI:
		return "Critical situation. Stop the activity immediately; urgent intervention required."
	case LevelII:
		return "Correct and adopt control measures immediately."
	case LevelIII:
		return "Improve the control measures if justified by cost-benefit analysis."
	case LevelIV:
		return "Maintain the existing control measures."
	default:
		return ""
	}
}

// Acceptability returns the acceptability verdict for a level.
func Acceptability(level string) string {
	switch level {
	case LevelI:
		return "Not acceptable"
	case LevelII:
		return "Not acceptable, or acceptable with specific control"
	case LevelIII, LevelIV:
		return "Acceptable"
	default:
		return ""
	}
}

// Evaluate computes all derived fields from the three qualitative level keys
// in one call. This is the only supported way to produce Scores: partial
// recomputation would let derived fields drift from the keys.
func Evaluate(deficiencyKey, exposureKey, consequenceKey string) Scores {
	np := ExposureProbability(deficiencyKey, exposureKey)
	nr := RiskMagnitude(np, catalog.ConsequenceWeight(consequenceKey))
	level := InterventionLevel(nr)
	return Scores{
		ExposureProbability:      np,
		ExposureProbabilityLabel: InterpretExposureProbability(np),
		RiskMagnitude:            nr,
		InterventionLevel:        level,
		Interpretation:           InterventionInterpretation(level),
		Acceptability:            Acceptability(level),
	}
}

package classification

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cmlsolutions-1/sgi-sub000/catalog"
)

func TestExposureProbabilityIsWeightProduct(t *testing.T) {
	deficiencies := []string{
		catalog.DeficiencyVeryHigh, catalog.DeficiencyHigh,
		catalog.DeficiencyMedium, catalog.DeficiencyLow,
	}
	exposures := []string{
		catalog.ExposureContinuous, catalog.ExposureFrequent,
		catalog.ExposureOccasional, catalog.ExposureSporadic,
	}

	for _, d := range deficiencies {
		for _, e := range exposures {
			want := catalog.DeficiencyWeight(d) * catalog.ExposureWeight(e)
			assert.Equal(t, want, ExposureProbability(d, e), "pair (%s, %s)", d, e)
		}
	}
}

func TestExposureProbabilityUnknownKeys(t *testing.T) {
	assert.Equal(t, 0, ExposureProbability("Bogus", catalog.ExposureContinuous))
	assert.Equal(t, 0, ExposureProbability(catalog.DeficiencyVeryHigh, ""))
}

func TestInterpretExposureProbabilityBands(t *testing.T) {
	cases := []struct {
		value int
		want  string
	}{
		{40, "Very High"},
		{24, "Very High"}, // inclusive lower bound
		{23, "High"},
		{10, "High"},
		{9, "Medium"},
		{6, "Medium"},
		{5, "Low"},
		{2, "Low"},
		{1, "Not assessed"},
		{0, "Not assessed"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, InterpretExposureProbability(c.value), "value %d", c.value)
	}
}

func TestInterventionLevelBands(t *testing.T) {
	cases := []struct {
		magnitude int
		want      string
	}{
		{4000, LevelI},
		{400, LevelI}, // boundary values belong to the higher band
		{399, LevelII},
		{150, LevelII},
		{149, LevelIII},
		{40, LevelIII},
		{39, LevelIV},
		{20, LevelIV},
		{19, ""},
		{0, ""},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, InterventionLevel(c.magnitude), "magnitude %d", c.magnitude)
	}
}

func TestAcceptabilityPerLevel(t *testing.T) {
	assert.Equal(t, "Not acceptable", Acceptability(LevelI))
	assert.Equal(t, "Not acceptable, or acceptable with specific control", Acceptability(LevelII))
	assert.Equal(t, "Acceptable", Acceptability(LevelIII))
	assert.Equal(t, "Acceptable", Acceptability(LevelIV))
	assert.Equal(t, "", Acceptability(""))
	assert.Equal(t, "", Acceptability("V"))
}

func TestInterventionInterpretationUnknownLevel(t *testing.T) {
	assert.Equal(t, "", InterventionInterpretation(""))
	assert.Equal(t, "", InterventionInterpretation("nope"))
}

func TestEvaluateModerateScenario(t *testing.T) {
	// Medium deficiency (2) x Occasional exposure (2) x Grave consequence (25)
	s := Evaluate(catalog.DeficiencyMedium, catalog.ExposureOccasional, catalog.ConsequenceGrave)

	assert.Equal(t, 4, s.ExposureProbability)
	assert.Equal(t, "Low", s.ExposureProbabilityLabel)
	assert.Equal(t, 100, s.RiskMagnitude)
	assert.Equal(t, LevelIII, s.InterventionLevel)
	assert.Equal(t, "Acceptable", s.Acceptability)
}

func TestEvaluateWorstCaseScenario(t *testing.T) {
	// VeryHigh (10) x Continuous (4) x Fatal (100)
	s := Evaluate(catalog.DeficiencyVeryHigh, catalog.ExposureContinuous, catalog.ConsequenceFatal)

	assert.Equal(t, 40, s.ExposureProbability)
	assert.Equal(t, "Very High", s.ExposureProbabilityLabel)
	assert.Equal(t, 4000, s.RiskMagnitude)
	assert.Equal(t, LevelI, s.InterventionLevel)
	assert.Equal(t, "Not acceptable", s.Acceptability)
}

func TestEvaluateUnmappedKeysNotAssessed(t *testing.T) {
	s := Evaluate("", "", "")

	assert.Equal(t, 0, s.ExposureProbability)
	assert.Equal(t, "Not assessed", s.ExposureProbabilityLabel)
	assert.Equal(t, 0, s.RiskMagnitude)
	assert.Equal(t, "", s.InterventionLevel)
	assert.Equal(t, "", s.Interpretation)
	assert.Equal(t, "", s.Acceptability)
}

func TestEvaluateDeterministic(t *testing.T) {
	first := Evaluate(catalog.DeficiencyHigh, catalog.ExposureFrequent, catalog.ConsequenceVeryGrave)
	second := Evaluate(catalog.DeficiencyHigh, catalog.ExposureFrequent, catalog.ConsequenceVeryGrave)
	assert.Equal(t, first, second)
}

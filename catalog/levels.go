// catalog/levels.go
package catalog

// Qualitative level keys for the three scoring axes.
const (
	DeficiencyVeryHigh = "VeryHigh"
	DeficiencyHigh     = "High"
	DeficiencyMedium   = "Medium"
	DeficiencyLow      = "Low"

	ExposureContinuous = "Continuous"
	ExposureFrequent   = "Frequent"
	ExposureOccasional = "Occasional"
	ExposureSporadic   = "Sporadic"

	ConsequenceFatal     = "Fatal"
	ConsequenceVeryGrave = "VeryGrave"
	ConsequenceGrave     = "Grave"
	ConsequenceMinor     = "Minor"
)

var deficiencyWeights = map[string]int{
	DeficiencyVeryHigh: 10,
	DeficiencyHigh:     6,
	DeficiencyMedium:   2,
	DeficiencyLow:      0,
}

var exposureWeights = map[string]int{
	ExposureContinuous: 4,
	ExposureFrequent:   3,
	ExposureOccasional: 2,
	ExposureSporadic:   1,
}

var consequenceWeights = map[string]int{
	ConsequenceFatal:     100,
	ConsequenceVeryGrave: 60,
	ConsequenceGrave:     25,
	ConsequenceMinor:     10,
}

// DeficiencyWeight returns the numeric weight for a deficiency level key.
// Unknown keys weigh 0 so classification degrades to "not assessed" instead
// of failing.
func DeficiencyWeight(key string) int {
	return deficiencyWeights[key]
}

// ExposureWeight returns the numeric weight for an exposure level key.
func ExposureWeight(key string) int {
	return exposureWeights[key]
}

// ConsequenceWeight returns the numeric weight for a consequence level key.
func ConsequenceWeight(key string) int {
	return consequenceWeights[key]
}

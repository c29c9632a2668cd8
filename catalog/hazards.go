// catalog/hazards.go
package catalog

import "sort"

// Hazard category keys (GTC 45 taxonomy).
const (
	HazardBiological       = "Biological"
	HazardPhysical         = "Physical"
	HazardChemical         = "Chemical"
	HazardPsychosocial     = "Psychosocial"
	HazardBiomechanical    = "Biomechanical"
	HazardSafetyConditions = "SafetyConditions"
	HazardNaturalPhenomena = "NaturalPhenomena"
)

var hazardCatalog = map[string][]string{
	HazardBiological: {
		"Viruses",
		"Bacteria",
		"Fungi",
		"Parasites",
		"Stings and bites",
		"Biological fluids or excrement",
	},
	HazardPhysical: {
		"Noise",
		"Ionizing radiation",
		"Non-ionizing radiation",
		"Extreme heat or cold",
		"Vibration",
		"Inadequate lighting",
		"Pressure changes",
	},
	HazardChemical: {
		"Dusts (organic or inorganic)",
		"Fibers",
		"Liquids (mists, vapors)",
		"Gases and vapors",
		"Smoke (metallic or non-metallic)",
		"Particulate matter",
	},
	HazardPsychosocial: {
		"Organizational management",
		"Group or team characteristics",
		"Task conditions (mental load, content)",
		"Human-machine interface",
		"Shift work or night work",
	},
	HazardBiomechanical: {
		"Static posture (prolonged, maintained, forced)",
		"Repetitive movements",
		"Manual handling of loads",
		"Applied force",
	},
	HazardSafetyConditions: {
		"Mechanical (equipment, tools, falling parts)",
		"Electrical (high and low voltage, static)",
		"Locative (surfaces, walls, storage conditions)",
		"Technological (explosion, leak, spill, fire)",
		"Accidents caused by traffic",
		"Public disorder (robbery, assault)",
		"Work at heights",
		"Confined spaces",
	},
	HazardNaturalPhenomena: {
		"Earthquake",
		"Flood",
		"Landslide",
		"Storm or lightning",
	},
}

// DescriptionsFor returns the hazard descriptions for a category, or an empty
// list when the category is unknown.
func DescriptionsFor(category string) []string {
	descriptions, ok := hazardCatalog[category]
	if !ok {
		return []string{}
	}
	out := make([]string, len(descriptions))
	copy(out, descriptions)
	return out
}

// ValidDescription reports whether a description belongs to the given
// category. Selecting a new category invalidates descriptions from the old
// one.
func ValidDescription(category, description string) bool {
	for _, d := range hazardCatalog[category] {
		if d == description {
			return true
		}
	}
	return false
}

// Categories returns all hazard category keys in stable order.
func Categories() []string {
	keys := make([]string, 0, len(hazardCatalog))
	for k := range hazardCatalog {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

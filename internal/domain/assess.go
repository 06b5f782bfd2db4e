package domain

import (
	"fmt"
	"strings"
)

// VerdictSource tells where a suitability verdict came from
type VerdictSource string

const (
	// SourceCatalog means the plant matched a catalog requirement
	SourceCatalog VerdictSource = "catalog"
	// SourceHeuristic means no species-specific data was found
	SourceHeuristic VerdictSource = "heuristic"
)

// NoSpeciesDataNote flags recommendations derived without species-specific data
const NoSpeciesDataNote = "Datos específicos no encontrados"

// Verdict is the suitability outcome of an analysis
type Verdict struct {
	Suitable       bool
	Recommendation string
	Source         VerdictSource
}

// fallbackRule applies when the catalog has no entry for a plant
type fallbackRule struct {
	markers []string
	accepts func(lux float64) bool
	good    string
	poor    string
}

func above(limit float64) func(float64) bool { return func(lux float64) bool { return lux > limit } }
func below(limit float64) func(float64) bool { return func(lux float64) bool { return lux < limit } }

// suitabilityRules decide the verdict; textRules pick the wording.
// Wording is keyed on fewer markers, so a succulent or a fern gets the
// generic text. In both lists the first rule with a marker in the
// lowercase name wins.
var (
	suitabilityRules = []fallbackRule{
		{markers: []string{"cactus", "suculenta"}, accepts: above(5000)},
		{markers: []string{"helecho", "fern"}, accepts: below(2000)},
	}
	textRules = []fallbackRule{
		{
			markers: []string{"cactus"},
			accepts: above(5000),
			good:    "Luz adecuada para Cactus.",
			poor:    "Muy poca luz para un Cactus. Necesita sol directo.",
		},
		{
			markers: []string{"helecho"},
			accepts: below(2000),
			good:    "Luz adecuada para Helecho.",
			poor:    "Demasiada luz para un Helecho. Prefiere sombra.",
		},
	}
	genericRule = fallbackRule{
		accepts: above(500),
		good:    "Luz aceptable para la mayoría de plantas de interior.",
		poor:    "Luz baja, busca plantas de sombra.",
	}
)

// Assess decides whether average lux suits a plant.
// With a requirement the inclusive catalog range decides; without one a
// name-keyed heuristic is used and the text says so.
func Assess(plantName string, averageLux float64, durationSeconds int, req *PlantLightRequirement) Verdict {
	if req != nil {
		return assessWithRequirement(averageLux, durationSeconds, *req)
	}

	name := NormalizeName(plantName)
	suitable := ruleFor(name, suitabilityRules).accepts(averageLux)

	wording := ruleFor(name, textRules)
	text := wording.poor
	if wording.accepts(averageLux) {
		text = wording.good
	}

	return Verdict{
		Suitable:       suitable,
		Recommendation: fmt.Sprintf("%s (Promedio de %d s - %s)", text, durationSeconds, NoSpeciesDataNote),
		Source:         SourceHeuristic,
	}
}

func assessWithRequirement(avg float64, durationSeconds int, req PlantLightRequirement) Verdict {
	v := Verdict{Suitable: req.Contains(avg), Source: SourceCatalog}

	switch {
	case v.Suitable:
		v.Recommendation = fmt.Sprintf(
			"Excelente! La luz promedio (%.1f lx) durante %d segundos es ideal para %s (%d-%d lx). %s",
			avg, durationSeconds, req.CanonicalName, req.MinLux, req.MaxLux, req.Description)
	case avg < float64(req.MinLux):
		v.Recommendation = fmt.Sprintf(
			"Muy poca luz promedio (%.1f lx). %s necesita al menos %d lx (rango %d-%d lx). %s",
			avg, req.CanonicalName, req.MinLux, req.MinLux, req.MaxLux, req.Description)
	default:
		v.Recommendation = fmt.Sprintf(
			"Demasiada luz promedio (%.1f lx). %s prefiere menos de %d lx (rango %d-%d lx). %s",
			avg, req.CanonicalName, req.MaxLux, req.MinLux, req.MaxLux, req.Description)
	}
	return v
}

func ruleFor(name string, rules []fallbackRule) fallbackRule {
	for _, rule := range rules {
		for _, marker := range rule.markers {
			if strings.Contains(name, marker) {
				return rule
			}
		}
	}
	return genericRule
}

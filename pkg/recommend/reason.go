package recommend

import (
	"fmt"
	"sort"
	"strings"

	"droscher.com/BottleButler/pkg/model"
)

type ReasonKind string

const (
	ReasonSimilar       ReasonKind = "similar"
	ReasonComplementary ReasonKind = "complementary"
	ReasonValue         ReasonKind = "value"
	ReasonTrending      ReasonKind = "trending"
)

func (k ReasonKind) Valid() bool {
	switch k {
	case ReasonSimilar, ReasonComplementary, ReasonValue, ReasonTrending:
		return true
	default:
		return false
	}
}

type Reason struct {
	Kind        ReasonKind `json:"type"`
	Description string     `json:"description"`
	Score       *float64   `json:"score,omitempty"`
}

type BottleRecommendation struct {
	Bottle     model.Bottle `json:"bottle"`
	Reasons    []Reason     `json:"reasons"`
	MatchScore float64      `json:"matchScore"`
}

const (
	dominantFlavorThreshold = 0.3
	maxDominantFlavors      = 2
)

func scoredReason(kind ReasonKind, description string, score float64) Reason {
	return Reason{Kind: kind, Description: description, Score: &score}
}

func flavorReason(profile FlavorProfile, score float64) Reason {
	description := "Matches your preferred flavor profile."
	if flavors := dominantFlavors(profile); len(flavors) > 0 {
		description = fmt.Sprintf("Matches your preferred flavor profile with similar %s characteristics.", strings.Join(flavors, " and "))
	}

	return scoredReason(ReasonSimilar, description, score)
}

func similarBottleReason(bottle *model.Bottle, score float64) Reason {
	return scoredReason(ReasonSimilar, fmt.Sprintf("Similar to %s in your collection.", bottle.Name), score)
}

func complementaryReason(bottle *model.Bottle, score float64) Reason {
	character := bottle.Distiller
	if region, ok := bottle.RegionValue(); ok {
		character = region
	}

	return scoredReason(ReasonComplementary, fmt.Sprintf("Complements your collection with its %s character.", character), score)
}

func valueReason(score float64) Reason {
	return scoredReason(ReasonValue, "Good value within your typical price range.", score)
}

// dominantFlavors returns up to two flavors above the threshold, strongest
// first. Equal values keep vector order.
func dominantFlavors(profile FlavorProfile) []string {
	vector := profile.Vector()
	order := make([]int, 0, flavorDimensions)

	for index, value := range vector {
		if value > dominantFlavorThreshold {
			order = append(order, index)
		}
	}

	sort.SliceStable(order, func(i, j int) bool {
		return vector[order[i]] > vector[order[j]]
	})

	if len(order) > maxDominantFlavors {
		order = order[:maxDominantFlavors]
	}

	names := make([]string, 0, len(order))
	for _, index := range order {
		names = append(names, string(Flavors[index]))
	}

	return names
}

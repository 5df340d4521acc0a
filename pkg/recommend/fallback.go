package recommend

import (
	"fmt"
	"strconv"

	"droscher.com/BottleButler/pkg/model"
)

const (
	fallbackTopScore      = 0.95
	fallbackScoreStep     = 0.05
	fallbackValuePrice    = 70
	fallbackTrendingScore = 4.6
)

// Fallback builds recommendations without any scoring: the first limit
// candidates in the order given, with descending scores. The reasons are
// descriptive only and do not feed the match score.
func Fallback(owned []model.Bottle, candidates []model.Bottle, limit int) []BottleRecommendation {
	if limit <= 0 {
		return []BottleRecommendation{}
	}

	if limit > len(candidates) {
		limit = len(candidates)
	}

	reference := "your collection"
	if len(owned) > 0 && len(owned[0].Name) > 0 {
		reference = owned[0].Name
	}

	results := make([]BottleRecommendation, 0, limit)

	for index := range candidates[:limit] {
		candidate := &candidates[index]

		reasons := []Reason{{
			Kind:        ReasonSimilar,
			Description: fmt.Sprintf("Similar to %s with complementary flavor characteristics.", reference),
		}}

		if price, ok := candidate.PriceValue(); ok && price < fallbackValuePrice {
			reasons = append(reasons, Reason{
				Kind:        ReasonValue,
				Description: fmt.Sprintf("Excellent value at $%s, offering quality comparable to more expensive bottles.", formatNumber(price)),
			})
		} else {
			reasons = append(reasons, Reason{
				Kind:        ReasonComplementary,
				Description: fmt.Sprintf("Adds diversity to your collection with its unique %s character.", candidate.Type),
			})
		}

		if rating, ok := candidate.RatingValue(); ok && rating > fallbackTrendingScore {
			reasons = append(reasons, Reason{
				Kind:        ReasonTrending,
				Description: fmt.Sprintf("Highly rated among whisky enthusiasts with a %s/5 score.", formatNumber(rating)),
			})
		}

		results = append(results, BottleRecommendation{
			Bottle:     *candidate,
			Reasons:    reasons,
			MatchScore: clampScore(fallbackTopScore - fallbackScoreStep*float64(index)),
		})
	}

	return results
}

func clampScore(score float64) float64 {
	switch {
	case score < 0:
		return 0
	case score > 1:
		return 1
	default:
		return score
	}
}

func formatNumber(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}

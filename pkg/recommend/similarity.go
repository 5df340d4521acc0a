package recommend

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"droscher.com/BottleButler/pkg/model"
)

const (
	maxAgeGap         = 5
	maxPriceRelDiff   = 0.25
	matchedFactor     = 1.0
	mismatchedFactor  = 0.0
	manhattanDistance = 1
)

// FlavorSimilarity is the mean of 1-|a_i-b_i| over the seven dimensions.
func FlavorSimilarity(a, b FlavorProfile) float64 {
	distance := floats.Distance(a.Vector(), b.Vector(), manhattanDistance)

	return 1 - distance/flavorDimensions
}

// BottleSimilarity averages the attribute factors both bottles populate,
// plus their flavor similarity which always counts.
func BottleSimilarity(b1, b2 *model.Bottle) float64 {
	return bottleSimilarity(b1, b2, Profile(b1), Profile(b2))
}

func bottleSimilarity(b1, b2 *model.Bottle, p1, p2 FlavorProfile) float64 {
	var factors []float64

	if region1, ok1 := b1.RegionValue(); ok1 {
		if region2, ok2 := b2.RegionValue(); ok2 {
			factors = append(factors, match(region1 == region2))
		}
	}

	if len(b1.Distiller) > 0 && len(b2.Distiller) > 0 {
		factors = append(factors, match(b1.Distiller == b2.Distiller))
	}

	if len(b1.Type) > 0 && len(b2.Type) > 0 {
		sameType := b1.Type == b2.Type
		factors = append(factors, match(sameType))

		subType1, ok1 := b1.SubTypeValue()
		subType2, ok2 := b2.SubTypeValue()

		if sameType && ok1 && ok2 {
			factors = append(factors, match(subType1 == subType2))
		}
	}

	if age1, ok1 := b1.AgeValue(); ok1 {
		if age2, ok2 := b2.AgeValue(); ok2 {
			gap := math.Abs(float64(age1) - float64(age2))
			factors = append(factors, match(gap <= maxAgeGap))
		}
	}

	if price1, ok1 := b1.PriceValue(); ok1 {
		if price2, ok2 := b2.PriceValue(); ok2 {
			relDiff := math.Abs(price1-price2) / math.Max(price1, price2)
			factors = append(factors, match(relDiff <= maxPriceRelDiff))
		}
	}

	factors = append(factors, FlavorSimilarity(p1, p2))

	return floats.Sum(factors) / float64(len(factors))
}

func match(equal bool) float64 {
	if equal {
		return matchedFactor
	}

	return mismatchedFactor
}

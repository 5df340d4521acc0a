package recommend

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"droscher.com/BottleButler/pkg/model"
)

const (
	NoAgeStatement = "No Age Statement"
	AgeUpTo10      = "0-10 years"
	Age11To15      = "11-15 years"
	Age16To20      = "16-20 years"
	Age21Plus      = "21+ years"

	PriceBudget  = "Budget (< $50)"
	PriceValue   = "Value ($50-$100)"
	PricePremium = "Premium ($100-$200)"
	PriceLuxury  = "Luxury (> $200)"
	PriceUnknown = "Unknown"
)

var (
	ageBuckets   = []string{NoAgeStatement, AgeUpTo10, Age11To15, Age16To20, Age21Plus}
	priceBuckets = []string{PriceBudget, PriceValue, PricePremium, PriceLuxury}
)

type CollectionAnalysis struct {
	Regions           Histogram     `json:"regions"`
	Distillers        Histogram     `json:"distillers"`
	Types             Histogram     `json:"types"`
	AgeGroups         Histogram     `json:"ageGroups"`
	PriceRanges       Histogram     `json:"priceRanges"`
	FlavorProfile     FlavorProfile `json:"flavorProfile"`
	AveragePrice      float64       `json:"averagePrice"`
	AverageAge        float64       `json:"averageAge"`
	FavoriteRegion    string        `json:"favoriteRegion,omitempty"`
	FavoriteDistiller string        `json:"favoriteDistiller,omitempty"`
}

// Analyze summarises a collection. It never fails: an empty collection
// yields empty histograms and zero averages.
func Analyze(owned []model.Bottle) CollectionAnalysis {
	analysis := CollectionAnalysis{
		Regions:     NewHistogram(),
		Distillers:  NewHistogram(),
		Types:       NewHistogram(),
		AgeGroups:   NewHistogram(ageBuckets...),
		PriceRanges: NewHistogram(priceBuckets...),
	}

	if len(owned) == 0 {
		return analysis
	}

	var (
		prices []float64
		ages   []float64
	)

	flavorSum := make([]float64, flavorDimensions)

	for index := range owned {
		bottle := &owned[index]

		if region, ok := bottle.RegionValue(); ok {
			analysis.Regions.Add(region)
		}

		if len(bottle.Distiller) > 0 {
			analysis.Distillers.Add(bottle.Distiller)
		}

		if len(bottle.Type) > 0 {
			analysis.Types.Add(bottle.TypeKey())
		}

		age, hasAge := bottle.AgeValue()
		analysis.AgeGroups.Add(ageBucket(age, hasAge))

		if hasAge {
			ages = append(ages, float64(age))
		}

		if price, ok := bottle.PriceValue(); ok {
			analysis.PriceRanges.Add(priceBucket(price))
			prices = append(prices, price)
		}

		floats.Add(flavorSum, Profile(bottle).Vector())
	}

	floats.Scale(1/float64(len(owned)), flavorSum)
	analysis.FlavorProfile = profileFromVector(flavorSum)

	if len(prices) > 0 {
		analysis.AveragePrice = stat.Mean(prices, nil)
	}

	if len(ages) > 0 {
		analysis.AverageAge = stat.Mean(ages, nil)
	}

	analysis.FavoriteRegion, _ = analysis.Regions.Mode()
	analysis.FavoriteDistiller, _ = analysis.Distillers.Mode()

	return analysis
}

func ageBucket(age uint64, hasAge bool) string {
	switch {
	case !hasAge:
		return NoAgeStatement
	case age <= 10: //nolint:mnd // bucket boundary
		return AgeUpTo10
	case age <= 15: //nolint:mnd // bucket boundary
		return Age11To15
	case age <= 20: //nolint:mnd // bucket boundary
		return Age16To20
	default:
		return Age21Plus
	}
}

func priceBucket(price float64) string {
	switch {
	case price < 50: //nolint:mnd // bucket boundary
		return PriceBudget
	case price < 100: //nolint:mnd // bucket boundary
		return PriceValue
	case price < 200: //nolint:mnd // bucket boundary
		return PricePremium
	default:
		return PriceLuxury
	}
}

package recommend

import (
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"droscher.com/BottleButler/pkg/model"
)

type Group struct {
	Key       string   `json:"key"`
	BottleIDs []string `json:"bottleIds"`
}

// CollectionReport is a descriptive breakdown of a collection for display.
// Unlike CollectionAnalysis it keeps an "Unknown" price range and its
// keyword flavor statistic is never used for scoring.
type CollectionReport struct {
	ByRegion          []Group       `json:"byRegion"`
	ByDistiller       []Group       `json:"byDistiller"`
	ByType            []Group       `json:"byType"`
	ByAgeRange        []Group       `json:"byAgeRange"`
	ByPriceRange      []Group       `json:"byPriceRange"`
	MostCommonRegion  string        `json:"mostCommonRegion,omitempty"`
	AveragePrice      float64       `json:"averagePrice"`
	AverageAge        float64       `json:"averageAge"`
	KeywordFlavorMean FlavorProfile `json:"keywordFlavorMean"`
}

type grouping struct {
	groups []Group
	index  map[string]int
}

func newGrouping(keys ...string) *grouping {
	g := &grouping{index: make(map[string]int)}
	for _, key := range keys {
		g.slot(key)
	}

	return g
}

func (g *grouping) slot(key string) int {
	position, found := g.index[key]
	if !found {
		position = len(g.groups)
		g.index[key] = position
		g.groups = append(g.groups, Group{Key: key, BottleIDs: []string{}})
	}

	return position
}

func (g *grouping) add(key string, id string) {
	position := g.slot(key)
	g.groups[position].BottleIDs = append(g.groups[position].BottleIDs, id)
}

func Report(owned []model.Bottle) CollectionReport {
	regions := newGrouping()
	distillers := newGrouping()
	types := newGrouping()
	ages := newGrouping(ageBuckets...)
	prices := newGrouping(append(append([]string{}, priceBuckets...), PriceUnknown)...)

	var (
		priceValues []float64
		ageValues   []float64
		regionCount = NewHistogram()
		mostCommon  string
		maxRegion   int
	)

	for index := range owned {
		bottle := &owned[index]

		if region, ok := bottle.RegionValue(); ok {
			regions.add(region, bottle.ID)

			// first region to reach the running maximum wins
			if count := regionCount.Add(region); count > maxRegion {
				maxRegion = count
				mostCommon = region
			}
		}

		if len(bottle.Distiller) > 0 {
			distillers.add(bottle.Distiller, bottle.ID)
		}

		if len(bottle.Type) > 0 {
			types.add(bottle.TypeKey(), bottle.ID)
		}

		age, hasAge := bottle.AgeValue()
		ages.add(ageBucket(age, hasAge), bottle.ID)

		if hasAge {
			ageValues = append(ageValues, float64(age))
		}

		if price, ok := bottle.PriceValue(); ok {
			prices.add(priceBucket(price), bottle.ID)
			priceValues = append(priceValues, price)
		} else {
			prices.add(PriceUnknown, bottle.ID)
		}
	}

	report := CollectionReport{
		ByRegion:          regions.groups,
		ByDistiller:       distillers.groups,
		ByType:            types.groups,
		ByAgeRange:        ages.groups,
		ByPriceRange:      prices.groups,
		MostCommonRegion:  mostCommon,
		KeywordFlavorMean: KeywordFlavorProfile(owned),
	}

	if len(priceValues) > 0 {
		report.AveragePrice = stat.Mean(priceValues, nil)
	}

	if len(ageValues) > 0 {
		report.AverageAge = stat.Mean(ageValues, nil)
	}

	return report
}

var flavorKeywords = [flavorDimensions][]string{
	{"sweet", "honey", "vanilla", "caramel", "toffee", "chocolate", "sugar", "maple"},
	{"fruit", "apple", "pear", "citrus", "orange", "lemon", "banana", "berry", "cherry", "raisin"},
	{"floral", "flower", "blossom", "rose", "violet", "lavender", "heather"},
	{"spice", "spicy", "pepper", "cinnamon", "clove", "nutmeg", "ginger"},
	{"wood", "oak", "cedar", "pine", "barrel", "sherry", "bourbon", "rum"},
	{"smoke", "smoky", "ash", "char", "tobacco", "leather", "burnt"},
	{"peat", "peaty", "earth", "moss", "soil", "medicinal", "iodine", "seaweed"},
}

// KeywordFlavorProfile counts, for each flavor, the notes mentioning one of
// its keywords anywhere (case-insensitive) and divides by the number of
// bottles having notes. Values are hit rates, not a normalised profile.
func KeywordFlavorProfile(bottles []model.Bottle) FlavorProfile {
	hits := make([]float64, flavorDimensions)
	withNotes := 0

	for index := range bottles {
		if len(bottles[index].TastingNotes) == 0 {
			continue
		}

		withNotes++

		for _, note := range bottles[index].TastingNotes {
			lower := strings.ToLower(note)

			for flavor, keywords := range flavorKeywords {
				if containsAny(lower, keywords) {
					hits[flavor]++
				}
			}
		}
	}

	if withNotes > 0 {
		floats.Scale(1/float64(withNotes), hits)
	}

	return profileFromVector(hits)
}

func containsAny(text string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(text, keyword) {
			return true
		}
	}

	return false
}

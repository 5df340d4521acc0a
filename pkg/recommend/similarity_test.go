package recommend_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.openly.dev/pointy"

	"droscher.com/BottleButler/pkg/model"
	"droscher.com/BottleButler/pkg/recommend"
)

func TestFlavorSimilarity_Identical(t *testing.T) {
	profiles := []recommend.FlavorProfile{
		{},
		{Smoky: 1},
		{Sweet: 0.25, Fruity: 0.25, Woody: 0.5},
	}

	for _, profile := range profiles {
		assert.InDelta(t, 1.0, recommend.FlavorSimilarity(profile, profile), delta)
	}
}

func TestFlavorSimilarity_Disjoint(t *testing.T) {
	a := recommend.FlavorProfile{Smoky: 1}
	b := recommend.FlavorProfile{Sweet: 1}

	assert.InDelta(t, 5.0/7.0, recommend.FlavorSimilarity(a, b), delta)
	assert.InDelta(t, recommend.FlavorSimilarity(b, a), recommend.FlavorSimilarity(a, b), delta)
	assert.InDelta(t, 6.0/7.0, recommend.FlavorSimilarity(a, recommend.FlavorProfile{}), delta)
}

func TestBottleSimilarity_SelfIsOne(t *testing.T) {
	bottle := model.Bottle{
		ID:           "1",
		Name:         "Lagavulin 16",
		Distiller:    "Lagavulin",
		Region:       pointy.String("Islay"),
		Type:         "Whisky",
		SubType:      pointy.String("Single Malt"),
		Age:          pointy.Uint64(16),
		Price:        pointy.Float64(89),
		TastingNotes: []string{"Smoke", "Seaweed", "Iodine"},
	}

	assert.InDelta(t, 1.0, recommend.BottleSimilarity(&bottle, &bottle), delta)
}

func TestBottleSimilarity_OnlyRegionPriceAndFlavor(t *testing.T) {
	a := model.Bottle{ID: "a", Region: pointy.String("Islay"), Price: pointy.Float64(85), TastingNotes: []string{"Smoke"}}
	b := model.Bottle{ID: "b", Region: pointy.String("Islay"), Price: pointy.Float64(85), TastingNotes: []string{"Smoke"}}

	assert.InDelta(t, 1.0, recommend.BottleSimilarity(&a, &b), delta)
}

func TestBottleSimilarity_SubTypeNeedsMatchingType(t *testing.T) {
	base := model.Bottle{Type: "Whisky", SubType: pointy.String("Single Malt")}
	otherType := model.Bottle{Type: "Bourbon", SubType: pointy.String("Single Malt")}
	otherSubType := model.Bottle{Type: "Whisky", SubType: pointy.String("Blended")}

	// type mismatch and flavor
	assert.InDelta(t, 0.5, recommend.BottleSimilarity(&base, &otherType), delta)
	// type, subtype mismatch and flavor
	assert.InDelta(t, 2.0/3.0, recommend.BottleSimilarity(&base, &otherSubType), delta)
}

func TestBottleSimilarity_AgeGap(t *testing.T) {
	ten := model.Bottle{Age: pointy.Uint64(10)}
	fifteen := model.Bottle{Age: pointy.Uint64(15)}
	sixteen := model.Bottle{Age: pointy.Uint64(16)}
	noAge := model.Bottle{Age: pointy.Uint64(0)}

	assert.InDelta(t, 1.0, recommend.BottleSimilarity(&ten, &fifteen), delta)
	assert.InDelta(t, 0.5, recommend.BottleSimilarity(&ten, &sixteen), delta)
	assert.InDelta(t, 1.0, recommend.BottleSimilarity(&ten, &noAge), delta)
}

func TestBottleSimilarity_PriceRelativeDifference(t *testing.T) {
	hundred := model.Bottle{Price: pointy.Float64(100)}
	near := model.Bottle{Price: pointy.Float64(80)}
	far := model.Bottle{Price: pointy.Float64(74)}

	assert.InDelta(t, 1.0, recommend.BottleSimilarity(&hundred, &near), delta)
	assert.InDelta(t, 0.5, recommend.BottleSimilarity(&hundred, &far), delta)
}

func TestBottleSimilarity_FlavorAlwaysCounts(t *testing.T) {
	a := model.Bottle{Distiller: "Ardbeg", TastingNotes: []string{"Smoke"}}
	b := model.Bottle{Distiller: "Ardbeg", TastingNotes: []string{"Vanilla"}}

	assert.InDelta(t, (1.0+5.0/7.0)/2, recommend.BottleSimilarity(&a, &b), delta)
}

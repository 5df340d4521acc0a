package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.openly.dev/pointy"

	"droscher.com/BottleButler/pkg/model"
)

func TestRegionFromSpirit(t *testing.T) {
	assert.Equal(t, "Kentucky", model.RegionFromSpirit("Straight Bourbon Whiskey"))
	assert.Equal(t, "Scotland", model.RegionFromSpirit("Scotch Whisky"))
	assert.Equal(t, "Ireland", model.RegionFromSpirit("Irish Whiskey"))
	assert.Equal(t, "Japan", model.RegionFromSpirit("Japanese Whisky"))
	assert.Equal(t, "Unknown", model.RegionFromSpirit("Rum"))
	assert.Equal(t, "Unknown", model.RegionFromSpirit(""))
}

func TestCountryFromSpirit(t *testing.T) {
	assert.Equal(t, "USA", model.CountryFromSpirit("Bourbon"))
	assert.Equal(t, "Scotland", model.CountryFromSpirit("Scotch"))
	assert.Equal(t, "Unknown", model.CountryFromSpirit("Tequila"))
}

func TestBottle_OptionalValues(t *testing.T) {
	bottle := model.Bottle{
		Region:  pointy.String(""),
		SubType: pointy.String("Single Malt"),
		Age:     pointy.Uint64(0),
		Price:   pointy.Float64(0),
		Rating:  pointy.Float64(4.5),
		Type:    "Whisky",
	}

	_, ok := bottle.RegionValue()
	assert.False(t, ok)

	_, ok = bottle.AgeValue()
	assert.False(t, ok)

	_, ok = bottle.PriceValue()
	assert.False(t, ok)

	rating, ok := bottle.RatingValue()
	assert.True(t, ok)
	assert.InDelta(t, 4.5, rating, 1e-9)

	assert.Equal(t, "Whisky - Single Malt", bottle.TypeKey())

	bottle.SubType = nil
	assert.Equal(t, "Whisky", bottle.TypeKey())
}

package recommend

import (
	"gonum.org/v1/gonum/floats"

	"droscher.com/BottleButler/pkg/model"
)

const flavorDimensions = 7

type Flavor string

const (
	Sweet  Flavor = "sweet"
	Fruity Flavor = "fruity"
	Floral Flavor = "floral"
	Spicy  Flavor = "spicy"
	Woody  Flavor = "woody"
	Smoky  Flavor = "smoky"
	Peaty  Flavor = "peaty"
)

// Flavors lists the profile dimensions in vector order.
var Flavors = [flavorDimensions]Flavor{Sweet, Fruity, Floral, Spicy, Woody, Smoky, Peaty}

type FlavorProfile struct {
	Sweet  float64 `json:"sweet"`
	Fruity float64 `json:"fruity"`
	Floral float64 `json:"floral"`
	Spicy  float64 `json:"spicy"`
	Woody  float64 `json:"woody"`
	Smoky  float64 `json:"smoky"`
	Peaty  float64 `json:"peaty"`
}

func (p FlavorProfile) Vector() []float64 {
	return []float64{p.Sweet, p.Fruity, p.Floral, p.Spicy, p.Woody, p.Smoky, p.Peaty}
}

func (p FlavorProfile) Value(flavor Flavor) float64 {
	return p.Vector()[flavorIndex(flavor)]
}

func (p FlavorProfile) IsZero() bool {
	return p == FlavorProfile{}
}

func profileFromVector(vector []float64) FlavorProfile {
	return FlavorProfile{
		Sweet:  vector[0],
		Fruity: vector[1],
		Floral: vector[2],
		Spicy:  vector[3],
		Woody:  vector[4],
		Smoky:  vector[5],
		Peaty:  vector[6],
	}
}

func flavorIndex(flavor Flavor) int {
	for index, candidate := range Flavors {
		if candidate == flavor {
			return index
		}
	}

	return -1
}

// flavorLexicon holds the partial weights of each recognised tasting note.
// Lookups are exact and case-sensitive.
var flavorLexicon = map[string]FlavorProfile{
	"Vanilla":        {Sweet: 0.8},
	"Caramel":        {Sweet: 0.9},
	"Honey":          {Sweet: 0.7, Fruity: 0.3},
	"Toffee":         {Sweet: 0.9},
	"Chocolate":      {Sweet: 0.6},
	"Dark Chocolate": {Sweet: 0.4},

	"Apple":         {Fruity: 0.7, Sweet: 0.3},
	"Pear":          {Fruity: 0.7, Sweet: 0.3},
	"Citrus":        {Fruity: 0.8},
	"Orange":        {Fruity: 0.8, Sweet: 0.4},
	"Dried fruit":   {Fruity: 0.6, Sweet: 0.5},
	"Fruit":         {Fruity: 0.8, Sweet: 0.3},
	"Fruit Cake":    {Fruity: 0.6, Sweet: 0.6, Spicy: 0.3},
	"Peach":         {Fruity: 0.8, Sweet: 0.5},
	"Raisins":       {Fruity: 0.7, Sweet: 0.6},
	"Winter Fruits": {Fruity: 0.7, Spicy: 0.3},

	"Floral":  {Floral: 0.9},
	"Heather": {Floral: 0.8},
	"Rose":    {Floral: 0.9},

	"Spice":       {Spicy: 0.8},
	"Cinnamon":    {Spicy: 0.8},
	"Ginger":      {Spicy: 0.7},
	"Pepper":      {Spicy: 0.9},
	"Sweet Spice": {Spicy: 0.7, Sweet: 0.4},
	"Nutty":       {Spicy: 0.5, Woody: 0.3},

	"Oak":       {Woody: 0.9},
	"Cedar":     {Woody: 0.8},
	"Light oak": {Woody: 0.6},
	"Sherry":    {Woody: 0.5, Fruity: 0.4, Sweet: 0.3},
	"Rum":       {Sweet: 0.7, Woody: 0.3},

	"Smoke":    {Smoky: 0.9},
	"Ash":      {Smoky: 0.8},
	"Espresso": {Smoky: 0.5, Woody: 0.3},

	"Peat":      {Peaty: 0.9},
	"Medicinal": {Peaty: 0.7},
	"Iodine":    {Peaty: 0.8},
	"Seaweed":   {Peaty: 0.7},
}

// Profile maps the bottle's tasting notes onto a flavor vector summing to 1.
// Bottles without a recognised note get the zero profile.
func Profile(bottle *model.Bottle) FlavorProfile {
	accumulator := make([]float64, flavorDimensions)

	for _, note := range bottle.TastingNotes {
		weights, found := flavorLexicon[note]
		if !found {
			continue
		}

		floats.Add(accumulator, weights.Vector())
	}

	if total := floats.Sum(accumulator); total > 0 {
		floats.Scale(1/total, accumulator)
	}

	return profileFromVector(accumulator)
}

// IsKnownNote reports whether the note contributes to a flavor profile.
func IsKnownNote(note string) bool {
	_, found := flavorLexicon[note]

	return found
}

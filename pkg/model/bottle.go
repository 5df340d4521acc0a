package model

import (
	"time"

	"gorm.io/gorm"
)

type Bottle struct {
	ID           string         `gorm:"primaryKey"      json:"id"`
	Name         string         `json:"name"`
	Distiller    string         `json:"distiller"`
	Region       *string        `json:"region,omitempty"`
	Country      *string        `json:"country,omitempty"`
	Type         string         `json:"type"`
	SubType      *string        `json:"subType,omitempty"`
	Age          *uint64        `json:"age,omitempty"`
	ABV          *float64       `json:"abv,omitempty"`
	Price        *float64       `json:"price,omitempty"`
	Rating       *float64       `json:"rating,omitempty"`
	TastingNotes []string       `gorm:"serializer:json" json:"tasting_notes,omitempty"`
	ImageURL     *string        `json:"image_url,omitempty"`
	Popularity   *float64       `json:"popularity,omitempty"`
	CreatedAt    time.Time      `json:"-"`
	UpdatedAt    time.Time      `json:"-"`
	DeletedAt    gorm.DeletedAt `gorm:"index"           json:"-"`
}

// A field counts as present only when it is set and non-zero, so catalog
// rows with empty strings or zero prices behave like missing values.

func (b *Bottle) RegionValue() (string, bool) {
	return stringValue(b.Region)
}

func (b *Bottle) SubTypeValue() (string, bool) {
	return stringValue(b.SubType)
}

func (b *Bottle) AgeValue() (uint64, bool) {
	if b.Age == nil || *b.Age == 0 {
		return 0, false
	}

	return *b.Age, true
}

func (b *Bottle) PriceValue() (float64, bool) {
	return floatValue(b.Price)
}

func (b *Bottle) RatingValue() (float64, bool) {
	return floatValue(b.Rating)
}

func (b *Bottle) TypeKey() string {
	if subType, ok := b.SubTypeValue(); ok {
		return b.Type + " - " + subType
	}

	return b.Type
}

func stringValue(value *string) (string, bool) {
	if value == nil || len(*value) == 0 {
		return "", false
	}

	return *value, true
}

func floatValue(value *float64) (float64, bool) {
	if value == nil || *value == 0 {
		return 0, false
	}

	return *value, true
}

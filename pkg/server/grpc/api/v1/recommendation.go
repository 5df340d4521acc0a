// Package apiv1 holds the request and response messages of the
// bottlebutler.v1 services. Messages travel as JSON.
package apiv1

import "droscher.com/BottleButler/pkg/recommend"

type Bottle struct {
	Id           string   `json:"id"                     validate:"required,max=64"`
	Name         string   `json:"name"                   validate:"required"`
	Distiller    string   `json:"distiller"`
	Region       *string  `json:"region,omitempty"`
	Country      *string  `json:"country,omitempty"`
	Type         string   `json:"type"`
	SubType      *string  `json:"subType,omitempty"`
	Age          *uint64  `json:"age,omitempty"          validate:"omitempty,lte=100"`
	Abv          *float64 `json:"abv,omitempty"          validate:"omitempty,gte=0,lte=100"`
	Price        *float64 `json:"price,omitempty"        validate:"omitempty,gte=0"`
	Rating       *float64 `json:"rating,omitempty"       validate:"omitempty,gte=0,lte=5"`
	TastingNotes []string `json:"tasting_notes,omitempty"`
	ImageUrl     *string  `json:"image_url,omitempty"`
	Popularity   *float64 `json:"popularity,omitempty"   validate:"omitempty,gte=0"`
}

func (b *Bottle) GetId() string {
	if b == nil {
		return ""
	}

	return b.Id
}

type Reason struct {
	Type        string   `json:"type"`
	Description string   `json:"description"`
	Score       *float64 `json:"score,omitempty"`
}

type Recommendation struct {
	Bottle     *Bottle   `json:"bottle"`
	Reasons    []*Reason `json:"reasons"`
	MatchScore float64   `json:"matchScore"`
}

type GetBarRequest struct {
	Username string `json:"username" validate:"required,max=64"`
}

func (r *GetBarRequest) GetUsername() string {
	if r == nil {
		return ""
	}

	return r.Username
}

type GetBarResponse struct {
	Username string    `json:"username"`
	Bottles  []*Bottle `json:"bottles"`
}

type AnalyzeCollectionRequest struct {
	Username string `json:"username" validate:"omitempty,max=64"`
}

func (r *AnalyzeCollectionRequest) GetUsername() string {
	if r == nil {
		return ""
	}

	return r.Username
}

type AnalyzeCollectionResponse struct {
	Username string                       `json:"username"`
	Analysis recommend.CollectionAnalysis `json:"analysis"`
	Report   recommend.CollectionReport   `json:"report"`
}

type GetRecommendationsRequest struct {
	Username string `json:"username" validate:"omitempty,max=64"`
	Limit    int32  `json:"limit"    validate:"gte=0,lte=50"`
}

func (r *GetRecommendationsRequest) GetUsername() string {
	if r == nil {
		return ""
	}

	return r.Username
}

func (r *GetRecommendationsRequest) GetLimit() int32 {
	if r == nil {
		return 0
	}

	return r.Limit
}

type GetRecommendationsResponse struct {
	Username        string            `json:"username"`
	Strategy        string            `json:"strategy"`
	Recommendations []*Recommendation `json:"recommendations"`
}

type GetBottleRequest struct {
	Id string `json:"id" validate:"required,max=64"`
}

func (r *GetBottleRequest) GetId() string {
	if r == nil {
		return ""
	}

	return r.Id
}

type GetBottleResponse struct {
	Bottle *Bottle `json:"bottle"`
}

type AddCandidatesRequest struct {
	Bottles []*Bottle `json:"bottles" validate:"required,min=1,dive,required"`
}

func (r *AddCandidatesRequest) GetBottles() []*Bottle {
	if r == nil {
		return nil
	}

	return r.Bottles
}

type AddCandidatesResponse struct {
	Saved int32 `json:"saved"`
}

package grpc

import (
	"go.openly.dev/pointy"

	"droscher.com/BottleButler/pkg/model"
	"droscher.com/BottleButler/pkg/recommend"
	api "droscher.com/BottleButler/pkg/server/grpc/api/v1"
)

func BottlesFromModel(bottles []model.Bottle) []*api.Bottle {
	pbBottles := make([]*api.Bottle, 0, len(bottles))

	for index := range bottles {
		pbBottles = append(pbBottles, BottleFromModel(&bottles[index]))
	}

	return pbBottles
}

func BottleFromModel(bottle *model.Bottle) *api.Bottle {
	pbBottle := api.Bottle{
		Id:        bottle.ID,
		Name:      bottle.Name,
		Distiller: bottle.Distiller,
		Type:      bottle.Type,
	}

	if len(bottle.TastingNotes) > 0 {
		pbBottle.TastingNotes = append([]string(nil), bottle.TastingNotes...)
	}

	if bottle.Region != nil {
		pbBottle.Region = pointy.String(*bottle.Region)
	}

	if bottle.Country != nil {
		pbBottle.Country = pointy.String(*bottle.Country)
	}

	if bottle.SubType != nil {
		pbBottle.SubType = pointy.String(*bottle.SubType)
	}

	if bottle.Age != nil {
		pbBottle.Age = pointy.Uint64(*bottle.Age)
	}

	if bottle.ABV != nil {
		pbBottle.Abv = pointy.Float64(*bottle.ABV)
	}

	if bottle.Price != nil {
		pbBottle.Price = pointy.Float64(*bottle.Price)
	}

	if bottle.Rating != nil {
		pbBottle.Rating = pointy.Float64(*bottle.Rating)
	}

	if bottle.ImageURL != nil {
		pbBottle.ImageUrl = pointy.String(*bottle.ImageURL)
	}

	if bottle.Popularity != nil {
		pbBottle.Popularity = pointy.Float64(*bottle.Popularity)
	}

	return &pbBottle
}

func BottlesToModel(pbBottles []*api.Bottle) []model.Bottle {
	bottles := make([]model.Bottle, 0, len(pbBottles))

	for _, pbBottle := range pbBottles {
		if pbBottle == nil {
			continue
		}

		bottles = append(bottles, BottleToModel(pbBottle))
	}

	return bottles
}

func BottleToModel(pbBottle *api.Bottle) model.Bottle {
	bottle := model.Bottle{
		ID:        pbBottle.Id,
		Name:      pbBottle.Name,
		Distiller: pbBottle.Distiller,
		Type:      pbBottle.Type,
	}

	if len(pbBottle.TastingNotes) > 0 {
		bottle.TastingNotes = append([]string(nil), pbBottle.TastingNotes...)
	}

	if pbBottle.Region != nil {
		bottle.Region = pointy.String(*pbBottle.Region)
	}

	if pbBottle.Country != nil {
		bottle.Country = pointy.String(*pbBottle.Country)
	}

	if pbBottle.SubType != nil {
		bottle.SubType = pointy.String(*pbBottle.SubType)
	}

	if pbBottle.Age != nil {
		bottle.Age = pointy.Uint64(*pbBottle.Age)
	}

	if pbBottle.Abv != nil {
		bottle.ABV = pointy.Float64(*pbBottle.Abv)
	}

	if pbBottle.Price != nil {
		bottle.Price = pointy.Float64(*pbBottle.Price)
	}

	if pbBottle.Rating != nil {
		bottle.Rating = pointy.Float64(*pbBottle.Rating)
	}

	if pbBottle.ImageUrl != nil {
		bottle.ImageURL = pointy.String(*pbBottle.ImageUrl)
	}

	if pbBottle.Popularity != nil {
		bottle.Popularity = pointy.Float64(*pbBottle.Popularity)
	}

	return bottle
}

func RecommendationsFromModel(recommendations []recommend.BottleRecommendation) []*api.Recommendation {
	pbRecommendations := make([]*api.Recommendation, 0, len(recommendations))

	for index := range recommendations {
		recommendation := &recommendations[index]

		reasons := make([]*api.Reason, 0, len(recommendation.Reasons))
		for _, reason := range recommendation.Reasons {
			pbReason := api.Reason{Type: string(reason.Kind), Description: reason.Description}
			if reason.Score != nil {
				pbReason.Score = pointy.Float64(*reason.Score)
			}

			reasons = append(reasons, &pbReason)
		}

		pbRecommendations = append(pbRecommendations, &api.Recommendation{
			Bottle:     BottleFromModel(&recommendation.Bottle),
			Reasons:    reasons,
			MatchScore: recommendation.MatchScore,
		})
	}

	return pbRecommendations
}

package recommend_test

import (
	"testing"

	"github.com/stretchr/testify/suite"
	"go.openly.dev/pointy"

	"droscher.com/BottleButler/pkg/model"
	"droscher.com/BottleButler/pkg/recommend"
)

type RankerTestSuite struct {
	suite.Suite
	owned      []model.Bottle
	candidates []model.Bottle
}

func TestRankerTestSuite(t *testing.T) {
	suite.Run(t, new(RankerTestSuite))
}

func (suite *RankerTestSuite) SetupTest() {
	suite.owned = loadBottles(suite.T(), "testdata/owned.json")
	suite.candidates = loadBottles(suite.T(), "testdata/candidates.json")
}

func reasonsOfKind(recommendation recommend.BottleRecommendation, kind recommend.ReasonKind) []recommend.Reason {
	var reasons []recommend.Reason

	for _, reason := range recommendation.Reasons {
		if reason.Kind == kind {
			reasons = append(reasons, reason)
		}
	}

	return reasons
}

func (suite *RankerTestSuite) TestRank_EmptyInputs() {
	suite.Empty(recommend.Rank(nil, suite.candidates, 5))
	suite.Empty(recommend.Rank(suite.owned, nil, 5))
	suite.Empty(recommend.Rank(suite.owned, suite.candidates, 0))
	suite.NotNil(recommend.Rank(nil, suite.candidates, 5))
}

func (suite *RankerTestSuite) TestRank_IdenticalBottle() {
	owned := []model.Bottle{{ID: "a", Name: "Ardbeg 10", Region: pointy.String("Islay"), Price: pointy.Float64(85), TastingNotes: []string{"Smoke"}}}
	candidates := []model.Bottle{{ID: "b", Region: pointy.String("Islay"), Price: pointy.Float64(85), TastingNotes: []string{"Smoke"}}}

	results := recommend.Rank(owned, candidates, 5)
	suite.Require().Len(results, 1)

	recommendation := results[0]
	suite.Equal("b", recommendation.Bottle.ID)

	similar := reasonsOfKind(recommendation, recommend.ReasonSimilar)
	suite.Require().Len(similar, 2)
	suite.Equal("Matches your preferred flavor profile with similar smoky characteristics.", similar[0].Description)
	suite.InDelta(1.0, *similar[0].Score, delta)
	suite.Equal("Similar to Ardbeg 10 in your collection.", similar[1].Description)
	suite.InDelta(1.0, *similar[1].Score, delta)

	complementary := reasonsOfKind(recommendation, recommend.ReasonComplementary)
	suite.Require().Len(complementary, 1)
	suite.Equal("Complements your collection with its Islay character.", complementary[0].Description)
	suite.InDelta(0.85, *complementary[0].Score, delta)

	value := reasonsOfKind(recommendation, recommend.ReasonValue)
	suite.Require().Len(value, 1)
	suite.InDelta(1.0, *value[0].Score, delta)

	suite.InDelta((1.0+1.0+0.85+1.0)/4, recommendation.MatchScore, delta)
}

func (suite *RankerTestSuite) TestRank_MatchScoreIsMeanOfReasons() {
	for _, recommendation := range recommend.Rank(suite.owned, suite.candidates, len(suite.candidates)) {
		suite.Require().NotEmpty(recommendation.Reasons)

		total := 0.0
		for _, reason := range recommendation.Reasons {
			suite.Require().NotNil(reason.Score)
			total += *reason.Score
		}

		suite.InDelta(total/float64(len(recommendation.Reasons)), recommendation.MatchScore, delta)
		suite.GreaterOrEqual(recommendation.MatchScore, 0.0)
		suite.LessOrEqual(recommendation.MatchScore, 1.0)
	}
}

func (suite *RankerTestSuite) TestRank_SortedAndLimited() {
	results := recommend.Rank(suite.owned, suite.candidates, 5)
	suite.Len(results, 5)

	for index := 1; index < len(results); index++ {
		suite.GreaterOrEqual(results[index-1].MatchScore, results[index].MatchScore)
	}
}

func (suite *RankerTestSuite) TestRank_SkipsOwnedBottles() {
	candidates := append([]model.Bottle{}, suite.candidates...)
	candidates = append(candidates, suite.owned...)

	results := recommend.Rank(suite.owned, candidates, len(candidates))

	suite.Len(results, len(suite.candidates))
	suite.NotContains(bottleIDs(results), "own-1")
	suite.NotContains(bottleIDs(results), "own-2")
	suite.NotContains(bottleIDs(results), "own-3")
}

func (suite *RankerTestSuite) TestRank_TiesKeepCandidateOrder() {
	owned := []model.Bottle{{ID: "a", Region: pointy.String("Islay"), TastingNotes: []string{"Smoke"}}}
	candidates := []model.Bottle{
		{ID: "first", Name: "First", Region: pointy.String("Islay"), TastingNotes: []string{"Peat"}},
		{ID: "second", Name: "Second", Region: pointy.String("Islay"), TastingNotes: []string{"Peat"}},
		{ID: "third", Name: "Third", Region: pointy.String("Islay"), TastingNotes: []string{"Peat"}},
	}

	suite.Equal([]string{"first", "second", "third"}, bottleIDs(recommend.Rank(owned, candidates, 3)))
}

func (suite *RankerTestSuite) TestRank_WorkersDoNotChangeOutput() {
	sequential := recommend.Rank(suite.owned, suite.candidates, len(suite.candidates))
	parallel := recommend.NewRanker(4).Rank(suite.owned, suite.candidates, len(suite.candidates))

	suite.Equal(sequential, parallel)
}

func (suite *RankerTestSuite) TestRank_ComplementsFavoriteDistiller() {
	owned := []model.Bottle{
		{ID: "1", Distiller: "Ardbeg", Region: pointy.String("Islay")},
		{ID: "2", Distiller: "Ardbeg", Region: pointy.String("Islay")},
	}
	candidates := []model.Bottle{
		{ID: "same-distiller", Distiller: "Ardbeg", Region: pointy.String("Islay")},
		{ID: "same-region", Distiller: "Lagavulin", Region: pointy.String("Islay")},
	}

	results := recommend.Rank(owned, candidates, 2)
	suite.Require().Len(results, 2)

	byID := map[string]recommend.BottleRecommendation{}
	for _, result := range results {
		byID[result.Bottle.ID] = result
	}

	complementary := reasonsOfKind(byID["same-distiller"], recommend.ReasonComplementary)
	suite.Require().Len(complementary, 1)
	suite.Equal("Complements your collection with its Islay character.", complementary[0].Description)

	suite.Empty(reasonsOfKind(byID["same-region"], recommend.ReasonComplementary))
}

func (suite *RankerTestSuite) TestRank_ValueReason() {
	owned := []model.Bottle{{ID: "1", Price: pointy.Float64(100)}}
	candidates := []model.Bottle{
		{ID: "near", Price: pointy.Float64(80)},
		{ID: "far", Price: pointy.Float64(60)},
		{ID: "unpriced"},
	}

	results := recommend.Rank(owned, candidates, 3)
	suite.Require().Len(results, 3)

	byID := map[string]recommend.BottleRecommendation{}
	for _, result := range results {
		byID[result.Bottle.ID] = result
	}

	value := reasonsOfKind(byID["near"], recommend.ReasonValue)
	suite.Require().Len(value, 1)
	suite.InDelta(0.8, *value[0].Score, delta)
	suite.Equal("Good value within your typical price range.", value[0].Description)

	suite.Empty(reasonsOfKind(byID["far"], recommend.ReasonValue))
	suite.Empty(reasonsOfKind(byID["unpriced"], recommend.ReasonValue))
}

func (suite *RankerTestSuite) TestValueScore() {
	bottle := model.Bottle{Price: pointy.Float64(115)}

	suite.InDelta(0.85, recommend.ValueScore(&bottle, 100), delta)
	suite.Zero(recommend.ValueScore(&bottle, 0))
	suite.Zero(recommend.ValueScore(&bottle, 50))
	suite.Zero(recommend.ValueScore(&model.Bottle{}, 100))
}

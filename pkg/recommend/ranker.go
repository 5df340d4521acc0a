package recommend

import (
	"math"
	"sort"

	"golang.org/x/sync/errgroup"

	"droscher.com/BottleButler/pkg/model"
)

const (
	reasonThreshold    = 0.7
	complementScore    = 0.85
	maxValueRelDiff    = 0.3
	underrepresented   = 2
	defaultRankWorkers = 1
)

type Ranker struct {
	workers int
}

// NewRanker returns a ranker scoring up to workers candidates at a time.
// The output does not depend on the worker count.
func NewRanker(workers int) *Ranker {
	if workers < 1 {
		workers = defaultRankWorkers
	}

	return &Ranker{workers: workers}
}

// Rank scores every candidate against the owned collection and returns the
// best limit of them. Candidates sharing an id with an owned bottle and
// candidates without a single reason are left out.
func Rank(owned []model.Bottle, candidates []model.Bottle, limit int) []BottleRecommendation {
	return NewRanker(defaultRankWorkers).Rank(owned, candidates, limit)
}

type collectionContext struct {
	owned    []model.Bottle
	profiles []FlavorProfile
	analysis CollectionAnalysis
}

func (r *Ranker) Rank(owned []model.Bottle, candidates []model.Bottle, limit int) []BottleRecommendation {
	if len(owned) == 0 || len(candidates) == 0 || limit <= 0 {
		return []BottleRecommendation{}
	}

	collection := collectionContext{
		owned:    owned,
		profiles: make([]FlavorProfile, len(owned)),
		analysis: Analyze(owned),
	}

	ownedIDs := make(map[string]struct{}, len(owned))

	for index := range owned {
		ownedIDs[owned[index].ID] = struct{}{}
		collection.profiles[index] = Profile(&owned[index])
	}

	scored := make([]*BottleRecommendation, len(candidates))

	var group errgroup.Group

	group.SetLimit(r.workers)

	for index := range candidates {
		if _, found := ownedIDs[candidates[index].ID]; found {
			continue
		}

		index := index

		group.Go(func() error {
			scored[index] = evaluate(&candidates[index], &collection)

			return nil
		})
	}

	_ = group.Wait() // evaluate never fails

	results := make([]BottleRecommendation, 0, len(candidates))

	for _, recommendation := range scored {
		if recommendation != nil {
			results = append(results, *recommendation)
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].MatchScore > results[j].MatchScore
	})

	if len(results) > limit {
		results = results[:limit]
	}

	return results
}

func evaluate(candidate *model.Bottle, collection *collectionContext) *BottleRecommendation {
	var reasons []Reason

	profile := Profile(candidate)
	analysis := &collection.analysis

	if similarity := FlavorSimilarity(profile, analysis.FlavorProfile); similarity > reasonThreshold {
		reasons = append(reasons, flavorReason(profile, similarity))
	}

	if closest, similarity := mostSimilar(candidate, profile, collection); closest != nil && similarity > reasonThreshold {
		reasons = append(reasons, similarBottleReason(closest, similarity))
	}

	if complements(candidate, analysis) {
		reasons = append(reasons, complementaryReason(candidate, complementScore))
	}

	if value := ValueScore(candidate, analysis.AveragePrice); value > reasonThreshold {
		reasons = append(reasons, valueReason(value))
	}

	if len(reasons) == 0 {
		return nil
	}

	total := 0.0
	for _, reason := range reasons {
		total += *reason.Score
	}

	return &BottleRecommendation{
		Bottle:     *candidate,
		Reasons:    reasons,
		MatchScore: total / float64(len(reasons)),
	}
}

// mostSimilar keeps the first owned bottle reaching the highest similarity.
func mostSimilar(candidate *model.Bottle, profile FlavorProfile, collection *collectionContext) (*model.Bottle, float64) {
	var (
		closest *model.Bottle
		best    float64
	)

	for index := range collection.owned {
		similarity := bottleSimilarity(candidate, &collection.owned[index], profile, collection.profiles[index])
		if similarity > best {
			best = similarity
			closest = &collection.owned[index]
		}
	}

	return closest, best
}

func complements(candidate *model.Bottle, analysis *CollectionAnalysis) bool {
	if region, ok := candidate.RegionValue(); ok &&
		region == analysis.FavoriteRegion &&
		analysis.Regions.Count(region) < underrepresented {
		return true
	}

	return len(candidate.Distiller) > 0 && candidate.Distiller == analysis.FavoriteDistiller
}

// ValueScore rates how close the price sits to the collection average:
// 1-relDiff within 30% of it, 0 outside or when either price is unknown.
func ValueScore(bottle *model.Bottle, averagePrice float64) float64 {
	price, ok := bottle.PriceValue()
	if !ok || averagePrice == 0 {
		return 0
	}

	relDiff := math.Abs(price-averagePrice) / averagePrice
	if relDiff > maxValueRelDiff {
		return 0
	}

	return 1 - relDiff
}

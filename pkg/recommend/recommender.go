package recommend

import (
	"context"

	"go.uber.org/zap"

	"droscher.com/BottleButler/pkg/metrics"
	"droscher.com/BottleButler/pkg/model"
)

type Strategy string

const (
	StrategyRanked    Strategy = "ranked"
	StrategyReasoning Strategy = "reasoning"
	StrategyFallback  Strategy = "fallback"
)

// Reasoner asks an external service to pick recommendations. It returns the
// raw response body expected by Rehydrate.
type Reasoner interface {
	Recommend(ctx context.Context, owned []model.Bottle, candidates []model.Bottle, limit int) ([]byte, error)
}

type Result struct {
	Recommendations []BottleRecommendation `json:"recommendations"`
	Strategy        Strategy               `json:"strategy"`
}

type Recommender struct {
	ranker   *Ranker
	reasoner Reasoner
	strategy Strategy
	logger   *zap.Logger
}

func NewRecommender(ranker *Ranker, reasoner Reasoner, strategy Strategy, logger *zap.Logger) *Recommender {
	return &Recommender{ranker: ranker, reasoner: reasoner, strategy: strategy, logger: logger}
}

func (r *Recommender) Strategy() Strategy {
	return r.strategy
}

func (r *Recommender) Recommend(ctx context.Context, owned []model.Bottle, candidates []model.Bottle, limit int) Result {
	candidates = ExcludeOwned(owned, candidates)

	var result Result

	if r.strategy == StrategyReasoning {
		result = r.reason(ctx, owned, candidates, limit)
	} else {
		result = Result{Recommendations: r.ranker.Rank(owned, candidates, limit), Strategy: StrategyRanked}
	}

	metrics.RecommendationsServed.WithLabelValues(string(result.Strategy)).Inc()
	metrics.RecommendationsReturned.Observe(float64(len(result.Recommendations)))

	r.logger.Info("recommendations generated",
		zap.String("strategy", string(result.Strategy)),
		zap.Int("owned", len(owned)),
		zap.Int("candidates", len(candidates)),
		zap.Int("returned", len(result.Recommendations)))

	return result
}

func (r *Recommender) reason(ctx context.Context, owned []model.Bottle, candidates []model.Bottle, limit int) Result {
	if r.reasoner == nil {
		return r.fallback(owned, candidates, limit, "not_configured", ErrReasoningUnavailable)
	}

	raw, err := r.reasoner.Recommend(ctx, owned, candidates, limit)
	if err != nil {
		return r.fallback(owned, candidates, limit, "request", err)
	}

	recommendations, err := Rehydrate(raw, candidates, limit)
	if err != nil {
		return r.fallback(owned, candidates, limit, "response", err)
	}

	return Result{Recommendations: recommendations, Strategy: StrategyReasoning}
}

func (r *Recommender) fallback(owned []model.Bottle, candidates []model.Bottle, limit int, cause string, err error) Result {
	metrics.ReasoningFailures.WithLabelValues(cause).Inc()
	r.logger.Warn("reasoning unavailable, using fallback recommendations", zap.String("cause", cause), zap.Error(err))

	return Result{Recommendations: Fallback(owned, candidates, limit), Strategy: StrategyFallback}
}

// ExcludeOwned drops candidates whose id is already in the collection,
// keeping the order of the rest.
func ExcludeOwned(owned []model.Bottle, candidates []model.Bottle) []model.Bottle {
	ownedIDs := make(map[string]struct{}, len(owned))
	for index := range owned {
		ownedIDs[owned[index].ID] = struct{}{}
	}

	filtered := make([]model.Bottle, 0, len(candidates))

	for index := range candidates {
		if _, found := ownedIDs[candidates[index].ID]; !found {
			filtered = append(filtered, candidates[index])
		}
	}

	return filtered
}

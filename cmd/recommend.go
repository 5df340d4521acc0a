package cmd

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"droscher.com/BottleButler/configs"
	"droscher.com/BottleButler/pkg/recommend"
)

type RecommendCmd struct {
	Collection CollectionSource `embed:""`

	ConfigFile string `default:".BottleButler.toml"                                  help:"Path to config file" short:"c"`
	Candidates string `help:"JSON file holding the candidate bottles"                required:""                type:"existingfile"`
	Limit      int    `help:"Number of recommendations, defaults to the configured limit"`
	Strategy   string `help:"Override the configured strategy (ranked or reasoning)"`
}

func (r *RecommendCmd) Run(cliCtx *Context) error {
	logger := developmentLogger(cliCtx)
	defer logger.Sync() //nolint:errcheck // we don't care about logger sync errors

	conf, err := configs.GetLocalConfig(r.ConfigFile, logger)
	if err != nil {
		logger.Error("error loading config", zap.Error(err))

		return err
	}

	switch r.Strategy {
	case "":
	case string(recommend.StrategyRanked), string(recommend.StrategyReasoning):
		conf.Recommendations.Strategy = r.Strategy
	default:
		return fmt.Errorf("%w: unknown recommendation strategy %q", configs.ErrConfiguration, r.Strategy)
	}

	owned, err := r.Collection.load(&conf.Integrations, logger)
	if err != nil {
		logger.Error("error loading collection", zap.Error(err))

		return err
	}

	candidates, err := readBottles(r.Candidates)
	if err != nil {
		logger.Error("error reading candidates", zap.Error(err))

		return err
	}

	limit := r.Limit
	if limit <= 0 {
		limit = conf.Recommendations.Limit
	}

	recommender := newRecommender(&conf.Reasoning, &conf.Recommendations, logger)

	return writeJSON(recommender.Recommend(context.Background(), owned, candidates, limit))
}

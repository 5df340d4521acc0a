package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-json"
	"go.uber.org/zap"

	"droscher.com/BottleButler/configs"
	"droscher.com/BottleButler/pkg/integrations"
	"droscher.com/BottleButler/pkg/model"
	"droscher.com/BottleButler/pkg/reasoning"
	"droscher.com/BottleButler/pkg/recommend"
)

var ErrNoCollection = errors.New("either --owned or --username is required")

// output receives the JSON printed by the offline commands.
var output io.Writer = os.Stdout

func developmentLogger(cliCtx *Context) *zap.Logger {
	logConfig := zap.NewDevelopmentConfig()
	logConfig.DisableStacktrace = true

	if cliCtx == nil || !cliCtx.Debug {
		logConfig.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}

	logger, _ := logConfig.Build()

	return logger
}

func readBottles(path string) ([]model.Bottle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var bottles []model.Bottle
	if err = json.Unmarshal(data, &bottles); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}

	return bottles, nil
}

func writeJSON(value any) error {
	encoder := json.NewEncoder(output)
	encoder.SetIndent("", "  ")

	return encoder.Encode(value)
}

func newRecommender(reasoningConf *configs.Reasoning, conf *configs.Recommendations, logger *zap.Logger) *recommend.Recommender {
	var reasoner recommend.Reasoner
	if reasoningConf.Enabled {
		reasoner = reasoning.NewClient(reasoningConf, logger)
	}

	return recommend.NewRecommender(
		recommend.NewRanker(conf.Workers),
		reasoner,
		recommend.Strategy(conf.Strategy),
		logger,
	)
}

// CollectionSource reads owned bottles from a file or a catalog bar.
type CollectionSource struct {
	Owned    string `help:"JSON file holding the owned bottles" type:"existingfile"`
	Username string `help:"Catalog username whose bar is the collection"`
}

func (c *CollectionSource) load(conf *configs.Integrations, logger *zap.Logger) ([]model.Bottle, error) {
	if len(c.Owned) > 0 {
		return readBottles(c.Owned)
	}

	if len(c.Username) == 0 {
		return nil, ErrNoCollection
	}

	catalog, err := integrations.GetCatalog(conf, logger)
	if err != nil {
		return nil, err
	}

	return catalog.FindBar(c.Username)
}

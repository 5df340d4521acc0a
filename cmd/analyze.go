package cmd

import (
	"go.uber.org/zap"

	"droscher.com/BottleButler/configs"
	"droscher.com/BottleButler/pkg/recommend"
)

type AnalyzeCmd struct {
	Collection CollectionSource `embed:""`

	ConfigFile string `default:".BottleButler.toml" help:"Path to config file" short:"c"`
}

type analysisOutput struct {
	Analysis recommend.CollectionAnalysis `json:"analysis"`
	Report   recommend.CollectionReport   `json:"report"`
}

func (a *AnalyzeCmd) Run(cliCtx *Context) error {
	logger := developmentLogger(cliCtx)
	defer logger.Sync() //nolint:errcheck // we don't care about logger sync errors

	conf, err := configs.GetLocalConfig(a.ConfigFile, logger)
	if err != nil {
		logger.Error("error loading config", zap.Error(err))

		return err
	}

	owned, err := a.Collection.load(&conf.Integrations, logger)
	if err != nil {
		logger.Error("error loading collection", zap.Error(err))

		return err
	}

	return writeJSON(analysisOutput{Analysis: recommend.Analyze(owned), Report: recommend.Report(owned)})
}

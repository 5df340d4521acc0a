package cmd

import (
	"context"

	"go.uber.org/zap"

	"droscher.com/BottleButler/configs"
	"droscher.com/BottleButler/pkg/repository"
)

type SeedCmd struct {
	ConfigFile string `default:".BottleButler.toml" help:"Path to config file" short:"c"`
	File       string `arg:""                       help:"JSON file holding an array of bottles" type:"existingfile"`
}

func (s *SeedCmd) Run(cliCtx *Context) error {
	logger := developmentLogger(cliCtx)
	defer logger.Sync() //nolint:errcheck // we don't care about logger sync errors

	bottles, err := readBottles(s.File)
	if err != nil {
		logger.Error("error reading bottles", zap.String("file", s.File), zap.Error(err))

		return err
	}

	conf, err := configs.GetConfig(s.ConfigFile, logger)
	if err != nil {
		logger.Error("error loading config", zap.Error(err))

		return err
	}

	repo, err := repository.Open(conf, logger)
	if err != nil {
		logger.Error("error connecting to database", zap.Error(err))

		return err
	}
	defer repo.Close()

	if err = repo.SaveBottles(context.Background(), bottles); err != nil {
		logger.Error("error saving bottles", zap.Error(err))

		return err
	}

	logger.Info("candidate bottles loaded", zap.Int("count", len(bottles)))

	return nil
}

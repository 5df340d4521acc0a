package cmd

import (
	"context"

	"go.uber.org/zap"

	"droscher.com/BottleButler/configs"
	"droscher.com/BottleButler/pkg/repository"
)

type MigrateCmd struct {
	ConfigFile string `default:".BottleButler.toml" help:"Path to config file" short:"c"`
}

func (m *MigrateCmd) Run(cliCtx *Context) error {
	logger := developmentLogger(cliCtx)
	defer logger.Sync() //nolint:errcheck // we don't care about logger sync errors

	conf, err := configs.GetConfig(m.ConfigFile, logger)
	if err != nil {
		logger.Error("error loading config", zap.Error(err))

		return err
	}

	repo, err := repository.Open(conf, logger)
	if err != nil {
		logger.Fatal("error connecting to database")
	}
	defer repo.Close()

	return repo.Migrate(context.Background())
}

package cmd

import (
	"context"

	"go.openly.dev/pointy"
	"go.uber.org/zap"

	"droscher.com/BottleButler/configs"
	"droscher.com/BottleButler/pkg/repository"
)

type AddUserCmd struct {
	ConfigFile string `default:".BottleButler.toml" help:"Path to config file"          short:"c"`
	Username   string `arg:""                       help:"Name of the user"`
	Email      string `arg:""                       help:"Email address in the user's token"`
	Baxus      string `help:"BAXUS username whose bar is the user's collection"`
}

func (a *AddUserCmd) Run(cliCtx *Context) error {
	logger := developmentLogger(cliCtx)
	defer logger.Sync() //nolint:errcheck // we don't care about logger sync errors

	conf, err := configs.GetConfig(a.ConfigFile, logger)
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

	var baxusUserName *string
	if len(a.Baxus) > 0 {
		baxusUserName = pointy.String(a.Baxus)
	}

	user, err := repo.AddUser(context.Background(), a.Username, a.Email, baxusUserName)
	if err != nil {
		logger.Error("error adding user", zap.Error(err))

		return err
	}

	logger.Info("user added", zap.String("uuid", user.UUID.String()), zap.String("email", user.Email))

	return nil
}

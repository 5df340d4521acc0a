package integrations

import (
	"errors"
	"fmt"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"droscher.com/BottleButler/configs"
	"droscher.com/BottleButler/pkg/integrations/baxus"
	"droscher.com/BottleButler/pkg/model"
)

var ErrUnknownIntegration = errors.New("unknown integration")

type Integration interface {
	FindBar(username string) ([]model.Bottle, error)
}

func GetIntegration(name string, conf *configs.Integrations, logger *zap.Logger) (Integration, error) {
	if name == baxus.IntegrationName {
		integration, err := baxus.NewIntegration(conf.BaxusURL, logger.With(zap.String("integration", name)))
		if err != nil {
			return nil, err
		}

		return integration, nil
	}

	return nil, fmt.Errorf("%w: %s", ErrUnknownIntegration, name)
}

// GetCatalog returns the first configured integration that can be built.
func GetCatalog(conf *configs.Integrations, logger *zap.Logger) (Integration, error) {
	var errs error

	for _, name := range conf.Catalog {
		integration, err := GetIntegration(name, conf, logger)
		if err == nil {
			return integration, nil
		}

		errs = multierr.Append(errs, err)
	}

	if errs == nil {
		return nil, fmt.Errorf("%w: no catalog configured", ErrUnknownIntegration)
	}

	return nil, errs
}

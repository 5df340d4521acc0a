package integrations_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"droscher.com/BottleButler/configs"
	"droscher.com/BottleButler/pkg/integrations"
	"droscher.com/BottleButler/pkg/integrations/baxus"
)

func TestGetIntegration(t *testing.T) {
	conf := &configs.Integrations{BaxusURL: "https://services.baxus.co"}

	integration, err := integrations.GetIntegration("baxus", conf, zaptest.NewLogger(t))
	require.NoError(t, err)
	assert.IsType(t, &baxus.Integration{}, integration)

	integration, err = integrations.GetIntegration("whiskybase", conf, zaptest.NewLogger(t))
	require.ErrorIs(t, err, integrations.ErrUnknownIntegration)
	assert.Nil(t, integration)
}

func TestGetCatalog(t *testing.T) {
	conf := &configs.Integrations{Catalog: []string{"missing", "baxus"}, BaxusURL: "https://services.baxus.co"}

	integration, err := integrations.GetCatalog(conf, zaptest.NewLogger(t))
	require.NoError(t, err)
	assert.NotNil(t, integration)

	_, err = integrations.GetCatalog(&configs.Integrations{}, zaptest.NewLogger(t))
	require.ErrorIs(t, err, integrations.ErrUnknownIntegration)

	_, err = integrations.GetCatalog(&configs.Integrations{Catalog: []string{"missing"}}, zaptest.NewLogger(t))
	require.ErrorIs(t, err, integrations.ErrUnknownIntegration)
}

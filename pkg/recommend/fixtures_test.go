package recommend_test

import (
	"os"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/require"

	"droscher.com/BottleButler/pkg/model"
	"droscher.com/BottleButler/pkg/recommend"
)

func loadBottles(t *testing.T, path string) []model.Bottle {
	t.Helper()

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	var bottles []model.Bottle
	require.NoError(t, json.Unmarshal(raw, &bottles))

	return bottles
}

func bottleIDs(recommendations []recommend.BottleRecommendation) []string {
	ids := make([]string, 0, len(recommendations))
	for _, recommendation := range recommendations {
		ids = append(ids, recommendation.Bottle.ID)
	}

	return ids
}

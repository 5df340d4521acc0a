package cmd

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"droscher.com/BottleButler/configs"
	"droscher.com/BottleButler/pkg/recommend"
)

func captureOutput(t *testing.T) *bytes.Buffer {
	t.Helper()

	buffer := &bytes.Buffer{}
	previous := output
	output = buffer

	t.Cleanup(func() { output = previous })

	return buffer
}

func missingConfig(t *testing.T) string {
	t.Helper()

	return filepath.Join(t.TempDir(), "absent.toml")
}

func TestReadBottles(t *testing.T) {
	bottles, err := readBottles("testdata/candidates.json")
	require.NoError(t, err)
	assert.Len(t, bottles, 8)

	_, err = readBottles("testdata/missing.json")
	require.Error(t, err)
}

func TestRecommendCmd_RanksFromFiles(t *testing.T) {
	buffer := captureOutput(t)

	command := RecommendCmd{
		Collection: CollectionSource{Owned: "testdata/owned.json"},
		ConfigFile: missingConfig(t),
		Candidates: "testdata/candidates.json",
		Limit:      3,
	}
	require.NoError(t, command.Run(&Context{}))

	var result recommend.Result
	require.NoError(t, json.Unmarshal(buffer.Bytes(), &result))
	assert.Equal(t, recommend.StrategyRanked, result.Strategy)
	assert.Len(t, result.Recommendations, 3)

	for index := 1; index < len(result.Recommendations); index++ {
		assert.GreaterOrEqual(t, result.Recommendations[index-1].MatchScore, result.Recommendations[index].MatchScore)
	}
}

func TestRecommendCmd_ReasoningWithoutClientFallsBack(t *testing.T) {
	buffer := captureOutput(t)

	command := RecommendCmd{
		Collection: CollectionSource{Owned: "testdata/owned.json"},
		ConfigFile: missingConfig(t),
		Candidates: "testdata/candidates.json",
		Strategy:   "reasoning",
	}
	require.NoError(t, command.Run(&Context{}))

	var result recommend.Result
	require.NoError(t, json.Unmarshal(buffer.Bytes(), &result))
	assert.Equal(t, recommend.StrategyFallback, result.Strategy)
	assert.NotEmpty(t, result.Recommendations)
}

func TestRecommendCmd_UnknownStrategy(t *testing.T) {
	captureOutput(t)

	command := RecommendCmd{
		Collection: CollectionSource{Owned: "testdata/owned.json"},
		ConfigFile: missingConfig(t),
		Candidates: "testdata/candidates.json",
		Strategy:   "random",
	}
	require.ErrorIs(t, command.Run(&Context{}), configs.ErrConfiguration)
}

func TestRecommendCmd_NeedsCollection(t *testing.T) {
	captureOutput(t)

	command := RecommendCmd{ConfigFile: missingConfig(t), Candidates: "testdata/candidates.json"}
	require.ErrorIs(t, command.Run(&Context{}), ErrNoCollection)
}

func TestAnalyzeCmd_PrintsAnalysisAndReport(t *testing.T) {
	buffer := captureOutput(t)

	command := AnalyzeCmd{
		Collection: CollectionSource{Owned: "testdata/owned.json"},
		ConfigFile: missingConfig(t),
	}
	require.NoError(t, command.Run(&Context{Debug: true}))

	var printed struct {
		Analysis struct {
			AveragePrice float64 `json:"averagePrice"`
		} `json:"analysis"`
		Report struct {
			ByRegion []recommend.Group `json:"byRegion"`
		} `json:"report"`
	}
	require.NoError(t, json.Unmarshal(buffer.Bytes(), &printed))
	assert.InDelta(t, 55.0, printed.Analysis.AveragePrice, 1e-9)
	assert.Len(t, printed.Report.ByRegion, 3)
}

func TestConfigureCORS_AnswersPreflight(t *testing.T) {
	handler := configureCORS(http.NotFoundHandler())

	request := httptest.NewRequest(http.MethodOptions, "/bottlebutler.v1.RecommendationService/GetBar", nil)
	request.Header.Set("Origin", "https://bar.example.com")
	request.Header.Set("Access-Control-Request-Method", http.MethodPost)
	request.Header.Set("Access-Control-Request-Headers", "content-type,connect-protocol-version")

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusNoContent, recorder.Code)
	assert.NotEmpty(t, recorder.Header().Get("Access-Control-Allow-Origin"))
}

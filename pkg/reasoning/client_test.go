package reasoning_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/goccy/go-json"
	gobreaker "github.com/sony/gobreaker/v2"
	"github.com/stretchr/testify/suite"
	"go.openly.dev/pointy"
	"go.uber.org/zap/zaptest"

	"droscher.com/BottleButler/configs"
	"droscher.com/BottleButler/pkg/model"
	"droscher.com/BottleButler/pkg/reasoning"
	"droscher.com/BottleButler/pkg/recommend"
)

type ClientTestSuite struct {
	suite.Suite
	hits       atomic.Int32
	handler    http.HandlerFunc
	server     *httptest.Server
	conf       configs.Reasoning
	owned      []model.Bottle
	candidates []model.Bottle
}

func TestClientTestSuite(t *testing.T) {
	suite.Run(t, new(ClientTestSuite))
}

func (suite *ClientTestSuite) SetupTest() {
	suite.hits.Store(0)
	suite.handler = nil
	suite.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		suite.hits.Add(1)
		suite.handler(w, r)
	}))
	suite.conf = configs.Reasoning{
		Enabled:           true,
		BaseURL:           suite.server.URL + "/",
		APIKey:            "sk-test",
		Model:             "gpt-4o",
		TimeoutSeconds:    5,
		MaxRetries:        2,
		RequestsPerMinute: 60000,
		MaxFailures:       5,
		OpenSeconds:       60,
	}
	suite.owned = []model.Bottle{{ID: "own-1", Name: "Laphroaig 10", Region: pointy.String("Islay"), TastingNotes: []string{"Peat"}}}
	suite.candidates = []model.Bottle{
		{ID: "rec-2", Name: "Lagavulin 16 Year Old", Price: pointy.Float64(89)},
		{ID: "rec-8", Name: "Ardbeg Uigeadail", Price: pointy.Float64(85)},
	}
}

func (suite *ClientTestSuite) TearDownTest() {
	suite.server.Close()
}

func (suite *ClientTestSuite) newClient() *reasoning.Client {
	return reasoning.NewClient(&suite.conf, zaptest.NewLogger(suite.T()), reasoning.WithBackoff(time.Millisecond))
}

func completion(content string) []byte {
	body, _ := json.Marshal(map[string]any{
		"choices": []any{map[string]any{"message": map[string]any{"role": "assistant", "content": content}}},
	})

	return body
}

func (suite *ClientTestSuite) TestRecommend_SendsPrompt() {
	var request struct {
		Model    string `json:"model"`
		Messages []struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"messages"`
		ResponseFormat struct {
			Type string `json:"type"`
		} `json:"response_format"`
	}

	suite.handler = func(w http.ResponseWriter, r *http.Request) {
		suite.Equal(http.MethodPost, r.Method)
		suite.Equal("/v1/chat/completions", r.URL.Path)
		suite.Equal("Bearer sk-test", r.Header.Get("Authorization"))
		suite.NoError(json.NewDecoder(r.Body).Decode(&request))
		_, _ = w.Write(completion(`{"recommendations":[{"bottleId":"rec-8","matchScore":0.9,"reasons":[]}]}`))
	}

	content, err := suite.newClient().Recommend(context.Background(), suite.owned, suite.candidates, 5)

	suite.Require().NoError(err)
	suite.JSONEq(`{"recommendations":[{"bottleId":"rec-8","matchScore":0.9,"reasons":[]}]}`, string(content))
	suite.Equal("gpt-4o", request.Model)
	suite.Equal("json_object", request.ResponseFormat.Type)
	suite.Require().Len(request.Messages, 2)
	suite.Equal("system", request.Messages[0].Role)
	suite.Contains(request.Messages[0].Content, "You are Bob, an AI whisky butler expert.")
	suite.Equal("user", request.Messages[1].Role)
	suite.Contains(request.Messages[1].Content, `"id": "rec-2"`)
	suite.Contains(request.Messages[1].Content, `"name": "Laphroaig 10"`)
	suite.Contains(request.Messages[1].Content, "select 2 bottles from the candidate list")
}

func (suite *ClientTestSuite) TestRecommend_RetriesServerErrors() {
	suite.handler = func(w http.ResponseWriter, _ *http.Request) {
		if suite.hits.Load() == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)

			return
		}

		_, _ = w.Write(completion(`{"recommendations":[]}`))
	}

	content, err := suite.newClient().Recommend(context.Background(), suite.owned, suite.candidates, 2)

	suite.Require().NoError(err)
	suite.JSONEq(`{"recommendations":[]}`, string(content))
	suite.Equal(int32(2), suite.hits.Load())
}

func (suite *ClientTestSuite) TestRecommend_GivesUpAfterRetries() {
	suite.handler = func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}

	content, err := suite.newClient().Recommend(context.Background(), suite.owned, suite.candidates, 2)

	suite.Require().ErrorIs(err, recommend.ErrReasoningUnavailable)
	suite.Nil(content)
	suite.Equal(int32(3), suite.hits.Load())
}

func (suite *ClientTestSuite) TestRecommend_DoesNotRetryClientErrors() {
	suite.handler = func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":{"message":"Incorrect API key provided"}}`))
	}

	_, err := suite.newClient().Recommend(context.Background(), suite.owned, suite.candidates, 2)

	suite.Require().ErrorIs(err, recommend.ErrReasoningUnavailable)
	suite.Require().ErrorContains(err, "Incorrect API key provided")
	suite.Equal(int32(1), suite.hits.Load())
}

func (suite *ClientTestSuite) TestRecommend_EmptyCompletion() {
	suite.handler = func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[]}`))
	}

	_, err := suite.newClient().Recommend(context.Background(), suite.owned, suite.candidates, 2)

	suite.Require().ErrorIs(err, recommend.ErrReasoningUnavailable)
}

func (suite *ClientTestSuite) TestRecommend_BreakerOpens() {
	suite.conf.MaxRetries = 0
	suite.conf.MaxFailures = 1
	suite.handler = func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}

	client := suite.newClient()

	_, err := client.Recommend(context.Background(), suite.owned, suite.candidates, 2)
	suite.Require().ErrorIs(err, recommend.ErrReasoningUnavailable)

	_, err = client.Recommend(context.Background(), suite.owned, suite.candidates, 2)
	suite.Require().ErrorIs(err, recommend.ErrReasoningUnavailable)
	suite.Require().ErrorIs(err, gobreaker.ErrOpenState)
	suite.Equal(int32(1), suite.hits.Load())
}

func (suite *ClientTestSuite) TestRecommend_CancelledContext() {
	suite.handler = func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write(completion(`{"recommendations":[]}`))
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := suite.newClient().Recommend(ctx, suite.owned, suite.candidates, 2)

	suite.Require().ErrorIs(err, recommend.ErrReasoningUnavailable)
	suite.Equal(int32(0), suite.hits.Load())
}

func (suite *ClientTestSuite) TestRecommender_UsesReasoning() {
	suite.handler = func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write(completion(`{"recommendations":[{"bottleId":"rec-8","matchScore":0.9,"reasons":[{"type":"similar","description":"Peat lovers pick."}]},{"bottleId":"own-1"}]}`))
	}

	recommender := recommend.NewRecommender(recommend.NewRanker(1), suite.newClient(), recommend.StrategyReasoning, zaptest.NewLogger(suite.T()))

	result := recommender.Recommend(context.Background(), suite.owned, suite.candidates, 5)

	suite.Equal(recommend.StrategyReasoning, result.Strategy)
	suite.Require().Len(result.Recommendations, 1)
	suite.Equal("rec-8", result.Recommendations[0].Bottle.ID)
	suite.Equal("Peat lovers pick.", result.Recommendations[0].Reasons[0].Description)
}

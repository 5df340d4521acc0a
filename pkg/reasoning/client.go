package reasoning

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"
	gobreaker "github.com/sony/gobreaker/v2"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"droscher.com/BottleButler/configs"
	"droscher.com/BottleButler/pkg/metrics"
	"droscher.com/BottleButler/pkg/model"
	"droscher.com/BottleButler/pkg/recommend"
)

const (
	breakerName       = "reasoning"
	completionsPath   = "/v1/chat/completions"
	defaultBackoff    = time.Second
	maxBackoff        = 10 * time.Second
	maxResponseBytes  = 4 << 20
	halfOpenRequests  = 1
	secondsPerMinute  = 60
	defaultRatePerMin = 30
)

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type responseFormat struct {
	Type string `json:"type"`
}

type chatRequest struct {
	Model          string         `json:"model"`
	Messages       []chatMessage  `json:"messages"`
	ResponseFormat responseFormat `json:"response_format"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

type apiError struct {
	StatusCode int
	Body       string
	RetryAfter time.Duration
}

func (e *apiError) Error() string {
	return fmt.Sprintf("reasoning http %d: %s", e.StatusCode, e.Body)
}

var errEmptyCompletion = errors.New("completion has no content")

// Client asks an OpenAI compatible chat completions endpoint to choose
// recommendations. It satisfies recommend.Reasoner.
type Client struct {
	baseURL    string
	apiKey     string
	model      string
	maxRetries int
	backoff    time.Duration
	httpClient *http.Client
	limiter    *rate.Limiter
	breaker    *gobreaker.CircuitBreaker[[]byte]
	logger     *zap.Logger
}

type Option func(*Client)

func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithBackoff sets the delay before the first retry. It doubles on every
// further attempt.
func WithBackoff(backoff time.Duration) Option {
	return func(c *Client) {
		c.backoff = backoff
	}
}

func NewClient(conf *configs.Reasoning, logger *zap.Logger, opts ...Option) *Client {
	perMinute := conf.RequestsPerMinute
	if perMinute <= 0 {
		perMinute = defaultRatePerMin
	}

	client := &Client{
		baseURL:    strings.TrimRight(conf.BaseURL, "/"),
		apiKey:     conf.APIKey,
		model:      conf.Model,
		maxRetries: max(conf.MaxRetries, 0),
		backoff:    defaultBackoff,
		httpClient: &http.Client{Timeout: time.Duration(conf.TimeoutSeconds) * time.Second},
		limiter:    rate.NewLimiter(rate.Limit(float64(perMinute)/secondsPerMinute), 1),
		logger:     logger.With(zap.String("client", breakerName)),
	}

	for _, opt := range opts {
		opt(client)
	}

	metrics.CircuitBreakerState.WithLabelValues(breakerName).Set(0)

	client.breaker = gobreaker.NewCircuitBreaker[[]byte](gobreaker.Settings{
		Name:        breakerName,
		MaxRequests: halfOpenRequests,
		Timeout:     time.Duration(conf.OpenSeconds) * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return conf.MaxFailures > 0 && counts.ConsecutiveFailures >= conf.MaxFailures
		},
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			client.logger.Warn("circuit breaker state change", zap.String("from", from.String()), zap.String("to", to.String()))
			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateValue(to))
			metrics.CircuitBreakerTransitions.WithLabelValues(name, from.String(), to.String()).Inc()
		},
	})

	return client
}

func stateValue(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2 //nolint:mnd // gauge encoding
	default:
		return 0
	}
}

// Recommend returns the raw JSON content of the assistant's answer. Every
// failure wraps recommend.ErrReasoningUnavailable.
func (c *Client) Recommend(ctx context.Context, owned []model.Bottle, candidates []model.Bottle, limit int) ([]byte, error) {
	prompt, err := userPrompt(owned, candidates, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", recommend.ErrReasoningUnavailable, err)
	}

	request := chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: prompt},
		},
		ResponseFormat: responseFormat{Type: "json_object"},
	}

	if err = c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("%w: %w", recommend.ErrReasoningUnavailable, err)
	}

	content, err := c.breaker.Execute(func() ([]byte, error) {
		return c.complete(ctx, &request)
	})
	if err != nil {
		c.logger.Error("reasoning request failed", zap.Error(err))

		return nil, fmt.Errorf("%w: %w", recommend.ErrReasoningUnavailable, err)
	}

	return content, nil
}

func (c *Client) complete(ctx context.Context, request *chatRequest) ([]byte, error) {
	body, err := json.Marshal(request)
	if err != nil {
		return nil, err
	}

	backoff := c.backoff

	for attempt := 0; ; attempt++ {
		raw, requestErr := c.doOnce(ctx, body)
		if requestErr == nil {
			return decodeCompletion(raw)
		}

		if !retryable(requestErr) || attempt >= c.maxRetries {
			return nil, requestErr
		}

		sleepFor := backoff

		var httpErr *apiError
		if errors.As(requestErr, &httpErr) && httpErr.RetryAfter > 0 {
			sleepFor = httpErr.RetryAfter
		}

		sleepFor = min(sleepFor, maxBackoff)

		c.logger.Warn("reasoning request retrying",
			zap.Int("attempt", attempt+1),
			zap.Int("maxRetries", c.maxRetries),
			zap.Duration("sleep", sleepFor),
			zap.Error(requestErr))

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(sleepFor):
		}

		backoff *= 2
	}
}

func (c *Client) doOnce(ctx context.Context, body []byte) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+completionsPath, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}

	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &apiError{StatusCode: resp.StatusCode, Body: string(raw), RetryAfter: retryAfter(resp)}
	}

	return raw, nil
}

func decodeCompletion(raw []byte) ([]byte, error) {
	var response chatResponse
	if err := json.Unmarshal(raw, &response); err != nil {
		return nil, fmt.Errorf("undecodable completion: %w", err)
	}

	if len(response.Choices) == 0 || len(strings.TrimSpace(response.Choices[0].Message.Content)) == 0 {
		return nil, errEmptyCompletion
	}

	return []byte(response.Choices[0].Message.Content), nil
}

func retryable(err error) bool {
	if errors.Is(err, context.Canceled) {
		return false
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var httpErr *apiError
	if errors.As(err, &httpErr) {
		return httpErr.StatusCode == http.StatusTooManyRequests || httpErr.StatusCode >= http.StatusInternalServerError
	}

	var netErr net.Error

	return errors.As(err, &netErr)
}

func retryAfter(resp *http.Response) time.Duration {
	seconds, err := strconv.Atoi(strings.TrimSpace(resp.Header.Get("Retry-After")))
	if err != nil || seconds <= 0 {
		return 0
	}

	return time.Duration(seconds) * time.Second
}

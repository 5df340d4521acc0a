package baxus

import (
	"errors"
	"fmt"
	"net/url"

	"go.uber.org/zap"
)

const IntegrationName = "baxus"

var ErrUserNotFound = errors.New("bar user not found")

type Integration struct {
	baseURL *url.URL
	logger  *zap.Logger
}

func NewIntegration(baseURL string, logger *zap.Logger) (*Integration, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid baxus url %q: %w", baseURL, err)
	}

	if len(parsed.Hostname()) == 0 {
		return nil, fmt.Errorf("invalid baxus url %q: no host", baseURL)
	}

	return &Integration{baseURL: parsed, logger: logger}, nil
}

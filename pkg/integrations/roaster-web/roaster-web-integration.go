package roasterweb

import (
	"errors"
	"fmt"
	"net/url"

	"go.uber.org/zap"

	"droscher.com/CoffeeLedger/configs"
)

const IntegrationName = "roaster_web"

var ErrMissingBaseURL = errors.New("roaster web shop base URL is not configured")

type RoasterWebIntegration struct {
	logger     *zap.Logger
	baseURL    *url.URL
	searchPath string
}

func NewRoasterWebIntegration(config configs.RoasterWeb, logger *zap.Logger) (*RoasterWebIntegration, error) {
	if config.BaseURL == "" {
		return nil, ErrMissingBaseURL
	}

	baseURL, err := url.Parse(config.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("parsing roaster web shop base URL: %w", err)
	}

	if baseURL.Hostname() == "" {
		return nil, fmt.Errorf("%w: %q has no host", ErrMissingBaseURL, config.BaseURL)
	}

	return &RoasterWebIntegration{logger: logger, baseURL: baseURL, searchPath: config.SearchPath}, nil
}

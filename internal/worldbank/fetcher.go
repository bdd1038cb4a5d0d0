package worldbank

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"resty.dev/v3"

	"indicatorfetcher/internal/fetcher"
)

// IndicatorFetcher retrieves the raw response for one indicator request
type IndicatorFetcher struct {
	request Request
	baseURL string
	client  *resty.Client
	log     *zap.SugaredLogger
}

// NewIndicatorFetcher creates a fetcher for req against baseURL (empty selects DefaultBaseURL).
// req must come from NewRequest; Fetch refuses a zero Request without sending anything.
func NewIndicatorFetcher(req Request, baseURL string, log *zap.SugaredLogger) *IndicatorFetcher {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if log == nil {
		log = zap.NewNop().Sugar()
	}

	return &IndicatorFetcher{
		request: req,
		baseURL: baseURL,
		client:  fetcher.NewHTTPClient(),
		log:     log.With("key", keyFor(req)),
	}
}

// Fetch performs the single GET for this fetcher's request
func (f *IndicatorFetcher) Fetch(ctx context.Context) (*fetcher.Result, error) {
	if f.request == (Request{}) {
		return nil, fetcher.NewValidationError("request was not built with NewRequest", nil)
	}

	result, err := fetcher.Get(ctx, f.client, f.URL(), f.log)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s for %s: %w", f.request.indicator, f.request.country, err)
	}

	result.Key = f.Key()
	return result, nil
}

// URL returns the request URL this fetcher sends
func (f *IndicatorFetcher) URL() string {
	return f.request.URL(f.baseURL)
}

// Key returns the identifier used in logs and the run summary
func (f *IndicatorFetcher) Key() string {
	return keyFor(f.request)
}

// Close releases the underlying HTTP client
func (f *IndicatorFetcher) Close() error {
	return f.client.Close()
}

func keyFor(req Request) string {
	return fmt.Sprintf("fetcher:worldbank:%s:%s", req.country, req.indicator)
}

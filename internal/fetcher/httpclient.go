package fetcher

import (
	"context"

	"go.uber.org/zap"
	"resty.dev/v3"
)

// NewHTTPClient creates the HTTP client used for provider requests.
// Retries are disabled and no client timeout is set: a request either completes
// once or fails with whatever the transport reports. Cancellation comes from ctx.
func NewHTTPClient() *resty.Client {
	return resty.New().
		SetHeader("Accept", "application/json").
		SetRetryCount(0)
}

// Get performs one GET against url and returns the body as-is.
// Transport failures are returned as network errors; HTTP status codes are not inspected.
func Get(ctx context.Context, client *resty.Client, url string, log *zap.SugaredLogger) (*Result, error) {
	log.Debugw("sending request", "url", url)

	resp, err := client.R().
		SetContext(ctx).
		Get(url)
	if err != nil {
		return nil, NewNetworkError(err)
	}

	result := &Result{
		URL:        url,
		StatusCode: resp.StatusCode(),
		Body:       resp.Bytes(),
	}

	if !result.IsSuccess() {
		log.Warnw("provider returned non-success status",
			"url", url,
			"status_code", result.StatusCode)
	} else {
		log.Debugw("received response",
			"url", url,
			"status_code", result.StatusCode,
			"bytes", len(result.Body))
	}

	return result, nil
}

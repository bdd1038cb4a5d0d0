package testutil

import (
	"context"
	"net/http"
	"strconv"

	"indicatorfetcher/internal/chart"
	"indicatorfetcher/internal/fetcher"
)

// MockFetcher is a mock implementation of the Fetcher interface for testing
type MockFetcher struct {
	FetchFunc func(ctx context.Context) (*fetcher.Result, error)
	KeyFunc   func() string
}

// Fetch implements the Fetcher interface
func (m *MockFetcher) Fetch(ctx context.Context) (*fetcher.Result, error) {
	if m.FetchFunc != nil {
		return m.FetchFunc(ctx)
	}
	return &fetcher.Result{StatusCode: http.StatusOK}, nil
}

// Key implements the Fetcher interface
func (m *MockFetcher) Key() string {
	if m.KeyFunc != nil {
		return m.KeyFunc()
	}
	return "mock:key"
}

// NewMockFetcher creates a simple mock fetcher that returns body with status 200, or err
func NewMockFetcher(key string, body string, err error) fetcher.Fetcher {
	return &MockFetcher{
		FetchFunc: func(ctx context.Context) (*fetcher.Result, error) {
			if err != nil {
				return nil, err
			}
			return &fetcher.Result{Key: key, StatusCode: http.StatusOK, Body: []byte(body)}, nil
		},
		KeyFunc: func() string {
			return key
		},
	}
}

// RecordingRenderer captures what it is asked to draw
type RecordingRenderer struct {
	Tables []chart.Table
	Metas  []chart.Meta
	Err    error
}

// Render implements chart.Renderer
func (r *RecordingRenderer) Render(table chart.Table, meta chart.Meta) error {
	r.Tables = append(r.Tables, table)
	r.Metas = append(r.Metas, meta)
	return r.Err
}

// IndicatorResponse builds a provider data response with one observation per
// (date, value) pair; value is inserted verbatim, so pass "null" for a missing one.
func IndicatorResponse(indicatorID, indicatorName, country string, pairs ...[2]string) string {
	body := `[{"page":1,"pages":1,"per_page":50,"total":` + strconv.Itoa(len(pairs)) + `,"sourceid":"2"},[`
	for i, p := range pairs {
		if i > 0 {
			body += ","
		}
		body += `{"indicator":{"id":"` + indicatorID + `","value":"` + indicatorName + `"},` +
			`"country":{"id":"XX","value":"` + country + `"},` +
			`"date":"` + p[0] + `","value":` + p[1] + `}`
	}
	return body + "]]"
}

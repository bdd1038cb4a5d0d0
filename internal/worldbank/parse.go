package worldbank

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"indicatorfetcher/internal/fetcher"
)

// ErrNoObservations is returned when a well-formed data response holds no observations
var ErrNoObservations = errors.New("response contains no observations")

var errNotDataShape = errors.New("response is not a [page, observations] pair")

// APIError is the message the provider sends instead of data when it rejects a request
type APIError struct {
	ID    string `json:"id"`
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Error implements the error interface
func (e *APIError) Error() string {
	return fmt.Sprintf("worldbank %s (id %s): %s", e.Key, e.ID, e.Value)
}

type errorEnvelope struct {
	Message []APIError `json:"message"`
}

// Parse decodes a raw response body into a Series.
//
// The body must be a JSON array. A two-element [page, observations] array is data;
// otherwise a leading {"message": [...]} record is the provider's rejection and is
// returned as an invalid-request error carrying the provider's text. Anything else
// is a decode error.
func Parse(raw []byte) (*Series, error) {
	text, err := DecodeText(raw)
	if err != nil {
		return nil, err
	}

	var top []json.RawMessage
	if err := json.Unmarshal([]byte(text), &top); err != nil {
		return nil, fetcher.NewDecodeError("response is not a JSON array", err)
	}

	series, dataErr := decodeSeries(top)
	if dataErr == nil {
		return series, nil
	}

	if apiErr, ok := decodeAPIError(top); ok {
		return nil, fetcher.NewInvalidRequestError(apiErr.Value, apiErr)
	}
	if errors.Is(dataErr, ErrNoObservations) {
		return nil, dataErr
	}

	return nil, fetcher.NewDecodeError("response matches neither the data nor the error shape", dataErr)
}

func decodeSeries(top []json.RawMessage) (*Series, error) {
	if len(top) != 2 {
		return nil, errNotDataShape
	}

	var page pageRecord
	if err := strictUnmarshal(top[0], &page); err != nil {
		return nil, fmt.Errorf("decode page metadata: %w", err)
	}

	var observations []observation
	if err := json.Unmarshal(top[1], &observations); err != nil {
		return nil, fmt.Errorf("decode observations: %w", err)
	}
	if len(observations) == 0 {
		return nil, ErrNoObservations
	}

	first := observations[0]
	series := &Series{
		IndicatorID:   first.Indicator.ID,
		IndicatorName: first.Indicator.Value,
		CountryID:     first.Country.ID,
		CountryName:   first.Country.Value,
		Dates:         make([]string, len(observations)),
		Values:        make([]Value, len(observations)),
		Page:          page.toPage(),
	}
	for i, obs := range observations {
		series.Dates[i] = obs.Date
		series.Values[i] = obs.Value
	}

	return series, nil
}

func decodeAPIError(top []json.RawMessage) (*APIError, bool) {
	if len(top) == 0 {
		return nil, false
	}

	var env errorEnvelope
	if err := json.Unmarshal(top[0], &env); err != nil || len(env.Message) == 0 {
		return nil, false
	}

	return &env.Message[0], true
}

// strictUnmarshal rejects JSON null and non-object values that json.Unmarshal
// would otherwise accept silently into a struct.
func strictUnmarshal(data json.RawMessage, v any) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return errors.New("expected a JSON object")
	}
	return json.Unmarshal(trimmed, v)
}

// count accepts both 50 and "50"; the provider is inconsistent about which it sends.
type count int

func (c *count) UnmarshalJSON(data []byte) error {
	data = bytes.Trim(bytes.TrimSpace(data), `"`)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*c = 0
		return nil
	}
	n, err := strconv.Atoi(string(data))
	if err != nil {
		return fmt.Errorf("invalid count %q: %w", data, err)
	}
	*c = count(n)
	return nil
}

type pageRecord struct {
	Page        count  `json:"page"`
	Pages       count  `json:"pages"`
	PerPage     count  `json:"per_page"`
	Total       count  `json:"total"`
	SourceID    string `json:"sourceid"`
	LastUpdated string `json:"lastupdated"`
}

func (p pageRecord) toPage() Page {
	return Page{
		Page:        int(p.Page),
		Pages:       int(p.Pages),
		PerPage:     int(p.PerPage),
		Total:       int(p.Total),
		SourceID:    p.SourceID,
		LastUpdated: p.LastUpdated,
	}
}

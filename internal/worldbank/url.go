package worldbank

import (
	"fmt"
	"net/url"
	"strings"
)

// DefaultBaseURL is the World Bank REST API root
const DefaultBaseURL = "https://api.worldbank.org/v2"

// URL formats the query URL for r against baseURL.
// An empty baseURL selects DefaultBaseURL.
func (r Request) URL(baseURL string) string {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	return fmt.Sprintf("%s/country/%s/indicator/%s?format=%s",
		strings.TrimSuffix(baseURL, "/"),
		url.PathEscape(r.country),
		url.PathEscape(r.indicator),
		url.QueryEscape(r.format),
	)
}

// BuildURL validates the parameters and formats the query URL in one step.
// format may be empty, in which case "json" is used.
func BuildURL(baseURL, country, indicator, format string) (string, error) {
	req, err := NewRequest(country, indicator, format)
	if err != nil {
		return "", err
	}
	return req.URL(baseURL), nil
}

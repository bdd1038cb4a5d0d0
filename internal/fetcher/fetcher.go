package fetcher

import "context"

// Fetcher is the interface a data source implements.
// Each fetcher knows how to retrieve one raw response from a provider
// and provides a hierarchical key identifying what it fetched.
type Fetcher interface {
	// Fetch performs a single request and returns the raw response.
	// A non-2xx status is not an error; the body is returned for the caller to interpret.
	Fetch(ctx context.Context) (*Result, error)

	// Key returns a hierarchical key for this fetcher.
	// Format: fetcher:{source}:{identifier}
	// Examples:
	//   - fetcher:worldbank:afg:NY.GDP.MKTP.CN
	//   - fetcher:worldbank:deu:SP.POP.TOTL
	Key() string
}

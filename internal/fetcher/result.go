package fetcher

// Result is the raw outcome of a single fetch.
// It is handed once to a parser and then discarded.
type Result struct {
	// Key identifies the fetcher that produced this result
	Key string

	// URL is the request URL as sent
	URL string

	// StatusCode is the HTTP status of the response
	StatusCode int

	// Body is the response body exactly as received
	Body []byte
}

// IsSuccess reports whether the response carried a 2xx status
func (r *Result) IsSuccess() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

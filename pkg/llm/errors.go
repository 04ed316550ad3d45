package llm

import "fmt"

// APIError is a non-2xx reply from a provider's HTTP API. The status code
// carries the provider's own classification (402 insufficient credits,
// 429 rate limited, ...).
type APIError struct {
	Provider   string
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("%s: upstream returned status %d", e.Provider, e.StatusCode)
	}
	return fmt.Sprintf("%s: upstream returned status %d: %s", e.Provider, e.StatusCode, e.Body)
}

package constants

import "time"

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout is the default timeout for HTTP requests.
	DefaultHTTPTimeout = 30 * time.Second

	// ShortHTTPTimeout is used for quick operations.
	ShortHTTPTimeout = 10 * time.Second
)

// Retry limits for the transport. Only connection errors, 5xx, and 429 are
// retried; mapped API errors never are.
const (
	// DefaultRetryMax is the default maximum number of retries.
	DefaultRetryMax = 3

	// DefaultRetryWaitMin is the minimum backoff between retries.
	DefaultRetryWaitMin = 500 * time.Millisecond

	// DefaultRetryWaitMax is the maximum backoff between retries.
	DefaultRetryWaitMax = 10 * time.Second
)

// Polling intervals for eventual-consistency waits.
const (
	// DefaultAwaitTimeout bounds one polling loop.
	DefaultAwaitTimeout = 10 * time.Second

	// DefaultAwaitInterval is the pause between polling reads.
	DefaultAwaitInterval = 500 * time.Millisecond
)

// APIPrefix is the path prefix of every management endpoint.
const APIPrefix = "/api"

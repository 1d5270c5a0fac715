package limits

// Size limits for API response bodies

const (
	// JSON is the maximum size of a successful response body (32MB).
	// Event payloads with full stack traces can be several megabytes.
	JSON = 32 << 20

	// ErrorBody is the maximum size read from a non-2xx response body (64KB)
	// Used when reporting failed API calls
	ErrorBody = 64 << 10
)

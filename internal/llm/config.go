package llm

// Config holds the settings for the completion client. Temperature and token
// limits are not part of the config: callers fix them per request.
type Config struct {
	// Endpoint is the API base URL, without the /v1 path.
	Endpoint string
	// Model is the chat model to request.
	Model string
	// APIKey is sent as a bearer token on every call.
	APIKey string
	// TimeoutMs bounds one Complete call including retries.
	TimeoutMs int
	// MaxRetries is the number of extra attempts after the first failure.
	MaxRetries int
}

// DefaultConfig returns a Config targeting the hosted OpenAI API. The API key
// has no default and must be supplied by the caller.
func DefaultConfig() Config {
	return Config{
		Endpoint:   "https://api.openai.com",
		Model:      "gpt-4o-mini",
		TimeoutMs:  30000,
		MaxRetries: 1,
	}
}

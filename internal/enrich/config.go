package enrich

// Config controls LLM generation for enrichment and translation grading.
type Config struct {
	// MaxTokens caps the response length per request.
	MaxTokens int

	// Temperature controls randomness. Enrichment benefits from a little
	// variety; grading should stay deterministic.
	Temperature float64
}

// DefaultConfig returns generation settings tuned for enrichment.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   1024,
		Temperature: 0.3,
	}
}

// GradingConfig returns generation settings tuned for translation grading.
func GradingConfig() Config {
	return Config{
		MaxTokens:   512,
		Temperature: 0,
	}
}

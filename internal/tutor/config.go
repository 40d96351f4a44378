package tutor

// Config holds lesson generation settings.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns sensible defaults for lesson generation.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   4096,
		Temperature: 0.6,
	}
}

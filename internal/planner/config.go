package planner

// Config holds course planning settings.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns sensible defaults for course planning.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   2048,
		Temperature: 0.5,
	}
}

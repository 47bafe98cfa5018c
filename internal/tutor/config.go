package tutor

// Config holds tutor turn settings.
type Config struct {
	MaxTokens   int     `koanf:"max_tokens" validate:"gte=1"`
	Temperature float64 `koanf:"temperature" validate:"gte=0,lte=1"`
	// Model overrides the provider's configured model for tutor turns.
	Model string `koanf:"model"`
	// HistoryWindow is how many prior messages are sent with each turn.
	HistoryWindow int `koanf:"history_window" validate:"gte=1"`
}

// DefaultConfig returns sensible defaults for tutor turns.
func DefaultConfig() Config {
	return Config{
		MaxTokens:     1024,
		Temperature:   0.6,
		HistoryWindow: 12,
	}
}

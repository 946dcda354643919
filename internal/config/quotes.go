package config

import "time"

// DefaultQuoteInterval is how long each motivational quote stays on screen
const DefaultQuoteInterval = 45 * time.Second

// DefaultQuotes are shown when settings don't provide any
var DefaultQuotes = []string{
	"Sometimes you win, sometimes you learn",
	"Focus is the key to productivity",
	"Small steps lead to big achievements",
	"Progress, not perfection",
	"Your future self will thank you",
	"Consistency beats intensity",
	"Every moment is a fresh beginning",
	"Success is the sum of small efforts",
}

// QuoteConfig holds the motivational quote rotation
type QuoteConfig struct {
	Enabled  bool
	Interval time.Duration
	Quotes   []string
}

// NewQuoteConfig builds the rotation from settings, using defaults for unset fields
func NewQuoteConfig(settings *Settings) *QuoteConfig {
	config := &QuoteConfig{
		Enabled:  true,
		Interval: DefaultQuoteInterval,
		Quotes:   DefaultQuotes,
	}
	if settings == nil {
		return config
	}

	if settings.QuotesEnabled != nil {
		config.Enabled = *settings.QuotesEnabled
	}
	if settings.QuoteIntervalSeconds != nil && *settings.QuoteIntervalSeconds > 0 {
		config.Interval = time.Duration(*settings.QuoteIntervalSeconds) * time.Second
	}
	if len(settings.Quotes) > 0 {
		config.Quotes = settings.Quotes
	}
	return config
}

// Get returns the quote at index, wrapping around the list
func (c *QuoteConfig) Get(index int) string {
	if !c.Enabled || len(c.Quotes) == 0 {
		return ""
	}
	n := len(c.Quotes)
	return c.Quotes[((index%n)+n)%n]
}

// Next returns the index following index in the cycle
func (c *QuoteConfig) Next(index int) int {
	if len(c.Quotes) == 0 {
		return 0
	}
	return (index + 1) % len(c.Quotes)
}

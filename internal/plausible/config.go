package plausible

import (
	"errors"
	"os"
	"strings"
)

// DefaultBaseURL is the hosted Plausible stats API.
const DefaultBaseURL = "https://plausible.io/api/v2"

// Config carries the static client settings, read once at startup.
type Config struct {
	BaseURL string
	APIKey  string
}

// ConfigFromEnv builds a Config from PLAUSIBLE_BASE_URL and
// PLAUSIBLE_API_KEY. A missing API key is a startup failure.
func ConfigFromEnv() (Config, error) {
	key := strings.TrimSpace(os.Getenv("PLAUSIBLE_API_KEY"))
	if key == "" {
		return Config{}, errors.New("PLAUSIBLE_API_KEY is required")
	}

	base := strings.TrimSpace(os.Getenv("PLAUSIBLE_BASE_URL"))
	if base == "" {
		base = DefaultBaseURL
	}
	base = strings.TrimSuffix(base, "/")

	return Config{BaseURL: base, APIKey: key}, nil
}

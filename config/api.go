package config

import "time"

// APIConfig contains remote API endpoint configuration.
type APIConfig struct {
	// BaseURL is the fixed API root all requests go to.
	BaseURL string `env:"API_URL" envDefault:"http://localhost:5001/api"`

	// Timeout bounds each request. The remote contract defines no
	// per-operation timeout, so this is a client-side guardrail only.
	Timeout time.Duration `env:"API_TIMEOUT" envDefault:"30s"`
}

// Sanitize applies guardrails to API configuration values.
func (a *APIConfig) Sanitize() {
	if a.Timeout < 0 {
		a.Timeout = 0
	}
}

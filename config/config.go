package config

// AppConfig is the main client configuration struct that composes
// domain-specific configuration from separate files.
//
// Configuration is loaded from environment variables using the
// github.com/caarlos0/env library. See individual domain config files for
// details on available environment variables:
//   - api.go: remote API endpoint configuration
//   - storage.go: durable token storage configuration
type AppConfig struct {
	// Remote API configuration.
	API APIConfig `envPrefix:"INKPOST_"`

	// Durable token storage configuration.
	Storage StorageConfig `envPrefix:"INKPOST_"`
}

// Sanitize applies guardrails to configuration values loaded from env.
// This should be called after loading configuration from environment
// variables.
func (c *AppConfig) Sanitize() {
	c.API.Sanitize()
	c.Storage.Sanitize()
}

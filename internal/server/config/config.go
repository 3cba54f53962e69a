// Package config handles configuration for the server component:
// defaults, optional JSON file, environment (.env aware) and
// command-line flags, in that order of precedence.
package config

import "time"

// Config holds runtime settings for the tripdiary server.
//
// Fields:
//   - Addr: bind address for the HTTP endpoint.
//   - DataDir: directory holding profiles.json, trips.json and images/.
//   - SecretKey: HMAC secret for signing access tokens (HS256).
//   - AccessTokenValidityDuration: access token lifetime.
type Config struct {
	Addr                        string
	DataDir                     string
	SecretKey                   string
	AccessTokenValidityDuration time.Duration
}

// LoadDefaults populates Config with development defaults.
// NOTE: the secret is insecure and must be overridden outside development.
func (c *Config) LoadDefaults() {
	c.Addr = ":3000"
	c.DataDir = "data"
	c.SecretKey = "secretKey"
	c.AccessTokenValidityDuration = 30 * time.Minute
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file, the environment, and command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}

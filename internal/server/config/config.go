// Package config handles configuration for the verifier process,
// including defaults, JSON overlay, and command-line flags.
package config

import "time"

// Config holds runtime settings for the authentication server.
//
// Fields:
//   - EndpointAddrGRPC: bind address for the public gRPC endpoint.
//   - SecretKey: HMAC secret for signing session tokens (HS256). Do not use the default in prod.
//   - SessionTokenValidityDuration: lifetime of a session token issued after a successful proof.
type Config struct {
	EndpointAddrGRPC             string
	SecretKey                    string
	SessionTokenValidityDuration time.Duration
}

// DefaultSecretKey is the development signing secret set by LoadDefaults.
const DefaultSecretKey = "secretKey"

// LoadDefaults populates Config with development defaults.
// NOTE: the secret key is insecure and must be overridden outside development.
func (c *Config) LoadDefaults() {
	c.EndpointAddrGRPC = ":50051"
	c.SecretKey = DefaultSecretKey
	c.SessionTokenValidityDuration = 30 * time.Minute
}

// UsesDefaultSecret reports whether session tokens would be signed with
// the publicly known development secret.
func (c *Config) UsesDefaultSecret() bool {
	return c.SecretKey == DefaultSecretKey
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file and finally from command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}

package config

import "time"

// Fallback values applied before validation. Anything security-relevant has
// no fallback and must be configured explicitly.
const (
	defaultTokenDuration  = 168 * time.Hour // 7-day cookie validity
	defaultUploadDir      = "./uploads"
	defaultAnswerBaseURL  = "http://localhost:8000"
	defaultAnswerTimeout  = 30 * time.Second
	defaultRetryWait      = 500 * time.Millisecond
	defaultRollupInterval = time.Hour
)

// applyDefaults fills zero-valued optional fields with their fallbacks.
func (c *StructuredConfig) applyDefaults() {
	if c.App.TokenDuration == 0 {
		c.App.TokenDuration = defaultTokenDuration
	}
	if c.App.TokenIssuer == "" {
		c.App.TokenIssuer = "vaantra-server"
	}
	if c.Storage.Files.UploadDir == "" {
		c.Storage.Files.UploadDir = defaultUploadDir
	}
	if c.Adapter.BaseURL == "" {
		c.Adapter.BaseURL = defaultAnswerBaseURL
	}
	if c.Adapter.Timeout == 0 {
		c.Adapter.Timeout = defaultAnswerTimeout
	}
	if c.Adapter.RetryWait == 0 {
		c.Adapter.RetryWait = defaultRetryWait
	}
	if c.Workers.RollupInterval == 0 {
		c.Workers.RollupInterval = defaultRollupInterval
	}
}

// validate checks that every required configuration value is present.
// Required values have no safe fallback: the server cannot run without a
// listen address, a database, and a token signing key.
func (c *StructuredConfig) validate() error {
	if c.Server.HTTPAddress == "" {
		return errNoServerAddress
	}
	if c.Storage.DB.DSN == "" {
		return errNoDatabaseDSN
	}
	if c.App.TokenSignKey == "" {
		return errNoTokenSignKey
	}

	return nil
}

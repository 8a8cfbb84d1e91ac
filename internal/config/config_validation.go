package config

import "time"

// Development defaults applied when a value is missing from every
// configuration source. The token signing key default exists only so the
// server can run locally without any setup; production deployments are
// expected to set APP_TOKEN_SIGN_KEY.
const (
	defaultHTTPAddress    = "localhost:8080"
	defaultRequestTimeout = 30 * time.Second
	defaultDSN            = "stock.db"
	defaultTokenSignKey   = "stock-keeper-dev-secret"
	defaultTokenIssuer    = "stock-keeper"
	defaultTokenDuration  = 12 * time.Hour
	defaultAdminUsername  = "admin"
	defaultAdminPassword  = "12345"
)

// validate fills unset fields with development defaults. The resulting
// configuration is treated as immutable after this point.
func (c *StructuredConfig) validate() error {
	if c.Server.HTTPAddress == "" {
		c.Server.HTTPAddress = defaultHTTPAddress
	}
	if c.Server.RequestTimeout == 0 {
		c.Server.RequestTimeout = defaultRequestTimeout
	}
	if c.Storage.DB.DSN == "" {
		c.Storage.DB.DSN = defaultDSN
	}
	if c.App.TokenSignKey == "" {
		c.App.TokenSignKey = defaultTokenSignKey
	}
	if c.App.TokenIssuer == "" {
		c.App.TokenIssuer = defaultTokenIssuer
	}
	if c.App.TokenDuration == 0 {
		c.App.TokenDuration = defaultTokenDuration
	}
	if c.App.AdminUsername == "" {
		c.App.AdminUsername = defaultAdminUsername
	}
	if c.App.AdminPassword == "" {
		c.App.AdminPassword = defaultAdminPassword
	}

	return nil
}

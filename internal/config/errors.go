package config

import "errors"

var (
	errNoServerAddress = errors.New("no HTTP server address provided")
	errNoDatabaseDSN   = errors.New("no database DSN provided")
	errNoTokenSignKey  = errors.New("no token sign key provided")
)

// Package config loads the server configuration from environment variables,
// command-line flags and an optional JSON file, merges the three sources
// (earlier sources win for non-zero fields), applies defaults and validates
// the result.
package config

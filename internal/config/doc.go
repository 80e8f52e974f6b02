// Package config handles configuration loading, parsing, and validation
// from environment variables and an optional YAML file. Both binaries share
// one Config; each reads the sections it needs.
package config

// Package config loads the client configuration: defaults, then an optional
// JSON file (-c/-config), then command-line flags.
package config

// Package client talks to the storefront server over gRPC and opens the
// local session cache.
package client

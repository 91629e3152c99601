package api

import _ "embed"

// Schema is the protobuf definition of the storefront service. The Go types
// and ServiceDesc in this package follow it.
//
//go:embed storefront.proto
var Schema string

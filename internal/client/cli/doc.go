// Package cli provides the interactive storefront command-line client.
//
// It wires configuration, the local session cache, the gRPC client and a
// REPL. The usual flow is register (or login), createstore, then one or more
// addcategory calls. Profile commands act on the cached email.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli

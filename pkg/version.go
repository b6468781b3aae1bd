// Package airlab holds build information of the airlab laboratory
// analysis engine.
package airlab

var (
	// Version of airlab, set by build flags.
	Version = "v0.1.0"

	// Build timestamp, set by build flags.
	Build = "n/a"
)

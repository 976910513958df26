// Package datavis turns tabular files into validated, rendered charts.
package datavis

// DefaultBins is the histogram bucket count used when Options.Bins is unset.
const DefaultBins = 10

// Options configures rendering and export.
type Options struct {
	// Bins is the histogram bucket count.
	Bins int
	// Width is the exported image width in pixels.
	Width int
	// Height is the exported image height in pixels.
	Height int
}

// DefaultOptions returns default rendering options.
func DefaultOptions() Options {
	return Options{
		Bins:   DefaultBins,
		Width:  800,
		Height: 600,
	}
}

// binCount returns the configured bucket count or the default.
func (o Options) binCount() int {
	if o.Bins > 0 {
		return o.Bins
	}
	return DefaultBins
}

// Package render provides output renderers for the svgstats run summary.
package render

import "github.com/dkoosis/svgstats/pkg/pattern"

// Renderer converts patterns to formatted output.
type Renderer interface {
	Render(patterns []pattern.Pattern) string
}

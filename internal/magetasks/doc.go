// Package magetasks provides the build tasks behind svgstats' Magefile.
//
// Tasks are grouped the way the Magefile exposes them: build, test, lint,
// and stats (regenerating the chart data for the site).
package magetasks

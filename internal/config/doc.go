// Package config handles configuration loading for svgstats.
//
// # Configuration Sources
//
// Configuration is read from the first file found, in this order:
//
//  1. The path named by SVGSTATS_CONFIG
//  2. .svgstats.yaml in the working directory
//  3. ~/.config/svgstats/.svgstats.yaml (XDG user config dir)
//
// Values not present in the file keep their defaults. The defaults describe
// the main resvg test suite: results.csv, tests/, four Java renderers, and
// barh in the working directory.
//
// # Alternate Suites
//
// A second suite (for example the custom.csv / eclipse-tests layout) is
// described by its own config file and selected with SVGSTATS_CONFIG:
//
//	results: custom.csv
//	tests_dir: eclipse-tests
//	chart: chart_custom.json
//	groups: group_results_custom.json
//	image: site/images/chart_custom.svg
//	subset_image: site/images/chart-svg2_custom.svg
//
// # Environment Variables
//
//   - SVGSTATS_CONFIG: explicit config file path
//   - SVGSTATS_DEBUG: set to any non-empty value to enable debug logging
//   - NO_COLOR: forces the mono theme for terminal output
package config

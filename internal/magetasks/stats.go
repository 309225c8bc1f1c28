package magetasks

// StatsAll regenerates the chart data for the full suite and for the SVG 2
// subset, using the built binary.
func StatsAll() error {
	PrintH2Header("Stats")

	if err := BuildAll(); err != nil {
		return err
	}
	if err := Run("svgstats", BinPath); err != nil {
		PrintError("Full-suite stats failed")
		return err
	}
	if err := Run("svgstats --svg2", BinPath, "--svg2"); err != nil {
		PrintError("SVG 2 stats failed")
		return err
	}

	PrintSuccess("Chart data regenerated")
	return nil
}

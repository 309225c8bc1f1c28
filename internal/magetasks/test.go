package magetasks

// TestAll runs all tests.
func TestAll() error {
	PrintH2Header("Tests")

	if err := Run("go test", "go", "test", "./..."); err != nil {
		PrintError("Tests failed")
		return err
	}

	PrintSuccess("All tests passed")
	return nil
}

// TestCoverage runs tests with coverage and prints the per-function report.
func TestCoverage() error {
	PrintH2Header("Test Coverage")

	if err := Run("go test -cover", "go", "test", "-coverprofile=coverage.out", "./..."); err != nil {
		PrintError("Tests failed")
		return err
	}
	_ = Run("Coverage report", "go", "tool", "cover", "-func=coverage.out")

	PrintSuccess("Coverage report generated")
	return nil
}

package magetasks

import (
	"errors"
	"fmt"
)

// LintAll runs all linters. Optional linters that are not installed are
// skipped with a warning.
func LintAll() error {
	PrintH2Header("Lint")

	var errs []error
	if err := Run("Go Vet", "go", "vet", "./..."); err != nil {
		errs = append(errs, err)
	}
	if err := LintGolangci(); err != nil && !IsCommandNotFound(err) {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	PrintSuccess("All linters passed")
	return nil
}

// LintGolangci runs golangci-lint.
func LintGolangci() error {
	if err := Run("Golangci-lint", "golangci-lint", "run", "--timeout=5m", "./..."); err != nil {
		if IsCommandNotFound(err) {
			PrintWarning("Golangci-lint not found (install: go install github.com/golangci/golangci-lint/cmd/golangci-lint@latest)")
			return err
		}
		return fmt.Errorf("golangci-lint failed: %w", err)
	}
	return nil
}

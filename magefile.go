//go:build mage

package main

import (
	"fmt"
	"os"

	"github.com/magefile/mage/mg"

	"github.com/dkoosis/svgstats/internal/magetasks"
)

// Default target - build the binary
var Default = Build

func init() {
	if err := magetasks.Initialize(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal: %v\n", err)
		os.Exit(1)
	}
}

// Build builds the svgstats binary
func Build() error {
	return magetasks.BuildAll()
}

// Clean removes build artifacts
func Clean() error {
	return magetasks.Clean()
}

// QA runs lint and tests, then builds
func QA() error {
	magetasks.PrintH1Header("svgstats Quality Assurance")

	if err := magetasks.LintAll(); err != nil {
		return fmt.Errorf("lint failed: %w", err)
	}
	if err := magetasks.TestAll(); err != nil {
		return fmt.Errorf("tests failed: %w", err)
	}
	return magetasks.BuildAll()
}

// Lint namespace for linting commands
type Lint mg.Namespace

// All runs all linters
func (Lint) All() error {
	return magetasks.LintAll()
}

// Golangci runs golangci-lint
func (Lint) Golangci() error {
	return magetasks.LintGolangci()
}

// Test namespace for testing commands
type Test mg.Namespace

// All runs all tests
func (Test) All() error {
	return magetasks.TestAll()
}

// Coverage runs tests with coverage
func (Test) Coverage() error {
	return magetasks.TestCoverage()
}

// Stats namespace for chart data generation
type Stats mg.Namespace

// All regenerates chart data for the full suite and the SVG 2 subset
func (Stats) All() error {
	return magetasks.StatsAll()
}

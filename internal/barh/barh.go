// Package barh runs the external barh chart renderer
// (https://github.com/RazrFalcon/barh).
package barh

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os/exec"
	"strings"
)

// ErrNotFound is returned when the barh executable does not exist.
var ErrNotFound = errors.New("barh executable not found")

// InstallHint tells the user how to provide the binary.
const InstallHint = "build https://github.com/RazrFalcon/barh and link the resulting binary into the current directory"

// Runner invokes barh as `<Path> <chart.json> <image.svg>`.
type Runner struct {
	Path   string
	Stdout io.Writer
	Stderr io.Writer
}

// New returns a Runner for the executable at path. Output of the child is
// discarded unless Stdout/Stderr are set.
func New(path string) *Runner {
	return &Runner{Path: path}
}

// Render converts chartPath into an SVG at imagePath. A missing executable
// yields an error wrapping ErrNotFound.
func (r *Runner) Render(ctx context.Context, chartPath, imagePath string) error {
	cmd := exec.CommandContext(ctx, r.Path, chartPath, imagePath)
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr
	if err := cmd.Run(); err != nil {
		if IsCommandNotFound(err) {
			return fmt.Errorf("%w: %s", ErrNotFound, r.Path)
		}
		return fmt.Errorf("running %s: %w", r.Path, err)
	}
	return nil
}

// IsCommandNotFound reports whether err means the executable is missing.
// It covers PATH lookups (exec.ErrNotFound) and explicit paths such as
// "./barh" that fail at process start.
func IsCommandNotFound(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, exec.ErrNotFound) || errors.Is(err, fs.ErrNotExist) {
		return true
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return false
	}
	return strings.Contains(err.Error(), "executable file not found")
}

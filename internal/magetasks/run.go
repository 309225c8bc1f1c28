package magetasks

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/dkoosis/svgstats/internal/barh"
)

// Run executes a command with its output attached to the task console.
// A missing executable is reported with IsCommandNotFound-compatible errors.
func Run(label, name string, args ...string) error {
	fmt.Fprintf(Out, "→ %s\n", label)
	cmd := exec.Command(name, args...)
	cmd.Stdout = Out
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s: %w", label, err)
	}
	return nil
}

// IsCommandNotFound reports whether err means the executable is missing.
func IsCommandNotFound(err error) bool {
	return barh.IsCommandNotFound(err)
}

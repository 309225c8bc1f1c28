package magetasks

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"
)

// Ldflags returns the linker flags that stamp internal/version.
func Ldflags(version, commit, date string) string {
	pkg := ModulePath + "/internal/version"
	return fmt.Sprintf("-s -w -X '%s.Version=%s' -X '%s.CommitHash=%s' -X '%s.BuildDate=%s'",
		pkg, version, pkg, commit, pkg, date)
}

// BuildAll builds the svgstats binary.
func BuildAll() error {
	PrintH2Header("Build")

	ldflags := Ldflags(getGitVersion(), getGitCommit(), time.Now().UTC().Format(time.RFC3339))
	if err := Run("Building svgstats", "go", "build", "-ldflags", ldflags, "-o", BinPath, "./cmd/svgstats"); err != nil {
		PrintError("Build failed")
		return err
	}

	PrintSuccess(fmt.Sprintf("Built: %s", BinPath))
	return nil
}

// Clean removes build artifacts and generated chart data.
func Clean() error {
	PrintH2Header("Clean")

	for _, path := range []string{"./bin", "coverage.out"} {
		if err := os.RemoveAll(path); err != nil {
			return err
		}
	}

	PrintSuccess("Cleaned build artifacts")
	return nil
}

func getGitVersion() string {
	out, err := exec.Command("git", "describe", "--tags", "--always", "--dirty", "--match=v*").Output()
	if err != nil {
		return "dev"
	}
	return strings.TrimSpace(string(out))
}

func getGitCommit() string {
	out, err := exec.Command("git", "rev-parse", "--short", "HEAD").Output()
	if err != nil {
		return "unknown"
	}
	return strings.TrimSpace(string(out))
}

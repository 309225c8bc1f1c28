package magetasks

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Out receives task output. Tests swap it for a buffer.
var Out io.Writer = os.Stdout

// PrintH1Header prints a top-level header.
func PrintH1Header(title string) {
	width := 60
	fmt.Fprintln(Out)
	fmt.Fprintln(Out, strings.Repeat("=", width))
	fmt.Fprintf(Out, "%s%s\n", strings.Repeat(" ", max((width-len(title))/2, 0)), title)
	fmt.Fprintln(Out, strings.Repeat("=", width))
}

// PrintH2Header prints a section header.
func PrintH2Header(title string) {
	fmt.Fprintf(Out, "\n=== %s ===\n", title)
}

// PrintSuccess prints a success message.
func PrintSuccess(msg string) {
	fmt.Fprintf(Out, "✅ %s\n", msg)
}

// PrintWarning prints a warning message.
func PrintWarning(msg string) {
	fmt.Fprintf(Out, "⚠️  %s\n", msg)
}

// PrintError prints an error message.
func PrintError(msg string) {
	fmt.Fprintf(Out, "❌ %s\n", msg)
}

package keepsake

import (
	"fmt"
	"io"
	"os"

	"github.com/arthur-debert/keepsake/pkg/styles"
	"github.com/mattn/go-isatty"
)

// isTerminal reports whether w is a terminal file.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// formatLabel pads a label to a fixed column, styled only on a terminal.
func formatLabel(w io.Writer, label string) string {
	if !isTerminal(w) {
		return fmt.Sprintf("%-7s", label)
	}
	return styles.GetStyle("Label").Render(label)
}

// formatPath styles a file path on a terminal.
func formatPath(w io.Writer, path string) string {
	if !isTerminal(w) {
		return path
	}
	return styles.GetStyle("Path").Render(path)
}

// FormatError renders err the way the CLI reports failures on w.
func FormatError(w io.Writer, err error) string {
	msg := fmt.Sprintf("Error: %v", err)
	if !isTerminal(w) {
		return msg
	}
	return styles.GetStyle("Error").Render(msg)
}

// Package display prints the status banner and the run summary for the user
package display

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/networktomp-dev/search/internal/model"
)

// Announce пишет в w что именно ищем и какие опции включены.
// Порядок строк фиксированный, независимо от порядка флагов в команде.
func Announce(w io.Writer, param *model.SearchParam) {
	colorOutput := isatty.IsTerminal(os.Stderr.Fd())

	term := fmt.Sprintf("%q", param.Term)
	if colorOutput {
		term = color.CyanString(term)
	}
	fmt.Fprintf(w, "Searching for %s in %s\n", term, param.FilePath)

	if param.IsolateWords {
		fmt.Fprintln(w, "Isolating matches...")
	}
	if param.IgnoreCase {
		fmt.Fprintln(w, "Ignoring cases...")
	}
	if param.ShowPositions {
		fmt.Fprintln(w, "Including line numbers/positions...")
	}
	if param.DedupeLines {
		fmt.Fprintln(w, "Removing duplicate lines...")
	}
	if param.RangeFilter {
		fmt.Fprintf(w, "Showing results in a range: %d-%d...\n", param.Range.Low, param.Range.High)
	}
	if param.SaveToFile {
		fmt.Fprintf(w, "Saving results to %s...\n", param.SavePath)
	}
	fmt.Fprintln(w)
}

// Summary пишет в w итоговую строку: сколько результатов и куда они ушли
func Summary(w io.Writer, results int, dest string) {
	count := fmt.Sprintf("%d", results)
	if isatty.IsTerminal(os.Stderr.Fd()) {
		count = color.GreenString(count)
	}
	fmt.Fprintf(w, "\n%s results written to %s.\n", count, dest)
}

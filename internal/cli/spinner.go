package cli

import (
	"io"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"golang.org/x/term"
)

// startSpinner shows a spinner on w while slow work runs. It stays silent
// when w is not a terminal or verbose logging already writes to stderr.
// The returned function stops the spinner and must be deferred.
func startSpinner(w io.Writer, message string, verbose bool) func() {
	if verbose || !isTerminal(w) {
		return func() {}
	}

	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(w))
	s.Suffix = " " + message
	if !noColor() {
		_ = s.Color("cyan")
	}
	s.Start()

	return s.Stop
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

package console

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

const clearSequence = "\x1bc"

// ShouldClear reports whether clearing is enabled and the file is an interactive terminal.
// Piped output never receives the escape sequence.
func ShouldClear(enabled bool, out *os.File) bool {
	if !enabled || out == nil {
		return false
	}

	return term.IsTerminal(int(out.Fd()))
}

func clearScreen(w io.Writer) {
	fmt.Fprint(w, clearSequence)
}

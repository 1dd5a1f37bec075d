package output

import (
	"os"

	"golang.org/x/term"
)

// IsTTY reports whether stdout is attached to a terminal.
// Spinners and color depend on it; piped output gets plain text.
func IsTTY() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

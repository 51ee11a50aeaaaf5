package repl

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
)

// page displays output one terminal page at a time when stdout is a
// terminal, falling back to plain printing otherwise. Space or Enter for
// the next page, q to stop.
func (r *REPL) page(output string) {
	if r.out != os.Stdout || !term.IsTerminal(int(os.Stdout.Fd())) {
		r.printf("%s", output)
		return
	}

	lines := strings.Split(strings.TrimRight(output, "\n"), "\n")
	_, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || len(lines) < height {
		r.printf("%s", output)
		return
	}

	pageSize := max(height-1, 1)

	oldState, err := term.MakeRaw(int(os.Stdin.Fd()))
	if err != nil {
		r.printf("%s", output)
		return
	}
	defer func() { _ = term.Restore(int(os.Stdin.Fd()), oldState) }()

	for idx := 0; idx < len(lines); {
		end := min(idx+pageSize, len(lines))
		for _, line := range lines[idx:end] {
			fmt.Println(line)
		}
		idx = end
		if idx >= len(lines) {
			break
		}

		fmt.Printf("\033[7m -- %d more lines (space/enter: next, q: quit) -- \033[0m", len(lines)-idx)
		buf := make([]byte, 1)
		_, _ = os.Stdin.Read(buf)
		fmt.Print("\r\033[K")
		if buf[0] == 'q' || buf[0] == 'Q' {
			return
		}
	}
}

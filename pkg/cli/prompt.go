package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/mattn/go-isatty"
)

// promptVersion asks for a version on an interactive terminal. A blank
// answer, a non-TTY input stream, or EOF all mean "latest".
func promptVersion(in *os.File, out io.Writer) (string, error) {
	if !isatty.IsTerminal(in.Fd()) && !isatty.IsCygwinTerminal(in.Fd()) {
		return "", nil
	}

	fmt.Fprint(out, "Enter version (leave blank for latest): ")

	scanner := bufio.NewScanner(in)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return "", goerr.Wrap(err, "failed to read version input")
		}
		return "", nil
	}

	return strings.TrimSpace(scanner.Text()), nil
}

// Command microgrep matches one line of standard input against a pattern.
//
// Usage:
//
//	echo "input line" | microgrep -E <pattern>
//
// The exit code is 0 when the line contains a match and 1 otherwise. Usage
// and input errors also exit 1, with a message on stderr; the error channel
// does not distinguish "no match" from failure.
package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/coregx/microgrep"
)

var (
	errUsage = errors.New("usage: microgrep -E <pattern>")
)

func main() {
	ok, err := run(os.Args, os.Stdin)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
	if !ok {
		os.Exit(1)
	}
}

// run parses the arguments, reads one line from input, and reports whether
// the pattern matches it.
func run(args []string, input io.Reader) (bool, error) {
	if len(args) < 3 || args[1] != "-E" {
		return false, errUsage
	}
	pattern := args[2]

	line, err := bufio.NewReader(input).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, fmt.Errorf("read input: %w", err)
	}
	line = strings.TrimRight(line, "\r\n")

	return microgrep.Compile(pattern).MatchString(line), nil
}

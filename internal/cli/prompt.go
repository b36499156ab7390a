package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/chzyer/readline"
	"golang.org/x/term"
)

// terminalPrompter reads the API key from a person. The masked prompt only
// fires when both stdin and stderr are attached to a terminal.
type terminalPrompter struct {
	stdin  io.Reader
	stderr io.Writer
}

func (p *terminalPrompter) Interactive() bool {
	return isTerminalReader(p.stdin) && isTerminalWriter(p.stderr)
}

// ReadSecret reads one masked line, returned verbatim. Ctrl-C during the
// read cancels the prompt instead of killing the process: ReadPassword
// leaves ISIG enabled, so the interrupt is caught here and the terminal
// state restored before reporting the cancellation.
func (p *terminalPrompter) ReadSecret(label string) (string, error) {
	fd, ok := readerFd(p.stdin)
	if !ok {
		return "", errors.New("stdin is not a terminal")
	}

	state, err := term.GetState(fd)
	if err != nil {
		return "", fmt.Errorf("read api key: %w", err)
	}

	interrupted := make(chan os.Signal, 1)
	signal.Notify(interrupted, os.Interrupt)
	defer signal.Stop(interrupted)

	type readResult struct {
		line []byte
		err  error
	}
	results := make(chan readResult, 1)
	fmt.Fprint(p.stderr, label)
	go func() {
		line, err := term.ReadPassword(fd)
		results <- readResult{line, err}
	}()

	select {
	case <-interrupted:
		_ = term.Restore(fd, state)
		fmt.Fprintln(p.stderr)
		return "", errors.New("prompt cancelled")
	case res := <-results:
		fmt.Fprintln(p.stderr)
		if res.err != nil {
			return "", fmt.Errorf("read api key: %w", res.err)
		}
		return string(res.line), nil
	}
}

// readQuestion asks for the question when no flag or argument supplied one.
// A cancelled or exhausted prompt yields an empty question, never an error.
func readQuestion(stdin io.Reader, stderr io.Writer) string {
	if !isTerminalReader(stdin) {
		fmt.Fprint(stderr, "Enter your question: ")
		line, err := bufio.NewReader(stdin).ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return ""
		}
		return strings.TrimSpace(line)
	}

	cfg := &readline.Config{
		Prompt:          "Enter your question: ",
		InterruptPrompt: "^C",
		Stdout:          stderr,
		Stderr:          stderr,
	}
	if in, ok := stdin.(io.ReadCloser); ok {
		cfg.Stdin = in
	} else {
		cfg.Stdin = io.NopCloser(stdin)
	}

	rl, err := readline.NewEx(cfg)
	if err != nil {
		return ""
	}
	defer rl.Close()

	line, err := rl.Readline()
	if err != nil {
		return ""
	}
	return strings.TrimSpace(line)
}

func readerFd(r io.Reader) (int, bool) {
	fdr, ok := r.(interface{ Fd() uintptr })
	if !ok {
		return 0, false
	}
	return int(fdr.Fd()), true
}

func isTerminalReader(r io.Reader) bool {
	fd, ok := readerFd(r)
	return ok && term.IsTerminal(fd)
}

func isTerminalWriter(w io.Writer) bool {
	fdw, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return term.IsTerminal(int(fdw.Fd()))
}

func terminalWidth(w io.Writer) int {
	const fallback = 100
	fdw, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return fallback
	}
	fd := int(fdw.Fd())
	if !term.IsTerminal(fd) {
		return fallback
	}
	width, _, err := term.GetSize(fd)
	if err != nil || width <= 0 {
		return fallback
	}
	return width
}

package tui

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// ErrQuit is returned by AskExpression when the user wants to stop.
var ErrQuit = errors.New("quit")

type TUI struct {
	input  *bufio.Reader
	output io.Writer

	// pending is the read still running after a cancelled AskExpression.
	pending chan readResult
}

type readResult struct {
	line string
	err  error
}

func New() *TUI {
	return &TUI{
		input:  bufio.NewReader(os.Stdin),
		output: os.Stdout,
	}
}

func (t *TUI) SetInput(input io.Reader) {
	t.input = bufio.NewReader(input)
	t.pending = nil
}

func (t *TUI) SetOutput(output io.Writer) {
	t.output = output
}

func (t *TUI) Output() io.Writer {
	return t.output
}

func (t *TUI) Println(a ...any) {
	fmt.Fprintln(t.output, a...)
}

func (t *TUI) Printf(format string, a ...any) {
	fmt.Fprintf(t.output, format, a...)
}

// AskExpression shows the prompt and reads one line. Blank lines are asked
// again. "q", "quit" and end of input give ErrQuit. Cancelling ctx returns
// ctx.Err() without waiting for the line.
func (t *TUI) AskExpression(ctx context.Context, prompt string) (string, error) {
	for {
		fmt.Fprint(t.output, prompt)
		line, err := t.readLine(ctx)
		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", ctxErr
		}
		if err != nil && !errors.Is(err, io.EOF) {
			slog.Error("failed to read user input", "error", err)
			return "", fmt.Errorf("failed to read user input: %w", err)
		}

		expression := strings.TrimSpace(line)
		switch strings.ToLower(expression) {
		case "q", "quit":
			return "", ErrQuit
		case "":
			if errors.Is(err, io.EOF) {
				// keep the shell prompt on its own line
				fmt.Fprintln(t.output)
				return "", ErrQuit
			}
			continue
		}
		return expression, nil
	}
}

// readLine waits for the next line or for ctx to be done. A read interrupted
// by ctx is picked up again by the next call.
func (t *TUI) readLine(ctx context.Context) (string, error) {
	if t.pending == nil {
		result := make(chan readResult, 1)
		input := t.input
		go func() {
			line, err := input.ReadString('\n')
			result <- readResult{line: line, err: err}
		}()
		t.pending = result
	}

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-t.pending:
		t.pending = nil
		return r.line, r.err
	}
}

package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/sandevgo/serialsh/internal/config"
	"github.com/sandevgo/serialsh/internal/service/console"
	"github.com/sandevgo/serialsh/pkg/log"
)

// ReadLine is a host-side console: readline edits and echoes each line, and
// the finished line is handed to the shell in one piece.
type ReadLine struct {
	cfg     *config.AppConfig
	console *console.Console
	rl      *readline.Instance
}

func NewReadLine(cfg *config.AppConfig) (*ReadLine, error) {
	// Ensure runtime directory exists
	if err := os.MkdirAll(cfg.RuntimePath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create runtime directory: %w", err)
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          cfg.GetPrompt(),
		HistoryFile:     cfg.GetHistoryPath(),
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return nil, err
	}

	return &ReadLine{
		cfg: cfg,
		rl:  rl,
	}, nil
}

// Stdout is where command output must go so it does not garble the prompt.
func (r *ReadLine) Stdout() io.Writer {
	return &crlfWriter{w: r.rl.Stdout()}
}

// Attach sets the console fed by Start. The console must be in line mode.
func (r *ReadLine) Attach(c *console.Console) {
	r.console = c
}

func (r *ReadLine) Start(ctx context.Context) error {
	if r.console == nil {
		return errors.New("readline: no console attached")
	}

	logger := log.FromCtx(ctx)
	logger.Info().Msg("ReadLine console started. Type 'exit' to quit.")

	r.console.Begin()
	for {
		// Check context before blocking read
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		line, err := r.rl.Readline()
		if err != nil {
			if err == readline.ErrInterrupt {
				if len(line) == 0 {
					return nil // Exit on Ctrl+C
				}
				continue
			} else if err == io.EOF {
				return nil
			}
			return err
		}

		if strings.TrimSpace(line) == "exit" {
			return nil
		}

		r.console.FeedLine(line)
	}
}

func (r *ReadLine) Shutdown(ctx context.Context) error {
	if r.rl != nil {
		return r.rl.Close()
	}
	return nil
}

// crlfWriter turns the console's CRLF line endings back into plain newlines,
// which is what a cooked host terminal expects.
type crlfWriter struct {
	w io.Writer
}

func (c *crlfWriter) Write(p []byte) (int, error) {
	if _, err := c.w.Write([]byte(strings.ReplaceAll(string(p), "\r\n", "\n"))); err != nil {
		return 0, err
	}
	return len(p), nil
}

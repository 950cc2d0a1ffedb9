package console

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/sandevgo/serialsh/internal/core"
	"github.com/sandevgo/serialsh/internal/service/command"
	"github.com/sandevgo/serialsh/pkg/log"
	"github.com/sandevgo/serialsh/pkg/shell"
)

const readBufferSize = 64

// Console drives a shell from a byte stream and renders its hooks on out.
type Console struct {
	cfg    core.ConsoleConfig
	shell  *shell.Shell
	out    io.Writer
	logger zerolog.Logger

	terminator byte
	lineMode   bool
}

type Option func(*Console)

// WithLineMode is for transports that edit and echo lines themselves. The
// console then neither echoes input nor prints its own prompt.
func WithLineMode() Option {
	return func(c *Console) {
		c.lineMode = true
	}
}

func New(
	ctx context.Context,
	cfg core.ConsoleConfig,
	syntax shell.Config,
	router *command.Router,
	out io.Writer,
	opts ...Option,
) (*Console, error) {
	logger := log.FromCtx(ctx).With().Str("component", "console").Logger()

	sh, err := shell.New(syntax, shell.WithLogger(*log.FromCtx(ctx)))
	if err != nil {
		return nil, fmt.Errorf("failed to create shell: %w", err)
	}

	c := &Console{
		cfg:        cfg,
		shell:      sh,
		out:        out,
		logger:     logger,
		terminator: syntax.Terminator,
	}
	for _, opt := range opts {
		opt(c)
	}

	sh.SetPromptHook(c.prompt)
	sh.SetCommandNotFoundHook(c.notFound)
	sh.SetCommandErrorHook(c.commandError)

	if err := router.Install(ctx, sh, out); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Console) Shell() *shell.Shell {
	return c.shell
}

// Begin prints the banner and the first prompt.
func (c *Console) Begin() {
	if c.cfg.IsBannerEnabled() {
		c.write(core.AppTitle + "\r\n" + core.AppName + " " + core.Version + "\r\n")
	}
	c.shell.Begin()
}

// Feed echoes b when enabled and passes it to the shell.
func (c *Console) Feed(b byte) {
	if c.cfg.IsEchoEnabled() && !c.lineMode {
		if b == c.terminator {
			c.write("\r\n")
		} else {
			c.write(string([]byte{b}))
		}
	}
	c.shell.PutChar(b)
}

// FeedLine submits a complete line followed by the terminator, without echo.
func (c *Console) FeedLine(line string) {
	_, _ = c.shell.Write([]byte(line))
	c.shell.PutChar(c.terminator)
}

// Run feeds everything read from r until EOF or until ctx is done. Closing r
// is the way to interrupt a blocked read.
func (c *Console) Run(ctx context.Context, r io.Reader) error {
	buf := make([]byte, readBufferSize)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		n, err := r.Read(buf)
		for _, b := range buf[:n] {
			c.Feed(b)
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				c.logger.Debug().Msg("input closed")
				return nil
			}
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return fmt.Errorf("console read failed: %w", err)
		}
	}
}

func (c *Console) prompt() {
	if c.lineMode {
		return
	}
	c.write(c.cfg.GetPrompt())
}

func (c *Console) notFound(name string) {
	c.logger.Debug().Str("command", name).Msg("command not found")
	c.write(name + ": command not found\r\n")
}

func (c *Console) commandError(name string, status int) {
	c.logger.Warn().Str("command", name).Int("status", status).Msg("command reported an error")
}

func (c *Console) write(s string) {
	if _, err := io.WriteString(c.out, s); err != nil {
		c.logger.Debug().Err(err).Msg("console write failed")
	}
}

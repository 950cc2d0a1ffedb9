package config

import (
	"context"

	"github.com/caarlos0/env/v11"
	"github.com/sandevgo/serialsh/pkg/log"
	"github.com/sandevgo/serialsh/pkg/shell"
)

// ShellConfig carries the line syntax. The defaults match shell.DefaultConfig.
type ShellConfig struct {
	Terminator Char `env:"SERIALSH_EOL" envDefault:"\\r"`
	Escape     Char `env:"SERIALSH_ESCAPE" envDefault:"\\\\"`
	Quote      Char `env:"SERIALSH_QUOTE" envDefault:"\""`

	MaxLineLength int `env:"SERIALSH_MAX_LINE" envDefault:"80"`
	MaxCommands   int `env:"SERIALSH_MAX_COMMANDS" envDefault:"32"`
	MaxArgs       int `env:"SERIALSH_MAX_ARGS" envDefault:"8"`
}

func NewShellConfig(ctx context.Context) *ShellConfig {
	c, err := ParseShellConfig()
	if err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse Shell config")
	}
	return c
}

func ParseShellConfig() (*ShellConfig, error) {
	c := &ShellConfig{}
	if err := env.Parse(c); err != nil {
		return nil, err
	}
	if err := c.ToShell().Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c ShellConfig) ToShell() shell.Config {
	return shell.Config{
		Terminator:    byte(c.Terminator),
		Escape:        byte(c.Escape),
		Quote:         byte(c.Quote),
		MaxLineLength: c.MaxLineLength,
		MaxCommands:   c.MaxCommands,
		MaxArgs:       c.MaxArgs,
	}
}

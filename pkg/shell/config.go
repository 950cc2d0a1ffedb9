package shell

import (
	"fmt"
)

const (
	DefaultTerminator    = '\r'
	DefaultEscape        = '\\'
	DefaultQuote         = '"'
	DefaultMaxLineLength = 80
	DefaultMaxCommands   = 32
	DefaultMaxArgs       = 8
)

// Config holds the line syntax and the capacity limits of a Shell.
type Config struct {
	Terminator byte
	Escape     byte
	Quote      byte

	MaxLineLength int
	MaxCommands   int
	MaxArgs       int
}

func DefaultConfig() Config {
	return Config{
		Terminator:    DefaultTerminator,
		Escape:        DefaultEscape,
		Quote:         DefaultQuote,
		MaxLineLength: DefaultMaxLineLength,
		MaxCommands:   DefaultMaxCommands,
		MaxArgs:       DefaultMaxArgs,
	}
}

// Validate reports whether the configuration describes an unambiguous syntax.
func (c Config) Validate() error {
	if c.MaxLineLength <= 0 {
		return fmt.Errorf("%w: max line length must be positive, got %d", ErrInvalidConfig, c.MaxLineLength)
	}
	if c.MaxCommands <= 0 {
		return fmt.Errorf("%w: max commands must be positive, got %d", ErrInvalidConfig, c.MaxCommands)
	}
	if c.MaxArgs <= 0 {
		return fmt.Errorf("%w: max args must be positive, got %d", ErrInvalidConfig, c.MaxArgs)
	}
	if c.Escape == c.Quote {
		return fmt.Errorf("%w: escape and quote are both %q", ErrInvalidConfig, c.Escape)
	}
	if c.Terminator == c.Escape || c.Terminator == c.Quote {
		return fmt.Errorf("%w: terminator %q collides with escape or quote", ErrInvalidConfig, c.Terminator)
	}
	if isSpace(c.Escape) || isSpace(c.Quote) {
		return fmt.Errorf("%w: escape and quote must not be whitespace", ErrInvalidConfig)
	}
	return nil
}

// Package shell implements a line-oriented command interpreter for serial
// consoles.
//
// Bytes are fed one at a time with PutChar (or in bulk through Write). When
// the configured terminator arrives, the buffered line is split into words,
// honoring escape and quote characters, and the first word is looked up in an
// ordered, bounded command table. The first entry whose name matches exactly
// receives the full argument list.
//
// A Shell performs no I/O of its own and is not safe for concurrent use.
package shell

import (
	"fmt"

	"github.com/rs/zerolog"
)

type Shell struct {
	cfg    Config
	logger zerolog.Logger

	buf     []byte
	pos     int
	dropped int

	commands []entry
	tok      *tokenizer

	dispatching bool

	promptHook   PromptHook
	notFoundHook NotFoundHook
	errorHook    CommandErrorHook
}

type Option func(*Shell)

// WithLogger sets the logger used for debug tracing. The default discards
// everything.
func WithLogger(logger zerolog.Logger) Option {
	return func(s *Shell) {
		s.logger = logger.With().Str("component", "shell").Logger()
	}
}

func New(cfg Config, opts ...Option) (*Shell, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	s := &Shell{
		cfg:      cfg,
		logger:   zerolog.Nop(),
		buf:      make([]byte, cfg.MaxLineLength),
		commands: make([]entry, 0, cfg.MaxCommands),
		tok:      newTokenizer(cfg),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

func (s *Shell) Config() Config {
	return s.cfg
}

func (s *Shell) SetPromptHook(h PromptHook) {
	s.promptHook = h
}

func (s *Shell) SetCommandNotFoundHook(h NotFoundHook) {
	s.notFoundHook = h
}

// SetCommandErrorHook stores h for handler-reported errors. Dispatch ignores
// handler status, so the hook is currently never called.
func (s *Shell) SetCommandErrorHook(h CommandErrorHook) {
	s.errorHook = h
}

// AddCommand appends a command to the table. Names need not be unique; lookup
// picks the earliest registration.
func (s *Shell) AddCommand(name string, h Handler) error {
	if len(s.commands) >= s.cfg.MaxCommands {
		return fmt.Errorf("%w: cannot add %q, limit is %d", ErrCapacityExceeded, name, s.cfg.MaxCommands)
	}
	s.commands = append(s.commands, entry{name: name, handler: h})
	return nil
}

// AddCommandFunc is AddCommand for plain functions.
func (s *Shell) AddCommandFunc(name string, fn func(args []string) int) error {
	return s.AddCommand(name, HandlerFunc(fn))
}

// Commands returns the registered names in registration order.
func (s *Shell) Commands() []string {
	names := make([]string, len(s.commands))
	for i, e := range s.commands {
		names[i] = e.name
	}
	return names
}

// Begin resets the line buffer and shows the first prompt.
func (s *Shell) Begin() {
	s.Reset(true)
}

// Reset abandons any partially typed line.
func (s *Shell) Reset(displayPrompt bool) {
	s.pos = 0
	s.dropped = 0
	if displayPrompt {
		s.prompt()
	}
}

// Len returns the number of bytes buffered since the last terminator.
func (s *Shell) Len() int {
	return s.pos
}

// PutChar feeds a single byte. Bytes beyond the line capacity are dropped
// until the terminator arrives.
func (s *Shell) PutChar(c byte) {
	if s.dispatching {
		s.logger.Debug().Uint8("char", c).Msg("input during dispatch ignored")
		return
	}

	switch {
	case c == s.cfg.Terminator:
		s.execute()
		s.pos = 0
		s.dropped = 0
	case s.pos < len(s.buf):
		s.buf[s.pos] = c
		s.pos++
	default:
		s.dropped++
	}
}

// Write feeds every byte of p to PutChar. It never fails.
func (s *Shell) Write(p []byte) (int, error) {
	for _, c := range p {
		s.PutChar(c)
	}
	return len(p), nil
}

func (s *Shell) execute() {
	s.dispatching = true
	defer func() { s.dispatching = false }()

	if s.dropped > 0 {
		s.logger.Debug().
			Int("kept", s.pos).
			Int("dropped", s.dropped).
			Msg("line exceeded buffer capacity")
	}

	args := s.tok.split(s.buf[:s.pos])
	if len(args) == 0 {
		s.prompt()
		return
	}

	if h, ok := s.lookup(args[0]); ok {
		s.logger.Debug().Str("command", args[0]).Int("argc", len(args)).Msg("dispatching")
		if h != nil {
			status := h.Run(args)
			s.logger.Debug().Str("command", args[0]).Int("status", status).Msg("command finished")
		}
		s.prompt()
		return
	}

	s.logger.Debug().Str("command", args[0]).Msg("command not found")
	if s.notFoundHook != nil {
		s.notFoundHook(args[0])
	}
	s.prompt()
}

func (s *Shell) lookup(name string) (Handler, bool) {
	for _, e := range s.commands {
		if e.name == name {
			return e.handler, true
		}
	}
	return nil, false
}

func (s *Shell) prompt() {
	if s.promptHook != nil {
		s.promptHook()
	}
}

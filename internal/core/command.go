package core

import (
	"context"
	"io"
)

type CmdRouter interface {
	ListCommands() []Command
}

// Command is a console builtin. Output goes to w; a returned error is
// reported on the console and turned into a non-zero status.
type Command interface {
	Name() string
	Description() string
	Execute(ctx context.Context, w io.Writer, args []string) error
}

package command

import (
	"github.com/sandevgo/serialsh/internal/core"
)

// NewCommands returns the builtins besides help, in registration order.
func NewCommands() []core.Command {
	return []core.Command{
		NewVersionCommand(),
		NewExampleCommand(),
		NewEchoCommand(),
	}
}

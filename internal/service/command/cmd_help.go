package command

import (
	"context"
	"fmt"
	"io"

	"github.com/sandevgo/serialsh/internal/core"
)

type HelpCommand struct {
	router    core.CmdRouter
	formatter *ResponseFormatter
}

func NewHelpCommand(router core.CmdRouter) *HelpCommand {
	return &HelpCommand{
		router:    router,
		formatter: NewResponseFormatter(),
	}
}

func (c *HelpCommand) Name() string {
	return "help"
}

func (c *HelpCommand) Description() string {
	return "Show available commands"
}

func (c *HelpCommand) Execute(ctx context.Context, w io.Writer, args []string) error {
	commands := c.router.ListCommands()

	if len(args) > 1 {
		return c.formatter.Write(w, c.formatter.Usage("help [command]"))
	}
	if len(args) == 1 {
		for _, cmd := range commands {
			if cmd.Name() == args[0] {
				return c.formatter.Write(w, c.formatter.Label(cmd.Name(), cmd.Description()))
			}
		}
		return fmt.Errorf("no help for %q", args[0])
	}

	rows := make([][2]string, len(commands))
	for i, cmd := range commands {
		rows[i] = [2]string{cmd.Name(), cmd.Description()}
	}
	return c.formatter.Write(w, c.formatter.Line("Commands:"), c.formatter.Table(rows))
}

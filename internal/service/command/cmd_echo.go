package command

import (
	"context"
	"io"
	"strings"
)

type EchoCommand struct {
	formatter *ResponseFormatter
}

func NewEchoCommand() *EchoCommand {
	return &EchoCommand{formatter: NewResponseFormatter()}
}

func (c *EchoCommand) Name() string {
	return "echo"
}

func (c *EchoCommand) Description() string {
	return "Print the arguments"
}

func (c *EchoCommand) Execute(ctx context.Context, w io.Writer, args []string) error {
	return c.formatter.Write(w, c.formatter.Line(strings.Join(args, " ")))
}

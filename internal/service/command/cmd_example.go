package command

import (
	"context"
	"fmt"
	"io"
	"strconv"
)

// ExampleCommand prints how the shell split its command line.
type ExampleCommand struct {
	formatter *ResponseFormatter
}

func NewExampleCommand() *ExampleCommand {
	return &ExampleCommand{formatter: NewResponseFormatter()}
}

func (c *ExampleCommand) Name() string {
	return "example"
}

func (c *ExampleCommand) Description() string {
	return "Print the parsed arguments [args...]"
}

func (c *ExampleCommand) Execute(ctx context.Context, w io.Writer, args []string) error {
	sections := []string{
		c.formatter.Label("Command name", c.Name()),
		c.formatter.Label("Arguments (including command name)", strconv.Itoa(len(args)+1)),
	}
	for i, arg := range args {
		sections = append(sections, c.formatter.Label(fmt.Sprint(i+1), arg))
	}
	return c.formatter.Write(w, sections...)
}

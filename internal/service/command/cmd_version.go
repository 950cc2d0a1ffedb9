package command

import (
	"context"
	"io"

	"github.com/sandevgo/serialsh/internal/core"
)

type VersionCommand struct {
	formatter *ResponseFormatter
}

func NewVersionCommand() *VersionCommand {
	return &VersionCommand{formatter: NewResponseFormatter()}
}

func (c *VersionCommand) Name() string {
	return "version"
}

func (c *VersionCommand) Description() string {
	return "Show the firmware name and version"
}

func (c *VersionCommand) Execute(ctx context.Context, w io.Writer, args []string) error {
	return c.formatter.Write(w,
		c.formatter.Line(core.AppTitle),
		c.formatter.Line(core.AppName+" "+core.Version),
	)
}

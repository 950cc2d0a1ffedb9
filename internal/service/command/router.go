package command

import (
	"context"
	"fmt"
	"io"

	"github.com/sandevgo/serialsh/internal/core"
	"github.com/sandevgo/serialsh/pkg/log"
	"github.com/sandevgo/serialsh/pkg/shell"
)

// Router owns the console builtins and installs them into a shell. help is
// always registered first so that it cannot be shadowed.
type Router struct {
	commands  []core.Command
	formatter *ResponseFormatter
}

func New(commands []core.Command) *Router {
	r := &Router{
		formatter: NewResponseFormatter(),
	}
	r.commands = make([]core.Command, 0, len(commands)+1)
	r.commands = append(r.commands, NewHelpCommand(r))
	r.commands = append(r.commands, commands...)
	return r
}

// Install registers every command with sh. Output of the handlers goes to out.
func (r *Router) Install(ctx context.Context, sh *shell.Shell, out io.Writer) error {
	for _, cmd := range r.commands {
		if err := sh.AddCommand(cmd.Name(), r.handler(ctx, cmd, out)); err != nil {
			return fmt.Errorf("failed to register %q: %w", cmd.Name(), err)
		}
	}
	return nil
}

func (r *Router) handler(ctx context.Context, cmd core.Command, out io.Writer) shell.Handler {
	return shell.HandlerFunc(func(args []string) int {
		logger := log.FromCtx(ctx)

		if err := cmd.Execute(ctx, out, args[1:]); err != nil {
			logger.Debug().Err(err).Str("command", cmd.Name()).Msg("command failed")
			_ = r.formatter.Write(out, r.formatter.Error(cmd.Name(), err))
			return core.StatusError
		}
		return core.StatusOK
	})
}

func (r *Router) ListCommands() []core.Command {
	res := make([]core.Command, len(r.commands))
	copy(res, r.commands)
	return res
}

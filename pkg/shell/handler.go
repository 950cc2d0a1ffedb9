package shell

// Handler runs a registered command.
//
// args holds the whole command line, args[0] being the command name. The slice
// is only valid for the duration of the call: its backing array is reused by
// the next dispatch, so handlers must copy anything they want to keep.
type Handler interface {
	Run(args []string) int
}

// HandlerFunc adapts an ordinary function to the Handler interface.
type HandlerFunc func(args []string) int

func (f HandlerFunc) Run(args []string) int {
	return f(args)
}

type (
	// PromptHook is called whenever the shell is ready for a new line.
	PromptHook func()
	// NotFoundHook receives the name of a command that has no table entry.
	NotFoundHook func(name string)
	// CommandErrorHook is reserved for handler-reported failures. Dispatch
	// does not call it.
	CommandErrorHook func(name string, status int)
)

type entry struct {
	name    string
	handler Handler
}

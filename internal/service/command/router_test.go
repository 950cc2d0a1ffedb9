package command

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/sandevgo/serialsh/internal/core"
	"github.com/sandevgo/serialsh/pkg/shell"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingCommand struct{}

func (failingCommand) Name() string        { return "fail" }
func (failingCommand) Description() string { return "Always fails" }
func (failingCommand) Execute(ctx context.Context, w io.Writer, args []string) error {
	return errors.New("boom")
}

func newInstalledShell(t *testing.T, cfg shell.Config, commands ...core.Command) (*shell.Shell, *bytes.Buffer) {
	t.Helper()

	sh, err := shell.New(cfg)
	require.NoError(t, err)

	out := &bytes.Buffer{}
	require.NoError(t, New(commands).Install(context.Background(), sh, out))
	return sh, out
}

func TestRouter_Install(t *testing.T) {
	sh, _ := newInstalledShell(t, shell.DefaultConfig(), NewCommands()...)
	assert.Equal(t, []string{"help", "version", "example", "echo"}, sh.Commands())
}

func TestRouter_InstallCapacity(t *testing.T) {
	cfg := shell.DefaultConfig()
	cfg.MaxCommands = 2

	sh, err := shell.New(cfg)
	require.NoError(t, err)

	err = New(NewCommands()).Install(context.Background(), sh, io.Discard)
	assert.ErrorIs(t, err, shell.ErrCapacityExceeded)
	assert.Equal(t, []string{"help", "version"}, sh.Commands())
}

func TestRouter_Commands(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "echo",
			input: "echo hello \"big world\"\r",
			want:  "hello big world\r\n",
		},
		{
			name:  "echo without args",
			input: "echo\r",
			want:  "\r\n",
		},
		{
			name:  "example",
			input: "example a\\ b c\r",
			want: "Command name: example\r\n" +
				"Arguments (including command name): 3\r\n" +
				"1: a b\r\n" +
				"2: c\r\n",
		},
		{
			name:  "version",
			input: "version\r",
			want:  core.AppTitle + "\r\n" + core.AppName + " " + core.Version + "\r\n",
		},
		{
			name:  "help",
			input: "help\r",
			want: "Commands:\r\n" +
				"  help     Show available commands\r\n" +
				"  version  Show the firmware name and version\r\n" +
				"  example  Print the parsed arguments [args...]\r\n" +
				"  echo     Print the arguments\r\n" +
				"  fail     Always fails\r\n",
		},
		{
			name:  "help for one command",
			input: "help echo\r",
			want:  "echo: Print the arguments\r\n",
		},
		{
			name:  "help for unknown command",
			input: "help nope\r",
			want:  "help: no help for \"nope\"\r\n",
		},
		{
			name:  "help with too many arguments",
			input: "help echo version\r",
			want:  "usage: help [command]\r\n",
		},
		{
			name:  "failing command",
			input: "fail\r",
			want:  "fail: boom\r\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			commands := append(NewCommands(), failingCommand{})
			sh, out := newInstalledShell(t, shell.DefaultConfig(), commands...)

			_, err := sh.Write([]byte(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.want, out.String())
		})
	}
}

func TestRouter_HandlerStatus(t *testing.T) {
	r := New([]core.Command{failingCommand{}})
	ctx := context.Background()

	help := r.handler(ctx, r.ListCommands()[0], io.Discard)
	assert.Equal(t, core.StatusOK, help.Run([]string{"help"}))

	fail := r.handler(ctx, failingCommand{}, io.Discard)
	assert.Equal(t, core.StatusError, fail.Run([]string{"fail", "x"}))
}

func TestRouter_ListCommandsIsACopy(t *testing.T) {
	r := New(NewCommands())
	list := r.ListCommands()
	list[0] = nil
	assert.NotNil(t, r.ListCommands()[0])
}

package config

import (
	"path/filepath"
	"testing"

	"github.com/sandevgo/serialsh/pkg/shell"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseShellConfig_Defaults(t *testing.T) {
	c, err := ParseShellConfig()
	require.NoError(t, err)
	assert.Equal(t, shell.DefaultConfig(), c.ToShell())
}

func TestParseShellConfig_FromEnv(t *testing.T) {
	t.Setenv("SERIALSH_EOL", `\n`)
	t.Setenv("SERIALSH_ESCAPE", "^")
	t.Setenv("SERIALSH_QUOTE", "0x27")
	t.Setenv("SERIALSH_MAX_LINE", "128")
	t.Setenv("SERIALSH_MAX_COMMANDS", "4")
	t.Setenv("SERIALSH_MAX_ARGS", "16")

	c, err := ParseShellConfig()
	require.NoError(t, err)
	assert.Equal(t, shell.Config{
		Terminator:    '\n',
		Escape:        '^',
		Quote:         '\'',
		MaxLineLength: 128,
		MaxCommands:   4,
		MaxArgs:       16,
	}, c.ToShell())
}

func TestParseShellConfig_Invalid(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{name: "bad char", key: "SERIALSH_QUOTE", val: "xyz"},
		{name: "bad number", key: "SERIALSH_MAX_ARGS", val: "many"},
		{name: "zero line", key: "SERIALSH_MAX_LINE", val: "0"},
		{name: "quote collides with escape", key: "SERIALSH_QUOTE", val: `\\`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.val)
			_, err := ParseShellConfig()
			assert.Error(t, err)
		})
	}
}

func TestParseAppConfig(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("SERIALSH_RUNTIME_PATH", dir)

	c, err := ParseAppConfig()
	require.NoError(t, err)
	assert.Equal(t, TransportStdio, c.Transport)
	assert.Equal(t, "> ", c.GetPrompt())
	assert.True(t, c.IsEchoEnabled())
	assert.True(t, c.IsBannerEnabled())
	assert.Equal(t, 5, c.OpenRetries)
	assert.Equal(t, 115200, c.Baud)
	assert.Equal(t, filepath.Join(dir, ".env"), c.GetEnvPath())
	assert.Empty(t, c.GetLogPath())

	t.Setenv("SERIALSH_LOG_FILE", "serialsh.log")
	c, err = ParseAppConfig()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "serialsh.log"), c.GetLogPath())
}

func TestParseAppConfig_RelativeRuntimePath(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("SERIALSH_RUNTIME_PATH", "")

	c, err := ParseAppConfig()
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(c.GetRuntimePath()))
	assert.Equal(t, ".serialsh", filepath.Base(c.GetRuntimePath()))
}

func TestParseAppConfig_Transport(t *testing.T) {
	t.Setenv("SERIALSH_RUNTIME_PATH", t.TempDir())

	t.Setenv("SERIALSH_TRANSPORT", "telnet")
	_, err := ParseAppConfig()
	var terr *TransportError
	require.ErrorAs(t, err, &terr)
	assert.Equal(t, "telnet", terr.Transport)

	t.Setenv("SERIALSH_TRANSPORT", TransportSerial)
	_, err = ParseAppConfig()
	assert.ErrorIs(t, err, errDeviceRequired)

	t.Setenv("SERIALSH_DEVICE", "/dev/ttyUSB0")
	c, err := ParseAppConfig()
	require.NoError(t, err)
	assert.Equal(t, "/dev/ttyUSB0", c.Device)

	t.Setenv("SERIALSH_BAUD", "9600")
	c, err = ParseAppConfig()
	require.NoError(t, err)
	assert.Equal(t, 9600, c.Baud)

	t.Setenv("SERIALSH_BAUD", "0")
	_, err = ParseAppConfig()
	assert.ErrorIs(t, err, errInvalidBaud)
}

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChar_UnmarshalText(t *testing.T) {
	tests := []struct {
		in      string
		want    Char
		wantErr bool
	}{
		{in: "#", want: '#'},
		{in: `"`, want: '"'},
		{in: "7", want: '7'},
		{in: `\r`, want: '\r'},
		{in: `\n`, want: '\n'},
		{in: `\\`, want: '\\'},
		{in: `\x1b`, want: 0x1b},
		{in: "13", want: '\r'},
		{in: "0x0D", want: '\r'},
		{in: "", wantErr: true},
		{in: "ab", wantErr: true},
		{in: "256", wantErr: true},
		{in: `\q`, wantErr: true},
		{in: `\rx`, wantErr: true},
		{in: `é`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			var c Char
			err := c.UnmarshalText([]byte(tt.in))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, c)
		})
	}
}

func TestChar_MarshalRoundTrip(t *testing.T) {
	for i := 0; i < 256; i++ {
		c := Char(i)
		text, err := c.MarshalText()
		require.NoError(t, err)

		var back Char
		require.NoError(t, back.UnmarshalText(text), "char %d marshalled as %q", i, text)
		assert.Equal(t, c, back)
	}

	assert.Equal(t, `\r`, Char('\r').String())
	assert.Equal(t, `\\`, Char('\\').String())
	assert.Equal(t, `"`, Char('"').String())
}

package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCRLFWriter(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "a\r\nb\r\n", want: "a\nb\n"},
		{in: "no newline", want: "no newline"},
		{in: "lone\rcr\n", want: "lone\rcr\n"},
	}

	for _, tt := range tests {
		buf := &bytes.Buffer{}
		w := &crlfWriter{w: buf}

		n, err := w.Write([]byte(tt.in))
		require.NoError(t, err)
		assert.Equal(t, len(tt.in), n)
		assert.Equal(t, tt.want, buf.String())
	}
}

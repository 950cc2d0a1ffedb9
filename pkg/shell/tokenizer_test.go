package shell

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenize(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		name string
		line string
		want []string
	}{
		{
			name: "plain words",
			line: "test1 arg1 arg2",
			want: []string{"test1", "arg1", "arg2"},
		},
		{
			name: "quoted and escaped",
			line: " test2 \"arg 1\"\targ\\\\2",
			want: []string{"test2", "arg 1", `arg\2`},
		},
		{
			name: "separator runs collapse",
			line: "a  \t\t b\v\fc",
			want: []string{"a", "b", "c"},
		},
		{
			name: "leading and trailing separators",
			line: "   cmd   ",
			want: []string{"cmd"},
		},
		{
			name: "empty line",
			line: "",
			want: nil,
		},
		{
			name: "only separators",
			line: " \t \n",
			want: nil,
		},
		{
			name: "NUL ends a word",
			line: "help\x00junk arg",
			want: []string{"help", "arg"},
		},
		{
			name: "escaped space joins words",
			line: `foo\ bar baz`,
			want: []string{"foo bar", "baz"},
		},
		{
			name: "escaped quote is literal",
			line: `say \"hi\"`,
			want: []string{"say", `"hi"`},
		},
		{
			name: "escape inside quotes",
			line: `say "a\"b c"`,
			want: []string{"say", `a"b c`},
		},
		{
			name: "quote in the middle of a word",
			line: `ab"c d"ef`,
			want: []string{"abc def"},
		},
		{
			name: "unterminated quote runs to end of line",
			line: `echo "a b  c`,
			want: []string{"echo", "a b  c"},
		},
		{
			name: "trailing escape is consumed",
			line: `echo abc\`,
			want: []string{"echo", "abc"},
		},
		{
			name: "lone escape",
			line: `\`,
			want: nil,
		},
		{
			name: "empty quotes produce no word",
			line: `echo ""`,
			want: []string{"echo"},
		},
		{
			name: "quoted whitespace only",
			line: `echo " "`,
			want: []string{"echo", " "},
		},
		{
			name: "escaped escape",
			line: `a\\b`,
			want: []string{`a\b`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Tokenize(tt.line, cfg))
		})
	}
}

func TestTokenize_WhitespaceOnlySplit(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxArgs = 64

	lines := []string{
		"one two three",
		"  x\ty \n z ",
		"a",
		"\t\tleading tabs",
	}
	for _, line := range lines {
		got := Tokenize(line, cfg)
		assert.NotContains(t, got, "")
		assert.Equal(t, fields(line), got, "line %q", line)
	}
}

func TestTokenize_ArgumentLimit(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxArgs = 3

	got := Tokenize("a b c d e f", cfg)
	assert.Equal(t, []string{"a", "b", "c"}, got)

	// the last admitted word is still complete
	got = Tokenize("cmd one twotwo three", cfg)
	assert.Equal(t, []string{"cmd", "one", "twotwo"}, got)
}

func TestTokenize_CustomSyntax(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Escape = '^'
	cfg.Quote = '\''

	got := Tokenize(`set 'a b' c^ d "x`, cfg)
	assert.Equal(t, []string{"set", "a b", "c d", `"x`}, got)
}

func TestTokenizer_ReusesBuffers(t *testing.T) {
	tok := newTokenizer(DefaultConfig())

	first := tok.split([]byte("alpha beta"))
	assert.Equal(t, []string{"alpha", "beta"}, first)

	second := tok.split([]byte("gamma"))
	assert.Equal(t, []string{"gamma"}, second)
	assert.Equal(t, cap(first), cap(second))
}

// fields is a reference splitter for lines without quotes or escapes.
func fields(line string) []string {
	var out []string
	cur := []byte{}
	for i := 0; i < len(line); i++ {
		if isSpace(line[i]) {
			if len(cur) > 0 {
				out = append(out, string(cur))
				cur = cur[:0]
			}
			continue
		}
		cur = append(cur, line[i])
	}
	if len(cur) > 0 {
		out = append(out, string(cur))
	}
	return out
}

package shell

import "bytes"

// tokenizer splits a raw line into words. The scratch buffer and the argument
// slice are allocated once and reused for every line.
type tokenizer struct {
	escape  byte
	quote   byte
	maxArgs int

	scratch []byte
	args    []string
}

func newTokenizer(cfg Config) *tokenizer {
	return &tokenizer{
		escape:  cfg.Escape,
		quote:   cfg.Quote,
		maxArgs: cfg.MaxArgs,
		scratch: make([]byte, 0, cfg.MaxLineLength+1),
		args:    make([]string, 0, cfg.MaxArgs),
	}
}

// split resolves escapes and quotes in line and returns at most maxArgs words.
// The returned slice is overwritten by the next call.
func (t *tokenizer) split(line []byte) []string {
	t.scratch = t.scratch[:0]
	t.args = t.args[:0]

	var escaped, quoted, inWord bool
	start := 0

	for _, c := range line {
		switch {
		case c == t.escape && !escaped:
			escaped = true
		case c == t.quote && !escaped:
			quoted = !quoted
		case isSpace(c) && !escaped && !quoted:
			if inWord {
				t.args = append(t.args, t.word(start))
				inWord = false
			}
		default:
			escaped = false
			// once maxArgs words exist the bytes still land in scratch,
			// but no new word is opened for them
			if !inWord && len(t.args) < t.maxArgs {
				start = len(t.scratch)
				inWord = true
			}
			t.scratch = append(t.scratch, c)
		}
	}

	// unterminated quotes and missing trailing whitespace both end here
	if inWord {
		t.args = append(t.args, t.word(start))
	}
	return t.args
}

// word returns the word opened at start. A NUL byte ends it, the way it ends
// a C string; the bytes after it are kept in scratch but never seen.
func (t *tokenizer) word(start int) string {
	w := t.scratch[start:]
	if i := bytes.IndexByte(w, 0); i >= 0 {
		w = w[:i]
	}
	return string(w)
}

// Tokenize splits line using the escape, quote and argument limit of cfg.
// Unlike the shell's accumulator it does not truncate line to MaxLineLength.
func Tokenize(line string, cfg Config) []string {
	t := newTokenizer(cfg)
	args := t.split([]byte(line))
	if len(args) == 0 {
		return nil
	}
	return args
}

// isSpace matches the C locale isspace set.
func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

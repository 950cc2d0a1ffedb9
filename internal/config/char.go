package config

import (
	"fmt"
	"strconv"
	"strings"
)

// Char is a single configuration byte. It can be written as the character
// itself ("#"), as a Go escape ("\r", "\\", "\x1b"), or as a numeric code
// ("13", "0x0d").
type Char byte

func (c *Char) UnmarshalText(text []byte) error {
	s := string(text)
	switch {
	case s == "":
		return fmt.Errorf("empty character")
	case len(s) == 1:
		*c = Char(s[0])
		return nil
	case s[0] == '\\':
		v, _, tail, err := strconv.UnquoteChar(s, 0)
		if err != nil || tail != "" || v > 0xff {
			return fmt.Errorf("invalid character escape %q", s)
		}
		*c = Char(v)
		return nil
	}

	n, err := strconv.ParseUint(strings.ToLower(s), 0, 8)
	if err != nil {
		return fmt.Errorf("invalid character %q: expected a single byte, escape or code", s)
	}
	*c = Char(n)
	return nil
}

// MarshalText writes printable characters as themselves and everything else
// as a Go escape, so the result round-trips through UnmarshalText.
func (c Char) MarshalText() ([]byte, error) {
	b := byte(c)
	if b > ' ' && b < 0x7f && b != '\\' {
		return []byte{b}, nil
	}
	if b >= 0x7f {
		return []byte(fmt.Sprintf(`\x%02x`, b)), nil
	}
	q := strconv.QuoteRune(rune(b))
	return []byte(q[1 : len(q)-1]), nil
}

func (c Char) String() string {
	text, _ := c.MarshalText()
	return string(text)
}

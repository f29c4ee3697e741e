package parser

import (
	"strings"

	"github.com/pkg/errors"
)

// escapes maps the character after a backslash to the byte it stands for.
// Anything not listed stands for itself, so \' is a quote and \\ a backslash.
var escapes = map[byte]byte{
	'a': '\a',
	'b': '\b',
	'f': '\f',
	'n': '\n',
	'r': '\r',
	't': '\t',
	'v': '\v',
	'0': 0,
}

// unescape decodes the single character following a backslash.
func unescape(b byte) byte {
	if r, ok := escapes[b]; ok {
		return r
	}
	return b
}

// readBackQuoted decodes a back-quoted name at the start of s. It returns the
// decoded name and the number of bytes consumed including both quotes.
// ok is false when s does not start with a back quote; a missing closing
// quote is reported through err.
func readBackQuoted(s string) (name string, n int, ok bool, err error) {
	if len(s) == 0 || s[0] != '`' {
		return "", 0, false, nil
	}

	var b strings.Builder
	i := 1
	for i < len(s) {
		switch s[i] {
		case '`':
			return b.String(), i + 1, true, nil
		case '\\':
			if i+1 >= len(s) {
				return "", i, true, errUnterminatedBackQuote
			}
			b.WriteByte(unescape(s[i+1]))
			i += 2
		default:
			b.WriteByte(s[i])
			i++
		}
	}

	return "", i, true, errUnterminatedBackQuote
}

var errUnterminatedBackQuote = errors.New("expected closing back quote")

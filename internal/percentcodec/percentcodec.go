// Package percentcodec implements percent-encoding and percent-decoding
// of byte strings, parameterized by the named encode sets in
// internal/charset.
package percentcodec

import (
	"strings"

	"github.com/corewhatwg/url/internal/charset"
)

const upperHex = "0123456789ABCDEF"

// EncodeByte returns the percent-encoding of a single byte, e.g. "%20".
func EncodeByte(b byte) string {
	return string([]byte{'%', upperHex[b>>4], upperHex[b&0x0F]})
}

// EncodeString percent-encodes every byte of s that belongs to set,
// leaving the rest of the UTF-8 byte sequence untouched.
func EncodeString(s string, set *charset.EncodeSet) string {
	var needsEncoding bool

	for i := 0; i < len(s); i++ {
		if set.Contains(s[i]) {
			needsEncoding = true

			break
		}
	}

	if !needsEncoding {
		return s
	}

	var b strings.Builder

	b.Grow(len(s))

	for i := 0; i < len(s); i++ {
		c := s[i]

		if set.Contains(c) {
			b.WriteString(EncodeByte(c))
		} else {
			b.WriteByte(c)
		}
	}

	return b.String()
}

func hexVal(c byte) (int, bool) {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0'), true
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10, true
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10, true
	default:
		return 0, false
	}
}

// Decode percent-decodes a byte sequence. Malformed sequences (a "%" not
// followed by two hex digits) are copied through literally.
func Decode(input []byte) []byte {
	out := make([]byte, 0, len(input))

	for i := 0; i < len(input); i++ {
		c := input[i]

		if c == '%' && i+2 < len(input) {
			hi, okHi := hexVal(input[i+1])
			lo, okLo := hexVal(input[i+2])

			if okHi && okLo {
				out = append(out, byte(hi<<4|lo))
				i += 2

				continue
			}
		}

		out = append(out, c)
	}

	return out
}

// DecodeString is Decode for a string input and output. A string with no
// "%" is returned unchanged.
func DecodeString(s string) string {
	if !strings.Contains(s, "%") {
		return s
	}

	return string(Decode([]byte(s)))
}

// Package ipv6 implements the IPv6 parser and serializer algorithms of
// the host parser. The parser decodes each hex piece via its digit value
// (not the raw code point value) before accumulating it, avoiding the
// classic bug where 'a' (0x61) is added directly into a piece meant to
// hold its digit value of 10.
package ipv6

import (
	"errors"
	"strconv"
	"strings"

	"github.com/corewhatwg/url/internal/codepoints"
)

// ErrFailure reports a parse failure.
var ErrFailure = errors.New("ipv6: failure")

// Parse runs the IPv6 parser algorithm over input (the contents between
// the brackets, or a bare address with no brackets) and returns the
// eight 16-bit pieces of the address in network order.
func Parse(input string) (pieces [8]uint16, err error) {
	seq := codepoints.New(input)

	pieceIndex := 0
	compress := -1

	if seq.Current() == ':' {
		if !seq.StartsWith([]rune{':', ':'}) {
			return pieces, ErrFailure
		}

		seq.Next()
		seq.Next()

		pieceIndex++
		compress = pieceIndex
	}

	for seq.Remaining() {
		if pieceIndex == 8 {
			return pieces, ErrFailure
		}

		if seq.Current() == ':' {
			if compress != -1 {
				return pieces, ErrFailure
			}

			seq.Next()

			pieceIndex++
			compress = pieceIndex

			continue
		}

		value := 0
		length := 0

		for length < 4 && isHexDigit(seq.Current()) {
			value = value*16 + hexDigitValue(seq.Current())

			seq.Next()
			length++
		}

		switch seq.Current() {
		case '.':
			if length == 0 {
				return pieces, ErrFailure
			}

			seq.Seek(seq.Pos() - length)

			if pieceIndex > 6 {
				return pieces, ErrFailure
			}

			numbersSeen := 0

			for seq.Remaining() {
				ipv4Piece := -1

				if numbersSeen > 0 {
					if seq.Current() == '.' && numbersSeen < 4 {
						seq.Next()
					} else {
						return pieces, ErrFailure
					}
				}

				if !isASCIIDigit(seq.Current()) {
					return pieces, ErrFailure
				}

				for isASCIIDigit(seq.Current()) {
					digit := int(seq.Current() - '0')

					switch {
					case ipv4Piece == -1:
						ipv4Piece = digit
					case ipv4Piece == 0:
						return pieces, ErrFailure
					default:
						ipv4Piece = ipv4Piece*10 + digit
					}

					if ipv4Piece > 255 {
						return pieces, ErrFailure
					}

					seq.Next()
				}

				pieces[pieceIndex] = pieces[pieceIndex]*256 + uint16(ipv4Piece)

				numbersSeen++

				if numbersSeen == 2 || numbersSeen == 4 {
					pieceIndex++
				}
			}

			if numbersSeen != 4 {
				return pieces, ErrFailure
			}

			continue
		case ':':
			seq.Next()

			if !seq.Remaining() {
				return pieces, ErrFailure
			}
		default:
			if seq.Remaining() {
				return pieces, ErrFailure
			}
		}

		pieces[pieceIndex] = uint16(value)
		pieceIndex++
	}

	if compress != -1 {
		swaps := pieceIndex - compress
		pieceIndex = 7

		for pieceIndex != 0 && swaps > 0 {
			pieces[pieceIndex], pieces[compress+swaps-1] = pieces[compress+swaps-1], pieces[pieceIndex]
			pieceIndex--
			swaps--
		}
	} else if compress == -1 && pieceIndex != 8 {
		return pieces, ErrFailure
	}

	return pieces, nil
}

func isHexDigit(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

func isASCIIDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func hexDigitValue(r rune) int {
	switch {
	case r >= '0' && r <= '9':
		return int(r - '0')
	case r >= 'a' && r <= 'f':
		return int(r-'a') + 10
	default:
		return int(r-'A') + 10
	}
}

// Serialize renders pieces in the canonical compressed notation defined
// by the host serializer: the longest run of consecutive zero pieces
// (length >= 2, first run wins on a tie) is replaced with "::".
func Serialize(pieces [8]uint16) string {
	compressStart, compressLen := longestZeroRun(pieces)

	var b strings.Builder

	ignore0 := false

	for i := 0; i < 8; i++ {
		if ignore0 && pieces[i] == 0 {
			continue
		}

		if ignore0 {
			ignore0 = false
		}

		if compressLen >= 2 && i == compressStart {
			if i == 0 {
				b.WriteString("::")
			} else {
				b.WriteByte(':')
			}

			ignore0 = true

			continue
		}

		b.WriteString(strconv.FormatUint(uint64(pieces[i]), 16))

		if i != 7 {
			b.WriteByte(':')
		}
	}

	return b.String()
}

// longestZeroRun finds the first, longest run of consecutive zero
// pieces. A run shorter than 2 is not worth compressing.
func longestZeroRun(pieces [8]uint16) (start, length int) {
	bestStart, bestLen := -1, 0
	curStart, curLen := -1, 0

	for i := 0; i < 8; i++ {
		if pieces[i] == 0 {
			if curStart == -1 {
				curStart = i
			}

			curLen++

			if curLen > bestLen {
				bestStart, bestLen = curStart, curLen
			}
		} else {
			curStart, curLen = -1, 0
		}
	}

	return bestStart, bestLen
}

package url

import "fmt"

// ErrorCode names a single validation condition the parser can observe.
// Some codes are warnings the parser recovers from; the others abort
// parsing outright, as reported by (ErrorCode).Fatal.
type ErrorCode int

const (
	// Percent-encoding and control-character conditions.
	ErrInvalidURLUnit ErrorCode = iota
	ErrSpecialSchemeMissingFollowingSolidus
	ErrMissingSchemeNonRelativeURL
	ErrInvalidReverseSolidus

	// Authority and credentials conditions.
	ErrInvalidCredentials
	ErrHostMissing
	ErrHostInvalidCodePoint

	// Port conditions.
	ErrPortOutOfRange
	ErrPortInvalid

	// File scheme conditions.
	ErrFileInvalidWindowsDriveLetter
	ErrFileInvalidWindowsDriveLetterHost

	// IDNA conditions.
	ErrDomainToASCII
	ErrDomainToUnicode

	// IPv4 conditions.
	ErrIPv4EmptyPart
	ErrIPv4TooManyParts
	ErrIPv4NonNumericPart
	ErrIPv4NonDecimalPart
	ErrIPv4OutOfRangePart

	// IPv6 conditions.
	ErrIPv6Unclosed
	ErrIPv6InvalidCompression
	ErrIPv6TooManyPieces
	ErrIPv6MultipleCompression
	ErrIPv6InvalidCodePoint
	ErrIPv6TooFewPieces
	ErrIPv4InIPv6TooManyPieces
	ErrIPv4InIPv6InvalidCodePoint
	ErrIPv4InIPv6OutOfRangePart
	ErrIPv4InIPv6TooFewParts
)

var errorCodeNames = map[ErrorCode]string{
	ErrInvalidURLUnit:                       "invalid-url-unit",
	ErrSpecialSchemeMissingFollowingSolidus: "special-scheme-missing-following-solidus",
	ErrMissingSchemeNonRelativeURL:          "missing-scheme-non-relative-url",
	ErrInvalidReverseSolidus:                "invalid-reverse-solidus",
	ErrInvalidCredentials:                   "invalid-credentials",
	ErrHostMissing:                          "host-missing",
	ErrHostInvalidCodePoint:                 "host-invalid-code-point",
	ErrPortOutOfRange:                       "port-out-of-range",
	ErrPortInvalid:                          "port-invalid",
	ErrFileInvalidWindowsDriveLetter:        "file-invalid-windows-drive-letter",
	ErrFileInvalidWindowsDriveLetterHost:    "file-invalid-windows-drive-letter-host",
	ErrDomainToASCII:                        "domain-to-ascii",
	ErrDomainToUnicode:                      "domain-to-unicode",
	ErrIPv4EmptyPart:                        "ipv4-empty-part",
	ErrIPv4TooManyParts:                     "ipv4-too-many-parts",
	ErrIPv4NonNumericPart:                   "ipv4-non-numeric-part",
	ErrIPv4NonDecimalPart:                   "ipv4-non-decimal-part",
	ErrIPv4OutOfRangePart:                   "ipv4-out-of-range-part",
	ErrIPv6Unclosed:                         "ipv6-unclosed",
	ErrIPv6InvalidCompression:               "ipv6-invalid-compression",
	ErrIPv6TooManyPieces:                    "ipv6-too-many-pieces",
	ErrIPv6MultipleCompression:              "ipv6-multiple-compression",
	ErrIPv6InvalidCodePoint:                 "ipv6-invalid-code-point",
	ErrIPv6TooFewPieces:                     "ipv6-too-few-pieces",
	ErrIPv4InIPv6TooManyPieces:              "ipv4-in-ipv6-too-many-pieces",
	ErrIPv4InIPv6InvalidCodePoint:           "ipv4-in-ipv6-invalid-code-point",
	ErrIPv4InIPv6OutOfRangePart:             "ipv4-in-ipv6-out-of-range-part",
	ErrIPv4InIPv6TooFewParts:                "ipv4-in-ipv6-too-few-parts",
}

// String implements fmt.Stringer, returning the name used by the URL
// Standard's validation error table, written in all lowercase (for example
// "ipv4-empty-part" for "IPv4-empty-part").
func (c ErrorCode) String() string {
	if name, ok := errorCodeNames[c]; ok {
		return name
	}

	return "unknown-validation-error"
}

// Fatal reports whether the condition always aborts parsing, as opposed
// to being recorded and recovered from.
func (c ErrorCode) Fatal() bool {
	switch c {
	case ErrMissingSchemeNonRelativeURL,
		ErrHostMissing,
		ErrHostInvalidCodePoint,
		ErrPortOutOfRange,
		ErrPortInvalid,
		ErrDomainToASCII,
		ErrIPv4TooManyParts,
		ErrIPv4NonNumericPart,
		ErrIPv4OutOfRangePart,
		ErrIPv6Unclosed,
		ErrIPv6InvalidCompression,
		ErrIPv6TooManyPieces,
		ErrIPv6MultipleCompression,
		ErrIPv6InvalidCodePoint,
		ErrIPv6TooFewPieces,
		ErrIPv4InIPv6TooManyPieces,
		ErrIPv4InIPv6InvalidCodePoint,
		ErrIPv4InIPv6OutOfRangePart,
		ErrIPv4InIPv6TooFewParts:
		return true
	default:
		return false
	}
}

// ParseError reports why a URL failed to parse, carrying both the
// failing ErrorCode and the input that triggered it.
type ParseError struct {
	Code  ErrorCode
	Input string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("url: cannot parse %q: %s", e.Input, e.Code)
}

func newParseError(code ErrorCode, input string) error {
	return &ParseError{Code: code, Input: input}
}

// WarningSink receives non-fatal validation errors observed while
// parsing. It defaults to a no-op; attach one with WithWarningSink to
// collect or log them.
type WarningSink func(code ErrorCode, context string)

func noopWarningSink(ErrorCode, string) {}

package url

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/corewhatwg/url/internal/charset"
	"github.com/corewhatwg/url/internal/codepoints"
	"github.com/corewhatwg/url/internal/percentcodec"
)

// state names one of the basic URL parser's states.
type state int

const (
	stateSchemeStart state = iota
	stateScheme
	stateNoScheme
	stateSpecialRelativeOrAuthority
	statePathOrAuthority
	stateRelative
	stateRelativeSlash
	stateSpecialAuthoritySlashes
	stateSpecialAuthorityIgnoreSlashes
	stateAuthority
	stateHost
	stateHostname
	statePort
	stateFile
	stateFileSlash
	stateFileHost
	statePathStart
	statePath
	stateOpaquePath
	stateQuery
	stateFragment
	stateNone
)

// Parser holds the configuration used to run the basic URL parser:
// where validation warnings go, and whether a warning should itself
// abort parsing.
type Parser struct {
	sink               WarningSink
	failOnValidation   bool
	defaultScheme      string
}

// ParserOption configures a Parser.
type ParserOption func(*Parser)

// WithWarningSink attaches a sink that receives every non-fatal
// validation condition observed while parsing.
func WithWarningSink(sink WarningSink) ParserOption {
	return func(p *Parser) { p.sink = sink }
}

// WithFailOnValidationError makes the recoverable validation errors that
// the parser state machine reports abort parsing as well. The warning for
// stripped leading or trailing C0 control or space, and the IPv4 host
// warnings (empty part, non-decimal part), are still only passed to the
// sink and do not abort parsing.
func WithFailOnValidationError(fail bool) ParserOption {
	return func(p *Parser) { p.failOnValidation = fail }
}

// WithDefaultScheme sets a scheme to prepend to input lacking one, so
// bare host strings like "example.com" parse successfully.
func WithDefaultScheme(scheme string) ParserOption {
	return func(p *Parser) { p.defaultScheme = scheme }
}

// NewParser constructs a Parser with the given options applied over
// defaults matching the URL Standard's basic parser.
func NewParser(opts ...ParserOption) *Parser {
	p := &Parser{sink: noopWarningSink}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

var defaultParser = NewParser()

// Parse parses input, optionally resolved against base, using the
// default Parser configuration.
func Parse(input string, base *URL) (*URL, error) {
	return defaultParser.Parse(input, base)
}

// Parse parses input, optionally resolved against base.
func (p *Parser) Parse(input string, base *URL) (*URL, error) {
	if p.defaultScheme != "" && !looksLikeItHasAScheme(input) {
		input = p.defaultScheme + "://" + input
	}

	return p.basicParse(input, base, nil, stateNone)
}

func looksLikeItHasAScheme(input string) bool {
	i := strings.IndexByte(input, ':')
	if i <= 0 {
		return false
	}

	scheme := input[:i]

	if !charset.IsASCIIAlpha(rune(scheme[0])) {
		return false
	}

	for _, c := range scheme[1:] {
		if !charset.IsASCIIAlphanumeric(c) && c != '+' && c != '-' && c != '.' {
			return false
		}
	}

	return true
}

func (p *Parser) warn(code ErrorCode, input string) error {
	p.sink(code, input)

	if p.failOnValidation || code.Fatal() {
		return newParseError(code, input)
	}

	return nil
}

func (p *Parser) fail(code ErrorCode, input string) error {
	p.sink(code, input)

	return newParseError(code, input)
}

// basicParse implements https://url.spec.whatwg.org/#concept-basic-url-parser
func (p *Parser) basicParse(input string, base, url *URL, stateOverride state) (*URL, error) {
	if url == nil {
		url = &URL{}

		input = stripLeadingTrailingC0ControlOrSpace(input, p)
	}

	input = removeTabsAndNewlines(input)

	state := stateSchemeStart
	if stateOverride != stateNone {
		state = stateOverride
	}

	buffer := strings.Builder{}
	atSignSeen := false
	insideBrackets := false
	passwordTokenSeen := false

	seq := codepoints.New(input)

	for {
		c := seq.Current()

		switch state {
		case stateSchemeStart:
			switch {
			case charset.IsASCIIAlpha(c):
				buffer.WriteRune(toLowerASCII(c))
				state = stateScheme
			case stateOverride != stateNone:
				return nil, p.fail(ErrMissingSchemeNonRelativeURL, input)
			default:
				state = stateNoScheme
				seq.Seek(seq.Pos() - 1)
			}

		case stateScheme:
			switch {
			case charset.IsASCIIAlphanumeric(c) || c == '+' || c == '-' || c == '.':
				buffer.WriteRune(toLowerASCII(c))
			case c == ':':
				scheme := buffer.String()

				if stateOverride != stateNone {
					if isSpecialScheme(url.scheme) != isSpecialScheme(scheme) {
						return url, nil
					}

					if (url.IncludesCredentials() || url.port != nil) && scheme == "file" {
						return url, nil
					}

					if url.scheme == "file" && url.host != nil && url.host.IsEmpty() {
						return url, nil
					}
				}

				url.scheme = scheme
				buffer.Reset()

				if stateOverride != stateNone {
					if def, ok := defaultPortForScheme(url.scheme); ok && url.port != nil && *url.port == def {
						url.port = nil
					}

					return url, nil
				}

				switch {
				case url.scheme == "file":
					state = stateFile
				case url.IsSpecial() && base != nil && base.scheme == url.scheme:
					state = stateSpecialRelativeOrAuthority
				case url.IsSpecial():
					state = stateSpecialAuthoritySlashes
				case seq.RemainingFrom(seq.Pos()+1) != "" && strings.HasPrefix(seq.RemainingFrom(seq.Pos()+1), "/"):
					state = statePathOrAuthority
					seq.Next()
				default:
					url.opaquePath = true
					url.path = []string{""}
					state = stateOpaquePath
				}
			case stateOverride == stateNone:
				buffer.Reset()
				state = stateNoScheme
				seq.Seek(0)

				continue
			default:
				return nil, p.fail(ErrMissingSchemeNonRelativeURL, input)
			}

		case stateNoScheme:
			switch {
			case base == nil || (base.opaquePath && c != '#'):
				return nil, p.fail(ErrMissingSchemeNonRelativeURL, input)
			case base.opaquePath && c == '#':
				url.scheme = base.scheme
				url.path = base.path
				url.opaquePath = true
				url.query = base.query
				f := ""
				url.fragment = &f
				state = stateFragment
			case base.scheme != "file":
				state = stateRelative
				seq.Seek(seq.Pos() - 1)
			default:
				state = stateFile
				seq.Seek(seq.Pos() - 1)
			}

		case stateSpecialRelativeOrAuthority:
			if c == '/' && strings.HasPrefix(seq.RemainingFrom(seq.Pos()+1), "/") {
				state = stateSpecialAuthorityIgnoreSlashes
				seq.Next()
			} else {
				state = stateRelative
				seq.Seek(seq.Pos() - 1)
			}

		case statePathOrAuthority:
			if c == '/' {
				state = stateAuthority
			} else {
				state = statePath
				seq.Seek(seq.Pos() - 1)
			}

		case stateRelative:
			url.scheme = base.scheme

			switch {
			case c == '/':
				state = stateRelativeSlash
			case url.IsSpecial() && c == '\\':
				if e := p.warn(ErrInvalidReverseSolidus, input); e != nil {
					return nil, e
				}

				state = stateRelativeSlash
			default:
				url.username = base.username
				url.password = base.password
				url.host = base.host
				url.port = base.port
				url.path = append([]string{}, base.path...)
				url.opaquePath = base.opaquePath
				url.query = base.query

				switch c {
				case '?':
					q := ""
					url.query = &q
					state = stateQuery
				case '#':
					f := ""
					url.fragment = &f
					state = stateFragment
				case codepoints.EOF:
					url.query = base.query
				default:
					url.query = nil

					if len(url.path) > 0 {
						url.path = url.path[:len(url.path)-1]
					}

					state = statePath
					seq.Seek(seq.Pos() - 1)
				}
			}

		case stateRelativeSlash:
			switch {
			case url.IsSpecial() && (c == '/' || c == '\\'):
				if c == '\\' {
					if e := p.warn(ErrInvalidReverseSolidus, input); e != nil {
						return nil, e
					}
				}

				state = stateSpecialAuthorityIgnoreSlashes
			case c == '/':
				state = stateAuthority
			default:
				url.username = base.username
				url.password = base.password
				url.host = base.host
				url.port = base.port
				state = statePath
				seq.Seek(seq.Pos() - 1)
			}

		case stateSpecialAuthoritySlashes:
			if c == '/' && seq.RemainingFrom(seq.Pos()+1) != "" && strings.HasPrefix(seq.RemainingFrom(seq.Pos()+1), "/") {
				state = stateSpecialAuthorityIgnoreSlashes
				seq.Next()
			} else {
				state = stateSpecialAuthorityIgnoreSlashes
				seq.Seek(seq.Pos() - 1)
			}

		case stateSpecialAuthorityIgnoreSlashes:
			if c != '/' && c != '\\' {
				state = stateAuthority
				seq.Seek(seq.Pos() - 1)
			}

		case stateAuthority:
			switch {
			case c == '@':
				if e := p.warn(ErrInvalidCredentials, input); e != nil {
					return nil, e
				}

				if atSignSeen {
					buffer2 := "%40" + buffer.String()
					buffer.Reset()
					buffer.WriteString(buffer2)
				}

				atSignSeen = true

				for _, r := range buffer.String() {
					if r == ':' && !passwordTokenSeen {
						passwordTokenSeen = true

						continue
					}

					encoded := percentcodec.EncodeString(string(r), charset.UserinfoEncodeSet)

					if passwordTokenSeen {
						url.password += encoded
					} else {
						url.username += encoded
					}
				}

				buffer.Reset()
			case (c == codepoints.EOF || c == '/' || c == '?' || c == '#') ||
				(url.IsSpecial() && c == '\\'):
				if atSignSeen && buffer.Len() == 0 {
					return nil, p.fail(ErrHostMissing, input)
				}

				seq.Seek(seq.Pos() - utf8.RuneCountInString(buffer.String()) - 1)
				buffer.Reset()
				state = stateHost
			default:
				buffer.WriteRune(c)
			}

		case stateHost, stateHostname:
			switch {
			case stateOverride != stateNone && url.scheme == "file":
				state = stateFileHost
				seq.Seek(seq.Pos() - 1)
			case c == ':' && !insideBrackets:
				if buffer.Len() == 0 {
					return nil, p.fail(ErrHostMissing, input)
				}

				h, err := parseHost(buffer.String(), !url.IsSpecial(), p.sink)
				if err != nil {
					return nil, err
				}

				url.host = &h
				buffer.Reset()
				state = statePort

				if stateOverride == stateHostname {
					return url, nil
				}
			case (c == codepoints.EOF || c == '/' || c == '?' || c == '#') || (url.IsSpecial() && c == '\\'):
				seq.Seek(seq.Pos() - 1)

				if url.IsSpecial() && buffer.Len() == 0 {
					return nil, p.fail(ErrHostMissing, input)
				}

				if stateOverride != stateNone && buffer.Len() == 0 && (url.IncludesCredentials() || url.port != nil) {
					return url, nil
				}

				h, err := parseHost(buffer.String(), !url.IsSpecial(), p.sink)
				if err != nil {
					return nil, err
				}

				url.host = &h
				buffer.Reset()
				state = statePathStart

				if stateOverride != stateNone {
					return url, nil
				}
			default:
				if c == '[' {
					insideBrackets = true
				} else if c == ']' {
					insideBrackets = false
				}

				buffer.WriteRune(c)
			}

		case statePort:
			switch {
			case charset.IsASCIIDigit(c):
				buffer.WriteRune(c)
			case (c == codepoints.EOF || c == '/' || c == '?' || c == '#') ||
				(url.IsSpecial() && c == '\\') || stateOverride != stateNone:
				if buffer.Len() > 0 {
					portNum, perr := strconv.Atoi(buffer.String())
					if perr != nil || portNum > 65535 {
						return nil, p.fail(ErrPortOutOfRange, input)
					}

					url.port = &portNum
					url.cleanDefaultPort()
					buffer.Reset()
				}

				if stateOverride != stateNone {
					return url, nil
				}

				state = statePathStart
				seq.Seek(seq.Pos() - 1)
			default:
				return nil, p.fail(ErrPortInvalid, input)
			}

		case stateFile:
			url.scheme = "file"
			url.host = nil

			switch {
			case c == '/' || c == '\\':
				if c == '\\' {
					if e := p.warn(ErrInvalidReverseSolidus, input); e != nil {
						return nil, e
					}
				}

				state = stateFileSlash
			case base != nil && base.scheme == "file":
				url.host = base.host
				url.path = append([]string{}, base.path...)
				url.query = base.query

				switch c {
				case '?':
					q := ""
					url.query = &q
					state = stateQuery
				case '#':
					f := ""
					url.fragment = &f
					state = stateFragment
				case codepoints.EOF:
				default:
					url.query = nil

					if !startsWithAWindowsDriveLetter(seq.RemainingFrom(seq.Pos())) {
						if len(url.path) > 0 {
							url.path = url.path[:len(url.path)-1]
						}
					} else {
						url.path = nil
					}

					state = statePath
					seq.Seek(seq.Pos() - 1)
				}
			default:
				state = statePath
				seq.Seek(seq.Pos() - 1)
			}

		case stateFileSlash:
			switch {
			case c == '/' || c == '\\':
				if c == '\\' {
					if e := p.warn(ErrInvalidReverseSolidus, input); e != nil {
						return nil, e
					}
				}

				state = stateFileHost
			default:
				if base != nil && base.scheme == "file" {
					url.host = base.host

					if !startsWithAWindowsDriveLetter(seq.RemainingFrom(seq.Pos())) && len(base.path) > 0 && isNormalizedWindowsDriveLetter(base.path[0]) {
						url.path = append(url.path, base.path[0])
					}
				}

				state = statePath
				seq.Seek(seq.Pos() - 1)
			}

		case stateFileHost:
			switch {
			case c == codepoints.EOF || c == '/' || c == '\\' || c == '?' || c == '#':
				seq.Seek(seq.Pos() - 1)

				if isWindowsDriveLetter(buffer.String()) {
					if e := p.warn(ErrFileInvalidWindowsDriveLetterHost, input); e != nil {
						return nil, e
					}

					state = statePath
				} else if buffer.Len() == 0 {
					h := emptyHost()
					url.host = &h

					if stateOverride != stateNone {
						return url, nil
					}

					state = statePathStart
				} else {
					h, err := parseHost(buffer.String(), false, p.sink)
					if err != nil {
						return nil, err
					}

					if h.String() == "localhost" {
						h = emptyHost()
					}

					url.host = &h

					if stateOverride != stateNone {
						return url, nil
					}

					buffer.Reset()
					state = statePathStart
				}
			default:
				buffer.WriteRune(c)
			}

		case statePathStart:
			switch {
			case url.IsSpecial():
				if c == '\\' {
					if e := p.warn(ErrInvalidReverseSolidus, input); e != nil {
						return nil, e
					}
				}

				state = statePath

				if c != '/' && c != '\\' {
					seq.Seek(seq.Pos() - 1)
				}
			case stateOverride == stateNone && c == '?':
				q := ""
				url.query = &q
				state = stateQuery
			case stateOverride == stateNone && c == '#':
				f := ""
				url.fragment = &f
				state = stateFragment
			case c != codepoints.EOF:
				state = statePath

				if c != '/' {
					seq.Seek(seq.Pos() - 1)
				}
			default:
				if stateOverride != stateNone && url.host == nil {
					url.path = append(url.path, "")
				}
			}

		case statePath:
			switch {
			case c == codepoints.EOF || c == '/' ||
				(url.IsSpecial() && c == '\\') ||
				(stateOverride == stateNone && (c == '?' || c == '#')):
				if url.IsSpecial() && c == '\\' {
					if e := p.warn(ErrInvalidReverseSolidus, input); e != nil {
						return nil, e
					}
				}

				segment := buffer.String()

				switch {
				case isDoubleDotPathSegment(segment):
					url.ShortenPath()

					if c != '/' && !(url.IsSpecial() && c == '\\') {
						url.path = append(url.path, "")
					}
				case isSingleDotPathSegment(segment):
					if c != '/' && !(url.IsSpecial() && c == '\\') {
						url.path = append(url.path, "")
					}
				default:
					if url.scheme == "file" && len(url.path) == 0 && isWindowsDriveLetter(segment) {
						segment = string(segment[0]) + ":"
					}

					url.path = append(url.path, segment)
				}

				buffer.Reset()

				switch c {
				case '?':
					q := ""
					url.query = &q
					state = stateQuery
				case '#':
					f := ""
					url.fragment = &f
					state = stateFragment
				}
			default:
				if !charset.IsURLCodePoint(c) && c != '%' {
					if e := p.warn(ErrInvalidURLUnit, input); e != nil {
						return nil, e
					}
				}

				buffer.WriteString(percentcodec.EncodeString(string(c), charset.PathEncodeSet))
			}

		case stateOpaquePath:
			switch c {
			case '?':
				q := ""
				url.query = &q
				state = stateQuery
			case '#':
				f := ""
				url.fragment = &f
				state = stateFragment
			case codepoints.EOF:
			default:
				if !charset.IsURLCodePoint(c) && c != '%' {
					if e := p.warn(ErrInvalidURLUnit, input); e != nil {
						return nil, e
					}
				}

				if len(url.path) == 0 {
					url.path = []string{""}
				}

				url.path[0] += percentcodec.EncodeString(string(c), charset.C0ControlEncodeSet)
			}

		case stateQuery:
			set := charset.QueryEncodeSet
			if url.IsSpecial() {
				set = charset.SpecialQueryEncodeSet
			}

			switch c {
			case '#':
				f := ""
				url.fragment = &f
				state = stateFragment
			case codepoints.EOF:
			default:
				if !charset.IsURLCodePoint(c) && c != '%' {
					if e := p.warn(ErrInvalidURLUnit, input); e != nil {
						return nil, e
					}
				}

				*url.query += percentcodec.EncodeString(string(c), set)
			}

		case stateFragment:
			switch c {
			case codepoints.EOF:
			default:
				if !charset.IsURLCodePoint(c) && c != '%' {
					if e := p.warn(ErrInvalidURLUnit, input); e != nil {
						return nil, e
					}
				}

				*url.fragment += percentcodec.EncodeString(string(c), charset.FragmentEncodeSet)
			}
		}

		if seq.Pos() >= seq.Len() {
			break
		}

		seq.Next()
	}

	return url, nil
}

func toLowerASCII(r rune) rune {
	if r >= 'A' && r <= 'Z' {
		return r + ('a' - 'A')
	}

	return r
}

func stripLeadingTrailingC0ControlOrSpace(input string, p *Parser) string {
	trimmed := strings.TrimFunc(input, func(r rune) bool { return charset.IsC0ControlOrSpace(r) })

	if trimmed != input {
		_ = p.warn(ErrInvalidURLUnit, input)
	}

	return trimmed
}

func removeTabsAndNewlines(input string) string {
	if !strings.ContainsAny(input, "\t\n\r") {
		return input
	}

	var b strings.Builder

	b.Grow(len(input))

	for _, r := range input {
		if !charset.IsASCIITabOrNewline(r) {
			b.WriteRune(r)
		}
	}

	return b.String()
}

func isSingleDotPathSegment(s string) bool {
	return s == "." || strings.EqualFold(s, "%2e")
}

func isDoubleDotPathSegment(s string) bool {
	switch strings.ToLower(s) {
	case "..", ".%2e", "%2e.", "%2e%2e":
		return true
	default:
		return false
	}
}

package url

import (
	"strconv"
	"strings"
)

// specialSchemePorts lists the schemes the URL Standard calls "special",
// along with their default port. A scheme mapped to -1 (file) has no
// default port at all.
var specialSchemePorts = map[string]int{
	"ftp":   21,
	"file":  -1,
	"http":  80,
	"https": 443,
	"ws":    80,
	"wss":   443,
}

func isSpecialScheme(scheme string) bool {
	_, ok := specialSchemePorts[scheme]

	return ok
}

func defaultPortForScheme(scheme string) (port int, hasDefault bool) {
	p, ok := specialSchemePorts[scheme]
	if !ok || p == -1 {
		return 0, false
	}

	return p, true
}

// URL is the parsed record defined by the URL Standard: a scheme plus
// the components that make up its special-scheme or opaque-path form.
type URL struct {
	scheme        string
	username      string
	password      string
	host          *Host
	port          *int
	path          []string
	opaquePath    bool
	query         *string
	fragment      *string
	cannotBeABase bool

	searchParams *URLSearchParams
}

// IsSpecial reports whether u.scheme is one of the special schemes.
func (u *URL) IsSpecial() bool {
	return isSpecialScheme(u.scheme)
}

// HasOpaquePath reports whether u's path is a single opaque string
// rather than a list of path segments, per the URL record's definition.
func (u *URL) HasOpaquePath() bool {
	return u.opaquePath
}

// IncludesCredentials reports whether u carries a non-empty username or
// password.
func (u *URL) IncludesCredentials() bool {
	return u.username != "" || u.password != ""
}

// cleanDefaultPort clears Port when it matches the scheme's default,
// keeping the record's invariant that a default port is never stored.
func (u *URL) cleanDefaultPort() {
	if u.port == nil {
		return
	}

	if def, ok := defaultPortForScheme(u.scheme); ok && *u.port == def {
		u.port = nil
	}
}

// Equal implements the URL equivalence algorithm, optionally excluding
// fragments from the comparison.
func (u *URL) Equal(other *URL, excludeFragments bool) bool {
	if u.Serialize(true) != other.Serialize(true) {
		return false
	}

	if excludeFragments {
		return true
	}

	af, bf := "", ""

	if u.fragment != nil {
		af = *u.fragment
	}

	if other.fragment != nil {
		bf = *other.fragment
	}

	return af == bf
}

// ShortenPath implements the "shorten a path" operation used when
// processing ".." segments: it pops the last segment, except that a
// file URL whose sole segment is a normalized Windows drive letter is
// left untouched.
func (u *URL) ShortenPath() {
	if len(u.path) == 0 {
		return
	}

	if u.scheme == "file" && len(u.path) == 1 && isNormalizedWindowsDriveLetter(u.path[0]) {
		return
	}

	u.path = u.path[:len(u.path)-1]
}

// SerializePath implements the URL path serializer.
func (u *URL) SerializePath() string {
	if u.opaquePath {
		if len(u.path) == 0 {
			return ""
		}

		return u.path[0]
	}

	var b strings.Builder

	for _, segment := range u.path {
		b.WriteByte('/')
		b.WriteString(segment)
	}

	return b.String()
}

// Serialize implements the URL serializer.
func (u *URL) Serialize(excludeFragment bool) string {
	var b strings.Builder

	b.WriteString(u.scheme)
	b.WriteByte(':')

	if u.host != nil {
		b.WriteString("//")

		if u.IncludesCredentials() {
			b.WriteString(u.username)

			if u.password != "" {
				b.WriteByte(':')
				b.WriteString(u.password)
			}

			b.WriteByte('@')
		}

		b.WriteString(u.host.String())

		if u.port != nil {
			b.WriteByte(':')
			b.WriteString(strconv.Itoa(*u.port))
		}
	} else if !u.opaquePath && len(u.path) > 1 && u.path[0] == "" {
		// A path-absolute URL with no host needs a leading "/." inserted so
		// it does not get mistaken for one carrying an authority component.
		b.WriteString("/.")
	}

	b.WriteString(u.SerializePath())

	if u.query != nil {
		b.WriteByte('?')
		b.WriteString(*u.query)
	}

	if !excludeFragment && u.fragment != nil {
		b.WriteByte('#')
		b.WriteString(*u.fragment)
	}

	return b.String()
}

// Origin implements the URL's origin per the HTML Standard's tuple
// origin concept, reduced to its serialized form: "scheme://host[:port]"
// for special schemes other than file, and "null" otherwise.
func (u *URL) Origin() string {
	if u.scheme == "file" || !u.IsSpecial() {
		return "null"
	}

	if u.host == nil {
		return "null"
	}

	var b strings.Builder

	b.WriteString(u.scheme)
	b.WriteString("://")
	b.WriteString(u.host.String())

	if u.port != nil {
		b.WriteByte(':')
		b.WriteString(strconv.Itoa(*u.port))
	}

	return b.String()
}

func isWindowsDriveLetter(s string) bool {
	return len(s) == 2 && isASCIIAlphaByte(s[0]) && (s[1] == ':' || s[1] == '|')
}

func isNormalizedWindowsDriveLetter(s string) bool {
	return len(s) == 2 && isASCIIAlphaByte(s[0]) && s[1] == ':'
}

func startsWithAWindowsDriveLetter(s string) bool {
	if len(s) < 2 || !isWindowsDriveLetter(s[:2]) {
		return false
	}

	return len(s) == 2 || s[2] == '/' || s[2] == '\\' || s[2] == '?' || s[2] == '#'
}

func isASCIIAlphaByte(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

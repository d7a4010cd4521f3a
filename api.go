package url

import (
	"strconv"

	"github.com/corewhatwg/url/internal/charset"
	"github.com/corewhatwg/url/internal/percentcodec"
)

// Href returns the full serialization of the URL.
func (u *URL) Href() string {
	return u.Serialize(false)
}

// SetHref reparses href in place, replacing every component of u.
func (u *URL) SetHref(href string) error {
	parsed, err := defaultParser.Parse(href, nil)
	if err != nil {
		return err
	}

	*u = *parsed
	u.initSearchParams()

	return nil
}

// Protocol returns the scheme followed by ":".
func (u *URL) Protocol() string {
	return u.scheme + ":"
}

// SetProtocol reparses the scheme portion of u using the scheme start
// state.
func (u *URL) SetProtocol(protocol string) error {
	_, err := defaultParser.basicParse(protocol+":", nil, u, stateSchemeStart)

	return err
}

// Username returns the username component.
func (u *URL) Username() string {
	return u.username
}

// SetUsername sets the username component, percent-encoding as needed.
func (u *URL) SetUsername(username string) {
	if u.host == nil || u.host.IsEmpty() || u.scheme == "file" {
		return
	}

	u.username = encodeUserinfoComponent(username)
}

// Password returns the password component.
func (u *URL) Password() string {
	return u.password
}

// SetPassword sets the password component, percent-encoding as needed.
func (u *URL) SetPassword(password string) {
	if u.host == nil || u.host.IsEmpty() || u.scheme == "file" {
		return
	}

	u.password = encodeUserinfoComponent(password)
}

// Host returns "host[:port]", or "" if u has no host.
func (u *URL) Host() string {
	if u.host == nil {
		return ""
	}

	h := u.host.String()

	if u.port != nil {
		h += ":" + strconv.Itoa(*u.port)
	}

	return h
}

// SetHost reparses value as "host[:port]" using the host state.
func (u *URL) SetHost(value string) error {
	if u.opaquePath {
		return nil
	}

	_, err := defaultParser.basicParse(value, nil, u, stateHost)

	return err
}

// Hostname returns the host without any port.
func (u *URL) Hostname() string {
	if u.host == nil {
		return ""
	}

	return u.host.String()
}

// SetHostname reparses value using the hostname state, leaving the port
// untouched.
func (u *URL) SetHostname(value string) error {
	if u.opaquePath {
		return nil
	}

	_, err := defaultParser.basicParse(value, nil, u, stateHostname)

	return err
}

// Port returns the port as a string, or "" if it is unset.
func (u *URL) Port() string {
	if u.port == nil {
		return ""
	}

	return strconv.Itoa(*u.port)
}

// SetPort reparses value using the port state.
func (u *URL) SetPort(value string) error {
	if u.host == nil || u.host.IsEmpty() || u.scheme == "file" {
		return nil
	}

	if value == "" {
		u.port = nil

		return nil
	}

	_, err := defaultParser.basicParse(value, nil, u, statePort)

	return err
}

// Pathname returns the serialized path.
func (u *URL) Pathname() string {
	return u.SerializePath()
}

// SetPathname reparses value using the path-start state.
func (u *URL) SetPathname(value string) error {
	if u.opaquePath {
		return nil
	}

	u.path = nil
	_, err := defaultParser.basicParse(value, nil, u, statePathStart)

	return err
}

// Search returns the query including its leading "?", or "" if unset
// or empty.
func (u *URL) Search() string {
	if u.query == nil || *u.query == "" {
		return ""
	}

	return "?" + *u.query
}

// SetSearch reparses value (with or without a leading "?") using the
// query state and resynchronizes the attached URLSearchParams.
func (u *URL) SetSearch(value string) {
	if value == "" {
		u.query = nil
		u.syncSearchParamsFromQuery()

		return
	}

	if value[0] == '?' {
		value = value[1:]
	}

	q := ""
	u.query = &q

	_, _ = defaultParser.basicParse(value, nil, u, stateQuery)
	u.syncSearchParamsFromQuery()
}

// Hash returns the fragment including its leading "#", or "" if unset
// or empty.
func (u *URL) Hash() string {
	if u.fragment == nil || *u.fragment == "" {
		return ""
	}

	return "#" + *u.fragment
}

// SetHash reparses value (with or without a leading "#") using the
// fragment state.
func (u *URL) SetHash(value string) {
	if value == "" {
		u.fragment = nil

		return
	}

	if value[0] == '#' {
		value = value[1:]
	}

	f := ""
	u.fragment = &f

	_, _ = defaultParser.basicParse(value, nil, u, stateFragment)
}

// SearchParams returns the URLSearchParams view of the query string,
// lazily attaching one on first access.
func (u *URL) SearchParams() *URLSearchParams {
	u.ensureSearchParams()

	return u.searchParams
}

// PublicSuffix returns the public suffix of u's host, e.g. "co.uk" for
// "https://www.example.co.uk/". ok is false when u has no domain host.
func (u *URL) PublicSuffix() (suffix string, ok bool) {
	if u.host == nil {
		return "", false
	}

	return u.host.PublicSuffix()
}

// RegistrableDomain returns the registrable domain of u's host, e.g.
// "example.co.uk" for "https://www.example.co.uk/". ok is false when u
// has no domain host, or that domain is itself a public suffix.
func (u *URL) RegistrableDomain() (domain string, ok bool) {
	if u.host == nil {
		return "", false
	}

	return u.host.RegistrableDomain()
}

func encodeUserinfoComponent(s string) string {
	return percentcodec.EncodeString(s, charset.UserinfoEncodeSet)
}

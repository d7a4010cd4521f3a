package url

import (
	"sort"
	"strings"

	"github.com/corewhatwg/url/internal/charset"
	"github.com/corewhatwg/url/internal/percentcodec"
)

// urlParam is a single name/value pair of a URLSearchParams list.
type urlParam struct {
	key   string
	value string
}

// URLSearchParams is a live view over a URL's query string, mirroring
// the URLSearchParams interface: mutating it updates the owning URL's
// query, and reparsing the URL's query updates it back.
type URLSearchParams struct {
	entries []urlParam
	owner   *URL
}

// NewURLSearchParams parses init (a query string with or without a
// leading "?") into a standalone URLSearchParams with no owning URL.
func NewURLSearchParams(init string) *URLSearchParams {
	init = strings.TrimPrefix(init, "?")

	return &URLSearchParams{entries: parseFormEncoded(init)}
}

// NewURLSearchParamsFromEntries builds a URLSearchParams from an
// explicit ordered list of key/value pairs.
func NewURLSearchParamsFromEntries(pairs [][2]string) *URLSearchParams {
	entries := make([]urlParam, 0, len(pairs))

	for _, kv := range pairs {
		entries = append(entries, urlParam{key: kv[0], value: kv[1]})
	}

	return &URLSearchParams{entries: entries}
}

func (u *URL) initSearchParams() {
	query := ""
	if u.query != nil {
		query = *u.query
	}

	u.searchParams = &URLSearchParams{entries: parseFormEncoded(query), owner: u}
}

func (u *URL) ensureSearchParams() {
	if u.searchParams == nil {
		u.initSearchParams()

		return
	}

	u.searchParams.owner = u
}

// syncSearchParamsFromQuery rebuilds the attached URLSearchParams after
// u.query has been replaced directly (e.g. via SetSearch).
func (u *URL) syncSearchParamsFromQuery() {
	if u.searchParams == nil {
		return
	}

	query := ""
	if u.query != nil {
		query = *u.query
	}

	u.searchParams.entries = parseFormEncoded(query)
}

// syncQueryFromSearchParams serializes the entry list back into the
// owning URL's query, the inverse of syncSearchParamsFromQuery. It is
// the only path by which mutating the params object changes the URL.
func (p *URLSearchParams) syncQueryFromSearchParams() {
	if p.owner == nil {
		return
	}

	serialized := p.String()

	if serialized == "" {
		p.owner.query = nil

		return
	}

	p.owner.query = &serialized
}

// Append adds a new key/value pair without removing existing ones.
func (p *URLSearchParams) Append(key, value string) {
	p.entries = append(p.entries, urlParam{key: key, value: value})
	p.syncQueryFromSearchParams()
}

// Delete removes every entry matching key, or matching key and value
// when value is non-nil.
func (p *URLSearchParams) Delete(key string, value *string) {
	out := p.entries[:0]

	for _, e := range p.entries {
		if e.key == key && (value == nil || e.value == *value) {
			continue
		}

		out = append(out, e)
	}

	p.entries = out
	p.syncQueryFromSearchParams()
}

// Get returns the value of the first entry matching key.
func (p *URLSearchParams) Get(key string) (string, bool) {
	for _, e := range p.entries {
		if e.key == key {
			return e.value, true
		}
	}

	return "", false
}

// GetAll returns the values of every entry matching key, in order.
func (p *URLSearchParams) GetAll(key string) []string {
	var values []string

	for _, e := range p.entries {
		if e.key == key {
			values = append(values, e.value)
		}
	}

	return values
}

// Has reports whether any entry matches key, or matches key and value
// when value is non-nil.
func (p *URLSearchParams) Has(key string, value *string) bool {
	for _, e := range p.entries {
		if e.key == key && (value == nil || e.value == *value) {
			return true
		}
	}

	return false
}

// Set replaces every entry matching key with a single key/value entry,
// inserted at the position of the first match, or appended if key is
// not present.
func (p *URLSearchParams) Set(key, value string) {
	found := false
	out := p.entries[:0]

	for _, e := range p.entries {
		if e.key != key {
			out = append(out, e)

			continue
		}

		if !found {
			out = append(out, urlParam{key: key, value: value})

			found = true
		}
	}

	if !found {
		out = append(out, urlParam{key: key, value: value})
	}

	p.entries = out
	p.syncQueryFromSearchParams()
}

// Size returns the number of entries.
func (p *URLSearchParams) Size() int {
	return len(p.entries)
}

// Sort stably reorders entries by key, comparing by UTF-16 code unit as
// the URL Standard requires.
func (p *URLSearchParams) Sort() {
	sort.SliceStable(p.entries, func(i, j int) bool {
		return compareByCodeUnits(p.entries[i].key, p.entries[j].key) < 0
	})

	p.syncQueryFromSearchParams()
}

// ForEach visits every entry in order.
func (p *URLSearchParams) ForEach(fn func(key, value string)) {
	for _, e := range p.entries {
		fn(e.key, e.value)
	}
}

// Keys returns the keys of every entry, in order, including duplicates.
func (p *URLSearchParams) Keys() []string {
	keys := make([]string, len(p.entries))

	for i, e := range p.entries {
		keys[i] = e.key
	}

	return keys
}

// Values returns the values of every entry, in order.
func (p *URLSearchParams) Values() []string {
	values := make([]string, len(p.entries))

	for i, e := range p.entries {
		values[i] = e.value
	}

	return values
}

// Entries returns every key/value pair, in order.
func (p *URLSearchParams) Entries() [][2]string {
	out := make([][2]string, len(p.entries))

	for i, e := range p.entries {
		out[i] = [2]string{e.key, e.value}
	}

	return out
}

// String serializes the entry list using the application/x-www-form-urlencoded
// serializer: pairs joined by "&", keys and values joined by "=".
func (p *URLSearchParams) String() string {
	var b strings.Builder

	for i, e := range p.entries {
		if i != 0 {
			b.WriteByte('&')
		}

		b.WriteString(formEncode(e.key))
		b.WriteByte('=')
		b.WriteString(formEncode(e.value))
	}

	return b.String()
}

// parseFormEncoded implements the application/x-www-form-urlencoded
// parser.
func parseFormEncoded(input string) []urlParam {
	if input == "" {
		return nil
	}

	var entries []urlParam

	for _, pair := range strings.Split(input, "&") {
		if pair == "" {
			continue
		}

		name, value, hasValue := strings.Cut(pair, "=")

		name = formDecode(name)

		if hasValue {
			value = formDecode(value)
		} else {
			value = ""
		}

		entries = append(entries, urlParam{key: name, value: value})
	}

	return entries
}

// formDecode reverses formEncode: "+" becomes space, then the rest is
// percent-decoded.
func formDecode(s string) string {
	s = strings.ReplaceAll(s, "+", " ")

	return percentcodec.DecodeString(s)
}

// formEncode implements the application/x-www-form-urlencoded byte
// serializer: spaces become "+", everything else not in the unreserved
// set is percent-encoded.
func formEncode(s string) string {
	encoded := percentcodec.EncodeString(s, charset.ApplicationFormEncodeSet)

	return strings.ReplaceAll(encoded, "%20", "+")
}

// compareByCodeUnits compares a and b the way JavaScript string
// comparison does: by UTF-16 code unit rather than by UTF-8 byte or by
// rune, so that characters outside the Basic Multilingual Plane compare
// via their surrogate pairs.
func compareByCodeUnits(a, b string) int {
	au, bu := runeToCodeUnits(a), runeToCodeUnits(b)

	for i := 0; i < len(au) && i < len(bu); i++ {
		if au[i] != bu[i] {
			if au[i] < bu[i] {
				return -1
			}

			return 1
		}
	}

	switch {
	case len(au) < len(bu):
		return -1
	case len(au) > len(bu):
		return 1
	default:
		return 0
	}
}

// runeToCodeUnits converts s into the sequence of UTF-16 code units its
// runes would occupy, encoding any rune beyond the Basic Multilingual
// Plane as a surrogate pair.
func runeToCodeUnits(s string) []uint16 {
	units := make([]uint16, 0, len(s))

	for _, r := range s {
		if r <= 0xFFFF {
			units = append(units, uint16(r))

			continue
		}

		r -= 0x10000
		units = append(units, uint16(0xD800+(r>>10)), uint16(0xDC00+(r&0x3FF)))
	}

	return units
}

package url

import (
	"errors"
	"strings"

	"github.com/corewhatwg/url/internal/idnahost"
	"github.com/corewhatwg/url/internal/ipv4"
	"github.com/corewhatwg/url/internal/ipv6"
	"github.com/corewhatwg/url/internal/percentcodec"
	"github.com/corewhatwg/url/internal/registrabledomain"

	"github.com/corewhatwg/url/internal/charset"
)

// hostKind identifies which variant of the host record a Host holds.
type hostKind int

const (
	hostKindDomain hostKind = iota
	hostKindIPv4
	hostKindIPv6
	hostKindOpaque
	hostKindEmpty
)

// Host is the parsed form of a URL's host, one of: a domain, an IPv4
// address, an IPv6 address, an opaque host string, or the empty host.
type Host struct {
	kind   hostKind
	domain string
	ipv4   uint32
	ipv6   [8]uint16
	opaque string
}

// IsEmpty reports whether h is the empty host.
func (h Host) IsEmpty() bool {
	return h.kind == hostKindEmpty
}

// IsDomain reports whether h holds a domain.
func (h Host) IsDomain() bool {
	return h.kind == hostKindDomain
}

// String serializes h per the host serializer algorithm.
func (h Host) String() string {
	switch h.kind {
	case hostKindDomain, hostKindOpaque:
		return h.value()
	case hostKindIPv4:
		return ipv4.Serialize(h.ipv4)
	case hostKindIPv6:
		return "[" + ipv6.Serialize(h.ipv6) + "]"
	default:
		return ""
	}
}

func (h Host) value() string {
	if h.kind == hostKindDomain {
		return h.domain
	}

	return h.opaque
}

// PublicSuffix returns h's public suffix per the Public Suffix List, e.g.
// "co.uk" for the domain "www.example.co.uk". ok is false for any host
// that is not a domain.
func (h Host) PublicSuffix() (suffix string, ok bool) {
	if !h.IsDomain() {
		return "", false
	}

	suffix, _ = registrabledomain.PublicSuffix(h.domain)

	return suffix, suffix != ""
}

// RegistrableDomain returns h's registrable domain, e.g.
// "example.co.uk" for the domain "www.example.co.uk". ok is false for
// any host that is not a domain, or whose domain is itself a public
// suffix with no label above it.
func (h Host) RegistrableDomain() (domain string, ok bool) {
	if !h.IsDomain() {
		return "", false
	}

	return registrabledomain.RegistrableDomain(h.domain)
}

func newDomainHost(s string) Host   { return Host{kind: hostKindDomain, domain: s} }
func newOpaqueHost(s string) Host   { return Host{kind: hostKindOpaque, opaque: s} }
func newIPv4Host(addr uint32) Host  { return Host{kind: hostKindIPv4, ipv4: addr} }
func newIPv6Host(p [8]uint16) Host  { return Host{kind: hostKindIPv6, ipv6: p} }
func emptyHost() Host               { return Host{kind: hostKindEmpty} }

// parseHost implements the host parser: https://url.spec.whatwg.org/#host-parsing
// isOpaque is true when the URL's scheme is not special, in which case
// the host is parsed as an opaque host rather than a domain.
func parseHost(input string, isOpaque bool, sink WarningSink) (Host, error) {
	if sink == nil {
		sink = noopWarningSink
	}

	if strings.HasPrefix(input, "[") {
		if !strings.HasSuffix(input, "]") {
			sink(ErrIPv6Unclosed, input)

			return Host{}, newParseError(ErrIPv6Unclosed, input)
		}

		pieces, err := ipv6.Parse(input[1 : len(input)-1])
		if err != nil {
			sink(ErrIPv6InvalidCodePoint, input)

			return Host{}, newParseError(ErrIPv6InvalidCodePoint, input)
		}

		return newIPv6Host(pieces), nil
	}

	if isOpaque {
		return parseOpaqueHost(input, sink)
	}

	if input == "" {
		return emptyHost(), nil
	}

	domain := percentcodec.DecodeString(input)

	// This branch is only reached for special schemes (the non-special
	// case is handled by parseOpaqueHost above), so "beStrict" - which the
	// host parser defines as isNotSpecial - is always false here.
	ascii, err := idnahost.ToASCII(domain, false)
	if err != nil {
		sink(ErrDomainToASCII, input)

		return Host{}, newParseError(ErrDomainToASCII, input)
	}

	for _, r := range ascii {
		if charset.IsForbiddenDomainCodePoint(r) {
			sink(ErrHostInvalidCodePoint, input)

			return Host{}, newParseError(ErrHostInvalidCodePoint, input)
		}
	}

	if endsInANumber(ascii) {
		addr, warnings, perr := ipv4.Parse(ascii)

		for _, w := range warnings {
			switch w {
			case ipv4.WarningEmptyPart:
				sink(ErrIPv4EmptyPart, input)
			case ipv4.WarningNonDecimalPart:
				sink(ErrIPv4NonDecimalPart, input)
			}
		}

		if perr != nil {
			code := ErrIPv4OutOfRangePart

			var failure *ipv4.ParseFailure
			if errors.As(perr, &failure) {
				switch failure.Kind {
				case ipv4.FailureTooManyParts:
					code = ErrIPv4TooManyParts
				case ipv4.FailureNonNumericPart:
					code = ErrIPv4NonNumericPart
				case ipv4.FailureOutOfRangePart:
					code = ErrIPv4OutOfRangePart
				}
			}

			sink(code, input)

			return Host{}, newParseError(code, input)
		}

		return newIPv4Host(addr), nil
	}

	return newDomainHost(ascii), nil
}

// parseOpaqueHost implements the opaque-host parser for non-special
// schemes: forbidden code points fail parsing, everything else is
// percent-encoded with the C0 control set.
func parseOpaqueHost(input string, sink WarningSink) (Host, error) {
	for _, r := range input {
		if charset.IsForbiddenHostCodePoint(r) && r != '%' {
			sink(ErrHostInvalidCodePoint, input)

			return Host{}, newParseError(ErrHostInvalidCodePoint, input)
		}
	}

	return newOpaqueHost(percentcodec.EncodeString(input, charset.C0ControlEncodeSet)), nil
}

// endsInANumber implements the "ends in a number" check used to decide
// whether an ASCII domain should instead be parsed as an IPv4 address.
func endsInANumber(domain string) bool {
	parts := strings.Split(domain, ".")

	if len(parts) > 0 && parts[len(parts)-1] == "" {
		parts = parts[:len(parts)-1]
	}

	if len(parts) == 0 {
		return false
	}

	last := parts[len(parts)-1]

	if last == "" {
		return false
	}

	if isAllASCIIDigits(last) {
		return true
	}

	rest := last

	if strings.HasPrefix(rest, "0x") || strings.HasPrefix(rest, "0X") {
		rest = rest[2:]

		if rest == "" {
			return true
		}

		return isAllASCIIHex(rest)
	}

	return false
}

func isAllASCIIDigits(s string) bool {
	if s == "" {
		return false
	}

	for _, r := range s {
		if !charset.IsASCIIDigit(r) {
			return false
		}
	}

	return true
}

func isAllASCIIHex(s string) bool {
	for _, r := range s {
		if !charset.IsASCIIHexDigit(r) {
			return false
		}
	}

	return true
}

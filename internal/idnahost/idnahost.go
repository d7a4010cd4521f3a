// Package idnahost adapts the domain-to-ASCII and domain-to-Unicode
// operations used by host parsing onto golang.org/x/net/idna.
package idnahost

import (
	"errors"

	"golang.org/x/net/idna"
)

// ErrDomainToASCII is returned when domain-to-ASCII processing fails or
// produces an empty result.
var ErrDomainToASCII = errors.New("idnahost: domain to ASCII conversion failed")

var (
	lookupProfile = idna.New(
		idna.MapForLookup(),
		idna.StrictDomainName(false),
		idna.BidiRule(),
		idna.Transitional(false),
	)

	strictLookupProfile = idna.New(
		idna.MapForLookup(),
		idna.BidiRule(),
		idna.Transitional(false),
		idna.ValidateLabels(true),
		idna.VerifyDNSLength(true),
		idna.StrictDomainName(true),
	)
)

// ToASCII runs the domain-to-ASCII algorithm over domain. Both profiles
// apply the lookup mapping with hyphen and joiner label validation. When
// beStrict is true, STD3 ASCII rules and DNS length limits are enforced as
// well; when it is false, characters such as a space pass through and are
// left for the caller's forbidden-code-point check.
func ToASCII(domain string, beStrict bool) (string, error) {
	profile := lookupProfile
	if beStrict {
		profile = strictLookupProfile
	}

	ascii, err := profile.ToASCII(domain)
	if err != nil {
		return "", ErrDomainToASCII
	}

	if ascii == "" {
		return "", ErrDomainToASCII
	}

	return ascii, nil
}

// ToUnicode runs the domain-to-Unicode algorithm over domain. Unlike
// ToASCII, failure never aborts the caller: the partially mapped result is
// always returned, with validation errors surfaced only as a boolean.
func ToUnicode(domain string) (unicode string, hadErrors bool) {
	unicode, err := lookupProfile.ToUnicode(domain)

	return unicode, err != nil
}

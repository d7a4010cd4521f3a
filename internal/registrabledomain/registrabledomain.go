// Package registrabledomain looks up the public suffix and registrable
// domain of a domain string, backed by the Public Suffix List.
package registrabledomain

import "golang.org/x/net/publicsuffix"

// PublicSuffix returns the public suffix of domain, e.g. "co.uk" for
// "www.example.co.uk", and whether that suffix is found in the ICANN
// managed section of the list rather than the private section.
func PublicSuffix(domain string) (suffix string, icann bool) {
	suffix, icann = publicsuffix.PublicSuffix(domain)

	return suffix, icann
}

// RegistrableDomain returns the registrable domain of domain, e.g.
// "example.co.uk" for "www.example.co.uk": the public suffix plus the
// one label directly above it. ok is false when domain is itself a
// public suffix, or equal to it, so no registrable domain exists.
func RegistrableDomain(domain string) (registrable string, ok bool) {
	etld1, err := publicsuffix.EffectiveTLDPlusOne(domain)
	if err != nil {
		return "", false
	}

	return etld1, true
}

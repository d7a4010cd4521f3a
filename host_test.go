package url_test

import (
	"testing"

	"github.com/corewhatwg/url"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHostKindsViaHostname(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		href     string
		hostname string
	}{
		{name: "domain", href: "https://example.com/", hostname: "example.com"},
		{name: "ipv4", href: "https://127.0.0.1/", hostname: "127.0.0.1"},
		{name: "ipv6", href: "https://[2001:db8::1]/", hostname: "[2001:db8::1]"},
		{name: "opaque", href: "foo://bar/", hostname: "bar"},
		{name: "empty", href: "file:///path", hostname: ""},
	}

	for _, tt := range tests {
		tt := tt

		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			u, err := url.Parse(tt.href, nil)
			require.NoError(t, err)
			assert.Equal(t, tt.hostname, u.Hostname())
		})
	}
}

func TestHostInvalidCodePointFails(t *testing.T) {
	t.Parallel()

	_, err := url.Parse("https://exa mple.com/", nil)
	require.Error(t, err)

	var perr *url.ParseError

	require.ErrorAs(t, err, &perr)
	assert.Equal(t, url.ErrHostInvalidCodePoint, perr.Code)
}

func TestHostMissingFailsForSpecialScheme(t *testing.T) {
	t.Parallel()

	_, err := url.Parse("https:///path", nil)
	require.Error(t, err)

	var perr *url.ParseError

	require.ErrorAs(t, err, &perr)
	assert.Equal(t, url.ErrHostMissing, perr.Code)
}

func TestIPv6UnclosedFails(t *testing.T) {
	t.Parallel()

	_, err := url.Parse("https://[::1/path", nil)
	require.Error(t, err)

	var perr *url.ParseError

	require.ErrorAs(t, err, &perr)
	assert.Equal(t, url.ErrIPv6Unclosed, perr.Code)
}

func TestIPv4ParseErrorCodes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		href string
		code url.ErrorCode
	}{
		{name: "too many parts", href: "https://1.2.3.4.5/", code: url.ErrIPv4TooManyParts},
		{name: "non-numeric part", href: "https://abc.2.3.4/", code: url.ErrIPv4NonNumericPart},
		{name: "out of range part", href: "https://1.2.3.999/", code: url.ErrIPv4OutOfRangePart},
	}

	for _, tt := range tests {
		tt := tt

		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := url.Parse(tt.href, nil)
			require.Error(t, err)

			var perr *url.ParseError

			require.ErrorAs(t, err, &perr)
			assert.Equal(t, tt.code, perr.Code)
		})
	}
}

package url_test

import (
	"testing"

	"github.com/corewhatwg/url"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetHref(t *testing.T) {
	t.Parallel()

	u, err := url.Parse("https://example.com/", nil)
	require.NoError(t, err)

	require.NoError(t, u.SetHref("http://other.example/path?q=1"))
	assert.Equal(t, "http://other.example/path?q=1", u.Href())
}

func TestSetProtocol(t *testing.T) {
	t.Parallel()

	u, err := url.Parse("http://example.com/", nil)
	require.NoError(t, err)

	require.NoError(t, u.SetProtocol("https"))
	assert.Equal(t, "https:", u.Protocol())
}

func TestSetHostname(t *testing.T) {
	t.Parallel()

	u, err := url.Parse("https://example.com:8080/path", nil)
	require.NoError(t, err)

	require.NoError(t, u.SetHostname("other.example"))
	assert.Equal(t, "other.example", u.Hostname())
	assert.Equal(t, "8080", u.Port())
}

func TestSetPort(t *testing.T) {
	t.Parallel()

	u, err := url.Parse("https://example.com/", nil)
	require.NoError(t, err)

	require.NoError(t, u.SetPort("9090"))
	assert.Equal(t, "9090", u.Port())

	require.NoError(t, u.SetPort(""))
	assert.Equal(t, "", u.Port())
}

func TestSetPathname(t *testing.T) {
	t.Parallel()

	u, err := url.Parse("https://example.com/old", nil)
	require.NoError(t, err)

	require.NoError(t, u.SetPathname("/new/path"))
	assert.Equal(t, "/new/path", u.Pathname())
}

func TestSetSearch(t *testing.T) {
	t.Parallel()

	u, err := url.Parse("https://example.com/path?old=1", nil)
	require.NoError(t, err)

	u.SetSearch("new=2")
	assert.Equal(t, "?new=2", u.Search())

	v, ok := u.SearchParams().Get("new")
	require.True(t, ok)
	assert.Equal(t, "2", v)
}

func TestSetHash(t *testing.T) {
	t.Parallel()

	u, err := url.Parse("https://example.com/path", nil)
	require.NoError(t, err)

	u.SetHash("#section")
	assert.Equal(t, "#section", u.Hash())

	u.SetHash("")
	assert.Equal(t, "", u.Hash())
}

func TestSetUsernameAndPasswordRequireHost(t *testing.T) {
	t.Parallel()

	withHost, err := url.Parse("https://example.com/", nil)
	require.NoError(t, err)

	withHost.SetUsername("alice")
	withHost.SetPassword("s3cret")
	assert.Equal(t, "alice", withHost.Username())
	assert.Equal(t, "s3cret", withHost.Password())

	opaque, err := url.Parse("mailto:user@example.com", nil)
	require.NoError(t, err)

	opaque.SetUsername("bob")
	assert.Equal(t, "", opaque.Username())
}

func TestSearchParamsMutationReflectsOnURL(t *testing.T) {
	t.Parallel()

	u, err := url.Parse("https://example.com/?a=1", nil)
	require.NoError(t, err)

	u.SearchParams().Append("b", "2")
	assert.Equal(t, "?a=1&b=2", u.Search())
}

func TestPublicSuffixAndRegistrableDomain(t *testing.T) {
	t.Parallel()

	u, err := url.Parse("https://www.example.co.uk/", nil)
	require.NoError(t, err)

	suffix, ok := u.PublicSuffix()
	require.True(t, ok)
	assert.Equal(t, "co.uk", suffix)

	domain, ok := u.RegistrableDomain()
	require.True(t, ok)
	assert.Equal(t, "example.co.uk", domain)
}

func TestPublicSuffixFalseForNonDomainHost(t *testing.T) {
	t.Parallel()

	u, err := url.Parse("http://127.0.0.1/", nil)
	require.NoError(t, err)

	_, ok := u.PublicSuffix()
	assert.False(t, ok)
}

package url_test

import (
	"errors"
	"testing"

	"github.com/corewhatwg/url"
	"github.com/stretchr/testify/assert"
)

func TestErrorCodeString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "host-missing", url.ErrHostMissing.String())
	assert.Equal(t, "ipv6-unclosed", url.ErrIPv6Unclosed.String())
}

func TestErrorCodeFatal(t *testing.T) {
	t.Parallel()

	assert.True(t, url.ErrHostMissing.Fatal())
	assert.False(t, url.ErrInvalidReverseSolidus.Fatal())
}

func TestParseErrorIsMatchableViaErrorsAs(t *testing.T) {
	t.Parallel()

	_, err := url.Parse("not a url", nil)
	require := assert.New(t)
	require.Error(err)

	var perr *url.ParseError

	require.True(errors.As(err, &perr))
	require.Equal(url.ErrMissingSchemeNonRelativeURL, perr.Code)
}

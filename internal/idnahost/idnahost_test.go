package idnahost_test

import (
	"testing"

	"github.com/corewhatwg/url/internal/idnahost"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToASCIIPassesThroughASCIIDomain(t *testing.T) {
	t.Parallel()

	ascii, err := idnahost.ToASCII("example.com", false)
	require.NoError(t, err)
	assert.Equal(t, "example.com", ascii)
}

func TestToASCIIEncodesUnicodeLabel(t *testing.T) {
	t.Parallel()

	ascii, err := idnahost.ToASCII("bücher.example", false)
	require.NoError(t, err)
	assert.Equal(t, "xn--bcher-kva.example", ascii)
}

func TestToUnicodeDecodesPunycodeLabel(t *testing.T) {
	t.Parallel()

	unicode, hadErrors := idnahost.ToUnicode("xn--bcher-kva.example")
	assert.False(t, hadErrors)
	assert.Equal(t, "bücher.example", unicode)
}

package ipv6_test

import (
	"testing"

	"github.com/corewhatwg/url/internal/ipv6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAndSerialize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "full address", input: "2001:db8:85a3:0:0:8a2e:370:7334", want: "2001:db8:85a3::8a2e:370:7334"},
		{name: "compressed middle", input: "2001:db8::8a2e:370:7334", want: "2001:db8::8a2e:370:7334"},
		{name: "loopback", input: "::1", want: "::1"},
		{name: "unspecified", input: "::", want: "::"},
		{name: "embedded ipv4", input: "::ffff:192.168.1.1", want: "::ffff:c0a8:101"},
		{name: "hex digit value not codepoint value", input: "a::", want: "a::"},
	}

	for _, tt := range tests {
		tt := tt

		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			pieces, err := ipv6.Parse(tt.input)
			require.NoError(t, err)

			assert.Equal(t, tt.want, ipv6.Serialize(pieces))
		})
	}
}

func TestParseRejectsMalformedInput(t *testing.T) {
	t.Parallel()

	tests := []string{
		":1:2:3:4:5:6:7",
		"1:2:3:4:5:6:7:8:9",
		"1::2::3",
		"12345::",
	}

	for _, input := range tests {
		_, err := ipv6.Parse(input)
		require.ErrorIs(t, err, ipv6.ErrFailure, input)
	}
}

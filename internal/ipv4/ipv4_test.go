package ipv4_test

import (
	"testing"

	"github.com/corewhatwg/url/internal/ipv4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    uint32
		wantErr bool
	}{
		{name: "simple", input: "192.168.0.1", want: 0xC0A80001},
		{name: "hex part", input: "0x100", want: 256},
		{name: "octal part", input: "0300.0250.0.01", want: 0xC0A80001},
		{name: "shorthand three parts", input: "192.168.1", want: 0xC0A80001},
		{name: "shorthand one part overflow", input: "4294967296", wantErr: true},
		{name: "non-last part over 255", input: "999.0.0.1", wantErr: true},
		{name: "last part over the bound for four parts", input: "0.0.0.999", wantErr: true},
		{name: "too many parts", input: "1.2.3.4.5", wantErr: true},
		{name: "empty part fails", input: "1..3.4", wantErr: true},
	}

	for _, tt := range tests {
		tt := tt

		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, _, err := ipv4.Parse(tt.input)

			if tt.wantErr {
				require.ErrorIs(t, err, ipv4.ErrFailure)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseFailureKind(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		kind  ipv4.FailureKind
	}{
		{name: "too many parts", input: "1.2.3.4.5", kind: ipv4.FailureTooManyParts},
		{name: "non-numeric part", input: "abc.2.3.4", kind: ipv4.FailureNonNumericPart},
		{name: "empty part", input: "1..3.4", kind: ipv4.FailureNonNumericPart},
		{name: "non-last part over 255", input: "999.0.0.1", kind: ipv4.FailureOutOfRangePart},
		{name: "last part overflow", input: "0.0.0.999", kind: ipv4.FailureOutOfRangePart},
	}

	for _, tt := range tests {
		tt := tt

		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, _, err := ipv4.Parse(tt.input)
			require.ErrorIs(t, err, ipv4.ErrFailure)

			var failure *ipv4.ParseFailure

			require.ErrorAs(t, err, &failure)
			assert.Equal(t, tt.kind, failure.Kind)
		})
	}
}

func TestParseTrailingDotIsAWarningNotAFailure(t *testing.T) {
	t.Parallel()

	got, warnings, err := ipv4.Parse("192.168.0.1.")

	require.NoError(t, err)
	assert.Equal(t, uint32(0xC0A80001), got)
	assert.Contains(t, warnings, ipv4.WarningEmptyPart)
}

func TestSerialize(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "192.168.0.1", ipv4.Serialize(0xC0A80001))
	assert.Equal(t, "0.0.0.0", ipv4.Serialize(0))
	assert.Equal(t, "255.255.255.255", ipv4.Serialize(0xFFFFFFFF))
}

package hop_test

import (
	"testing"

	"github.com/ifyun/hop/pkg/hop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompareVersions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		a        string
		b        string
		expected int
	}{
		{name: "equal", a: "3.8.0", b: "3.8.0", expected: 0},
		{name: "patch greater", a: "3.8.1", b: "3.8.0", expected: 1},
		{name: "patch lesser", a: "3.8.0", b: "3.8.1", expected: -1},
		{name: "minor greater", a: "3.10.0", b: "3.9.9", expected: 1},
		{name: "major lesser", a: "2.9.9", b: "3.0.0", expected: -1},
		{name: "numeric not lexicographic", a: "3.10.0", b: "3.2.0", expected: 1},
		{name: "strict prefix is lesser", a: "3.8", b: "3.8.0", expected: -1},
		{name: "strict prefix is greater", a: "3.8.0", b: "3.8", expected: 1},
		{name: "pre-release truncated", a: "3.8.0-beta.1", b: "3.8.0", expected: 0},
		{name: "build metadata truncated", a: "3.8.0+rc1", b: "3.8.0", expected: 0},
		{name: "pre-release ends comparison", a: "3.8-beta.4", b: "3.8.1", expected: 0},
		{name: "pre-release ends comparison reversed", a: "3.8.1", b: "3.8-beta.4", expected: 0},
		{name: "differs before pre-release", a: "3.9.0-alpha", b: "3.8.7", expected: 1},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cmp, err := hop.CompareVersions(tt.a, tt.b)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, cmp)
		})
	}
}

func TestCompareVersions_Malformed(t *testing.T) {
	t.Parallel()

	_, err := hop.CompareVersions("not.a.version", "3.8.0")
	require.Error(t, err)

	_, err = hop.CompareVersions("3.8.0", "3.x")
	require.Error(t, err)
}

func TestAtLeastVersion(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		current  string
		minimum  string
		expected bool
	}{
		{name: "above", current: "3.11.2", minimum: "3.10.0", expected: true},
		{name: "exact", current: "3.10.0", minimum: "3.10.0", expected: true},
		{name: "below", current: "3.9.13", minimum: "3.10.0", expected: false},
		{name: "unknown sentinel always passes", current: hop.UnknownVersion, minimum: "3.10.0", expected: true},
		{name: "unparseable yields false", current: "mystery", minimum: "3.10.0", expected: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, hop.AtLeastVersion(tt.current, tt.minimum))
		})
	}
}

func TestSupportsCapability(t *testing.T) {
	t.Parallel()

	assert.True(t, hop.SupportsCapability("3.7.0", hop.CapabilityTopicPermissions))
	assert.False(t, hop.SupportsCapability("3.6.16", hop.CapabilityTopicPermissions))

	assert.True(t, hop.SupportsCapability("3.8.0", hop.CapabilityVhostMetadata))
	assert.False(t, hop.SupportsCapability("3.7.28", hop.CapabilityVhostMetadata))

	assert.True(t, hop.SupportsCapability("3.10.0", hop.CapabilityUserConnections))
	assert.False(t, hop.SupportsCapability("3.9.29", hop.CapabilityUserConnections))

	// The unknown-version sentinel supports everything.
	assert.True(t, hop.SupportsCapability(hop.UnknownVersion, hop.CapabilityUserConnections))
}

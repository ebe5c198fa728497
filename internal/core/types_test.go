package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePolicy(t *testing.T) {
	cases := []struct {
		in   string
		want Policy
	}{
		{"abyss", OpenAbyss},
		{"open", OpenAbyss},
		{"Floor", ClosedFloor},
		{" closed ", ClosedFloor},
	}
	for _, tc := range cases {
		got, err := ParsePolicy(tc.in)
		require.NoError(t, err, "ParsePolicy(%q)", tc.in)
		assert.Equal(t, tc.want, got, "ParsePolicy(%q)", tc.in)
	}

	_, err := ParsePolicy("lava")
	assert.ErrorIs(t, err, ErrUnknownPolicy)
}

func TestPolicyStringRoundTrip(t *testing.T) {
	for _, p := range Policies() {
		got, err := ParsePolicy(p.String())
		require.NoError(t, err)
		assert.Equal(t, p, got)
	}
	assert.False(t, Policy(7).Valid())
}

func TestCoordAdd(t *testing.T) {
	got := Coord{X: 500, Y: 0}.Add(Coord{X: -1, Y: 1})
	assert.Equal(t, Coord{X: 499, Y: 1}, got)
	assert.Equal(t, "499,1", got.String())
}

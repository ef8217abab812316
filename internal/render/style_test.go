package render

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStyleCodeTotal(t *testing.T) {
	t.Parallel()

	require.Equal(t, "sb", StyleSplitBonds.Code())
	require.Equal(t, "cpk", StyleCPK.Code())
	require.Equal(t, "bs", StyleBallAndStick.Code())
	require.Equal(t, "sb", Style(42).Code())
	require.Equal(t, "sb", Style(-1).Code())
}

func TestStyleString(t *testing.T) {
	t.Parallel()

	require.Equal(t, "Split Bonds", StyleSplitBonds.String())
	require.Equal(t, "CPK", StyleCPK.String())
	require.Equal(t, "Ball and Stick", StyleBallAndStick.String())
}

func TestStyleValid(t *testing.T) {
	t.Parallel()

	for _, s := range Styles() {
		require.True(t, s.Valid())
	}
	require.False(t, Style(3).Valid())
	require.False(t, Style(-1).Valid())
}

func TestStyleNextCycles(t *testing.T) {
	t.Parallel()

	require.Equal(t, StyleCPK, StyleSplitBonds.Next())
	require.Equal(t, StyleBallAndStick, StyleCPK.Next())
	require.Equal(t, StyleSplitBonds, StyleBallAndStick.Next())
	require.Equal(t, StyleSplitBonds, Style(9).Next())
}

func TestParseStyle(t *testing.T) {
	t.Parallel()

	cases := map[string]Style{
		"sb":             StyleSplitBonds,
		"Split Bonds":    StyleSplitBonds,
		" split_bonds ":  StyleSplitBonds,
		"CPK":            StyleCPK,
		"cpk":            StyleCPK,
		"bs":             StyleBallAndStick,
		"ball and stick": StyleBallAndStick,
		"BallAndStick":   StyleBallAndStick,
	}
	for in, want := range cases {
		got, err := ParseStyle(in)
		require.NoError(t, err, in)
		require.Equal(t, want, got, in)
	}

	_, err := ParseStyle("wireframe")
	require.Error(t, err)
}

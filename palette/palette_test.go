package palette

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseColor(t *testing.T) {
	c, err := ParseColor("ff8000")
	require.NoError(t, err)
	require.Equal(t, color.RGBA{0xff, 0x80, 0x00, 0xff}, c)

	c, err = ParseColor("AABBCC")
	require.NoError(t, err)
	require.Equal(t, color.RGBA{0xaa, 0xbb, 0xcc, 0xff}, c)
}

func TestParseColorInvalid(t *testing.T) {
	for _, s := range []string{"", "12345", "1234567", "12345g", "-12345", " 23456"} {
		_, err := ParseColor(s)
		require.Equal(t, ErrInvalidColorCode, err, "code %q", s)
	}
}

func TestParse(t *testing.T) {
	p, err := Parse(DefaultCodes)
	require.NoError(t, err)
	require.Equal(t, Default(), p)
	require.Equal(t, color.RGBA{0x55, 0x55, 0x55, 0xff}, p[1])

	_, err = Parse([Size]string{"000000", "555555", "aaaaaa", "fffff"})
	require.Equal(t, ErrInvalidColorCode, err)
}

func TestColors(t *testing.T) {
	cp := Default().Colors()
	require.Len(t, cp, Size)
	require.Equal(t, color.RGBA{0xff, 0xff, 0xff, 0xff}, cp[3])
}

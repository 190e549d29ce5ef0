/*
Package palette maps the four possible CHR pixel values to RGB colors.
*/
package palette

import (
	"errors"
	"image/color"
	"strconv"
)

// Size is the number of colors in a CHR palette, one per 2-bit pixel value.
const Size = 4

// ErrInvalidColorCode is returned when a color code is not exactly 6
// hexadecimal digits.
var ErrInvalidColorCode = errors.New("palette: color code is not exactly 6 hexadecimal digits")

// DefaultCodes is the grey ramp used when no colors are supplied.
var DefaultCodes = [Size]string{"000000", "555555", "aaaaaa", "ffffff"}

// A Palette is an ordered set of four opaque colors indexed by pixel value.
type Palette [Size]color.RGBA

// ParseColor decodes an HTML-style color code of exactly 6 hexadecimal
// digits into an opaque color.
func ParseColor(s string) (color.RGBA, error) {
	if len(s) != 6 {
		return color.RGBA{}, ErrInvalidColorCode
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.RGBA{}, ErrInvalidColorCode
	}
	return color.RGBA{uint8(v >> 16), uint8(v >> 8), uint8(v), 0xff}, nil
}

// Parse decodes four color codes into a palette.
func Parse(codes [Size]string) (Palette, error) {
	var p Palette
	for i, code := range codes {
		c, err := ParseColor(code)
		if err != nil {
			return Palette{}, err
		}
		p[i] = c
	}
	return p, nil
}

// Default returns the grey ramp palette.
func Default() Palette {
	p, _ := Parse(DefaultCodes)
	return p
}

// Colors returns the palette in the form used by the image packages.
func (p Palette) Colors() color.Palette {
	cp := make(color.Palette, Size)
	for i, c := range p {
		cp[i] = c
	}
	return cp
}

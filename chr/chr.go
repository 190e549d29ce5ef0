/*
Package chr implements a decoder for the NES 2bpp planar character (CHR)
graphics format.

Each 8 by 8 pixel character occupies 16 bytes; the first 8 bytes hold bit 0
of each pixel row and the last 8 bytes hold bit 1, in the same row order,
with the leftmost pixel in the most significant bit. Characters are laid out
16 to a row, so every 256 bytes of input decode to a band of the image 128
pixels wide and 8 pixels tall.
*/
package chr

const (
	charWidth    = 8
	charHeight   = charWidth
	bytesPerChar = 16
	charsPerRow  = 16
	planeOffset  = 8

	rowBytes  = charsPerRow * bytesPerChar
	rowPixels = charsPerRow * charWidth
)

const (
	// Width is the width in pixels of every decoded image.
	Width = rowPixels

	// StripHeight is the height in pixels decoded from each 256-byte
	// character row.
	StripHeight = charHeight
)

package chr

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"io"
	"io/ioutil"
)

var (
	errNotEnough = errors.New("chr: not enough character data")

	// ErrInvalidSize is returned when CHR data is empty or not a whole
	// number of character rows.
	ErrInvalidSize = errors.New("chr: size is not a positive multiple of 256 bytes")
)

// greys is the palette attached to images returned by Decode.
var greys = color.Palette{
	color.RGBA{0x00, 0x00, 0x00, 0xff},
	color.RGBA{0x55, 0x55, 0x55, 0xff},
	color.RGBA{0xaa, 0xaa, 0xaa, 0xff},
	color.RGBA{0xff, 0xff, 0xff, 0xff},
}

func readFull(r io.Reader, b []byte) error {
	_, err := io.ReadFull(r, b)
	if err == io.EOF {
		err = io.ErrUnexpectedEOF
	}
	return err
}

// Strips returns the number of character rows in CHR data of the given
// size.
func Strips(size int64) (int64, error) {
	if size <= 0 || size%rowBytes != 0 {
		return 0, ErrInvalidSize
	}
	return size / rowBytes, nil
}

// decodeSlice decodes one pixel row of one character from a character row
// chunk into out, which must hold 8 pixels. The planes store the leftmost
// pixel in the most significant bit, so the low bits are decoded first and
// written back to front.
func decodeSlice(strip []byte, pixelY, charX int, out []uint8) {
	lo := strip[charX*bytesPerChar+pixelY]
	hi := strip[charX*bytesPerChar+planeOffset+pixelY]
	for x := charWidth - 1; x >= 0; x-- {
		out[x] = lo&1 | hi&1<<1
		lo >>= 1
		hi >>= 1
	}
}

// A RowScanner reads CHR data sequentially and decodes one 128-pixel
// scanline per call to Scan, in top-to-bottom order. It buffers a single
// character row at a time and cannot be restarted.
type RowScanner struct {
	r      io.Reader
	strips int64
	read   int64
	pixelY int
	strip  [rowBytes]byte
	row    [rowPixels]uint8
	err    error
}

// NewRowScanner returns a scanner over size bytes of CHR data read from r.
// The size must be a positive multiple of 256 bytes.
func NewRowScanner(r io.Reader, size int64) (*RowScanner, error) {
	strips, err := Strips(size)
	if err != nil {
		return nil, err
	}
	return &RowScanner{r: r, strips: strips, pixelY: charHeight}, nil
}

// Scan advances to the next scanline. It returns false when every scanline
// has been produced or a read fails; Err tells the two apart.
func (s *RowScanner) Scan() bool {
	if s.err != nil {
		return false
	}
	if s.pixelY == charHeight {
		if s.read == s.strips {
			return false
		}
		if err := readFull(s.r, s.strip[:]); err != nil {
			s.err = errNotEnough
			return false
		}
		s.read++
		s.pixelY = 0
	}
	for charX := 0; charX < charsPerRow; charX++ {
		decodeSlice(s.strip[:], s.pixelY, charX, s.row[charX*charWidth:(charX+1)*charWidth])
	}
	s.pixelY++
	return true
}

// Row returns the most recently decoded scanline as palette indices in the
// range [0,3], leftmost pixel first. The slice is reused by the next call
// to Scan.
func (s *RowScanner) Row() []uint8 {
	return s.row[:]
}

// Err returns the first error encountered while scanning.
func (s *RowScanner) Err() error {
	return s.err
}

// DecodePaletted decodes size bytes of CHR data from r into an image using
// the supplied palette, which is indexed by pixel value and should hold
// four colors.
func DecodePaletted(r io.Reader, size int64, p color.Palette) (*image.Paletted, error) {
	s, err := NewRowScanner(r, size)
	if err != nil {
		return nil, err
	}

	m := image.NewPaletted(image.Rect(0, 0, Width, int(s.strips)*StripHeight), p)
	for y := 0; s.Scan(); y++ {
		copy(m.Pix[y*m.Stride:], s.Row())
	}
	if err := s.Err(); err != nil {
		return nil, err
	}

	return m, nil
}

// Decode reads CHR data from r until EOF and returns it as an image.Image
// with a grey ramp palette.
func Decode(r io.Reader) (image.Image, error) {
	b, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return DecodePaletted(bytes.NewReader(b), int64(len(b)), greys)
}

// DecodeConfig returns the color model and dimensions of CHR data without
// decoding any pixels. It consumes r entirely as the dimensions depend only
// on the data size.
func DecodeConfig(r io.Reader) (image.Config, error) {
	n, err := io.Copy(ioutil.Discard, r)
	if err != nil {
		return image.Config{}, err
	}
	strips, err := Strips(n)
	if err != nil {
		return image.Config{}, err
	}
	return image.Config{
		ColorModel: greys,
		Width:      Width,
		Height:     int(strips) * StripHeight,
	}, nil
}

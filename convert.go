package neschr

import (
	"bytes"
	"errors"
	"image/png"
	"io"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/qalle/neschr/chr"
	"github.com/qalle/neschr/ines"
	"golang.org/x/image/bmp"
)

var (
	// ErrInputNotFound is returned when the input file does not exist or
	// is not a regular file.
	ErrInputNotFound = errors.New("neschr: input file does not exist")

	// ErrOutputExists is returned rather than overwriting an existing
	// output file.
	ErrOutputExists = errors.New("neschr: output file already exists")

	// ErrOutputDirMissing is returned when the output directory does not
	// exist.
	ErrOutputDirMissing = errors.New("neschr: output directory does not exist")
)

// Format selects the output raster container.
type Format int

const (
	PNG Format = iota
	BMP
)

// FormatForPath returns the format implied by a file extension; anything
// other than ".bmp" means PNG.
func FormatForPath(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".bmp") {
		return BMP
	}
	return PNG
}

// Convert decodes size bytes of CHR data from src and writes the image to w
// in the given format. The size must be a positive multiple of 256 bytes.
func (c *Converter) Convert(src io.Reader, size int64, w io.Writer, format Format) error {
	m, err := chr.DecodePaletted(src, size, c.palette.Colors())
	if err != nil {
		return err
	}

	b := m.Bounds()
	c.logger.Printf("decoded %d bytes of character data into a %dx%d image\n", size, b.Dx(), b.Dy())

	switch format {
	case BMP:
		return bmp.Encode(w, m)
	default:
		e := png.Encoder{CompressionLevel: png.BestCompression}
		return e.Encode(w, m)
	}
}

// ConvertFile reads CHR data from source and writes the decoded image to
// target, as BMP if the target ends in ".bmp" and as PNG otherwise. The
// input may be a raw CHR dump, a gzip-compressed dump (".gz") or an iNES
// ROM (".nes"). Every precondition is checked before the target file is
// created, so a rejected input never leaves a partial image behind.
func (c *Converter) ConvertFile(source, target string) error {
	info, err := os.Stat(source)
	if err != nil || !info.Mode().IsRegular() {
		return ErrInputNotFound
	}

	if _, err := os.Stat(target); err == nil {
		return ErrOutputExists
	}
	if info, err := os.Stat(filepath.Dir(target)); err != nil || !info.IsDir() {
		return ErrOutputDirMissing
	}

	f, err := os.Open(source)
	if err != nil {
		return err
	}
	defer f.Close()

	var src io.Reader = f
	size := info.Size()

	switch strings.ToLower(filepath.Ext(source)) {
	case ".gz":
		z, err := gzip.NewReader(f)
		if err != nil {
			return err
		}
		defer z.Close()
		b, err := ioutil.ReadAll(z)
		if err != nil {
			return err
		}
		src, size = bytes.NewReader(b), int64(len(b))
	case ".nes":
		b, err := ioutil.ReadAll(f)
		if err != nil {
			return err
		}
		chrRom, err := ines.ChrRom(b)
		if err != nil {
			return err
		}
		c.logger.Printf("using %d bytes of CHR ROM from %s\n", len(chrRom), source)
		src, size = bytes.NewReader(chrRom), int64(len(chrRom))
	}

	if _, err := chr.Strips(size); err != nil {
		return err
	}

	out, err := os.Create(target)
	if err != nil {
		return err
	}

	if err := c.Convert(src, size, out, FormatForPath(target)); err != nil {
		out.Close()
		os.Remove(target)
		return err
	}

	return out.Close()
}

/*
Package ines extracts CHR ROM from iNES container files.

An iNES file begins with a 16 byte header: the magic "NES\x1a", the PRG ROM
size in 16 KiB units, the CHR ROM size in 8 KiB units and a number of flag
bytes. A 512 byte trainer sits between the header and the PRG ROM when bit 2
of the first flag byte is set; the CHR ROM follows the PRG ROM.
*/
package ines

import (
	"bytes"
	"errors"
)

const (
	headerSize  = 16
	trainerSize = 512
	prgBankSize = 16384
	chrBankSize = 8192
)

var magic = []byte{'N', 'E', 'S', 0x1a}

var (
	// ErrBadMagic is returned when the file does not start with the
	// iNES magic bytes.
	ErrBadMagic = errors.New("ines: not an iNES file")

	// ErrNoChr is returned for ROMs that use CHR RAM and therefore
	// carry no character data.
	ErrNoChr = errors.New("ines: ROM has no CHR data")

	// ErrTruncated is returned when the file is shorter than its header
	// describes.
	ErrTruncated = errors.New("ines: file is shorter than the header describes")
)

// ChrRom returns the CHR ROM segment of an iNES image.
func ChrRom(rom []byte) ([]byte, error) {
	if len(rom) < headerSize || !bytes.Equal(rom[:len(magic)], magic) {
		return nil, ErrBadMagic
	}

	chrSize := int(rom[5]) * chrBankSize
	if chrSize == 0 {
		return nil, ErrNoChr
	}

	offset := headerSize + int(rom[4])*prgBankSize
	if rom[6]&0x04 != 0 {
		offset += trainerSize
	}

	if len(rom) < offset+chrSize {
		return nil, ErrTruncated
	}

	return rom[offset : offset+chrSize], nil
}

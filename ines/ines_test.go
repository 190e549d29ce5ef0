package ines

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// buildRom assembles a minimal iNES image with the given bank counts. The
// first byte of the CHR ROM is set to a marker so tests can check the
// segment boundaries.
func buildRom(prgBanks, chrBanks int, trainer bool) []byte {
	rom := make([]byte, 0, headerSize+prgBankSize*prgBanks+chrBankSize*chrBanks)

	header := make([]byte, headerSize)
	copy(header, magic)
	header[4] = byte(prgBanks)
	header[5] = byte(chrBanks)
	if trainer {
		header[6] |= 0x04
	}
	rom = append(rom, header...)

	if trainer {
		rom = append(rom, make([]byte, trainerSize)...)
	}
	rom = append(rom, make([]byte, prgBankSize*prgBanks)...)

	chr := make([]byte, chrBankSize*chrBanks)
	if len(chr) > 0 {
		chr[0] = 0xa5
	}
	return append(rom, chr...)
}

func TestChrRom(t *testing.T) {
	chr, err := ChrRom(buildRom(2, 1, false))
	require.NoError(t, err)
	require.Len(t, chr, chrBankSize)
	require.Equal(t, byte(0xa5), chr[0])
}

func TestChrRomTrainer(t *testing.T) {
	chr, err := ChrRom(buildRom(1, 2, true))
	require.NoError(t, err)
	require.Len(t, chr, 2*chrBankSize)
	require.Equal(t, byte(0xa5), chr[0])
}

func TestChrRomBadMagic(t *testing.T) {
	_, err := ChrRom([]byte("MES\x1a"))
	require.Equal(t, ErrBadMagic, err)

	_, err = ChrRom(nil)
	require.Equal(t, ErrBadMagic, err)
}

func TestChrRomNoChr(t *testing.T) {
	_, err := ChrRom(buildRom(1, 0, false))
	require.Equal(t, ErrNoChr, err)
}

func TestChrRomTruncated(t *testing.T) {
	rom := buildRom(1, 1, false)
	_, err := ChrRom(rom[:len(rom)-1])
	require.Equal(t, ErrTruncated, err)
}

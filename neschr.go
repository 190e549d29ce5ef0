/*
Package neschr converts NES CHR (character) graphics data into indexed-color
raster images.
*/
package neschr

import (
	"log"

	"github.com/qalle/neschr/palette"
)

type Converter struct {
	palette palette.Palette
	logger  *log.Logger
}

func New(p palette.Palette, logger *log.Logger) *Converter {
	return &Converter{
		palette: p,
		logger:  logger,
	}
}

package main

import (
	"io/ioutil"
	"log"
	"os"

	"github.com/qalle/neschr"
	"github.com/qalle/neschr/palette"
	"github.com/urfave/cli/v2"
)

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "print the version",
	}
}

func main() {
	app := cli.NewApp()

	app.Name = "neschr"
	app.Usage = "Convert NES CHR (graphics) data to an indexed PNG or BMP image"
	app.Version = "1.0.0"
	app.ArgsUsage = "INPUT OUTPUT"

	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:  "color0",
			Value: palette.DefaultCodes[0],
			Usage: "color for pixel value 0, as 6 hexadecimal digits",
		},
		&cli.StringFlag{
			Name:  "color1",
			Value: palette.DefaultCodes[1],
			Usage: "color for pixel value 1, as 6 hexadecimal digits",
		},
		&cli.StringFlag{
			Name:  "color2",
			Value: palette.DefaultCodes[2],
			Usage: "color for pixel value 2, as 6 hexadecimal digits",
		},
		&cli.StringFlag{
			Name:  "color3",
			Value: palette.DefaultCodes[3],
			Usage: "color for pixel value 3, as 6 hexadecimal digits",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "increase verbosity",
		},
	}

	app.Action = func(c *cli.Context) error {
		if c.NArg() != 2 {
			cli.ShowAppHelpAndExit(c, 1)
		}

		logger := log.New(ioutil.Discard, "", 0)
		if c.Bool("verbose") {
			logger.SetOutput(os.Stderr)
		}

		p, err := palette.Parse([palette.Size]string{
			c.String("color0"),
			c.String("color1"),
			c.String("color2"),
			c.String("color3"),
		})
		if err != nil {
			return cli.NewExitError(err, 1)
		}

		n := neschr.New(p, logger)

		if err := n.ConvertFile(c.Args().Get(0), c.Args().Get(1)); err != nil {
			return cli.NewExitError(err, 1)
		}

		return nil
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

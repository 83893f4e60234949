package main

import (
	"context"

	"github.com/urfave/cli/v2"

	"github.com/mklimuk/tsl2561/cmd/tsl2561/console"
)

var idCmd = cli.Command{
	Name:  "id",
	Usage: "read the part number and revision",
	Flags: sensorFlags(),
	Action: func(c *cli.Context) error {
		ctx := console.SetVerbose(context.Background(), c.Bool("verbose"))
		s, err := newSensor(c)
		if err != nil {
			return console.Exit(1, "%s", console.Red(err))
		}
		part, revision, err := s.ID(ctx)
		if err != nil {
			return console.Exit(1, "error reading id register: %s", console.Red(err))
		}
		console.PInfof(console.PictoPin, "part %s revision %s", console.White(part), console.White(revision))
		return nil
	},
}

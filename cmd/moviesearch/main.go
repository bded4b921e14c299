package main

import (
	"context"
	"log"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/amaumene/gomoviesearch/internal/constants"
)

func main() {
	app := &cli.Command{
		Name:    constants.AppName,
		Usage:   constants.AppDescription,
		Version: constants.AppVersion,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Usage: "Configuration file path (JSON)",
			},
			&cli.StringFlag{
				Name:  "db",
				Usage: "Path of the bolt file holding the last search",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "Log level: debug, info, warn or error",
			},
		},
		Commands: []*cli.Command{
			ServeCommand(),
			SearchCommand(),
			PageCommand(),
			NextCommand(),
			PrevCommand(),
			ShowCommand(),
			DetailsCommand(),
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

package api

import (
	"github.com/railboard/railboard/pkg/config"
	"github.com/railboard/railboard/pkg/feeds"
	"github.com/railboard/railboard/pkg/redis_client"
	"github.com/railboard/railboard/pkg/stationref"
	"github.com/urfave/cli/v2"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "web-api",
		Usage: "Provides the arrival board web API",
		Subcommands: []*cli.Command{
			{
				Name:  "run",
				Usage: "run web api server",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "listen",
						Value: ":8080",
						Usage: "listen target for the web server",
					},
				},
				Action: func(c *cli.Context) error {
					line := config.Load()

					if err := redis_client.Connect(); err != nil {
						return err
					}

					stations, err := stationref.LoadFile(line.StationReferencePath)
					if err != nil {
						return err
					}

					fetcher := feeds.NewFetcher(line)

					return SetupServer(c.String("listen"), line, stations, fetcher)
				},
			},
		},
	}
}

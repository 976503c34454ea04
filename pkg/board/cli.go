package board

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/railboard/railboard/pkg/config"
	"github.com/railboard/railboard/pkg/feeds"
	"github.com/railboard/railboard/pkg/redis_client"
	"github.com/railboard/railboard/pkg/stationref"
	"github.com/urfave/cli/v2"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "board",
		Usage: "Generate an arrival board once and print it",
		Subcommands: []*cli.Command{
			{
				Name:  "get",
				Usage: "fetch both feeds and print the board for a station",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "station",
						Usage:    "origin station name",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "destination",
						Usage: "optional destination station name",
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

					now := time.Now().In(line.Location())

					result := feeds.NewFetcher(line).FetchBoth(context.Background(), now)

					generated, err := Generate(Request{
						Station:        c.String("station"),
						Destination:    c.String("destination"),
						Snapshot:       result.Snapshot,
						ScheduledCalls: result.ScheduledCalls,
						ScheduleErr:    result.ScheduleErr,
						Stations:       stations,
						Line:           line,
						Now:            now,
					})
					if err != nil {
						return err
					}

					output, err := json.MarshalIndent(generated, "", "  ")
					if err != nil {
						return err
					}

					fmt.Println(string(output))

					return nil
				},
			},
		},
	}
}

package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/railboard/railboard/pkg/api/routes"
	"github.com/railboard/railboard/pkg/config"
	"github.com/railboard/railboard/pkg/feeds"
	"github.com/railboard/railboard/pkg/stationref"
)

func SetupServer(listen string, line config.Line, stations *stationref.StationTable, fetcher *feeds.Fetcher) error {
	webApp := fiber.New()
	webApp.Use(NewLogger())

	group := webApp.Group("/core")

	group.Get("version", routes.APIVersion)

	routes.StationsRouter(group.Group("/stations"), stations)

	routes.BoardRouter(group.Group("/board"), routes.BoardEnvironment{
		Stations: stations,
		Fetcher:  fetcher,
		Line:     line,
	})

	return webApp.Listen(listen)
}

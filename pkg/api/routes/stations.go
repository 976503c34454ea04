package routes

import (
	"net/url"

	"github.com/gofiber/fiber/v2"
	"github.com/railboard/railboard/pkg/stationref"
)

func StationsRouter(router fiber.Router, stations *stationref.StationTable) {
	router.Get("/", func(c *fiber.Ctx) error {
		return listStations(c, stations)
	})
	router.Get("/:name", func(c *fiber.Ctx) error {
		return getStation(c, stations)
	})
}

func listStations(c *fiber.Ctx, stations *stationref.StationTable) error {
	return c.JSON(stations.Stations)
}

func getStation(c *fiber.Ctx, stations *stationref.StationTable) error {
	name, err := url.PathUnescape(c.Params("name"))
	if err != nil {
		c.SendStatus(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{
			"error": "Station name could not be decoded",
		})
	}

	station, err := stations.LookupByName(name)
	if err != nil {
		// The operator's URL-safe station names are accepted too.
		station, err = stations.LookupByURLName(name)
	}
	if err != nil {
		c.SendStatus(fiber.StatusNotFound)
		return c.JSON(fiber.Map{
			"error": "Could not find Station matching name",
		})
	}

	return c.JSON(station)
}

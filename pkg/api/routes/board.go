package routes

import (
	"errors"
	"net/url"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/liip/sheriff"
	"github.com/railboard/railboard/pkg/board"
	"github.com/railboard/railboard/pkg/config"
	"github.com/railboard/railboard/pkg/ctdf"
	"github.com/railboard/railboard/pkg/feeds"
	"github.com/railboard/railboard/pkg/stationref"
)

// BoardEnvironment is the shared state the board route needs: the
// immutable station table, the line config and the upstream fetcher.
type BoardEnvironment struct {
	Stations *stationref.StationTable
	Fetcher  *feeds.Fetcher
	Line     config.Line
}

func BoardRouter(router fiber.Router, env BoardEnvironment) {
	router.Get("/:station", env.getBoard)
}

func (env BoardEnvironment) getBoard(c *fiber.Ctx) error {
	stationName, err := url.PathUnescape(c.Params("station"))
	if err != nil {
		c.SendStatus(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{
			"error": "Station name could not be decoded",
		})
	}

	destinationName := c.Query("destination")

	now := time.Now().In(env.Line.Location())

	result := env.Fetcher.FetchBoth(c.UserContext(), now)

	generated, err := board.Generate(board.Request{
		Station:        stationName,
		Destination:    destinationName,
		Snapshot:       result.Snapshot,
		ScheduledCalls: result.ScheduledCalls,
		ScheduleErr:    result.ScheduleErr,
		Stations:       env.Stations,
		Line:           env.Line,
		Now:            now,
	})

	if err != nil {
		if errors.Is(err, ctdf.ErrUnknownStation) {
			c.SendStatus(fiber.StatusNotFound)
			return c.JSON(fiber.Map{
				"error": "Could not find Station matching name",
			})
		}

		// Both upstream feeds failed; an empty board here would be a lie.
		c.SendStatus(fiber.StatusServiceUnavailable)
		return c.JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	reduced, err := sheriff.Marshal(&sheriff.Options{
		Groups: []string{"basic"},
	}, generated)

	if err != nil {
		c.SendStatus(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"error": "Sheriff could not reduce board",
		})
	}

	return c.JSON(reduced)
}

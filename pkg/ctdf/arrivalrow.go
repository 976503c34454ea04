package ctdf

type TrainType string

const (
	TrainTypeLocal   TrainType = "Local"
	TrainTypeLimited TrainType = "Limited"
	TrainTypeExpress TrainType = "Express"
	TrainTypeWeekend TrainType = "Weekend"
	TrainTypeUnknown TrainType = "Unknown"
)

type BoardSource string

const (
	BoardSourceLive      BoardSource = "Live"
	BoardSourceScheduled BoardSource = "Scheduled"
)

type FeedHealth string

const (
	FeedHealthOk          FeedHealth = "Ok"
	FeedHealthStale       FeedHealth = "Stale"
	FeedHealthUnavailable FeedHealth = "Unavailable"
)

// ArrivalRow is one line of the arrival board. Constructed fresh per
// request and never mutated afterwards.
type ArrivalRow struct {
	TrainID   string    `groups:"basic"`
	TrainType TrainType `groups:"basic"`
	Direction Direction `groups:"basic"`

	// ETAMinutes is nil on a scheduled board, where no live estimate
	// exists to diff against.
	ETAMinutes          *int `groups:"basic"`
	ScheduledETAMinutes *int `groups:"basic"`

	Delayed bool `groups:"basic"`

	StopsAwayLabel string `groups:"basic"`

	Source BoardSource `groups:"basic"`
}

package siri_vm

type VehicleActivity struct {
	RecordedAtTime string
	ValidUntilTime string

	MonitoredVehicleJourney *MonitoredVehicleJourney
}

type MonitoredVehicleJourney struct {
	LineRef           string
	DirectionRef      string
	PublishedLineName string

	OriginRef  string
	OriginName string

	DestinationRef  string
	DestinationName string

	VehicleLocation struct {
		Longitude float64
		Latitude  float64
	}

	Bearing float64

	MonitoredCall *Call

	OnwardCalls struct {
		OnwardCall []*Call
	}

	VehicleRef string
}

// Call is one stop on a vehicle's remaining itinerary, with the aimed
// and live-expected timings for it.
type Call struct {
	StopPointName string
	StopPointRef  string

	AimedArrivalTime    string
	ExpectedArrivalTime string
	AimedDepartureTime  string
}

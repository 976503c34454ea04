package ctdf

// Station is one row of the station reference table. Loaded once at
// process start and never mutated; Ordinal is the row's position in
// the file and is the single source of truth for direction inference.
type Station struct {
	Name    string `csv:"stopname"`
	URLName string `csv:"urlname"`

	Latitude  float64 `csv:"lat"`
	Longitude float64 `csv:"lon"`

	// The feed publishes two stop codes per station, one per platform
	// direction. StopCodeSouthbound is the "stop1" column of the
	// source data, StopCodeNorthbound the "stop2" column.
	StopCodeSouthbound string `csv:"stop1"`
	StopCodeNorthbound string `csv:"stop2"`

	Ordinal int `csv:"-"`
}

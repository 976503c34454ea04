package config

import (
	"os"
	"strconv"
	"time"

	"github.com/railboard/railboard/pkg/util"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

const (
	defaultTimezone           = "US/Pacific"
	defaultRolloverCutoffHour = 4
	defaultStalenessSeconds   = 90
	defaultCacheTTLSeconds    = 60
	defaultStationSuffix      = "Caltrain Station"
	defaultAgencyCode         = "CT"
)

// Line describes the rail line the board is generated for. Every value
// the original operator tuned by hand (rollover cutoff, staleness
// window, cache TTL) is configuration here rather than a constant.
type Line struct {
	Name string `yaml:"name"`

	Timezone string `yaml:"timezone"`

	// Clock times before this hour belong to the following calendar
	// day - service that runs past midnight.
	RolloverCutoffHour int `yaml:"rollover_cutoff_hour"`

	StalenessToleranceSeconds int `yaml:"staleness_tolerance_seconds"`
	CacheTTLSeconds           int `yaml:"cache_ttl_seconds"`

	// StationSuffix is stripped from feed stop names for display, e.g.
	// "Caltrain Station" in "Hillsdale Caltrain Station Northbound".
	StationSuffix string `yaml:"station_suffix"`

	// TerminalStations are line endpoints; a destination filter naming
	// anything else additionally narrows live rows to vehicles whose
	// itinerary passes through that destination.
	TerminalStations []string `yaml:"terminal_stations"`

	AgencyCode           string `yaml:"agency_code"`
	VehicleMonitoringURL string `yaml:"vehicle_monitoring_url"`
	TimetableURL         string `yaml:"timetable_url"`
	StationReferencePath string `yaml:"station_reference_path"`
}

func Defaults() Line {
	return Line{
		Name:                      "Caltrain",
		Timezone:                  defaultTimezone,
		RolloverCutoffHour:        defaultRolloverCutoffHour,
		StalenessToleranceSeconds: defaultStalenessSeconds,
		CacheTTLSeconds:           defaultCacheTTLSeconds,
		StationSuffix:             defaultStationSuffix,
		TerminalStations:          []string{"San Francisco", "Tamien", "San Jose Diridon"},
		AgencyCode:                defaultAgencyCode,
		VehicleMonitoringURL:      "https://api.511.org/transit/VehicleMonitoring",
		TimetableURL:              "https://www.caltrain.com/?active_tab=route_explorer_tab",
		StationReferencePath:      "stop_ids.csv",
	}
}

// Load builds the line config from defaults, an optional YAML file
// (RAILBOARD_CONFIG) and environment variable overrides, in that
// order.
func Load() Line {
	line := Defaults()

	env := util.GetEnvironmentVariables()

	if path := env["RAILBOARD_CONFIG"]; path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			log.Fatal().Err(err).Str("path", path).Msg("Failed to read config file")
		}

		if err := yaml.Unmarshal(data, &line); err != nil {
			log.Fatal().Err(err).Str("path", path).Msg("Failed to parse config file")
		}
	}

	if env["RAILBOARD_TIMEZONE"] != "" {
		line.Timezone = env["RAILBOARD_TIMEZONE"]
	}

	if env["RAILBOARD_STATION_REFERENCE"] != "" {
		line.StationReferencePath = env["RAILBOARD_STATION_REFERENCE"]
	}

	if env["RAILBOARD_CACHE_TTL"] != "" {
		if n, err := strconv.Atoi(env["RAILBOARD_CACHE_TTL"]); err == nil {
			line.CacheTTLSeconds = n
		}
	}

	if env["RAILBOARD_STALENESS_TOLERANCE"] != "" {
		if n, err := strconv.Atoi(env["RAILBOARD_STALENESS_TOLERANCE"]); err == nil {
			line.StalenessToleranceSeconds = n
		}
	}

	return line
}

// Location resolves the line's civil timezone.
func (l Line) Location() *time.Location {
	location, err := time.LoadLocation(l.Timezone)
	if err != nil {
		log.Fatal().Err(err).Str("timezone", l.Timezone).Msg("Failed to load line timezone")
	}

	return location
}

func (l Line) StalenessTolerance() time.Duration {
	return time.Duration(l.StalenessToleranceSeconds) * time.Second
}

func (l Line) CacheTTL() time.Duration {
	return time.Duration(l.CacheTTLSeconds) * time.Second
}

package ranking

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/railboard/railboard/pkg/ctdf"
	"golang.org/x/exp/slices"
)

// originSuffixRegex strips the platform suffix the feed appends to
// stop names, e.g. "Hillsdale Caltrain Station Northbound".
func originSuffixRegex(lineSuffix string) *regexp.Regexp {
	return regexp.MustCompile(`\s*` + regexp.QuoteMeta(lineSuffix) + `\s+(Northbound|Southbound)\s*$`)
}

// Resolver computes per-train display annotations from live calls.
type Resolver struct {
	suffixRegex *regexp.Regexp
}

func NewResolver(lineSuffix string) *Resolver {
	return &Resolver{
		suffixRegex: originSuffixRegex(lineSuffix),
	}
}

// OriginOfRecord picks the train's earliest upcoming stop: the call
// with the smallest sequence index, tie-broken by station name so the
// label is stable across polls. The platform suffix is stripped for
// display.
func (r *Resolver) OriginOfRecord(trainID string, calls []ctdf.LiveCall) (ctdf.LiveCall, bool) {
	var trainCalls []ctdf.LiveCall
	for _, call := range calls {
		if call.TrainID == trainID {
			trainCalls = append(trainCalls, call)
		}
	}

	if len(trainCalls) == 0 {
		return ctdf.LiveCall{}, false
	}

	slices.SortStableFunc(trainCalls, func(a, b ctdf.LiveCall) int {
		if a.StopSequence != b.StopSequence {
			return a.StopSequence - b.StopSequence
		}

		switch {
		case a.StationName < b.StationName:
			return -1
		case a.StationName > b.StationName:
			return 1
		}
		return 0
	})

	return trainCalls[0], true
}

// StopsAwayLabel renders the "stops away" annotation for one call:
// sequence index, the train's origin-of-record station and its
// distance from the vehicle.
func (r *Resolver) StopsAwayLabel(call ctdf.LiveCall, originOfRecord ctdf.LiveCall) string {
	originName := strings.TrimSpace(r.suffixRegex.ReplaceAllString(originOfRecord.StationName, ""))

	return fmt.Sprintf("%d // %s // %.1f mi", call.StopSequence, originName, call.DistanceMiles)
}

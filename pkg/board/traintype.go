package board

import (
	"github.com/railboard/railboard/pkg/ctdf"
	"github.com/rs/zerolog/log"
)

// TrainTypeFor classifies a train from the leading digit of its
// identifier; the rest of the identifier is opaque. An unrecognised
// leading digit is reported as Unknown rather than dropped, so a new
// numbering scheme shows up on the board instead of vanishing.
func TrainTypeFor(trainID string) ctdf.TrainType {
	if trainID == "" {
		return ctdf.TrainTypeUnknown
	}

	switch trainID[0] {
	case '1':
		return ctdf.TrainTypeLocal
	case '4':
		return ctdf.TrainTypeLimited
	case '5':
		return ctdf.TrainTypeExpress
	case '6':
		return ctdf.TrainTypeWeekend
	}

	log.Warn().Str("train", trainID).Msg("Unrecognised train numbering scheme")

	return ctdf.TrainTypeUnknown
}

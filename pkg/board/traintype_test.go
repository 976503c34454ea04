package board

import (
	"testing"

	"github.com/railboard/railboard/pkg/ctdf"
	"github.com/stretchr/testify/assert"
)

func TestTrainTypeFor(t *testing.T) {
	testCases := []struct {
		trainID  string
		expected ctdf.TrainType
	}{
		{"101", ctdf.TrainTypeLocal},
		{"198", ctdf.TrainTypeLocal},
		{"423", ctdf.TrainTypeLimited},
		{"518", ctdf.TrainTypeExpress},
		{"612", ctdf.TrainTypeWeekend},
		{"999", ctdf.TrainTypeUnknown},
		{"217", ctdf.TrainTypeUnknown},
		{"", ctdf.TrainTypeUnknown},
	}

	for _, testCase := range testCases {
		assert.Equal(t, testCase.expected, TrainTypeFor(testCase.trainID), "train %q", testCase.trainID)
	}
}

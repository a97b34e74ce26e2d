package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeSlotList_ScanValidates(t *testing.T) {
	var list TimeSlotList

	err := list.Scan([]byte(`[{"startTime":"2026-01-05T14:00:00Z","endTime":"2026-01-05T22:00:00Z"}]`))
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "2026-01-05T14:00:00Z", list[0].StartTime)
}

func TestTimeSlotList_ScanRejectsMissingTimes(t *testing.T) {
	var list TimeSlotList

	err := list.Scan([]byte(`[{"startTime":"2026-01-05T14:00:00Z"}]`))
	assert.Error(t, err)
}

func TestTimeSlotList_ScanRejectsMalformedJSON(t *testing.T) {
	var list TimeSlotList

	err := list.Scan([]byte(`{"not":"an array"`))
	assert.Error(t, err)
}

func TestSubFieldList_ScanRejectsMissingKey(t *testing.T) {
	var list SubFieldList

	err := list.Scan([]byte(`[{"label":"Base","type":"MONEY"}]`))
	assert.Error(t, err)
}

func TestJSONMap_RoundTrip(t *testing.T) {
	m := JSONMap{"contract.province": "Ontario"}

	v, err := m.Value()
	require.NoError(t, err)

	var got JSONMap
	require.NoError(t, got.Scan(v))
	assert.Equal(t, m, got)
}

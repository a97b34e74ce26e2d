package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClockMinutes(t *testing.T) {
	cases := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"8:00 AM", 480, false},
		{"12:00 PM", 720, false},
		{"12:00 AM", 0, false},
		{"5:30 PM", 1050, false},
		{"08:00", 480, false},
		{"17:45", 1065, false},
		{"  9:00 am  ", 540, false},
		{"25:00", 0, true},
		{"9 AM", 0, true},
		{"", 0, true},
	}

	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseClockMinutes(tc.in)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestAnchorToUTC_DSTOffsetChanges(t *testing.T) {
	loc, err := time.LoadLocation("America/Toronto")
	require.NoError(t, err)

	// Toronto switched to EDT on 2026-03-08.
	winter := time.Date(2026, 2, 2, 0, 0, 0, 0, loc)
	summer := time.Date(2026, 7, 6, 0, 0, 0, 0, loc)

	gotWinter, err := AnchorToUTC("8:00 AM", winter, loc)
	require.NoError(t, err)
	gotSummer, err := AnchorToUTC("8:00 AM", summer, loc)
	require.NoError(t, err)

	// EST is UTC-5, EDT is UTC-4.
	assert.Equal(t, 13, gotWinter.Hour())
	assert.Equal(t, 12, gotSummer.Hour())
	assert.Equal(t, time.UTC, gotWinter.Location())
}

func TestClockFromUTC_RoundTrip(t *testing.T) {
	loc, err := time.LoadLocation("America/Toronto")
	require.NoError(t, err)

	anchor := time.Date(2026, 5, 4, 0, 0, 0, 0, loc)

	utc, err := AnchorToUTC("2:30 PM", anchor, loc)
	require.NoError(t, err)

	assert.Equal(t, "2:30 PM", ClockFromUTC(utc, loc))
}

func TestAnchorToUTC_InvalidClock(t *testing.T) {
	loc := time.UTC
	_, err := AnchorToUTC("not a time", time.Now(), loc)
	assert.Error(t, err)
}

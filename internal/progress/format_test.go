package progress

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatTime(t *testing.T) {
	tests := []struct {
		seconds int
		want    string
	}{
		{0, "0:00"},
		{5, "0:05"},
		{59, "0:59"},
		{60, "1:00"},
		{65, "1:05"},
		{600, "10:00"},
		{3725, "62:05"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatTime(tt.seconds))
	}
}

func TestFormatDate(t *testing.T) {
	ts := time.Date(2023, 12, 25, 10, 30, 0, 0, time.UTC)
	assert.Equal(t, "25/12/2023", FormatDate(ts))

	// The calendar day comes from UTC regardless of the input zone.
	zone := time.FixedZone("UTC+11", 11*3600)
	late := time.Date(2024, 1, 1, 5, 0, 0, 0, zone)
	assert.Equal(t, "31/12/2023", FormatDate(late))
}

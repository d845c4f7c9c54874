package schedule_test

import (
	"testing"

	"lodge/internal/domains/booking/schedule"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	parsed, err := schedule.ParseDate("2026-06-01")
	require.NoError(t, err)
	assert.Equal(t, date(2026, 6, 1), parsed)

	_, err = schedule.ParseDate("01/06/2026")
	assert.Error(t, err)

	_, err = schedule.ParseDate("2026-13-40")
	assert.Error(t, err)

	_, err = schedule.ParseDate("")
	assert.Error(t, err)
}

func TestNights(t *testing.T) {
	assert.Equal(t, 4, schedule.Nights(date(2026, 6, 1), date(2026, 6, 5)))
	assert.Equal(t, 1, schedule.Nights(date(2026, 6, 1), date(2026, 6, 2)))
	assert.Equal(t, 0, schedule.Nights(date(2026, 6, 1), date(2026, 6, 1)))
}

package biztime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit_InvalidTimezone(t *testing.T) {
	err := Init("Mars/Olympus_Mons")
	assert.Error(t, err)
}

func TestFormatInBizTimezone(t *testing.T) {
	require.NoError(t, Init("Asia/Tokyo"))
	t.Cleanup(func() { _ = Init("") })

	ts := time.Date(2025, 12, 31, 20, 0, 0, 0, time.UTC)
	assert.Equal(t, "2026-01-01 05:00", FormatInBizTimezone(ts, "2006-01-02 15:04"))
}

func TestNowUTC(t *testing.T) {
	assert.Equal(t, time.UTC, NowUTC().Location())
}

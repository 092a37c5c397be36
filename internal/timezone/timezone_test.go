package timezone

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocationFallsBackToLocal(t *testing.T) {
	assert.Equal(t, time.Local, Location(""))
	assert.Equal(t, time.Local, Location("Not/AZone"))
	assert.Equal(t, "UTC", Location("UTC").String())
}

func TestParse(t *testing.T) {
	want := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)

	got, err := Parse("2024-01-01T10:00:00Z", time.Local)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	got, err = Parse("2024-01-01 10:00", time.UTC)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	plus2 := time.FixedZone("plus2", 2*60*60)
	got, err = Parse("2024-01-01 12:00", plus2)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	_, err = Parse("tomorrow", time.UTC)
	assert.Error(t, err)
}

func TestFormatRange(t *testing.T) {
	start := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)

	assert.Equal(t, "Mon 01 Jan 2024 10:00 - 11:00", FormatRange(start, start.Add(time.Hour), time.UTC))
	assert.Equal(t, "Mon 01 Jan 2024 10:00 - Tue 02 Jan 2024 10:00", FormatRange(start, start.Add(24*time.Hour), time.UTC))
}

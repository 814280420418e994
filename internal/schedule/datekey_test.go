package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDateKey(t *testing.T) {
	got, err := ParseDateKey("27-Aug-2025")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, time.August, 27, 0, 0, 0, 0, time.UTC), got)

	got, err = ParseDateKey("29-Feb-2024")
	require.NoError(t, err)
	assert.Equal(t, time.February, got.Month())
}

func TestParseDateKey_Rejects(t *testing.T) {
	for _, in := range []string{
		"2025-08-27",
		"27/Aug/2025",
		"27-August-2025",
		"27-aug-2025",
		"7-Aug-2025",
		"27-Aug-25",
		"29-Feb-2025",
		"00-Jan-2025",
		" 27-Aug-2025",
	} {
		_, err := ParseDateKey(in)
		assert.ErrorIs(t, err, ErrInvalidDate, in)
		assert.Contains(t, err.Error(), "DD-Mon-YYYY", in)
	}
}

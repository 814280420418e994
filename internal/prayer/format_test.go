package prayer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToMinutes(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"00:00", 0},
		{"05:30", 330},
		{"5:30", 330},
		{"12:30", 750},
		{"23:59", 1439},
	}
	for _, tt := range tests {
		got, err := ToMinutes(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestToMinutes_Malformed(t *testing.T) {
	for _, in := range []string{"", "0530", "24:00", "12:60", "ab:cd", "12:5", "12:30:00"} {
		_, err := ToMinutes(in)
		var fe *FormatError
		assert.ErrorAs(t, err, &fe, in)
	}
}

func TestApplyOffsetClamped(t *testing.T) {
	assert.Equal(t, 340, ApplyOffsetClamped(330, 10))
	assert.Equal(t, 320, ApplyOffsetClamped(330, -10))
	assert.Equal(t, 0, ApplyOffsetClamped(15, -30))
	assert.Equal(t, 1439, ApplyOffsetClamped(1439, 5))
	assert.Equal(t, 1439, ApplyOffsetClamped(1430, 600))
}

func TestFormatMinutes(t *testing.T) {
	assert.Equal(t, "05:40", FormatMinutes(340))
	assert.Equal(t, "00:00", FormatMinutes(0))
	assert.Equal(t, "23:59", FormatMinutes(1439))
}

func TestFormatNoAmPm(t *testing.T) {
	tests := map[string]string{
		"00:15": "12:15",
		"05:40": "5:40",
		"12:00": "12:00",
		"12:30": "12:30",
		"13:05": "1:05",
		"18:30": "6:30",
		"23:59": "11:59",
	}
	for in, want := range tests {
		assert.Equal(t, want, FormatNoAmPm(in), in)
	}
}

func TestFormatNoAmPm_MalformedPassesThrough(t *testing.T) {
	for _, in := range []string{"", "noon", "12-30", "ab:cd", "1:2:3"} {
		assert.Equal(t, in, FormatNoAmPm(in))
	}
}

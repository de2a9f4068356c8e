package timecode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToPresentation(t *testing.T) {
	tests := []struct {
		name    string
		seconds float64
		want    string
	}{
		{"zero", 0, "00:00:00,000"},
		{"sub second", 0.5, "00:00:00,500"},
		{"one hour one minute", 3661.25, "01:01:01,250"},
		{"truncates sub millisecond", 1.2349, "00:00:01,234"},
		{"does not round up", 59.9999, "00:00:59,999"},
		{"float noise", 1.001, "00:00:01,001"},
		{"over a day", 90061.5, "25:01:01,500"},
		{"negative clamps", -3, "00:00:00,000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ToPresentation(tt.seconds))
		})
	}
}

func TestFromPresentation(t *testing.T) {
	got, err := FromPresentation("01:01:01,250")
	require.NoError(t, err)
	assert.Equal(t, 3661.25, got)

	got, err = FromPresentation("  00:00:02,000 ")
	require.NoError(t, err)
	assert.Equal(t, 2.0, got)
}

func TestFromPresentationMalformed(t *testing.T) {
	inputs := []string{
		"",
		"00:00:01.000",
		"00:01,000",
		"aa:00:01,000",
		"00:60:00,000",
		"00:00:61,000",
		"00:00:01,12",
		"00:00:01,1234",
		"00:00:-1,000",
		"00:00:01,000 --> 00:00:02,000",
	}

	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			_, err := FromPresentation(in)
			assert.ErrorIs(t, err, ErrMalformedTimestamp)
		})
	}
}

func TestPresentationRoundTrip(t *testing.T) {
	values := []float64{0, 0.001, 0.01, 1.5, 1.001, 59.999, 3723.001, 45296.789, 86399.999, 359999.999}

	for _, s := range values {
		got, err := FromPresentation(ToPresentation(s))
		require.NoError(t, err)
		assert.Equal(t, s, got, "round trip of %v", s)
	}

	for ms := Millis(0); ms < 5000; ms += 7 {
		got, err := FromPresentation(ToPresentation(ms.Seconds()))
		require.NoError(t, err)
		assert.Equal(t, ms.Seconds(), got)
	}
}

func TestClockScaling(t *testing.T) {
	assert.Equal(t, Millis(1500), Ticks(150).Millis())
	assert.Equal(t, Ticks(150), Millis(1500).Ticks())
	assert.Equal(t, Ticks(150), Millis(1509).Ticks())
	assert.Equal(t, 1.5, Ticks(150).Seconds())
	assert.Equal(t, 1.5, Millis(1500).Seconds())
	assert.Equal(t, Ticks(123), TicksFromSeconds(1.234))
	assert.Equal(t, Ticks(124), TicksFromSeconds(1.236))
}

// Package timecode converts between the transcript tick clock, the chapter
// millisecond clock and the HH:MM:SS,mmm presentation format used by SRT and
// cue sheets.
package timecode

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrMalformedTimestamp is returned when a presentation timestamp cannot be parsed.
var ErrMalformedTimestamp = errors.New("malformed timestamp")

const (
	millisPerTick   = 10
	millisPerSecond = 1000
	millisPerMinute = 60 * millisPerSecond
	millisPerHour   = 60 * millisPerMinute

	// floorSlack absorbs float noise when a millisecond-aligned value is scaled,
	// e.g. 1.001*1000 == 1000.9999999999999.
	floorSlack = 1e-6
)

// Ticks is a position on the transcriber's clock. One tick is 10 ms.
type Ticks int64

// Millis is a position on the chapter clock.
type Millis int64

// Millis scales ticks onto the millisecond clock.
func (t Ticks) Millis() Millis {
	return Millis(t * millisPerTick)
}

// Seconds returns the tick position in seconds.
func (t Ticks) Seconds() float64 {
	return t.Millis().Seconds()
}

// Ticks scales milliseconds back onto the tick clock, truncating sub-tick remainders.
func (m Millis) Ticks() Ticks {
	return Ticks(m / millisPerTick)
}

// Seconds returns the millisecond position in seconds.
func (m Millis) Seconds() float64 {
	return float64(m) / millisPerSecond
}

// TicksFromSeconds rounds a seconds value to the nearest tick.
func TicksFromSeconds(seconds float64) Ticks {
	return Ticks(math.Round(seconds * millisPerSecond / millisPerTick))
}

// ToPresentation formats seconds as HH:MM:SS,mmm. Every field is truncated,
// never rounded. Negative and NaN input format as zero.
func ToPresentation(seconds float64) string {
	if math.IsNaN(seconds) || seconds < 0 {
		seconds = 0
	}
	total := int64(math.Floor(seconds*millisPerSecond + floorSlack))

	hours := total / millisPerHour
	minutes := total % millisPerHour / millisPerMinute
	secs := total % millisPerMinute / millisPerSecond
	millis := total % millisPerSecond

	return fmt.Sprintf("%02d:%02d:%02d,%03d", hours, minutes, secs, millis)
}

// FromPresentation parses an HH:MM:SS,mmm timestamp into seconds.
func FromPresentation(text string) (float64, error) {
	ms, err := parseMillis(strings.TrimSpace(text))
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %v", ErrMalformedTimestamp, text, err)
	}
	return ms.Seconds(), nil
}

func parseMillis(text string) (Millis, error) {
	fields := strings.Split(text, ":")
	if len(fields) != 3 {
		return 0, errors.New("expected HH:MM:SS,mmm")
	}
	secField, msField, ok := strings.Cut(fields[2], ",")
	if !ok {
		return 0, errors.New("missing comma before milliseconds")
	}

	hours, err := parseField(fields[0], 0, 0)
	if err != nil {
		return 0, fmt.Errorf("hours: %w", err)
	}
	minutes, err := parseField(fields[1], 2, 60)
	if err != nil {
		return 0, fmt.Errorf("minutes: %w", err)
	}
	secs, err := parseField(secField, 2, 60)
	if err != nil {
		return 0, fmt.Errorf("seconds: %w", err)
	}
	if len(msField) != 3 {
		return 0, errors.New("milliseconds must have three digits")
	}
	millis, err := parseField(msField, 3, 0)
	if err != nil {
		return 0, fmt.Errorf("milliseconds: %w", err)
	}

	return Millis(hours*millisPerHour + minutes*millisPerMinute + secs*millisPerSecond + millis), nil
}

// parseField parses an unsigned decimal of at most maxDigits digits (0 means
// unbounded) that must stay below limit when limit is non-zero.
func parseField(s string, maxDigits int, limit int64) (int64, error) {
	if s == "" {
		return 0, errors.New("empty field")
	}
	if maxDigits > 0 && len(s) > maxDigits {
		return 0, fmt.Errorf("too many digits in %q", s)
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("non-digit in %q", s)
		}
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, err
	}
	if limit > 0 && v >= limit {
		return 0, fmt.Errorf("%d out of range", v)
	}
	return v, nil
}

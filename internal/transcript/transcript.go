// Package transcript holds the timestamped segment model and the SRT reader
// that turns an existing subtitle file back into segments.
package transcript

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chapterize/chapterize/internal/timecode"
)

// Segment is one timestamped span of transcript text, on the tick clock.
type Segment struct {
	Start timecode.Ticks
	End   timecode.Ticks
	Text  string
}

const timingSeparator = " --> "

// ParseSRT reads blank-line separated SRT entries. Entries with fewer than
// three lines are ignored; multi-line text is joined with single spaces.
func ParseSRT(r io.Reader) ([]Segment, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read srt: %w", err)
	}
	content := strings.ReplaceAll(string(bytes.TrimPrefix(data, []byte("\ufeff"))), "\r\n", "\n")
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, nil
	}

	var segments []Segment
	for i, entry := range strings.Split(content, "\n\n") {
		lines := strings.Split(strings.Trim(entry, "\n"), "\n")
		if len(lines) < 3 {
			continue
		}

		startText, endText, ok := strings.Cut(lines[1], timingSeparator)
		if !ok {
			return nil, fmt.Errorf("entry %d: %w: missing %q in %q",
				i+1, timecode.ErrMalformedTimestamp, strings.TrimSpace(timingSeparator), lines[1])
		}
		start, err := timecode.FromPresentation(startText)
		if err != nil {
			return nil, fmt.Errorf("entry %d start: %w", i+1, err)
		}
		end, err := timecode.FromPresentation(endText)
		if err != nil {
			return nil, fmt.Errorf("entry %d end: %w", i+1, err)
		}

		segments = append(segments, Segment{
			Start: timecode.TicksFromSeconds(start),
			End:   timecode.TicksFromSeconds(end),
			Text:  strings.Join(lines[2:], " "),
		})
	}

	return segments, nil
}

// ReadSRTFile parses the SRT file at path.
func ReadSRTFile(path string) ([]Segment, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open srt: %w", err)
	}
	defer f.Close()

	segments, err := ParseSRT(f)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return segments, nil
}

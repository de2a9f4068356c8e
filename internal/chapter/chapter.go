// Package chapter folds an ordered transcript into contiguous, named chapter
// intervals on the millisecond clock.
package chapter

import (
	"fmt"

	"github.com/chapterize/chapterize/internal/timecode"
	"github.com/chapterize/chapterize/internal/transcript"
)

// DefaultInitialName names the interval before the first detected boundary.
const DefaultInitialName = "Intro"

// Detector classifies segment text as a chapter boundary.
type Detector interface {
	IsChapterBoundary(text string) bool
}

// DetectorFunc adapts a plain function to Detector.
type DetectorFunc func(text string) bool

// IsChapterBoundary calls f(text).
func (f DetectorFunc) IsChapterBoundary(text string) bool {
	return f(text)
}

// Chapter is a half-open interval [Start, End) with a title.
type Chapter struct {
	Index int
	Start timecode.Millis
	End   timecode.Millis
	Name  string
}

// Duration returns End - Start.
func (c Chapter) Duration() timecode.Millis {
	return c.End - c.Start
}

// InitialName returns the name of the first interval. With the intro
// disabled the first interval is numbered like any other chapter.
func InitialName(noIntro bool, index int) string {
	if noIntro {
		return fmt.Sprintf("Chapter %d", index)
	}
	return DefaultInitialName
}

// Fold walks segments once, closing the open interval whenever d reports a
// boundary. The final interval ends at the last segment's end. An empty
// transcript yields no chapters.
func Fold(segments []transcript.Segment, d Detector, initialName string, initialIndex int) []Chapter {
	if len(segments) == 0 {
		return nil
	}

	var chapters []Chapter
	var start timecode.Ticks
	name := initialName

	for _, seg := range segments {
		if !d.IsChapterBoundary(seg.Text) {
			continue
		}
		chapters = append(chapters, Chapter{
			Index: initialIndex + len(chapters),
			Start: start.Millis(),
			End:   seg.Start.Millis(),
			Name:  name,
		})
		start = seg.Start
		name = seg.Text
	}

	return append(chapters, Chapter{
		Index: initialIndex + len(chapters),
		Start: start.Millis(),
		End:   segments[len(segments)-1].End.Millis(),
		Name:  name,
	})
}

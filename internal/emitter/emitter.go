// Package emitter renders transcript segments and chapters into the output
// artifacts. Every writer is a pure function of its inputs; the *File
// variants overwrite their target so a run can be repeated.
package emitter

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chapterize/chapterize/internal/chapter"
	"github.com/chapterize/chapterize/internal/timecode"
	"github.com/chapterize/chapterize/internal/transcript"
)

// WriteSRT writes one numbered cue per segment.
func WriteSRT(w io.Writer, segments []transcript.Segment) error {
	bw := bufio.NewWriter(w)
	for i, seg := range segments {
		fmt.Fprintf(bw, "%d\n%s --> %s\n%s\n\n",
			i+1,
			timecode.ToPresentation(seg.Start.Seconds()),
			timecode.ToPresentation(seg.End.Seconds()),
			seg.Text,
		)
	}
	return bw.Flush()
}

// WriteCue writes a cue sheet with one track per chapter. Titles are written
// as-is.
func WriteCue(w io.Writer, audioName string, chapters []chapter.Chapter) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "FILE \"%s\" WAVE\n", audioName)
	for i, ch := range chapters {
		fmt.Fprintf(bw, "  TRACK %02d AUDIO\n", i+1)
		fmt.Fprintf(bw, "    TITLE \"%s\"\n", ch.Name)
		fmt.Fprintf(bw, "    INDEX 01 %s\n", timecode.ToPresentation(ch.Start.Seconds()))
	}
	return bw.Flush()
}

// WriteMarkdown writes a heading per chapter followed by the text of every
// segment starting inside it.
func WriteMarkdown(w io.Writer, chapters []chapter.Chapter, segments []transcript.Segment) error {
	bw := bufio.NewWriter(w)
	for _, ch := range chapters {
		fmt.Fprintf(bw, "# %s\n\n", ch.Name)
		fmt.Fprintf(bw, "%s\n\n", ChapterText(ch, segments))
	}
	return bw.Flush()
}

// WriteRaw writes millisecond timestamps and text for every segment.
func WriteRaw(w io.Writer, segments []transcript.Segment) error {
	bw := bufio.NewWriter(w)
	for _, seg := range segments {
		fmt.Fprintf(bw, "t0: %d, t1: %d\n", seg.Start.Millis(), seg.End.Millis())
		fmt.Fprintf(bw, "%s\n\n", seg.Text)
	}
	return bw.Flush()
}

// ChapterText joins the text of the segments whose start lies in [ch.Start, ch.End).
func ChapterText(ch chapter.Chapter, segments []transcript.Segment) string {
	var parts []string
	for _, seg := range segments {
		if start := seg.Start.Millis(); ch.Start <= start && start < ch.End {
			parts = append(parts, seg.Text)
		}
	}
	return strings.Join(parts, " ")
}

// WriteSRTFile writes segments to path as SRT.
func WriteSRTFile(path string, segments []transcript.Segment) error {
	return writeFile(path, func(w io.Writer) error { return WriteSRT(w, segments) })
}

// WriteCueFile writes the cue sheet to path.
func WriteCueFile(path, audioName string, chapters []chapter.Chapter) error {
	return writeFile(path, func(w io.Writer) error { return WriteCue(w, audioName, chapters) })
}

// WriteMarkdownFile writes the chapter-grouped transcript to path.
func WriteMarkdownFile(path string, chapters []chapter.Chapter, segments []transcript.Segment) error {
	return writeFile(path, func(w io.Writer) error { return WriteMarkdown(w, chapters, segments) })
}

// WriteRawFile writes the timestamp dump to path.
func WriteRawFile(path string, segments []transcript.Segment) error {
	return writeFile(path, func(w io.Writer) error { return WriteRaw(w, segments) })
}

func writeFile(path string, render func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := render(f); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}

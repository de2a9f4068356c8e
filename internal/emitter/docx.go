package emitter

import (
	"fmt"

	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/docx"

	"github.com/chapterize/chapterize/internal/chapter"
	"github.com/chapterize/chapterize/internal/timecode"
	"github.com/chapterize/chapterize/internal/transcript"
)

const (
	fontName    = "Times New Roman"
	fontSize    = 13
	titleSize   = 16
	headingSize = 14
	noteSize    = 10
)

// WriteDocxFile writes the chapter-grouped transcript as a Word document.
func WriteDocxFile(path, title string, chapters []chapter.Chapter, segments []transcript.Segment) error {
	doc, err := godocx.NewDocument()
	if err != nil {
		return fmt.Errorf("create document: %w", err)
	}

	addRun(doc.AddParagraph(""), title, true, titleSize)

	for _, ch := range chapters {
		addRun(doc.AddParagraph(""), ch.Name, true, headingSize)
		addRun(doc.AddParagraph(""), fmt.Sprintf("%s - %s",
			timecode.ToPresentation(ch.Start.Seconds()),
			timecode.ToPresentation(ch.End.Seconds()),
		), false, noteSize)

		if text := ChapterText(ch, segments); text != "" {
			addRun(doc.AddParagraph(""), text, false, fontSize)
		}
	}

	if err := doc.SaveTo(path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

func addRun(p *docx.Paragraph, text string, bold bool, size uint64) {
	run := p.AddText(text).Font(fontName).Size(size).Color("000000")
	if bold {
		run.Bold(true)
	}
}

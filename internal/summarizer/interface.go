package summarizer

import (
	"context"

	"github.com/chapterize/chapterize/internal/chapter"
	"github.com/chapterize/chapterize/internal/transcript"
)

// Summarizer produces an LLM-written markdown summary per chapter.
type Summarizer interface {
	SummarizeChapters(ctx context.Context, title string, chapters []chapter.Chapter, segments []transcript.Segment) (string, error)
}

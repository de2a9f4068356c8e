package processor

import (
	"context"
	"os"

	"github.com/chapterize/chapterize/internal/chapter"
	"github.com/chapterize/chapterize/internal/transcript"
)

func (p *implProcessor) writeSummary(ctx context.Context, path, title string, chapters []chapter.Chapter, segments []transcript.Segment) {
	md, err := p.summarizer.SummarizeChapters(ctx, title, chapters, segments)
	if err != nil {
		p.logger.Warn(ctx, "Failed to summarize chapters: %v", err)
		return
	}
	if err := os.WriteFile(path, []byte(md), 0644); err != nil {
		p.logger.Warn(ctx, "Failed to write summary %s: %v", path, err)
		return
	}
	p.logger.Info(ctx, "Summary written: %s", path)
}

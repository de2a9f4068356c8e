package processor

import (
	"context"
	"time"

	"github.com/simonhull/audiometa"

	"github.com/chapterize/chapterize/internal/chapter"
)

// durationSlack tolerates transcripts that end slightly past the container duration.
const durationSlack = time.Second

// probe logs what the container says about the recording and warns when the
// transcript runs past the end of the audio. It never fails the run.
func (p *implProcessor) probe(ctx context.Context, inputPath string, chapters []chapter.Chapter) {
	file, err := audiometa.OpenContext(ctx, inputPath)
	if err != nil {
		p.logger.Debug(ctx, "Skipping media probe for %s: %v", inputPath, err)
		return
	}
	defer file.Close() //nolint:errcheck // read-only handle

	duration := file.Audio.Duration
	p.logger.Info(ctx, "Media: %s, duration %s, %d embedded chapters",
		file.Format.String(), duration.Truncate(time.Second), len(file.Chapters))

	if len(chapters) == 0 || duration <= 0 {
		return
	}
	end := time.Duration(chapters[len(chapters)-1].End) * time.Millisecond
	if end > duration+durationSlack {
		p.logger.Warn(ctx, "Transcript ends at %s but audio is only %s long; last chapter will be truncated",
			end.Truncate(time.Millisecond), duration.Truncate(time.Millisecond))
	}
}

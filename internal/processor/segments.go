package processor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/chapterize/chapterize/internal/emitter"
	"github.com/chapterize/chapterize/internal/transcript"
)

// srtPathFor returns the sidecar subtitle path next to the recording.
func srtPathFor(inputPath string) string {
	return strings.TrimSuffix(inputPath, filepath.Ext(inputPath)) + ".srt"
}

// loadSegments reuses the sidecar SRT when present. Otherwise the recording
// is transcribed and the sidecar is written for the next run.
func (p *implProcessor) loadSegments(ctx context.Context, inputPath string) ([]transcript.Segment, error) {
	srtPath := srtPathFor(inputPath)

	if _, err := os.Stat(srtPath); err == nil {
		p.logger.Info(ctx, "Using existing SRT file: %s", srtPath)
		return transcript.ReadSRTFile(srtPath)
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("stat %s: %w", srtPath, err)
	}

	segments, err := p.transcriber.Transcribe(ctx, inputPath)
	if err != nil {
		return nil, err
	}

	if err := emitter.WriteSRTFile(srtPath, segments); err != nil {
		return nil, fmt.Errorf("write sidecar subtitle: %w", err)
	}
	p.logger.Info(ctx, "Created SRT file: %s", srtPath)
	return segments, nil
}

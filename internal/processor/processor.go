package processor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/chapterize/chapterize/internal/chapter"
	"github.com/chapterize/chapterize/internal/emitter"
	"github.com/chapterize/chapterize/internal/logger"
)

// Process runs the whole pipeline for one recording. Artifacts are written in
// a fixed order and the first failure stops the run; earlier files stay.
func (p *implProcessor) Process(ctx context.Context, inputPath string) error {
	ctx = logger.WithRunID(ctx, uuid.NewString())
	startTime := time.Now()
	name := strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath))

	p.logger.Info(ctx, "========================================")
	p.logger.Info(ctx, "Starting chapter processing: %s", inputPath)
	p.logger.Info(ctx, "========================================")

	// Step 1: Segments from an existing SRT or a fresh transcription
	segments, err := p.loadSegments(ctx, inputPath)
	if err != nil {
		return fmt.Errorf("load transcript: %w", err)
	}
	if len(segments) == 0 {
		p.logger.Warn(ctx, "Transcript of %s is empty, writing empty artifacts", inputPath)
	}

	// Step 2: Chapters
	chapters := chapter.Fold(segments, p.detector, p.initialName(), p.cfg.Chapters.InitialIndex)
	p.logger.Info(ctx, "Detected %d chapters in %d segments", len(chapters), len(segments))
	for _, ch := range chapters {
		p.logger.Debug(ctx, "  [%02d] %d-%d ms %s", ch.Index, ch.Start, ch.End, ch.Name)
	}

	p.probe(ctx, inputPath, chapters)

	outputDir := filepath.Join(p.cfg.Paths.Output, name)
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	artifact := func(suffix string) string {
		return filepath.Join(outputDir, name+suffix)
	}

	// Step 3: Subtitle file and cue sheet
	if err := emitter.WriteSRTFile(artifact(".srt"), segments); err != nil {
		return fmt.Errorf("write subtitle file: %w", err)
	}
	if err := emitter.WriteCueFile(artifact(".cue"), filepath.Base(inputPath), chapters); err != nil {
		return fmt.Errorf("write cue sheet: %w", err)
	}

	// Step 4: One audio file per chapter
	files, err := p.splitter.Split(ctx, inputPath, outputDir, chapters)
	if err != nil {
		return fmt.Errorf("split audio: %w", err)
	}

	// Step 5: Text artifacts
	if err := emitter.WriteMarkdownFile(artifact(".md"), chapters, segments); err != nil {
		return fmt.Errorf("write markdown: %w", err)
	}
	if err := emitter.WriteRawFile(artifact("_timestamps.txt"), segments); err != nil {
		return fmt.Errorf("write timestamps: %w", err)
	}
	if p.cfg.Output.Docx {
		if err := emitter.WriteDocxFile(artifact(".docx"), name, chapters, segments); err != nil {
			return fmt.Errorf("write docx: %w", err)
		}
	}

	// Step 6: Optional summaries never fail the run
	if p.summarizer != nil && len(chapters) > 0 {
		p.writeSummary(ctx, artifact("_summary.md"), name, chapters, segments)
	}

	p.logger.Info(ctx, "========================================")
	p.logger.Info(ctx, "Processing completed successfully!")
	p.logger.Info(ctx, "Output folder: %s", outputDir)
	p.logger.Info(ctx, "Chapter files: %d", len(files))
	p.logger.Info(ctx, "Processing time: %s", time.Since(startTime))
	p.logger.Info(ctx, "========================================")

	return nil
}

func (p *implProcessor) initialName() string {
	if p.cfg.Chapters.InitialName != "" {
		return p.cfg.Chapters.InitialName
	}
	return chapter.InitialName(p.cfg.Chapters.NoIntro, p.cfg.Chapters.InitialIndex)
}

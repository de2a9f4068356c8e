// Package splitter cuts the source recording into one audio file per chapter.
package splitter

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/chapterize/chapterize/internal/chapter"
)

// Split extracts every chapter of source into outputDir, in chapter order.
// It stops at the first failure; files already written are left in place.
// The returned paths are the files produced so far.
func (s *Splitter) Split(ctx context.Context, source, outputDir string, chapters []chapter.Chapter) ([]string, error) {
	if err := os.MkdirAll(s.cfg.Paths.Temp, 0755); err != nil {
		return nil, fmt.Errorf("create temp dir: %w", err)
	}

	var written []string
	for _, ch := range chapters {
		if ch.Duration() <= 0 {
			s.logger.Warn(ctx, "Skipping empty chapter %02d %q", ch.Index, ch.Name)
			continue
		}

		name := FileName(ch, s.cfg.Chapters.Naming, s.cfg.FFmpeg.Extension, s.cfg.Chapters.TitleMaxLen)
		outputPath := filepath.Join(outputDir, name)

		if err := s.extractChapter(ctx, source, outputPath, ch); err != nil {
			return written, &ExtractionError{Index: ch.Index, Title: ch.Name, Err: err}
		}

		s.logger.Info(ctx, "Created chapter file: %s", outputPath)
		written = append(written, outputPath)
	}
	return written, nil
}

// extractChapter cuts the interval into a temporary WAV, then encodes it.
func (s *Splitter) extractChapter(ctx context.Context, source, outputPath string, ch chapter.Chapter) error {
	tmp, err := os.CreateTemp(s.cfg.Paths.Temp, "chapter-*.wav")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	tmp.Close()
	defer s.cleanupTempFile(ctx, tmpPath)

	cut := []string{
		"-y",
		"-ss", seconds(ch.Start.Seconds()),
		"-t", seconds(ch.Duration().Seconds()),
		"-i", source,
		"-f", "wav",
		tmpPath,
	}
	if _, err := s.executor.Execute(ctx, s.cfg.FFmpeg.BinaryPath, cut...); err != nil {
		return fmt.Errorf("cut segment: %w", err)
	}

	encode := []string{
		"-y",
		"-i", tmpPath,
		"-c:a", s.cfg.FFmpeg.AudioCodec,
		"-b:a", s.cfg.FFmpeg.AudioBitrate,
		outputPath,
	}
	if _, err := s.executor.Execute(ctx, s.cfg.FFmpeg.BinaryPath, encode...); err != nil {
		return fmt.Errorf("encode %s: %w", filepath.Base(outputPath), err)
	}
	return nil
}

// cleanupTempFile removes a temporary file, logs warning if fails
func (s *Splitter) cleanupTempFile(ctx context.Context, path string) {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		s.logger.Warn(ctx, "Failed to cleanup temp file %s: %v", path, err)
	}
}

func seconds(v float64) string {
	return strconv.FormatFloat(v, 'f', 3, 64)
}

package transcriber

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/chapterize/chapterize/internal/transcript"
)

// Transcribe converts the input to 16 kHz mono WAV, runs whisper.cpp with SRT
// output and reads the segments back.
func (w *implWhisper) Transcribe(ctx context.Context, audioPath string) ([]transcript.Segment, error) {
	if err := os.MkdirAll(w.cfg.Paths.Temp, 0755); err != nil {
		return nil, fmt.Errorf("%w: create temp dir: %w", ErrTranscription, err)
	}
	workDir, err := os.MkdirTemp(w.cfg.Paths.Temp, "transcribe-*")
	if err != nil {
		return nil, fmt.Errorf("%w: create work dir: %w", ErrTranscription, err)
	}
	defer os.RemoveAll(workDir)

	wavPath, err := w.extractAudio(ctx, audioPath, workDir)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTranscription, err)
	}

	outputPrefix := filepath.Join(workDir, "transcript")

	w.logger.Info(ctx, "Transcribing %s with model %s (%d threads)", audioPath, w.modelPath, w.cfg.Whisper.Threads)

	// -ml caps segment length in characters so boundaries land on short segments.
	args := []string{
		"-m", w.modelPath,
		"-f", wavPath,
		"-osrt",
		"-l", w.cfg.Whisper.Language,
		"-t", strconv.Itoa(w.cfg.Whisper.Threads),
		"-ml", strconv.Itoa(w.cfg.Whisper.MaxLen),
	}
	if w.cfg.Whisper.Prompt != "" {
		args = append(args, "--prompt", w.cfg.Whisper.Prompt)
	}
	args = append(args, "-of", outputPrefix)

	if _, err := w.executor.Execute(ctx, w.cfg.Whisper.BinaryPath, args...); err != nil {
		return nil, fmt.Errorf("%w: whisper: %w", ErrTranscription, err)
	}

	segments, err := transcript.ReadSRTFile(outputPrefix + ".srt")
	if err != nil {
		return nil, fmt.Errorf("%w: read whisper output: %w", ErrTranscription, err)
	}

	w.logger.Info(ctx, "Transcription completed: %d segments", len(segments))
	return segments, nil
}

// extractAudio writes the mono WAV whisper.cpp expects into workDir.
func (w *implWhisper) extractAudio(ctx context.Context, audioPath, workDir string) (string, error) {
	wavPath := filepath.Join(workDir, "audio.wav")

	w.logger.Debug(ctx, "Extracting %d Hz mono audio: %s", w.cfg.FFmpeg.SampleRate, audioPath)

	args := []string{
		"-y",
		"-i", audioPath,
		"-vn",
		"-ar", strconv.Itoa(w.cfg.FFmpeg.SampleRate),
		"-ac", "1",
		"-c:a", "pcm_s16le",
		wavPath,
	}
	if _, err := w.executor.Execute(ctx, w.cfg.FFmpeg.BinaryPath, args...); err != nil {
		return "", fmt.Errorf("ffmpeg extract audio: %w", err)
	}
	return wavPath, nil
}

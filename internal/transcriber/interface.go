package transcriber

import (
	"context"
	"errors"

	"github.com/chapterize/chapterize/internal/transcript"
)

// ErrTranscription marks failures of the external speech-to-text step.
var ErrTranscription = errors.New("transcription failed")

// Transcriber turns an audio file into ordered transcript segments.
type Transcriber interface {
	Transcribe(ctx context.Context, audioPath string) ([]transcript.Segment, error)
}

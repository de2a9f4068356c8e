package processor

import (
	"github.com/chapterize/chapterize/internal/chapter"
	"github.com/chapterize/chapterize/internal/config"
	"github.com/chapterize/chapterize/internal/logger"
	"github.com/chapterize/chapterize/internal/splitter"
	"github.com/chapterize/chapterize/internal/summarizer"
	"github.com/chapterize/chapterize/internal/transcriber"
	"github.com/chapterize/chapterize/pkg/executor"
)

type implProcessor struct {
	cfg         *config.Config
	logger      logger.Logger
	detector    chapter.Detector
	transcriber transcriber.Transcriber
	splitter    *splitter.Splitter
	summarizer  summarizer.Summarizer
}

// Option customizes a Processor.
type Option func(*implProcessor)

// WithTranscriber replaces the whisper.cpp transcriber.
func WithTranscriber(t transcriber.Transcriber) Option {
	return func(p *implProcessor) { p.transcriber = t }
}

// WithSummarizer enables chapter summaries.
func WithSummarizer(s summarizer.Summarizer) Option {
	return func(p *implProcessor) { p.summarizer = s }
}

// New creates a new Processor instance
func New(cfg *config.Config, exec executor.Executor, log logger.Logger, detector chapter.Detector, opts ...Option) Processor {
	p := &implProcessor{
		cfg:         cfg,
		logger:      log,
		detector:    detector,
		transcriber: transcriber.NewWhisper(cfg, exec, log),
		splitter:    splitter.New(cfg, exec, log),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

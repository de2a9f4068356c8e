package splitter

import (
	"github.com/chapterize/chapterize/internal/config"
	"github.com/chapterize/chapterize/internal/logger"
	"github.com/chapterize/chapterize/pkg/executor"
)

type Splitter struct {
	cfg      *config.Config
	executor executor.Executor
	logger   logger.Logger
}

// New creates a Splitter that drives ffmpeg through exec.
func New(cfg *config.Config, exec executor.Executor, log logger.Logger) *Splitter {
	return &Splitter{
		cfg:      cfg,
		executor: exec,
		logger:   log,
	}
}

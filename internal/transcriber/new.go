package transcriber

import (
	"path/filepath"
	"strings"

	"github.com/chapterize/chapterize/internal/config"
	"github.com/chapterize/chapterize/internal/logger"
	"github.com/chapterize/chapterize/pkg/executor"
)

type implWhisper struct {
	cfg       *config.Config
	executor  executor.Executor
	logger    logger.Logger
	modelPath string
}

// NewWhisper creates a Transcriber backed by the whisper.cpp CLI.
func NewWhisper(cfg *config.Config, exec executor.Executor, log logger.Logger) Transcriber {
	modelPath := cfg.Whisper.ModelPath
	if modelPath == "" {
		modelPath = ResolveModel(cfg.Whisper.ModelsDir, cfg.Whisper.Model)
	}
	return &implWhisper{
		cfg:       cfg,
		executor:  exec,
		logger:    log,
		modelPath: modelPath,
	}
}

// ResolveModel maps a model name such as "base" to models/ggml-base.bin.
// Anything that already looks like a file path is returned unchanged.
func ResolveModel(modelsDir, name string) string {
	if strings.ContainsRune(name, filepath.Separator) || strings.ContainsRune(name, '/') || filepath.Ext(name) == ".bin" {
		return name
	}
	return filepath.Join(modelsDir, "ggml-"+name+".bin")
}

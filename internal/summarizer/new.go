package summarizer

import (
	"context"
	"sync"

	"github.com/chapterize/chapterize/internal/logger"
)

type generateFunc func(ctx context.Context, apiKey, model, prompt string) (string, error)

type implSummarizer struct {
	apiKeys    []string
	mu         sync.Mutex
	currentKey int
	logger     logger.Logger
	model      string
	generate   generateFunc
}

// New creates a Summarizer that rotates through the supplied Gemini API keys.
func New(apiKeys []string, model string, log logger.Logger) Summarizer {
	return &implSummarizer{
		apiKeys:  apiKeys,
		logger:   log,
		model:    model,
		generate: generateGemini,
	}
}

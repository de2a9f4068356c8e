package summarizer

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/chapterize/chapterize/internal/chapter"
	"github.com/chapterize/chapterize/internal/emitter"
	"github.com/chapterize/chapterize/internal/transcript"
)

const summaryPrompt = `You are summarizing one chapter of a spoken recording.
Write a concise summary in the language of the transcript.

Requirements:
- Start with one sentence describing what the chapter is about
- List the main points in the order they appear, as bullet points
- Keep names, numbers and technical terms exactly as spoken
- Do not invent content that is not in the transcript

Chapter title: %s

Transcript:
---
%s
---`

var errNoKeys = errors.New("no Gemini API keys configured")

// SummarizeChapters asks Gemini for a summary of every non-empty chapter and
// returns them as one markdown document.
func (s *implSummarizer) SummarizeChapters(ctx context.Context, title string, chapters []chapter.Chapter, segments []transcript.Segment) (string, error) {
	if len(s.apiKeys) == 0 {
		return "", errNoKeys
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", title)

	for i, ch := range chapters {
		text := emitter.ChapterText(ch, segments)
		if strings.TrimSpace(text) == "" {
			continue
		}

		s.logger.Info(ctx, "[%d/%d] Summarizing: %s", i+1, len(chapters), ch.Name)

		summary, err := s.callGemini(ctx, fmt.Sprintf(summaryPrompt, ch.Name, text))
		if err != nil {
			return "", fmt.Errorf("summarize chapter %q: %w", ch.Name, err)
		}

		fmt.Fprintf(&b, "## %s\n\n%s\n\n", ch.Name, strings.TrimSpace(summary))
	}

	return b.String(), nil
}

// callGemini sends the prompt and returns the response text.
// Rotates API keys on 429 / quota errors.
func (s *implSummarizer) callGemini(ctx context.Context, prompt string) (string, error) {
	var lastErr error

	for range len(s.apiKeys) {
		key := s.key()
		text, err := s.generate(ctx, s.apiKeys[key], s.model, prompt)
		if err == nil {
			return text, nil
		}
		if !isQuotaError(err) {
			return "", err
		}
		s.logger.Warn(ctx, "Key %d rate limited, rotating...", key+1)
		s.rotateKey(key)
		lastErr = err
	}

	return "", fmt.Errorf("all API keys exhausted: %w", lastErr)
}

func (s *implSummarizer) key() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentKey
}

// rotateKey moves past the key that failed. Another caller may already have.
func (s *implSummarizer) rotateKey(failed int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.currentKey == failed {
		s.currentKey = (s.currentKey + 1) % len(s.apiKeys)
	}
}

func isQuotaError(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "429") || strings.Contains(msg, "quota") || strings.Contains(msg, "RESOURCE_EXHAUSTED")
}

func generateGemini(ctx context.Context, apiKey, model, prompt string) (string, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return "", fmt.Errorf("create client: %w", err)
	}

	result, err := client.Models.GenerateContent(ctx, model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	if result != nil && len(result.Candidates) > 0 && result.Candidates[0].Content != nil {
		var text string
		for _, part := range result.Candidates[0].Content.Parts {
			if part.Text != "" {
				text += part.Text
			}
		}
		return text, nil
	}

	return "", errors.New("empty response from Gemini")
}

package main

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chapterize/chapterize/internal/config"
)

func TestParseArgs(t *testing.T) {
	opts, err := parseArgs([]string{"-i", "book.mp3", "-model", "small", "-threads", "4", "-chapter-index", "1", "-no-intro"}, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, "book.mp3", opts.input)

	cfg := config.Default()
	require.NoError(t, opts.apply(cfg))
	assert.Equal(t, "small", cfg.Whisper.Model)
	assert.Equal(t, 4, cfg.Whisper.Threads)
	assert.Equal(t, 1, cfg.Chapters.InitialIndex)
	assert.True(t, cfg.Chapters.NoIntro)
	assert.False(t, cfg.Output.Docx)
}

func TestParseArgsLongInput(t *testing.T) {
	opts, err := parseArgs([]string{"--input=book.m4b", "--docx"}, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, "book.m4b", opts.input)

	cfg := config.Default()
	cfg.Whisper.Threads = 12
	require.NoError(t, opts.apply(cfg))
	assert.Equal(t, 12, cfg.Whisper.Threads, "unset flags keep config values")
	assert.True(t, cfg.Output.Docx)
}

func TestParseArgsRequiresInputOrWatch(t *testing.T) {
	_, err := parseArgs(nil, io.Discard)
	assert.Error(t, err)

	opts, err := parseArgs([]string{"-watch"}, io.Discard)
	require.NoError(t, err)
	assert.True(t, opts.watch)
}

func TestApplyRejectsInvalid(t *testing.T) {
	opts, err := parseArgs([]string{"-i", "a.mp3", "-chapter-index", "-2"}, io.Discard)
	require.NoError(t, err)
	assert.Error(t, opts.apply(config.Default()))
}

func TestNewClassifierMergesRules(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.yaml")
	require.NoError(t, os.WriteFile(path, []byte("deny_phrases:\n  - chapter quiz\n"), 0644))

	cfg := config.Default()
	cfg.Chapters.RulesPath = path
	c, err := newClassifier(cfg)
	require.NoError(t, err)

	assert.True(t, c.IsChapterBoundary("Chapter 4"))
	assert.False(t, c.IsChapterBoundary("Chapter quiz for chapter 4"))
}

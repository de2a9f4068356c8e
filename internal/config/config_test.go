package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() Config {
	return Config{
		Whisper: WhisperConfig{
			BinaryPath: "./whisper-cli",
			ModelPath:  "models/test.bin",
		},
		Paths: PathsConfig{
			Input:  "data/input",
			Output: "data/output",
		},
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{
			name:   "valid config",
			mutate: func(c *Config) {},
		},
		{
			name:    "missing whisper binary",
			mutate:  func(c *Config) { c.Whisper.BinaryPath = "" },
			wantErr: "whisper.binary_path is required",
		},
		{
			name:    "missing paths",
			mutate:  func(c *Config) { c.Paths = PathsConfig{} },
			wantErr: "paths.input is required",
		},
		{
			name:    "unknown naming mode",
			mutate:  func(c *Config) { c.Chapters.Naming = "slug" },
			wantErr: "chapters.naming must be one of: title number",
		},
		{
			name:    "negative chapter index",
			mutate:  func(c *Config) { c.Chapters.InitialIndex = -1 },
			wantErr: "chapters.initial_index must be greater than or equal to 0",
		},
		{
			name:    "bad log format",
			mutate:  func(c *Config) { c.Logging.Format = "xml" },
			wantErr: "logging.format must be one of: text json",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidateDefaults(t *testing.T) {
	cfg := validConfig()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 6, cfg.Whisper.Threads)
	assert.Equal(t, 16, cfg.Whisper.MaxLen)
	assert.Equal(t, "libmp3lame", cfg.FFmpeg.AudioCodec)
	assert.Equal(t, "128k", cfg.FFmpeg.AudioBitrate)
	assert.Equal(t, "mp3", cfg.FFmpeg.Extension)
	assert.Equal(t, NamingTitle, cfg.Chapters.Naming)
	assert.Equal(t, 45, cfg.Chapters.TitleMaxLen)
	assert.Equal(t, 2, cfg.Performance.MaxConcurrent)
	assert.Equal(t, "GEMINI_API_KEYS", cfg.Summary.KeysEnv)
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.NoError(t, cfg.Validate())
	assert.Equal(t, "Output", cfg.Paths.Output)
	assert.Equal(t, "base", cfg.Whisper.Model)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
whisper:
  binary_path: "./whisper-cli"
  model_path: "models/test.bin"
  threads: 4

ffmpeg:
  audio_bitrate: "192k"

paths:
  input: "data/input"
  output: "data/output"

chapters:
  initial_index: 1
  no_intro: true
  naming: number

logging:
  level: "debug"
  format: "json"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "models/test.bin", cfg.Whisper.ModelPath)
	assert.Equal(t, 4, cfg.Whisper.Threads)
	assert.Equal(t, "192k", cfg.FFmpeg.AudioBitrate)
	assert.Equal(t, "libmp3lame", cfg.FFmpeg.AudioCodec)
	assert.Equal(t, "data/input", cfg.Paths.Input)
	assert.Equal(t, 1, cfg.Chapters.InitialIndex)
	assert.True(t, cfg.Chapters.NoIntro)
	assert.Equal(t, NamingNumber, cfg.Chapters.Naming)
}

func TestLoadInvalidFile(t *testing.T) {
	_, err := Load("nonexistent.yaml")
	assert.Error(t, err)

	cfg, err := LoadOrDefault("nonexistent.yaml")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadRejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("chapters:\n  naming: slug\n"), 0644))

	_, err := Load(path)
	assert.Error(t, err)

	_, err = LoadOrDefault(path)
	assert.Error(t, err)
}

func TestSummaryKeys(t *testing.T) {
	cfg := Default()
	t.Setenv(cfg.Summary.KeysEnv, " a, ,b ")
	assert.Equal(t, []string{"a", "b"}, cfg.SummaryKeys())
}

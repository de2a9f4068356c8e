package config

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Chapter audio file naming modes.
const (
	NamingTitle  = "title"
	NamingNumber = "number"
)

type Config struct {
	Whisper     WhisperConfig     `yaml:"whisper"`
	FFmpeg      FFmpegConfig      `yaml:"ffmpeg"`
	Paths       PathsConfig       `yaml:"paths"`
	Chapters    ChaptersConfig    `yaml:"chapters"`
	Output      OutputConfig      `yaml:"output"`
	Summary     SummaryConfig     `yaml:"summary"`
	Logging     LoggingConfig     `yaml:"logging"`
	Performance PerformanceConfig `yaml:"performance"`
}

type WhisperConfig struct {
	BinaryPath string `yaml:"binary_path" validate:"required"`
	// Model is a model name ("base") resolved inside ModelsDir; ModelPath wins when set.
	Model     string `yaml:"model"`
	ModelPath string `yaml:"model_path"`
	ModelsDir string `yaml:"models_dir"`
	Language  string `yaml:"language"`
	Prompt    string `yaml:"prompt"`
	Threads   int    `yaml:"threads" validate:"gte=1"`
	MaxLen    int    `yaml:"max_len" validate:"gte=0"`
}

type FFmpegConfig struct {
	BinaryPath   string `yaml:"binary_path"`
	AudioCodec   string `yaml:"audio_codec"`
	AudioBitrate string `yaml:"audio_bitrate"`
	Extension    string `yaml:"extension" validate:"alphanum"`
	SampleRate   int    `yaml:"sample_rate" validate:"gte=8000"`
}

type PathsConfig struct {
	Input    string `yaml:"input" validate:"required"`
	Output   string `yaml:"output" validate:"required"`
	Archived string `yaml:"archived"`
	Temp     string `yaml:"temp"`
}

type ChaptersConfig struct {
	InitialName  string `yaml:"initial_name"`
	InitialIndex int    `yaml:"initial_index" validate:"gte=0"`
	NoIntro      bool   `yaml:"no_intro"`
	Naming       string `yaml:"naming" validate:"oneof=title number"`
	TitleMaxLen  int    `yaml:"title_max_len" validate:"gte=1"`
	// RulesPath points to an extra boundary rules file merged over the built-in table.
	RulesPath string `yaml:"rules_path"`
}

type OutputConfig struct {
	Docx bool `yaml:"docx"`
}

type SummaryConfig struct {
	Enabled bool   `yaml:"enabled"`
	Model   string `yaml:"model"`
	KeysEnv string `yaml:"keys_env"`
}

type LoggingConfig struct {
	Level  string `yaml:"level" validate:"omitempty,oneof=debug info warn error"`
	Format string `yaml:"format" validate:"omitempty,oneof=text json"`
}

type PerformanceConfig struct {
	MaxConcurrent int `yaml:"max_concurrent" validate:"gte=1"`
}

// Default returns a configuration that works without a config file.
func Default() *Config {
	cfg := &Config{
		Whisper: WhisperConfig{
			BinaryPath: "whisper-cli",
			Model:      "base",
			ModelsDir:  "models",
		},
		Paths: PathsConfig{
			Input:  "data/input",
			Output: "Output",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
	_ = cfg.Validate()
	return cfg
}

// Load reads a YAML config file over the defaults and validates it.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadOrDefault behaves like Load but falls back to Default when path does not exist.
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// Validate fills optional fields with defaults, then checks the result.
func (c *Config) Validate() error {
	if c.Whisper.Language == "" {
		c.Whisper.Language = "auto"
	}
	if c.Whisper.Threads == 0 {
		c.Whisper.Threads = 6
	}
	if c.Whisper.MaxLen == 0 {
		c.Whisper.MaxLen = 16
	}
	if c.FFmpeg.BinaryPath == "" {
		c.FFmpeg.BinaryPath = "ffmpeg"
	}
	if c.FFmpeg.AudioCodec == "" {
		c.FFmpeg.AudioCodec = "libmp3lame"
	}
	if c.FFmpeg.AudioBitrate == "" {
		c.FFmpeg.AudioBitrate = "128k"
	}
	if c.FFmpeg.Extension == "" {
		c.FFmpeg.Extension = "mp3"
	}
	if c.FFmpeg.SampleRate == 0 {
		c.FFmpeg.SampleRate = 16000
	}
	if c.Paths.Archived == "" {
		c.Paths.Archived = "data/archived"
	}
	if c.Paths.Temp == "" {
		c.Paths.Temp = "data/temp"
	}
	if c.Chapters.Naming == "" {
		c.Chapters.Naming = NamingTitle
	}
	if c.Chapters.TitleMaxLen == 0 {
		c.Chapters.TitleMaxLen = 45
	}
	if c.Summary.Model == "" {
		c.Summary.Model = "gemini-2.5-flash"
	}
	if c.Summary.KeysEnv == "" {
		c.Summary.KeysEnv = "GEMINI_API_KEYS"
	}
	if c.Performance.MaxConcurrent == 0 {
		c.Performance.MaxConcurrent = 2
	}

	return validateStruct(c)
}

// SummaryKeys returns the Gemini API keys from the configured environment variable.
func (c *Config) SummaryKeys() []string {
	var keys []string
	for _, k := range strings.Split(os.Getenv(c.Summary.KeysEnv), ",") {
		if k = strings.TrimSpace(k); k != "" {
			keys = append(keys, k)
		}
	}
	return keys
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("yaml"), ",")
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
	return v
}

func validateStruct(c *Config) error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("validate config: %w", err)
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, fmt.Sprintf("%s %s", trimRoot(fe.Namespace()), friendlyMessage(fe)))
	}
	sort.Strings(msgs)
	return fmt.Errorf("invalid config: %s", strings.Join(msgs, "; "))
}

// trimRoot turns "Config.paths.input" into "paths.input".
func trimRoot(ns string) string {
	_, rest, ok := strings.Cut(ns, ".")
	if !ok {
		return ns
	}
	return rest
}

func friendlyMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "oneof":
		return "must be one of: " + fe.Param()
	case "gte":
		return "must be greater than or equal to " + fe.Param()
	case "alphanum":
		return "must be alphanumeric"
	default:
		return "is invalid"
	}
}

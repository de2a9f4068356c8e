package main

import (
	"errors"
	"flag"
	"io"

	"github.com/chapterize/chapterize/internal/config"
)

type options struct {
	configPath string
	input      string
	watch      bool

	// set records which flags were given explicitly.
	set          map[string]bool
	model        string
	threads      int
	chapterIndex int
	noIntro      bool
	rulesPath    string
	docx         bool
}

func parseArgs(args []string, stderr io.Writer) (options, error) {
	var opts options
	fs := flag.NewFlagSet("chapterize", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.StringVar(&opts.configPath, "config", "config.yaml", "config file (optional)")
	fs.StringVar(&opts.input, "i", "", "recording to process (shorthand)")
	fs.StringVar(&opts.input, "input", "", "recording to process")
	fs.BoolVar(&opts.watch, "watch", false, "watch paths.input for new recordings")
	fs.StringVar(&opts.model, "model", "", "whisper model name or path")
	fs.IntVar(&opts.threads, "threads", 0, "whisper threads")
	fs.IntVar(&opts.chapterIndex, "chapter-index", 0, "number at which chapter file names start")
	fs.BoolVar(&opts.noIntro, "no-intro", false, "do not name the first chapter 'Intro'")
	fs.StringVar(&opts.rulesPath, "rules", "", "extra chapter boundary rules file")
	fs.BoolVar(&opts.docx, "docx", false, "also write a .docx transcript")

	if err := fs.Parse(args); err != nil {
		return options{}, err
	}

	opts.set = make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { opts.set[f.Name] = true })

	if opts.input == "" && !opts.watch {
		fs.Usage()
		return options{}, errors.New("either -i/-input or -watch is required")
	}
	return opts, nil
}

// apply copies explicitly given flags over the loaded configuration.
func (o options) apply(cfg *config.Config) error {
	if o.set["model"] {
		cfg.Whisper.Model = o.model
		cfg.Whisper.ModelPath = ""
	}
	if o.set["threads"] {
		cfg.Whisper.Threads = o.threads
	}
	if o.set["chapter-index"] {
		cfg.Chapters.InitialIndex = o.chapterIndex
	}
	if o.set["no-intro"] {
		cfg.Chapters.NoIntro = o.noIntro
	}
	if o.set["rules"] {
		cfg.Chapters.RulesPath = o.rulesPath
	}
	if o.set["docx"] {
		cfg.Output.Docx = o.docx
	}
	return cfg.Validate()
}

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/atinylittleshell/suggestfield/internal/config"
	"github.com/atinylittleshell/suggestfield/internal/core"
	"github.com/atinylittleshell/suggestfield/internal/field"
	"github.com/atinylittleshell/suggestfield/internal/render"
	"github.com/atinylittleshell/suggestfield/internal/styles"
	"github.com/atinylittleshell/suggestfield/internal/suggest"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
	"golang.org/x/term"
)

var BUILD_VERSION = "dev"

var configPath = flag.String("config", "", "config file (.yaml, .yml or .toml)")
var sourcePath = flag.String("source", "", "file with one suggestion per line, - for stdin")
var minLength = flag.Int("min", 2, "characters typed before suggestions appear")
var maxResults = flag.Int("max", 10, "maximum number of suggestions")
var prompt = flag.String("prompt", "> ", "prompt drawn before the text")
var announcePath = flag.String("announce", "", "append every announcement to this file")

var helpFlag = flag.Bool("h", false, "display help information")
var versionFlag = flag.Bool("ver", false, "display build version")

const helpText = `suggestfield - An accessible suggest-as-you-type input field

USAGE:
  suggestfield [options]

  Type to see suggestions whose words start with the typed text.
  Up and down select a suggestion, enter uses it, escape dismisses
  the list. Enter with no list open prints the value to stdout.

EXAMPLES:
  suggestfield -source countries.txt
  ls | suggestfield -source - -min 1
  country=$(suggestfield -config ~/.suggestfield/countries.toml)

CONFIG:
  Without -config, ~/.suggestfield/config.yaml is read if present.
  Flags given on the command line override the config file.

OPTIONS:
`

// errNoTerminal is returned when there is no terminal to draw on.
var errNoTerminal = errors.New("suggestfield needs a terminal on stderr")

func main() {
	flag.Parse()

	if *versionFlag {
		fmt.Println(BUILD_VERSION)
		return
	}

	if *helpFlag {
		fmt.Print(helpText)
		flag.PrintDefaults()
		return
	}

	cfg, err := loadConfig(setFlags())
	if err != nil {
		printError(err)
		os.Exit(1)
	}

	// Initialize the logger
	logger, err := initializeLogger(cfg)
	if err != nil {
		panic(err)
	}
	defer logger.Sync() // Flush any buffered log entries

	logger.Info("-------- new suggestfield session --------", zap.Any("args", os.Args))

	result, err := run(cfg, logger)
	if err != nil {
		logger.Error("unhandled error", zap.Error(err))
		printError(err)
		if errors.Is(err, errNoTerminal) {
			fmt.Fprintln(os.Stderr, styles.HINT("run suggestfield from an interactive terminal"))
		}
		os.Exit(1)
	}

	switch result.Type {
	case field.ResultSubmit:
		logger.Info("value submitted", zap.String("value", result.Value))
		fmt.Println(styles.VALUE(result.Value))
	case field.ResultInterrupt:
		logger.Info("interrupted")
		logger.Sync()
		os.Exit(130)
	}
}

func run(cfg config.Config, logger *zap.Logger) (field.Result, error) {
	// The view goes to stderr so that stdout only carries the value.
	if !term.IsTerminal(int(os.Stderr.Fd())) {
		return field.Result{}, errNoTerminal
	}

	candidates, err := cfg.Candidates()
	if err != nil {
		return field.Result{}, err
	}
	logger.Debug("loaded candidates", zap.Int("count", len(candidates)))

	var announcer suggest.Announcer
	if *announcePath != "" {
		f, err := os.OpenFile(*announcePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return field.Result{}, fmt.Errorf("failed to open announce file: %w", err)
		}
		defer f.Close()
		announcer = newLineAnnouncer(f, logger)
	}

	model := field.New(field.Config{
		Prompt: cfg.Prompt,
		Suggest: suggest.Options{
			Instructions: cfg.Instructions,
			MinLength:    cfg.MinLength,
			MaxResults:   cfg.MaxResults,
			Source:       candidates,
			Announcer:    announcer,
		},
		DismissDelay: cfg.DismissDelay,
		Logger:       logger,
	})

	p := tea.NewProgram(
		model,
		tea.WithOutput(os.Stderr),
		tea.WithAltScreen(),
		tea.WithReportFocus(),
		tea.WithMouseCellMotion(),
	)

	final, err := p.Run()
	if err != nil {
		return field.Result{}, fmt.Errorf("failed to run input field: %w", err)
	}

	m, ok := final.(field.Model)
	if !ok {
		return field.Result{}, fmt.Errorf("unexpected model type %T", final)
	}
	return m.Result(), nil
}

func printError(err error) {
	fmt.Fprintln(os.Stderr, render.StyledSymbol(render.SymbolError), styles.ERROR(err.Error()))
}

// setFlags returns the names of flags given on the command line.
func setFlags() map[string]bool {
	set := map[string]bool{}
	flag.Visit(func(f *flag.Flag) {
		set[f.Name] = true
	})
	return set
}

// loadConfig reads the config file and applies the flags in set over it.
// An explicit -config must exist; the default one is optional.
func loadConfig(set map[string]bool) (config.Config, error) {
	path := core.ConfigFile()
	if set["config"] {
		path = *configPath
		if _, err := os.Stat(path); err != nil {
			return config.Config{}, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg, err := config.NewLoader(nil).Load(path)
	if err != nil {
		return cfg, err
	}

	applyFlags(&cfg, set)

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func applyFlags(cfg *config.Config, set map[string]bool) {
	if set["source"] {
		cfg.SourceFile = *sourcePath
	}
	if set["min"] {
		cfg.MinLength = *minLength
	}
	if set["max"] {
		cfg.MaxResults = *maxResults
	}
	if set["prompt"] {
		cfg.Prompt = *prompt
	}
}

// newLineAnnouncer writes each announcement to w on its own line, for a
// screen reader or speech tool following the file.
func newLineAnnouncer(w io.Writer, logger *zap.Logger) suggest.AnnouncerFunc {
	return func(text string) {
		if _, err := fmt.Fprintln(w, text); err != nil {
			logger.Warn("failed to write announcement", zap.Error(err))
		}
	}
}

func initializeLogger(cfg config.Config) (*zap.Logger, error) {
	level, err := cfg.Level()
	if err != nil {
		return nil, err
	}

	logLevel := zap.NewAtomicLevelAt(level)
	if BUILD_VERSION == "dev" {
		logLevel = zap.NewAtomicLevelAt(zap.DebugLevel)
	}

	// Initialize the logger
	loggerConfig := zap.NewProductionConfig()
	loggerConfig.Level = logLevel
	loggerConfig.OutputPaths = []string{
		core.LogFile(),
	}

	// Logs only go to file to avoid interfering with Bubble Tea UI
	// Use `tail -f ~/.suggestfield/suggestfield.log` to monitor logs in real-time

	return loggerConfig.Build()
}

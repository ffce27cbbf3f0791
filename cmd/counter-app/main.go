package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"counterapp/internal/config"
	"counterapp/internal/i18n"
	"counterapp/internal/logging"
	"counterapp/internal/theme"
	"counterapp/internal/trace"
	"counterapp/internal/ui"
)

// options holds the parsed CLI flags. Counter fields are applied only when
// the flag was given explicitly.
type options struct {
	configPath string
	preset     string
	value      int
	min        int
	max        int
	target     int
	allowStart bool
	locale     string
	theme      string
	logFile    string
	logLevel   string
	set        map[string]bool
}

func parseFlags(args []string) (options, error) {
	var o options
	fs := flag.NewFlagSet("counter-app", flag.ContinueOnError)
	fs.StringVar(&o.configPath, "config", "", "path to a YAML config file")
	fs.StringVar(&o.preset, "preset", "", "preset: "+strings.Join(config.PresetNames(), ", "))
	fs.IntVar(&o.value, "value", 0, "initial counter value")
	fs.IntVar(&o.min, "min", 0, "inclusive lower bound")
	fs.IntVar(&o.max, "max", 0, "inclusive upper bound")
	fs.IntVar(&o.target, "target", 0, "value that triggers the celebration")
	fs.BoolVar(&o.allowStart, "allow-out-of-range-start", false, "accept an initial value outside [min, max]")
	fs.StringVar(&o.locale, "locale", "", "UI language (default from LC_ALL/LANG)")
	fs.StringVar(&o.theme, "theme", "", "color theme: "+strings.Join(theme.Names(), ", "))
	fs.StringVar(&o.logFile, "log-file", os.Getenv("COUNTER_APP_LOG_FILE"), "write logs to this file")
	fs.StringVar(&o.logLevel, "log-level", "info", "log level")

	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: counter-app [flags]\n\n")
		fmt.Fprintf(fs.Output(), "A bounded counter with a celebration at a magic value.\n\n")
		fmt.Fprintf(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return o, err
	}
	o.set = make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { o.set[f.Name] = true })
	return o, nil
}

// resolve merges flags over the file/environment configuration. -preset only
// selects the base; file fields still apply on top of it.
func resolve(o options) (config.Config, error) {
	preset := ""
	if o.set["preset"] {
		preset = o.preset
	}
	cfg, err := config.Resolve(o.configPath, preset, os.Getenv)
	if err != nil {
		return config.Config{}, err
	}
	if o.set["value"] || o.set["min"] || o.set["max"] {
		cfg.AllowOutOfRangeStart = false
	}
	if o.set["value"] {
		cfg.Value = o.value
	}
	if o.set["min"] {
		cfg.Min = o.min
	}
	if o.set["max"] {
		cfg.Max = o.max
	}
	if o.set["target"] {
		cfg.Target = o.target
	}
	if o.set["allow-out-of-range-start"] {
		cfg.AllowOutOfRangeStart = o.allowStart
	}
	if o.set["locale"] {
		cfg.Locale = o.locale
	}
	if o.set["theme"] {
		cfg.Theme = o.theme
	}
	return cfg, nil
}

// pickLocale keeps an explicitly configured locale strict and lets an
// unsupported environment locale fall back to English.
func pickLocale(cfg *config.Config, log logrus.FieldLogger) {
	if cfg.Locale != "" {
		return
	}
	env := i18n.FromEnv()
	if _, err := i18n.Match(env); err != nil {
		log.WithError(err).Warn("environment locale not supported, using English")
		return
	}
	cfg.Locale = env
}

func run(o options) error {
	cfg, err := resolve(o)
	if err != nil {
		return err
	}

	log, closer, err := logging.Setup(logging.Options{File: o.logFile, Level: o.logLevel})
	if err != nil {
		return err
	}
	defer closer.Close()
	pickLocale(&cfg, log)

	ctx := context.Background()
	trace.SetErrorHandler(log)
	exporter, err := trace.NewOTLPExporter(ctx)
	if err != nil {
		log.WithError(err).Warn("tracing disabled")
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
		defer cancel()
		if err := exporter.Shutdown(shutdownCtx); err != nil {
			log.WithError(err).Warn("trace shutdown")
		}
	}()

	model, err := ui.NewAppModel(ui.Options{
		Config: cfg,
		Log:    log,
		Tracer: exporter.Tracer(),
	})
	if err != nil {
		return err
	}

	p := tea.NewProgram(model.AsTeaModel(), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}
	log.WithField("final", model.Counter().Value()).Info("counter closed")
	return nil
}

func main() {
	o, err := parseFlags(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		os.Exit(2)
	}
	if err := run(o); err != nil {
		fmt.Fprintf(os.Stderr, "counter-app: %v\n", err)
		os.Exit(1)
	}
}

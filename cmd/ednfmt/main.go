// Command ednfmt reads EDN forms and prints them back in canonical form, or
// lists the distinct keywords they use.
//
// Usage:
//
//	ednfmt [-config ednfmt.yaml] [-mode format|keywords] [-log-level info] [file ...]
//
// With no files, it reads standard input.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/tcard/edn/internal/config"
	"github.com/tcard/edn/lang"
	"github.com/tcard/edn/printer"
	"github.com/tcard/edn/reader"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg, files, err := parseArgs(args, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "ednfmt: %v\n", err)
		return 2
	}

	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	}))

	out := bufio.NewWriter(stdout)
	defer out.Flush()

	var emit func(form interface{}) error
	switch cfg.Mode {
	case config.ModeKeywords:
		seen := make(map[lang.Keyword]struct{})
		emit = func(form interface{}) error {
			for _, kw := range collectKeywords(form, nil) {
				if _, ok := seen[kw]; ok {
					continue
				}
				seen[kw] = struct{}{}
				if _, err := fmt.Fprint(out, kw, cfg.Separator); err != nil {
					return err
				}
			}
			return nil
		}
	default:
		emit = func(form interface{}) error {
			if err := printer.Fprint(out, form); err != nil {
				return err
			}
			_, err := io.WriteString(out, cfg.Separator)
			return err
		}
	}

	if len(files) == 0 {
		if err := process("<stdin>", stdin, emit, logger); err != nil {
			return 1
		}
		return 0
	}

	status := 0
	for _, name := range files {
		f, err := os.Open(name)
		if err != nil {
			logger.Error("Failed to open input", slog.String("file", name), slog.Any("error", err))
			status = 1
			continue
		}
		if err := process(name, f, emit, logger); err != nil {
			status = 1
		}
		f.Close()
	}
	return status
}

func parseArgs(args []string, stderr io.Writer) (config.Config, []string, error) {
	fs := flag.NewFlagSet("ednfmt", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "YAML configuration file")
	mode := fs.String("mode", "", "Output mode: format, keywords (default \"format\")")
	logLevel := fs.String("log-level", "", "Log level: debug, info, warn, error (default \"info\")")

	if err := fs.Parse(args); err != nil {
		return config.Config{}, nil, err
	}

	cfg := config.Default()
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		if err != nil {
			return cfg, nil, fmt.Errorf("failed to load config: %w", err)
		}
	}
	if *mode != "" {
		cfg.Mode = *mode
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}
	if err := cfg.Validate(); err != nil {
		return cfg, nil, err
	}
	return cfg, fs.Args(), nil
}

// process emits every form read from src, stopping at the first error.
func process(name string, src io.Reader, emit func(interface{}) error, logger *slog.Logger) error {
	logger.Debug("Reading input", slog.String("file", name))
	r := reader.From(src)
	count := 0
	for {
		form, err := r.Read()
		if errors.Is(err, io.EOF) {
			logger.Debug("Finished input", slog.String("file", name), slog.Int("forms", count))
			return nil
		}
		if err != nil {
			logger.Error("Failed to read form",
				slog.String("file", name),
				slog.Int("form", count+1),
				slog.Any("error", err))
			return err
		}
		if err := emit(form); err != nil {
			logger.Error("Failed to write output", slog.Any("error", err))
			return err
		}
		count++
	}
}

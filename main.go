package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"suah.dev/mpicons/catalog"
	"suah.dev/mpicons/doctor"
	"suah.dev/mpicons/generator"
	"suah.dev/mpicons/icon"
)

var version = "dev"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr, doctor.Checks()))
}

func run(args []string, stdout, stderr io.Writer, checks []doctor.Check) int {
	cfg, err := LoadConfig(args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	if cfg.Version {
		fmt.Fprintf(stdout, "mpicons %s\n", version)
		return 0
	}

	if code := doctor.Run(stdout, checks); code != 0 {
		return code
	}

	logger, err := newLogger(stdout, cfg.LogLevel, cfg.NoColor != "")
	if err != nil {
		fmt.Fprintf(stderr, "Error: invalid log level %q: %v\n", cfg.LogLevel, err)
		return 1
	}

	cat, err := catalog.Load(cfg.Catalog)
	if err != nil {
		logger.Error().Err(err).Str("catalog", cfg.Catalog).Msg("load catalog")
		return 1
	}
	jobs, err := cat.Plan()
	if err != nil {
		logger.Error().Err(err).Msg("plan icons")
		return 1
	}

	face := icon.Face(cfg.FontPath, cfg.FontSize, logger)
	defer face.Close()

	g := &generator.Generator{
		Dir:    cfg.OutDir,
		Size:   cat.Size,
		Face:   face,
		Logger: logger,
	}

	if cfg.Verify {
		drift, err := g.Verify(jobs)
		for _, d := range drift {
			logger.Warn().Str("path", d.Path).Str("reason", d.Reason).Msg("out of date")
		}
		if err != nil {
			logger.Error().Err(err).Msg("verify")
			return 1
		}
		logger.Info().Int("files", len(jobs)).Str("dir", cfg.OutDir).Msg("all icons up to date")
		return 0
	}

	logger.Info().Str("dir", cfg.OutDir).Int("files", len(jobs)).Msg("creating mini-program icons")
	results, err := g.Run(jobs)
	if err != nil {
		logger.Error().Err(err).Int("written", len(results)).Msg("generation aborted")
		return 1
	}

	printSummary(stdout, cfg.OutDir, results)
	return 0
}

package main

import (
	"flag"
	"fmt"

	"github.com/caarlos0/env/v11"

	"suah.dev/mpicons/icon"
)

// Config controls where icons go and how labels are drawn. Flags override
// environment variables, which override the defaults.
type Config struct {
	OutDir   string  `env:"MPICONS_OUT_DIR"   envDefault:"miniprogram/images"`
	FontPath string  `env:"MPICONS_FONT"`
	FontSize float64 `env:"MPICONS_FONT_SIZE"`
	Catalog  string  `env:"MPICONS_CATALOG"`
	LogLevel string  `env:"MPICONS_LOG_LEVEL" envDefault:"info"`
	// NoColor follows no-color.org: any non-empty value disables color.
	NoColor string `env:"NO_COLOR"`

	Verify  bool
	Version bool
}

// LoadConfig reads MPICONS_* environment variables and then applies the
// command-line flags in args on top.
func LoadConfig(args []string) (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.FontPath == "" {
		cfg.FontPath = icon.DefaultFontPath
	}
	if cfg.FontSize == 0 {
		cfg.FontSize = icon.DefaultFontSize
	}

	fs := flag.NewFlagSet("mpicons", flag.ContinueOnError)
	fs.StringVar(&cfg.OutDir, "o", cfg.OutDir, "Output directory")
	fs.StringVar(&cfg.FontPath, "font", cfg.FontPath, "Preferred label font (TTF, OTF or TTC)")
	fs.Float64Var(&cfg.FontSize, "size", cfg.FontSize, "Label font size in points")
	fs.StringVar(&cfg.Catalog, "catalog", cfg.Catalog, "JSON icon catalog (default: built-in mini-program set)")
	fs.StringVar(&cfg.LogLevel, "log", cfg.LogLevel, "Log level: debug, info, warn, error")
	verbose := fs.Bool("v", false, "Verbose output (same as -log debug)")
	fs.BoolVar(&cfg.Verify, "verify", false, "Compare existing icons with a fresh render and exit; writes nothing")
	fs.BoolVar(&cfg.Version, "version", false, "Print version and exit")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if *verbose {
		cfg.LogLevel = "debug"
	}
	if fs.NArg() > 0 {
		return Config{}, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	if cfg.FontSize <= 0 {
		return Config{}, fmt.Errorf("font size must be positive, got %v", cfg.FontSize)
	}
	return cfg, nil
}

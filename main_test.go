package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"suah.dev/mpicons/catalog"
	"suah.dev/mpicons/doctor"
	"suah.dev/mpicons/generator"
	"suah.dev/mpicons/icon"
)

func setupEnv(t *testing.T) string {
	t.Helper()
	t.Setenv("MPICONS_FONT", filepath.Join(t.TempDir(), "no-such-font.ttc"))
	t.Setenv("NO_COLOR", "1")
	return filepath.Join(t.TempDir(), "miniprogram", "images")
}

func TestRunCreatesAllIcons(t *testing.T) {
	dir := setupEnv(t)

	var stdout, stderr bytes.Buffer
	if code := run([]string{"-o", dir}, &stdout, &stderr, doctor.Checks()); code != 0 {
		t.Fatalf("exit code %d\nstdout:\n%s\nstderr:\n%s", code, stdout.String(), stderr.String())
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 15 {
		t.Fatalf("got %d files, want 15", len(entries))
	}
	if !strings.Contains(stdout.String(), "8 tab-bar + 7 page = 15") {
		t.Errorf("summary missing counts:\n%s", stdout.String())
	}
	if got := strings.Count(stdout.String(), "created"); got < 15 {
		t.Errorf("got %d status lines, want 15:\n%s", got, stdout.String())
	}
}

func TestRunCapabilityFailure(t *testing.T) {
	dir := setupEnv(t)
	checks := []doctor.Check{{Name: "imaging", Run: func() error { return errors.New("missing") }}}

	var stdout, stderr bytes.Buffer
	if code := run([]string{"-o", dir}, &stdout, &stderr, checks); code != 1 {
		t.Fatalf("exit code %d, want 1", code)
	}
	if _, err := os.Stat(dir); !os.IsNotExist(err) {
		t.Errorf("output directory touched after failed check: %v", err)
	}
	if !strings.Contains(stdout.String(), "go install") {
		t.Errorf("no guidance printed:\n%s", stdout.String())
	}
}

func TestRunVerify(t *testing.T) {
	dir := setupEnv(t)

	var stdout, stderr bytes.Buffer
	if code := run([]string{"-o", dir}, &stdout, &stderr, doctor.Checks()); code != 0 {
		t.Fatalf("generate: exit code %d\n%s", code, stdout.String())
	}
	if code := run([]string{"-o", dir, "-verify"}, &stdout, &stderr, doctor.Checks()); code != 0 {
		t.Fatalf("verify: exit code %d\n%s", code, stdout.String())
	}

	if err := os.Remove(filepath.Join(dir, "profile-active.png")); err != nil {
		t.Fatal(err)
	}
	stdout.Reset()
	if code := run([]string{"-o", dir, "-verify"}, &stdout, &stderr, doctor.Checks()); code != 1 {
		t.Fatalf("verify after delete: exit code %d, want 1", code)
	}
	if !strings.Contains(stdout.String(), "profile-active.png") {
		t.Errorf("missing file not reported:\n%s", stdout.String())
	}
}

func TestRunWriteFailure(t *testing.T) {
	dir := setupEnv(t)
	if err := os.MkdirAll(filepath.Join(dir, "create.png"), 0755); err != nil {
		t.Fatal(err)
	}

	var stdout, stderr bytes.Buffer
	if code := run([]string{"-o", dir}, &stdout, &stderr, doctor.Checks()); code != 1 {
		t.Fatalf("exit code %d, want 1", code)
	}
	if strings.Contains(stdout.String(), "All icons created") {
		t.Errorf("summary printed after failure:\n%s", stdout.String())
	}
}

func TestRunRejectsArgs(t *testing.T) {
	setupEnv(t)
	var stdout, stderr bytes.Buffer
	if code := run([]string{"extra"}, &stdout, &stderr, doctor.Checks()); code != 1 {
		t.Fatalf("exit code %d, want 1", code)
	}
}

func TestRunVersion(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := run([]string{"-version"}, &stdout, &stderr, nil); code != 0 {
		t.Fatalf("exit code %d", code)
	}
	if !strings.HasPrefix(stdout.String(), "mpicons ") {
		t.Errorf("got %q", stdout.String())
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig(nil)
	if err != nil {
		t.Fatal(err)
	}
	if os.Getenv("MPICONS_OUT_DIR") == "" && cfg.OutDir != "miniprogram/images" {
		t.Errorf("OutDir = %q", cfg.OutDir)
	}
	if os.Getenv("MPICONS_FONT_SIZE") == "" && cfg.FontSize != icon.DefaultFontSize {
		t.Errorf("FontSize = %v", cfg.FontSize)
	}
	if os.Getenv("MPICONS_FONT") == "" && cfg.FontPath != icon.DefaultFontPath {
		t.Errorf("FontPath = %q", cfg.FontPath)
	}
}

func TestLoadConfigPriority(t *testing.T) {
	t.Setenv("MPICONS_OUT_DIR", "/from/env")

	cfg, err := LoadConfig(nil)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.OutDir != "/from/env" {
		t.Errorf("env: OutDir = %q", cfg.OutDir)
	}

	cfg, err = LoadConfig([]string{"-o", "/from/flag", "-v"})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.OutDir != "/from/flag" {
		t.Errorf("flag: OutDir = %q", cfg.OutDir)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug", cfg.LogLevel)
	}
}

func TestLoadConfigVerboseFlag(t *testing.T) {
	t.Setenv("MPICONS_LOG_LEVEL", "warn")

	cfg, err := LoadConfig([]string{"-v=false"})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("-v=false: LogLevel = %q, want warn", cfg.LogLevel)
	}

	cfg, err = LoadConfig([]string{"-v"})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("-v: LogLevel = %q, want debug", cfg.LogLevel)
	}
}

func TestRunNoColorAnyValue(t *testing.T) {
	dir := setupEnv(t)
	t.Setenv("NO_COLOR", "yes")

	var stdout, stderr bytes.Buffer
	if code := run([]string{"-o", dir}, &stdout, &stderr, doctor.Checks()); code != 0 {
		t.Fatalf("exit code %d\nstderr:\n%s", code, stderr.String())
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 15 {
		t.Errorf("got %d files, want 15", len(entries))
	}
}

func TestNewLoggerPlainWhenNotTerminal(t *testing.T) {
	var out bytes.Buffer
	logger, err := newLogger(&out, "info", false)
	if err != nil {
		t.Fatal(err)
	}
	logger.Info().Str("path", "home.png").Msg("created")

	if strings.Contains(out.String(), "\x1b[") {
		t.Errorf("escape codes written to a non-terminal: %q", out.String())
	}
	if !strings.Contains(out.String(), "created") {
		t.Errorf("got %q", out.String())
	}
}

func TestLoadConfigRejectsFontSize(t *testing.T) {
	if _, err := LoadConfig([]string{"-size", "0"}); err == nil {
		t.Fatal("expected error")
	}
}

func TestPrintSummary(t *testing.T) {
	results := []generator.Result{
		{Kind: catalog.KindTabBar},
		{Kind: catalog.KindTabBar},
		{Kind: catalog.KindPage},
	}
	var out bytes.Buffer
	printSummary(&out, "out", results)

	got := out.String()
	for _, want := range []string{"Location: out/", "2 tab-bar + 1 page = 3", "Next steps:"} {
		if !strings.Contains(got, want) {
			t.Errorf("summary missing %q:\n%s", want, got)
		}
	}
}

package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/spf13/viper"

	"github.com/cognicore/yixiang/internal/textsrc"
	"github.com/cognicore/yixiang/pkg/yixiang/config"
	"github.com/cognicore/yixiang/pkg/yixiang/internalerr"
)

const poems = `1.静夜思
床前明月光，疑是地上霜。
举头望明月，低头思故乡。
2.月下独酌
花间一壶酒，独酌无相亲。
举杯邀明月，对影成三人。`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestLoadSettingsDefaults(t *testing.T) {
	cfg, err := loadSettings(viper.New())
	if err != nil {
		t.Fatalf("loadSettings: %v", err)
	}
	if cfg.Server.Addr != config.DefaultAddr || cfg.MaxFileSize != config.DefaultMaxFileSize {
		t.Errorf("Unexpected defaults: %+v", cfg)
	}
	if cfg.DBPath != "" {
		t.Errorf("DBPath should default to empty, got %q", cfg.DBPath)
	}
}

func TestLoadSettingsFileAndEnv(t *testing.T) {
	path := writeFile(t, "yixiang.yaml", "db_path: file.db\nserver:\n  addr: \":9000\"\n")

	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		t.Fatalf("ReadInConfig: %v", err)
	}
	v.SetEnvPrefix("YIXIANG")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	t.Setenv("YIXIANG_DB_PATH", "env.db")

	cfg, err := loadSettings(v)
	if err != nil {
		t.Fatalf("loadSettings: %v", err)
	}
	if cfg.DBPath != "env.db" {
		t.Errorf("Environment should override the file, got %q", cfg.DBPath)
	}
	if cfg.Server.Addr != ":9000" {
		t.Errorf("Addr = %q, want :9000", cfg.Server.Addr)
	}
}

func TestLoadSettingsInvalid(t *testing.T) {
	v := viper.New()
	v.Set("max_file_size", -1)

	_, err := loadSettings(v)
	if !errors.Is(err, internalerr.ErrInvalidConfig) {
		t.Errorf("Expected ErrInvalidConfig, got %v", err)
	}
}

func TestAnalyzeFile(t *testing.T) {
	ctx := context.Background()
	cfg := config.Default()
	cfg.DBPath = filepath.Join(t.TempDir(), "reports.db")

	engine, err := buildEngine(ctx, cfg)
	if err != nil {
		t.Fatalf("buildEngine: %v", err)
	}
	defer engine.Close()

	r, err := analyzeFile(ctx, engine, textsrc.New(0), writeFile(t, "poems.txt", poems))
	if err != nil {
		t.Fatalf("analyzeFile: %v", err)
	}
	if r.PoemCount != 2 {
		t.Errorf("PoemCount = %d, want 2", r.PoemCount)
	}

	var out bytes.Buffer
	if err := printReport(&out, r, false); err != nil {
		t.Fatalf("printReport: %v", err)
	}
	if !strings.Contains(out.String(), r.ID) || !strings.Contains(out.String(), "共 2 首诗") {
		t.Errorf("Unexpected report output:\n%s", out.String())
	}

	list, err := engine.ListReports(ctx, 0)
	if err != nil || len(list) != 1 {
		t.Fatalf("ListReports = %v, %v", list, err)
	}

	out.Reset()
	printSummaries(&out, list)
	if !strings.Contains(out.String(), "poems.txt") {
		t.Errorf("Summary output missing source:\n%s", out.String())
	}
}

func TestAnalyzeFileUnsupported(t *testing.T) {
	engine, err := buildEngine(context.Background(), config.Default())
	if err != nil {
		t.Fatalf("buildEngine: %v", err)
	}
	defer engine.Close()

	_, err = analyzeFile(context.Background(), engine, textsrc.New(0), writeFile(t, "poems.pdf", poems))
	if !errors.Is(err, internalerr.ErrInvalidInput) {
		t.Errorf("Expected ErrInvalidInput, got %v", err)
	}
}

func TestPrintPoemsHighlight(t *testing.T) {
	engine, err := buildEngine(context.Background(), config.Default())
	if err != nil {
		t.Fatalf("buildEngine: %v", err)
	}
	defer engine.Close()

	var out bytes.Buffer
	printPoems(&out, engine, poems, true)

	got := out.String()
	for _, want := range []string{"1. 静夜思", "2. 月下独酌", "【月】"} {
		if !strings.Contains(got, want) {
			t.Errorf("Output missing %q:\n%s", want, got)
		}
	}

	out.Reset()
	printPoems(&out, engine, "no headings here", false)
	if !strings.Contains(out.String(), "No numbered poems") {
		t.Errorf("Unexpected output for unnumbered text: %q", out.String())
	}
}

func TestPrintLexicon(t *testing.T) {
	comp, err := config.NewLoader(config.Default()).Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	defer comp.Close()

	var out bytes.Buffer
	if err := printLexicon(&out, comp.Lexicon, false); err != nil {
		t.Fatalf("printLexicon: %v", err)
	}
	if !strings.Contains(out.String(), "terms") {
		t.Errorf("Unexpected lexicon output:\n%s", out.String())
	}
}

func TestWatchFile(t *testing.T) {
	path := writeFile(t, "poems.txt", poems)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var calls atomic.Int32
	changed := make(chan struct{}, 4)
	done := make(chan error, 1)
	go func() {
		done <- watchFile(ctx, path, 20*time.Millisecond, func() {
			calls.Add(1)
			select {
			case changed <- struct{}{}:
			default:
			}
		})
	}()

	// Give the watcher time to register before writing.
	time.Sleep(100 * time.Millisecond)
	if err := os.WriteFile(path, []byte(poems+"\n"), 0o644); err != nil {
		t.Fatalf("rewrite: %v", err)
	}

	select {
	case <-changed:
	case <-time.After(5 * time.Second):
		t.Fatal("onChange was not called after a write")
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("watchFile returned %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("watchFile did not stop after cancel")
	}
	if calls.Load() < 1 {
		t.Error("Expected at least one change")
	}
}

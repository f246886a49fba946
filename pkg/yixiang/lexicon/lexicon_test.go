package lexicon

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/cognicore/yixiang/pkg/yixiang/internalerr"
)

func TestDefaultDeduplicatesTerms(t *testing.T) {
	lex := Default()

	if lex.Len() != 146 {
		t.Errorf("Default lexicon should have 146 unique terms, got %d", lex.Len())
	}

	seen := make(map[string]bool)
	for _, term := range lex.Terms() {
		if seen[term] {
			t.Errorf("Duplicate term %q in lexicon", term)
		}
		seen[term] = true
	}
}

func TestDefaultKeepsFirstPosition(t *testing.T) {
	pos := make(map[string]int)
	for i, term := range Default().Terms() {
		pos[term] = i
	}

	// 风 is listed under 天文 before 气候
	if pos["风"] >= pos["山"] {
		t.Errorf("风 should keep its first (天文) position, got %d", pos["风"])
	}
	if pos["雨"] <= pos["葛"] {
		t.Errorf("雨 should come after the 植物 block, got %d", pos["雨"])
	}
}

func TestCategoryOf(t *testing.T) {
	lex := Default()

	tests := []struct {
		term string
		want Category
	}{
		{"月", Category{Main: "天文", Sub: "日月星辰"}},
		{"风", Category{Main: "天文", Sub: "天气现象"}},
		{"雨", Category{Main: "气候", Sub: "气象变化"}},
		{"黄鹂", Category{Main: "动物", Sub: "飞禽"}},
		{"银杏", Category{Main: "植物", Sub: "树木"}},
		{"酒", Category{Main: OtherMain, Sub: OtherSub}},
	}

	for _, tt := range tests {
		if got := lex.CategoryOf(tt.term); got != tt.want {
			t.Errorf("CategoryOf(%q) = %+v, want %+v", tt.term, got, tt.want)
		}
	}
}

func TestCategoryPaths(t *testing.T) {
	lex := Default()

	paths := lex.CategoryPaths()
	if len(paths) != 5+12 {
		t.Fatalf("Expected 17 category paths, got %d: %v", len(paths), paths)
	}
	if paths[0] != "天文" || paths[1] != "天文/日月星辰" {
		t.Errorf("Paths should start with main then its subcategories, got %v", paths[:2])
	}

	mains := lex.MainCategories()
	want := []string{"天文", "地理", "动物", "植物", "气候"}
	for i, name := range want {
		if mains[i] != name {
			t.Errorf("MainCategories()[%d] = %q, want %q", i, mains[i], name)
		}
	}
}

func TestIsCommon(t *testing.T) {
	lex := Default()

	if !lex.IsCommon("落") {
		t.Error("落 should be a common word")
	}
	if !lex.IsCommon("蔓") {
		t.Error("蔓 is both an imagery term and a common word")
	}
	if lex.IsCommon("之") {
		t.Error("之 should not be a common word")
	}
	if len(lex.CommonWords()) != 192 {
		t.Errorf("Expected 192 common words, got %d", len(lex.CommonWords()))
	}
}

func TestTermsReturnsCopy(t *testing.T) {
	lex := Default()

	terms := lex.Terms()
	terms[0] = "changed"

	if lex.Terms()[0] != "日" {
		t.Error("Terms() should return a copy")
	}
}

func TestNewSkipsBlankTerms(t *testing.T) {
	lex := New([]string{"月", " ", "", "月", "山"}, nil, []string{"", "落"})

	if lex.Len() != 2 {
		t.Errorf("Expected 2 terms, got %d", lex.Len())
	}
	if len(lex.CommonWords()) != 1 {
		t.Errorf("Expected 1 common word, got %d", len(lex.CommonWords()))
	}
	if lex.Stats().Uncategorized != 2 {
		t.Errorf("Terms without taxonomy should be uncategorized, got %d", lex.Stats().Uncategorized)
	}
}

func TestStats(t *testing.T) {
	stats := Default().Stats()

	if stats.Terms != 146 {
		t.Errorf("Terms = %d, want 146", stats.Terms)
	}
	if stats.MainCategories != 5 {
		t.Errorf("MainCategories = %d, want 5", stats.MainCategories)
	}
	if stats.Subcategories != 12 {
		t.Errorf("Subcategories = %d, want 12", stats.Subcategories)
	}
	if stats.Uncategorized != 0 {
		t.Errorf("Default lexicon should categorize every term, got %d uncategorized", stats.Uncategorized)
	}
}

func TestLoadFromYAML(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "lexicon.yaml")

	content := `
taxonomy:
  - name: 天文
    subcategories:
      - name: 日月星辰
        terms: [日, 月]
  - name: 地理
    subcategories:
      - name: 自然地貌
        terms: [山, 水]
common_words: [落, 照]
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	lex, err := LoadFromYAML(path)
	if err != nil {
		t.Fatalf("LoadFromYAML failed: %v", err)
	}

	if lex.Len() != 4 {
		t.Errorf("Terms should be taken from taxonomy, got %d", lex.Len())
	}
	if got := lex.CategoryOf("水"); got.Main != "地理" {
		t.Errorf("CategoryOf(水) = %+v", got)
	}
	if !lex.IsCommon("照") || lex.IsCommon("飘") {
		t.Error("Common words should come from the file")
	}
}

func TestLoadFromYAMLDefaultsMissingSections(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "lexicon.yaml")

	if err := os.WriteFile(path, []byte("common_words: [落]\n"), 0644); err != nil {
		t.Fatal(err)
	}

	lex, err := LoadFromYAML(path)
	if err != nil {
		t.Fatalf("LoadFromYAML failed: %v", err)
	}
	if lex.Len() != 146 {
		t.Errorf("Missing terms should fall back to defaults, got %d", lex.Len())
	}
	if len(lex.CommonWords()) != 1 {
		t.Errorf("Expected 1 common word, got %d", len(lex.CommonWords()))
	}
}

func TestLoadFromYAMLEmptyTerms(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "lexicon.yaml")

	if err := os.WriteFile(path, []byte("terms: []\n"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := LoadFromYAML(path)
	if !errors.Is(err, internalerr.ErrInvalidConfig) {
		t.Errorf("Empty terms should fail with ErrInvalidConfig, got %v", err)
	}
}

func TestLoadFromYAMLMissingFile(t *testing.T) {
	if _, err := LoadFromYAML("/nonexistent/lexicon.yaml"); err == nil {
		t.Error("Should error on missing file")
	}
}

func TestLoadFromYAMLInvalid(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "bad.yaml")

	if err := os.WriteFile(path, []byte("terms: [unclosed\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadFromYAML(path); err == nil {
		t.Error("Should error on malformed YAML")
	}
}

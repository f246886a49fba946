package ingest

import (
	"testing"

	"github.com/cognicore/yixiang/pkg/yixiang/lexicon"
)

func TestParseTwoPoems(t *testing.T) {
	parser := NewParser(lexicon.Default())

	poems := parser.Parse("1.静夜思\n床前明月光\n2.春晓\n春眠不觉晓")

	if len(poems) != 2 {
		t.Fatalf("Expected 2 poems, got %d", len(poems))
	}
	if poems[0].Title != "静夜思" || poems[0].Content != "床前明月光" {
		t.Errorf("First poem = %q/%q", poems[0].Title, poems[0].Content)
	}
	if poems[1].Title != "春晓" || poems[1].Content != "春眠不觉晓" {
		t.Errorf("Second poem = %q/%q", poems[1].Title, poems[1].Content)
	}
	if poems[0].ID != poems[0].Title {
		t.Errorf("ID should equal title, got %q", poems[0].ID)
	}
}

func TestParseNoHeading(t *testing.T) {
	parser := NewParser(lexicon.Default())

	poems := parser.Parse("床前明月光\n疑是地上霜")
	if poems == nil || len(poems) != 0 {
		t.Errorf("Input without headings should yield an empty list, got %v", poems)
	}
}

func TestParseBlankInput(t *testing.T) {
	parser := NewParser(lexicon.Default())

	for _, input := range []string{"", "   ", "\n\n\t\n"} {
		if poems := parser.Parse(input); len(poems) != 0 {
			t.Errorf("Parse(%q) should be empty, got %d poems", input, len(poems))
		}
	}
}

func TestParseMultiLineContent(t *testing.T) {
	parser := NewParser(lexicon.Default())

	text := "1.静夜思\n床前明月光，\n\n疑是地上霜。\n   \n举头望明月，\n低头思故乡。"
	poems := parser.Parse(text)

	if len(poems) != 1 {
		t.Fatalf("Expected 1 poem, got %d", len(poems))
	}
	want := "床前明月光，\n疑是地上霜。\n举头望明月，\n低头思故乡。"
	if poems[0].Content != want {
		t.Errorf("Content = %q, want %q", poems[0].Content, want)
	}
}

func TestParseDropsLeadingLines(t *testing.T) {
	parser := NewParser(lexicon.Default())

	poems := parser.Parse("唐诗选\n前言\n1.登鹳雀楼\n白日依山尽")

	if len(poems) != 1 {
		t.Fatalf("Expected 1 poem, got %d", len(poems))
	}
	if poems[0].Content != "白日依山尽" {
		t.Errorf("Leading lines should be dropped, content = %q", poems[0].Content)
	}
}

func TestParseSkipsHeadingWithoutContent(t *testing.T) {
	parser := NewParser(lexicon.Default())

	poems := parser.Parse("1.空\n2.春晓\n春眠不觉晓\n3.尾")

	if len(poems) != 1 {
		t.Fatalf("Expected only the poem with content, got %d", len(poems))
	}
	if poems[0].Title != "春晓" {
		t.Errorf("Title = %q, want 春晓", poems[0].Title)
	}
}

func TestParseHeadingOnlyInput(t *testing.T) {
	parser := NewParser(lexicon.Default())

	if poems := parser.Parse("1.静夜思\n2.春晓"); len(poems) != 0 {
		t.Errorf("Headings without content should yield no poems, got %d", len(poems))
	}
}

func TestParseNumericTitle(t *testing.T) {
	parser := NewParser(lexicon.Default())

	poems := parser.Parse("1.1 山居秋暝\n空山新雨后")
	if len(poems) != 1 {
		t.Fatalf("Expected 1 poem, got %d", len(poems))
	}
	if poems[0].Title != "1 山居秋暝" {
		t.Errorf("Title should be the text after the first dot, got %q", poems[0].Title)
	}
}

func TestParseTrimsTitle(t *testing.T) {
	parser := NewParser(lexicon.Default())

	poems := parser.Parse("12.  春晓  \n春眠不觉晓")
	if len(poems) != 1 || poems[0].Title != "春晓" {
		t.Errorf("Title should be trimmed, got %+v", poems)
	}
}

func TestParseCRLF(t *testing.T) {
	parser := NewParser(lexicon.Default())

	poems := parser.Parse("1.静夜思\r\n床前明月光\r\n疑是地上霜\r\n")
	if len(poems) != 1 {
		t.Fatalf("Expected 1 poem, got %d", len(poems))
	}
	if poems[0].Content != "床前明月光\n疑是地上霜" {
		t.Errorf("CRLF should be normalized, content = %q", poems[0].Content)
	}
}

func TestParseAnnotatesImagery(t *testing.T) {
	parser := NewParser(lexicon.Default())

	poems := parser.Parse("1.静夜思\n床前明月光\n疑是地上霜\n举头望明月")
	if len(poems) != 1 {
		t.Fatalf("Expected 1 poem, got %d", len(poems))
	}

	p := poems[0]
	if p.ImageryCountOf("月") != 2 {
		t.Errorf("月 count = %d, want 2", p.ImageryCountOf("月"))
	}
	if p.ImageryCountOf("霜") != 1 {
		t.Errorf("霜 count = %d, want 1", p.ImageryCountOf("霜"))
	}
	if p.WordAssociations == nil || len(p.WordAssociations) != 0 {
		t.Error("WordAssociations should start empty and non-nil")
	}
}

func TestIsTitleLine(t *testing.T) {
	tests := []struct {
		line string
		want bool
	}{
		{"1.静夜思", true},
		{"23.春晓", true},
		{"1.5", true},
		{"1. 春晓", true},
		{"1.", false},
		{"静夜思", false},
		{" 1.静夜思", false},
		{"一.静夜思", false},
		{"1、静夜思", false},
	}

	for _, tt := range tests {
		if got := IsTitleLine(tt.line); got != tt.want {
			t.Errorf("IsTitleLine(%q) = %v, want %v", tt.line, got, tt.want)
		}
	}
}

func TestPoemValidate(t *testing.T) {
	valid := Poem{Title: "春晓", Content: "春眠不觉晓"}
	if err := valid.Validate(); err != nil {
		t.Errorf("Valid poem should pass validation, got %v", err)
	}

	noTitle := Poem{Title: "  ", Content: "春眠不觉晓"}
	if err := noTitle.Validate(); err == nil {
		t.Error("Should fail validation without title")
	}

	noContent := Poem{Title: "春晓", Content: "\n\t"}
	if err := noContent.Validate(); err == nil {
		t.Error("Should fail validation without content")
	}
}

package ingest

import (
	"regexp"
	"strings"

	"github.com/cognicore/yixiang/pkg/yixiang/lexicon"
)

var (
	// "12.34..." numeric title
	numericTitlePattern = regexp.MustCompile(`^\d+\.\d+`)
	// "12.静夜思" index followed by a non-digit title
	indexedTitlePattern = regexp.MustCompile(`^\d+\.[^0-9]`)
	titleTextPattern    = regexp.MustCompile(`^\d+\.(.*)`)
)

// Parser splits raw document text into poems using "N.Title" headings.
type Parser struct {
	extractor *Extractor
}

// NewParser creates a parser that annotates poems with imagery counts
// from the given lexicon.
func NewParser(lex *lexicon.Lexicon) *Parser {
	return &Parser{extractor: NewExtractor(lex)}
}

// Extractor returns the extractor used to annotate parsed poems.
func (p *Parser) Extractor() *Extractor {
	return p.extractor
}

// Parse splits text into poems.
//
// A line is a heading iff it starts with "N.N" or "N." followed by a
// non-digit. Lines before the first heading are dropped, headings without
// content are skipped, and input without any heading yields no poems even
// if it has text. Blank input yields no poems.
func (p *Parser) Parse(text string) []Poem {
	poems := []Poem{}
	if strings.TrimSpace(text) == "" {
		return poems
	}

	var (
		currentTitle string
		content      []string
		foundHeading bool
	)

	flush := func() {
		if currentTitle == "" || len(content) == 0 {
			return
		}
		body := strings.Join(content, "\n")
		poems = append(poems, Poem{
			ID:               currentTitle,
			Title:            currentTitle,
			Content:          body,
			Imagery:          p.extractor.Extract(body),
			WordAssociations: []WordAssociation{},
		})
	}

	for _, line := range splitLines(text) {
		if IsTitleLine(line) {
			foundHeading = true
			flush()
			currentTitle = titleText(line)
			content = content[:0]
			continue
		}
		if currentTitle != "" {
			content = append(content, line)
		}
	}
	flush()

	if !foundHeading {
		return []Poem{}
	}
	return poems
}

// IsTitleLine reports whether line is a numbered poem heading.
func IsTitleLine(line string) bool {
	return numericTitlePattern.MatchString(line) || indexedTitlePattern.MatchString(line)
}

func titleText(line string) string {
	m := titleTextPattern.FindStringSubmatch(line)
	if m == nil {
		return strings.TrimSpace(line)
	}
	return strings.TrimSpace(m[1])
}

// splitLines returns the non-blank lines of text. A trailing "\r" from
// CRLF input is dropped.
func splitLines(text string) []string {
	raw := strings.Split(text, "\n")
	lines := make([]string, 0, len(raw))
	for _, line := range raw {
		line = strings.TrimSuffix(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}

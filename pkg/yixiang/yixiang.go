package yixiang

import (
	"context"
	"fmt"
	"strings"

	"github.com/cognicore/yixiang/pkg/yixiang/ingest"
	"github.com/cognicore/yixiang/pkg/yixiang/internalerr"
	"github.com/cognicore/yixiang/pkg/yixiang/lexicon"
	"github.com/cognicore/yixiang/pkg/yixiang/relations"
	"github.com/cognicore/yixiang/pkg/yixiang/report"
	"github.com/cognicore/yixiang/pkg/yixiang/stats"
	"github.com/cognicore/yixiang/pkg/yixiang/store"
)

// Engine is the imagery analysis facade. Apart from the optional store it
// holds only immutable values, so one Engine can serve concurrent callers.
type Engine struct {
	lex         *lexicon.Lexicon
	parser      *ingest.Parser
	highlighter *ingest.Highlighter
	calc        *stats.Calculator
	reports     *report.Builder
	store       store.Store
}

// Options configures an Engine
type Options struct {
	// Lexicon defaults to lexicon.Default().
	Lexicon *lexicon.Lexicon
	// Store is optional; without it Analyze does not persist reports.
	Store   store.Store
	Reports *report.Builder
}

// New creates an Engine with the given dependencies
func New(opts Options) *Engine {
	lex := opts.Lexicon
	if lex == nil {
		lex = lexicon.Default()
	}
	reports := opts.Reports
	if reports == nil {
		reports = report.New()
	}

	return &Engine{
		lex:         lex,
		parser:      ingest.NewParser(lex),
		highlighter: ingest.NewHighlighter(lex),
		calc:        stats.NewCalculator(lex),
		reports:     reports,
		store:       opts.Store,
	}
}

// Close closes the store, if any.
func (e *Engine) Close() error {
	if e.store == nil {
		return nil
	}
	return e.store.Close()
}

func (e *Engine) Lexicon() *lexicon.Lexicon { return e.lex }

// Store returns the report store, or nil.
func (e *Engine) Store() store.Store { return e.store }

// ParsePoems splits numbered poem text into poems with imagery counts.
func (e *Engine) ParsePoems(text string) []ingest.Poem {
	return e.parser.Parse(text)
}

// ExtractImagery counts lexicon terms in text.
func (e *Engine) ExtractImagery(text string) []ingest.ImageryCount {
	return e.parser.Extractor().Extract(text)
}

// ExtractWordRelationships counts imagery/common-word pairs per sentence.
func (e *Engine) ExtractWordRelationships(text string, imageryWords []string) []relations.WordRelationship {
	return relations.ExtractWordRelationships(e.lex, text, imageryWords)
}

// AnalyzeImageryWordAssociations runs the corpus-wide association pass.
func (e *Engine) AnalyzeImageryWordAssociations(poems []ingest.Poem) []relations.ImageryWordAssociation {
	return relations.AnalyzeImageryWordAssociations(e.lex, poems)
}

// CalculateGlobalStats aggregates statistics over poems.
func (e *Engine) CalculateGlobalStats(poems []ingest.Poem) stats.GlobalStats {
	return e.calc.Calculate(poems)
}

// Highlight wraps every imagery term in text with left and right.
func (e *Engine) Highlight(text, left, right string) string {
	return e.highlighter.Mark(text, left, right)
}

// Analyze parses text, runs every analysis pass and builds a report. The
// report is saved when the engine has a store.
//
// Blank text yields ErrInvalidInput; text without any numbered heading
// yields ErrNotPoemFormatted.
func (e *Engine) Analyze(ctx context.Context, source, text string) (report.Report, error) {
	if err := ctx.Err(); err != nil {
		return report.Report{}, err
	}
	if strings.TrimSpace(text) == "" {
		return report.Report{}, fmt.Errorf("analyze %s: empty text: %w", source, internalerr.ErrInvalidInput)
	}

	poems := e.parser.Parse(text)
	if len(poems) == 0 {
		return report.Report{}, fmt.Errorf("analyze %s: %w", source, internalerr.ErrNotPoemFormatted)
	}
	return e.analyzePoems(ctx, source, poems)
}

// RebuildReport re-runs every pass over the poems of a stored report with
// the engine's current lexicon and saves the result as a new report. The
// old report is left in place.
func (e *Engine) RebuildReport(ctx context.Context, id string) (report.Report, error) {
	old, err := e.GetReport(ctx, id)
	if err != nil {
		return report.Report{}, err
	}

	extractor := e.parser.Extractor()
	poems := make([]ingest.Poem, len(old.Poems))
	for i, p := range old.Poems {
		poems[i] = ingest.Poem{
			ID:      p.ID,
			Title:   p.Title,
			Content: p.Content,
			Imagery: extractor.Extract(p.Content),

			WordAssociations: []ingest.WordAssociation{},
		}
	}
	return e.analyzePoems(ctx, old.Source, poems)
}

func (e *Engine) analyzePoems(ctx context.Context, source string, poems []ingest.Poem) (report.Report, error) {
	assoc := relations.AnalyzeImageryWordAssociations(e.lex, poems)
	poems = relations.AttachAssociations(poems, assoc)
	gs := e.calc.Calculate(poems)

	r := e.reports.Build(source, poems, assoc, gs)
	if e.store != nil {
		if err := e.store.SaveReport(ctx, r); err != nil {
			return report.Report{}, fmt.Errorf("save report: %w", err)
		}
	}
	return r, nil
}

// GetReport loads a stored report.
func (e *Engine) GetReport(ctx context.Context, id string) (report.Report, error) {
	if e.store == nil {
		return report.Report{}, internalerr.ErrStoreUnavailable
	}
	return e.store.GetReport(ctx, id)
}

// ListReports lists stored reports, newest first.
func (e *Engine) ListReports(ctx context.Context, limit int) ([]report.Summary, error) {
	if e.store == nil {
		return nil, internalerr.ErrStoreUnavailable
	}
	return e.store.ListReports(ctx, limit)
}

// DeleteReport removes a stored report.
func (e *Engine) DeleteReport(ctx context.Context, id string) error {
	if e.store == nil {
		return internalerr.ErrStoreUnavailable
	}
	return e.store.DeleteReport(ctx, id)
}

package stats

import (
	"strings"

	"github.com/cognicore/yixiang/pkg/yixiang/cooccur"
	"github.com/cognicore/yixiang/pkg/yixiang/ingest"
	"github.com/cognicore/yixiang/pkg/yixiang/lexicon"
	"github.com/cognicore/yixiang/pkg/yixiang/relations"
)

const (
	// TimelineGroupSize is the number of consecutive poems per timeline slot.
	TimelineGroupSize = 5

	// LinkThresholdRatio is the fraction of the strongest co-occurrence a
	// pair must exceed to become a network link.
	LinkThresholdRatio = 0.2

	// TopPairsLimit caps the number of top pairs reported.
	TopPairsLimit = 10
)

// Calculator aggregates corpus statistics against a lexicon. It keeps no
// state between calls.
type Calculator struct {
	lex *lexicon.Lexicon
	pmi *cooccur.Calculator
}

// NewCalculator creates a calculator for lex.
func NewCalculator(lex *lexicon.Lexicon) *Calculator {
	return &Calculator{lex: lex, pmi: cooccur.NewCalculator(1.0)}
}

// Calculate derives GlobalStats from poems. Poems must already carry their
// Imagery counts; the imagery-word network also reads WordAssociations.
// Imagery words outside the lexicon are ignored.
func (c *Calculator) Calculate(poems []ingest.Poem) GlobalStats {
	if len(poems) == 0 {
		return emptyStats()
	}

	terms := c.lex.Terms()
	freq := make(map[string]int, len(terms))
	counter := cooccur.NewCounter()
	categories := newCategoryTally(c.lex)
	lists := make([][]relations.WordRelationship, 0, len(poems))

	for _, poem := range poems {
		words := c.lexiconImagery(poem)

		for _, ic := range poem.Imagery {
			if !c.lex.Contains(ic.Word) {
				continue
			}
			freq[ic.Word] += ic.Count
			categories.add(ic.Word, ic.Count)
		}

		counter.AddPoem(words)

		if strings.TrimSpace(poem.Content) != "" && len(words) > 0 {
			lists = append(lists, relations.ExtractWordRelationships(c.lex, poem.Content, words))
		}
	}

	present := make([]string, 0, len(terms))
	for _, t := range terms {
		if freq[t] > 0 {
			present = append(present, t)
		}
	}

	return GlobalStats{
		CoOccurrenceNetwork: c.coOccurrenceNetwork(present, freq, counter),
		Timeline:            c.timeline(terms, poems),
		CategoryAnalysis:    categories.result(),
		TopPairs:            c.topPairs(present, counter),
		WordRelationships:   relations.MergeWordRelationships(lists...),
		ImageryWordNetwork:  ImageryWordNetwork(FindImageryWordPairs(poems)),
	}
}

// lexiconImagery returns the poem's imagery words that are lexicon terms.
func (c *Calculator) lexiconImagery(poem ingest.Poem) []string {
	words := make([]string, 0, len(poem.Imagery))
	for _, ic := range poem.Imagery {
		if c.lex.Contains(ic.Word) {
			words = append(words, ic.Word)
		}
	}
	return words
}

// timeline sums each term's counts per group of TimelineGroupSize poems,
// dropping terms that never occur.
func (c *Calculator) timeline(terms []string, poems []ingest.Poem) []TimelineData {
	slots := (len(poems) + TimelineGroupSize - 1) / TimelineGroupSize

	out := []TimelineData{}
	for _, term := range terms {
		counts := make([]int, slots)
		total := 0
		for i, poem := range poems {
			n := poem.ImageryCountOf(term)
			counts[i/TimelineGroupSize] += n
			total += n
		}
		if total > 0 {
			out = append(out, TimelineData{Imagery: term, Counts: counts})
		}
	}
	return out
}

// categoryTally accumulates term counts per category path. A term counts
// toward both its main category and its main/sub path.
type categoryTally struct {
	lex    *lexicon.Lexicon
	order  []string
	counts map[string]map[string]int
}

func newCategoryTally(lex *lexicon.Lexicon) *categoryTally {
	ct := &categoryTally{lex: lex, counts: make(map[string]map[string]int)}
	for _, path := range lex.CategoryPaths() {
		ct.ensure(path)
	}
	return ct
}

func (ct *categoryTally) ensure(path string) map[string]int {
	m, ok := ct.counts[path]
	if !ok {
		m = make(map[string]int)
		ct.counts[path] = m
		ct.order = append(ct.order, path)
	}
	return m
}

func (ct *categoryTally) add(term string, n int) {
	cat := ct.lex.CategoryOf(term)
	ct.ensure(cat.Main)[term] += n
	ct.ensure(cat.Path())[term] += n
}

func (ct *categoryTally) result() []CategoryData {
	out := make([]CategoryData, 0, len(ct.order))
	for _, path := range ct.order {
		out = append(out, CategoryData{Category: path, ImageryCount: ct.counts[path]})
	}
	return out
}

package relations

import (
	"sort"
	"strings"

	"github.com/cognicore/yixiang/pkg/yixiang/ingest"
	"github.com/cognicore/yixiang/pkg/yixiang/lexicon"
)

// WordRelationship counts the sentences in which an imagery term and a
// common word appear together.
type WordRelationship struct {
	Imagery string `json:"imagery"`
	Word    string `json:"word"`
	Count   int    `json:"count"`
}

// ExtractWordRelationships tallies imagery/common-word co-occurrence for
// one text.
//
// Sentences end at 。！？ or a line break. In each sentence that contains
// at least one of imageryWords, every distinct character that is in the
// common-word list adds one to its (imagery, character) count. Repeating a
// character inside one sentence does not add more. The imagery term itself
// is skipped, so a term never relates to itself even when it is also a
// common word. imageryWords outside the lexicon are ignored, and repeated
// entries are used once, keeping the first.
//
// The result is sorted by count descending; ties are grouped by imagery in
// imageryWords order, then by first appearance of the word.
func ExtractWordRelationships(lex *lexicon.Lexicon, text string, imageryWords []string) []WordRelationship {
	result := []WordRelationship{}
	if strings.TrimSpace(text) == "" || len(imageryWords) == 0 {
		return result
	}

	imageries := restrictToLexicon(lex, imageryWords)
	if len(imageries) == 0 {
		return result
	}

	tallies := make(map[string]*orderedCounts, len(imageries))
	for _, img := range imageries {
		tallies[img] = newOrderedCounts()
	}

	for _, sentence := range ingest.SplitSentences(text) {
		present := presentIn(sentence, imageries)
		if len(present) == 0 {
			continue
		}

		chars := ingest.UniqueChars(sentence)
		for _, img := range present {
			for _, ch := range chars {
				if ch == img || ingest.IsBlankString(ch) || !lex.IsCommon(ch) {
					continue
				}
				tallies[img].inc(ch, 1)
			}
		}
	}

	for _, img := range imageries {
		oc := tallies[img]
		for _, word := range oc.keys {
			result = append(result, WordRelationship{Imagery: img, Word: word, Count: oc.counts[word]})
		}
	}

	sortRelationships(result)
	return result
}

// MergeWordRelationships sums counts of identical (imagery, word) pairs
// across lists and sorts the result by count descending. Ties keep the
// order in which pairs were first seen.
func MergeWordRelationships(lists ...[]WordRelationship) []WordRelationship {
	type key struct{ imagery, word string }

	var order []key
	counts := make(map[key]int)
	for _, list := range lists {
		for _, rel := range list {
			k := key{rel.Imagery, rel.Word}
			if _, ok := counts[k]; !ok {
				order = append(order, k)
			}
			counts[k] += rel.Count
		}
	}

	merged := make([]WordRelationship, 0, len(order))
	for _, k := range order {
		merged = append(merged, WordRelationship{Imagery: k.imagery, Word: k.word, Count: counts[k]})
	}

	sortRelationships(merged)
	return merged
}

func sortRelationships(rels []WordRelationship) {
	sort.SliceStable(rels, func(i, j int) bool {
		return rels[i].Count > rels[j].Count
	})
}

// restrictToLexicon keeps lexicon terms only, once each, in input order.
func restrictToLexicon(lex *lexicon.Lexicon, words []string) []string {
	seen := make(map[string]struct{}, len(words))
	out := make([]string, 0, len(words))
	for _, w := range words {
		if !lex.Contains(w) {
			continue
		}
		if _, ok := seen[w]; ok {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
	}
	return out
}

func presentIn(sentence string, imageries []string) []string {
	var present []string
	for _, img := range imageries {
		if strings.Contains(sentence, img) {
			present = append(present, img)
		}
	}
	return present
}

// orderedCounts is a counter that remembers first-insertion order.
type orderedCounts struct {
	keys   []string
	counts map[string]int
}

func newOrderedCounts() *orderedCounts {
	return &orderedCounts{counts: make(map[string]int)}
}

func (o *orderedCounts) inc(key string, n int) {
	if _, ok := o.counts[key]; !ok {
		o.keys = append(o.keys, key)
	}
	o.counts[key] += n
}

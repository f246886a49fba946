package ingest

import (
	"fmt"
	"strings"

	"github.com/cognicore/yixiang/pkg/yixiang/internalerr"
)

// Poem is one parsed poem plus the fields later stages derive from it.
type Poem struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"` // verse lines joined by "\n"

	Imagery          []ImageryCount    `json:"imagery"`
	WordAssociations []WordAssociation `json:"wordAssociations"`
}

// ImageryCount is the number of times one imagery term occurs in a text.
type ImageryCount struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// WordAssociation ties a word to an imagery term across the corpus.
// Strength is Count divided by the word's corpus frequency.
type WordAssociation struct {
	Word        string       `json:"word"`
	Count       int          `json:"count"`
	Strength    float64      `json:"strength"`
	Occurrences []Occurrence `json:"occurrences"`
}

// Occurrence records where an association was observed.
type Occurrence struct {
	PoemID   string `json:"poemId"`
	Sentence string `json:"sentence"`
}

// Validate checks that a poem supplied from outside the parser is usable.
func (p *Poem) Validate() error {
	if strings.TrimSpace(p.Title) == "" {
		return fmt.Errorf("poem title is required: %w", internalerr.ErrInvalidInput)
	}

	if strings.TrimSpace(p.Content) == "" {
		return fmt.Errorf("poem %q content is required: %w", p.Title, internalerr.ErrInvalidInput)
	}

	return nil
}

// ImageryWords returns the imagery terms of the poem in count order.
func (p *Poem) ImageryWords() []string {
	words := make([]string, 0, len(p.Imagery))
	for _, ic := range p.Imagery {
		words = append(words, ic.Word)
	}
	return words
}

// ImageryCountOf returns the count recorded for word, or 0.
func (p *Poem) ImageryCountOf(word string) int {
	for _, ic := range p.Imagery {
		if ic.Word == word {
			return ic.Count
		}
	}
	return 0
}

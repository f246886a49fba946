package stats

import (
	"github.com/cognicore/yixiang/pkg/yixiang/ingest"
	"github.com/cognicore/yixiang/pkg/yixiang/relations"
)

// GlobalStats is the corpus-wide view over a poem collection. Every field
// is derived from the poems passed to Calculate.
type GlobalStats struct {
	CoOccurrenceNetwork Network                      `json:"coOccurrenceNetwork"`
	Timeline            []TimelineData               `json:"timeline"`
	CategoryAnalysis    []CategoryData               `json:"categoryAnalysis"`
	TopPairs            []TopPair                    `json:"topPairs"`
	WordRelationships   []relations.WordRelationship `json:"wordRelationships"`
	ImageryWordNetwork  Network                      `json:"imageryWordNetwork"`
}

// Network is a graph ready for a force-layout chart.
type Network struct {
	Nodes      []Node            `json:"nodes"`
	Links      []Link            `json:"links"`
	Categories []NetworkCategory `json:"categories,omitempty"`
}

type Node struct {
	Name     string `json:"name"`
	Value    int    `json:"value"`
	Category string `json:"category"`
}

type Link struct {
	Source    string    `json:"source"`
	Target    string    `json:"target"`
	Value     int       `json:"value"`
	LineStyle LineStyle `json:"lineStyle"`
}

// LineStyle carries rendering hints derived from a link's weight.
type LineStyle struct {
	Width float64 `json:"width"`
	Color string  `json:"color"`
}

type NetworkCategory struct {
	Name string `json:"name"`
}

// TimelineData holds one imagery term's counts per group of poems.
type TimelineData struct {
	Imagery string `json:"imagery"`
	Counts  []int  `json:"counts"`
}

// CategoryData maps the terms of one category path to their counts.
type CategoryData struct {
	Category     string         `json:"category"`
	ImageryCount map[string]int `json:"imageryCount"`
}

// TopPair is a frequently co-occurring imagery pair. PMI and NPMI are
// computed over poem presence.
type TopPair struct {
	Pair  []string `json:"pair"`
	Count int      `json:"count"`
	PMI   float64  `json:"pmi"`
	NPMI  float64  `json:"npmi"`
}

// ImageryWordPair links an imagery term to an associated word found in
// the same poems.
type ImageryWordPair struct {
	Imagery     string              `json:"imagery"`
	Word        string              `json:"word"`
	Count       int                 `json:"count"`
	Occurrences []ingest.Occurrence `json:"occurrences"`
}

func emptyStats() GlobalStats {
	return GlobalStats{
		CoOccurrenceNetwork: Network{Nodes: []Node{}, Links: []Link{}, Categories: []NetworkCategory{}},
		Timeline:            []TimelineData{},
		CategoryAnalysis:    []CategoryData{},
		TopPairs:            []TopPair{},
		WordRelationships:   []relations.WordRelationship{},
		ImageryWordNetwork:  Network{Nodes: []Node{}, Links: []Link{}},
	}
}

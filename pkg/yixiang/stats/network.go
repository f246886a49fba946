package stats

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/cognicore/yixiang/pkg/yixiang/cooccur"
	"github.com/cognicore/yixiang/pkg/yixiang/lexicon"
)

// coOccurrenceNetwork builds nodes for every present term and links for
// pairs whose poem co-occurrence is strictly above LinkThresholdRatio of
// the maximum. A qualifying pair yields a link in each direction, with
// sources and then targets in lexicon order.
func (c *Calculator) coOccurrenceNetwork(present []string, freq map[string]int, counter *cooccur.Counter) Network {
	nodes := make([]Node, 0, len(present))
	usesOther := false
	for _, term := range present {
		main := c.lex.CategoryOf(term).Main
		if main == lexicon.OtherMain {
			usesOther = true
		}
		nodes = append(nodes, Node{Name: term, Value: freq[term], Category: main})
	}

	cats := []NetworkCategory{}
	for _, name := range c.lex.MainCategories() {
		cats = append(cats, NetworkCategory{Name: name})
	}
	if usesOther {
		cats = append(cats, NetworkCategory{Name: lexicon.OtherMain})
	}

	links := []Link{}
	peak := counter.Max()
	threshold := LinkThresholdRatio * float64(peak)
	for _, a := range present {
		for _, b := range present {
			if a == b {
				continue
			}
			v := counter.Count(a, b)
			if v == 0 || float64(v) <= threshold {
				continue
			}
			links = append(links, Link{
				Source:    a,
				Target:    b,
				Value:     int(v),
				LineStyle: weightStyle(float64(v) / float64(peak)),
			})
		}
	}

	return Network{Nodes: nodes, Links: links, Categories: cats}
}

// weightStyle maps a normalised weight n in (0, 1] to width and opacity.
func weightStyle(n float64) LineStyle {
	return LineStyle{
		Width: 1 + n*5,
		Color: fmt.Sprintf("rgba(128, 128, 128, %s)", strconv.FormatFloat(0.3+n*0.7, 'f', -1, 64)),
	}
}

// topPairs lists the most frequent unordered pairs. Each pair appears once
// with the lexically smaller term first; ties keep lexicon order.
func (c *Calculator) topPairs(present []string, counter *cooccur.Counter) []TopPair {
	pairs := []TopPair{}
	for _, a := range present {
		for _, b := range present {
			if a >= b {
				continue
			}
			n := counter.Count(a, b)
			if n == 0 {
				continue
			}
			pairs = append(pairs, TopPair{
				Pair:  []string{a, b},
				Count: int(n),
				PMI:   c.pmi.PairPMI(counter, a, b),
				NPMI:  c.pmi.PairNPMI(counter, a, b),
			})
		}
	}

	sort.SliceStable(pairs, func(i, j int) bool {
		return pairs[i].Count > pairs[j].Count
	})
	if len(pairs) > TopPairsLimit {
		pairs = pairs[:TopPairsLimit]
	}
	return pairs
}

package stats

import (
	"strings"

	"github.com/cognicore/yixiang/pkg/yixiang/ingest"
)

const (
	// MinImageryWordPairCount is the number of poems an imagery/word pair
	// must share to enter the imagery-word network.
	MinImageryWordPairCount = 2

	maxImageryWordLinkWidth = 10
	imageryWordLinkColor    = "#6366f1"
	imageryWordNodeCategory = "default"
)

// FindImageryWordPairs crosses each poem's imagery terms with the words of
// its WordAssociations. A pair counts once per poem and records the first
// 。-terminated sentence of the poem holding both. Pairs seen in fewer than
// MinImageryWordPairCount poems are dropped. An association whose word is
// the imagery term itself is skipped, so a term never pairs with itself.
func FindImageryWordPairs(poems []ingest.Poem) []ImageryWordPair {
	type key struct{ imagery, word string }

	var order []key
	pairs := make(map[key]*ImageryWordPair)

	for _, poem := range poems {
		sentences := strings.Split(poem.Content, "。")
		for _, imagery := range poem.ImageryWords() {
			for _, wa := range poem.WordAssociations {
				if wa.Word == imagery {
					continue
				}
				k := key{imagery, wa.Word}
				p, ok := pairs[k]
				if !ok {
					p = &ImageryWordPair{Imagery: imagery, Word: wa.Word, Occurrences: []ingest.Occurrence{}}
					pairs[k] = p
					order = append(order, k)
				}
				p.Count++

				for _, s := range sentences {
					if strings.Contains(s, imagery) && strings.Contains(s, wa.Word) {
						p.Occurrences = append(p.Occurrences, ingest.Occurrence{PoemID: poem.ID, Sentence: s + "。"})
						break
					}
				}
			}
		}
	}

	out := []ImageryWordPair{}
	for _, k := range order {
		if p := pairs[k]; p.Count >= MinImageryWordPairCount {
			out = append(out, *p)
		}
	}
	return out
}

// ImageryWordNetwork turns imagery-word pairs into a graph. Node value is
// the sum of the counts of the pairs touching the node.
func ImageryWordNetwork(pairs []ImageryWordPair) Network {
	var names []string
	values := make(map[string]int)
	touch := func(name string, n int) {
		if _, ok := values[name]; !ok {
			names = append(names, name)
		}
		values[name] += n
	}

	links := make([]Link, 0, len(pairs))
	for _, p := range pairs {
		touch(p.Imagery, p.Count)
		touch(p.Word, p.Count)

		width := float64(p.Count * 2)
		if width > maxImageryWordLinkWidth {
			width = maxImageryWordLinkWidth
		}
		links = append(links, Link{
			Source:    p.Imagery,
			Target:    p.Word,
			Value:     p.Count,
			LineStyle: LineStyle{Width: width, Color: imageryWordLinkColor},
		})
	}

	nodes := make([]Node, 0, len(names))
	for _, name := range names {
		nodes = append(nodes, Node{Name: name, Value: values[name], Category: imageryWordNodeCategory})
	}
	return Network{Nodes: nodes, Links: links}
}

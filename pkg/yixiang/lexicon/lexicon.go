package lexicon

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/cognicore/yixiang/pkg/yixiang/internalerr"
)

// Fallback category for terms the taxonomy does not group.
const (
	OtherMain = "其他"
	OtherSub  = "未分类"
)

// Lexicon holds the imagery vocabulary, its two-level taxonomy and the
// common-word list used to filter word relationships.
//
// Design principles:
// - Ordered: term order is the curated order and drives every tie-break
// - Immutable: built once at startup, then only read
// - Injected: analyzers receive a *Lexicon instead of reading globals
type Lexicon struct {
	// imagery terms in curated order, no duplicates
	terms []string

	// term -> position in terms
	index map[string]int

	// term -> first taxonomy group containing it
	categories map[string]Category

	taxonomy []MainCategory

	// common word -> struct{}
	common     map[string]struct{}
	commonList []string
}

// Category locates a term in the taxonomy.
type Category struct {
	Main string `json:"mainCategory" yaml:"main"`
	Sub  string `json:"subCategory" yaml:"sub"`
}

// Path returns "main/sub".
func (c Category) Path() string {
	return c.Main + "/" + c.Sub
}

// MainCategory is a top-level taxonomy group.
type MainCategory struct {
	Name          string        `json:"name" yaml:"name"`
	Subcategories []Subcategory `json:"subcategories" yaml:"subcategories"`
}

// Subcategory is a second-level taxonomy group.
type Subcategory struct {
	Name  string   `json:"name" yaml:"name"`
	Terms []string `json:"terms" yaml:"terms"`
}

// New builds a lexicon. Duplicate terms keep their first position.
// When a term appears in several taxonomy groups the first group wins.
func New(terms []string, taxonomy []MainCategory, common []string) *Lexicon {
	lex := &Lexicon{
		index:      make(map[string]int, len(terms)),
		categories: make(map[string]Category),
		common:     make(map[string]struct{}, len(common)),
	}

	for _, t := range terms {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		if _, ok := lex.index[t]; ok {
			continue
		}
		lex.index[t] = len(lex.terms)
		lex.terms = append(lex.terms, t)
	}

	lex.taxonomy = make([]MainCategory, 0, len(taxonomy))
	for _, main := range taxonomy {
		mc := MainCategory{Name: main.Name, Subcategories: make([]Subcategory, 0, len(main.Subcategories))}
		for _, sub := range main.Subcategories {
			sc := Subcategory{Name: sub.Name, Terms: append([]string(nil), sub.Terms...)}
			mc.Subcategories = append(mc.Subcategories, sc)
			for _, t := range sub.Terms {
				if _, seen := lex.categories[t]; !seen {
					lex.categories[t] = Category{Main: main.Name, Sub: sub.Name}
				}
			}
		}
		lex.taxonomy = append(lex.taxonomy, mc)
	}

	for _, w := range common {
		w = strings.TrimSpace(w)
		if w == "" {
			continue
		}
		if _, ok := lex.common[w]; ok {
			continue
		}
		lex.common[w] = struct{}{}
		lex.commonList = append(lex.commonList, w)
	}

	return lex
}

// Default returns the built-in classical-poetry lexicon.
func Default() *Lexicon {
	return New(defaultTerms, defaultTaxonomy, defaultCommonWords)
}

// LoadFromYAML loads a lexicon from a YAML file.
//
// Expected format:
//   terms: [日, 月, 星]
//   taxonomy:
//     - name: 天文
//       subcategories:
//         - name: 日月星辰
//           terms: [日, 月, 星]
//   common_words: [落, 飘, 思]
//
// Sections that are absent fall back to the built-in data. When terms is
// absent but taxonomy is given, the terms are taken from the taxonomy.
func LoadFromYAML(path string) (*Lexicon, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var file struct {
		Terms       []string       `yaml:"terms"`
		Taxonomy    []MainCategory `yaml:"taxonomy"`
		CommonWords []string       `yaml:"common_words"`
	}
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse lexicon %s: %w", path, err)
	}

	taxonomy := file.Taxonomy
	if taxonomy == nil {
		taxonomy = defaultTaxonomy
	}

	terms := file.Terms
	if terms == nil {
		if file.Taxonomy != nil {
			terms = taxonomyTerms(file.Taxonomy)
		} else {
			terms = defaultTerms
		}
	}

	common := file.CommonWords
	if common == nil {
		common = defaultCommonWords
	}

	lex := New(terms, taxonomy, common)
	if len(lex.terms) == 0 {
		return nil, fmt.Errorf("lexicon %s: %w", path, errors.Join(internalerr.ErrInvalidConfig, errors.New("no imagery terms")))
	}
	return lex, nil
}

func taxonomyTerms(taxonomy []MainCategory) []string {
	var out []string
	for _, main := range taxonomy {
		for _, sub := range main.Subcategories {
			out = append(out, sub.Terms...)
		}
	}
	return out
}

// Terms returns the imagery terms in lexicon order.
func (l *Lexicon) Terms() []string {
	return append([]string(nil), l.terms...)
}

// Len returns the number of imagery terms.
func (l *Lexicon) Len() int {
	return len(l.terms)
}

// Contains reports whether term is an imagery term.
func (l *Lexicon) Contains(term string) bool {
	_, ok := l.index[term]
	return ok
}

// CategoryOf returns the taxonomy group of term, or (其他, 未分类).
func (l *Lexicon) CategoryOf(term string) Category {
	if c, ok := l.categories[term]; ok {
		return c
	}
	return Category{Main: OtherMain, Sub: OtherSub}
}

// MainCategories returns the top-level category names in taxonomy order.
func (l *Lexicon) MainCategories() []string {
	out := make([]string, 0, len(l.taxonomy))
	for _, mc := range l.taxonomy {
		out = append(out, mc.Name)
	}
	return out
}

// CategoryPaths returns every accumulator key: each main category followed
// by its "main/sub" paths, in taxonomy order.
func (l *Lexicon) CategoryPaths() []string {
	var out []string
	for _, mc := range l.taxonomy {
		out = append(out, mc.Name)
		for _, sc := range mc.Subcategories {
			out = append(out, mc.Name+"/"+sc.Name)
		}
	}
	return out
}

// Taxonomy returns a copy of the taxonomy.
func (l *Lexicon) Taxonomy() []MainCategory {
	out := make([]MainCategory, len(l.taxonomy))
	for i, mc := range l.taxonomy {
		out[i] = MainCategory{Name: mc.Name, Subcategories: make([]Subcategory, len(mc.Subcategories))}
		for j, sc := range mc.Subcategories {
			out[i].Subcategories[j] = Subcategory{Name: sc.Name, Terms: append([]string(nil), sc.Terms...)}
		}
	}
	return out
}

// IsCommon reports whether word is in the common-word list.
func (l *Lexicon) IsCommon(word string) bool {
	_, ok := l.common[word]
	return ok
}

// CommonWords returns the common-word list without duplicates.
func (l *Lexicon) CommonWords() []string {
	return append([]string(nil), l.commonList...)
}

// Stats returns statistics about the lexicon contents.
func (l *Lexicon) Stats() LexiconStats {
	subs := 0
	for _, mc := range l.taxonomy {
		subs += len(mc.Subcategories)
	}
	uncategorized := 0
	for _, t := range l.terms {
		if _, ok := l.categories[t]; !ok {
			uncategorized++
		}
	}
	return LexiconStats{
		Terms:          len(l.terms),
		MainCategories: len(l.taxonomy),
		Subcategories:  subs,
		Uncategorized:  uncategorized,
		CommonWords:    len(l.commonList),
	}
}

// LexiconStats holds statistics about lexicon contents.
type LexiconStats struct {
	Terms          int `json:"terms"`
	MainCategories int `json:"mainCategories"`
	Subcategories  int `json:"subcategories"`
	Uncategorized  int `json:"uncategorized"` // terms outside every taxonomy group
	CommonWords    int `json:"commonWords"`
}

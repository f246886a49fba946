package relations

import (
	"sort"

	"github.com/cognicore/yixiang/pkg/yixiang/ingest"
	"github.com/cognicore/yixiang/pkg/yixiang/lexicon"
)

// MinAssociationCount is the number of co-occurrences a word needs before
// it is reported as associated with an imagery term.
const MinAssociationCount = 2

// ImageryWordAssociation lists the words associated with one imagery term.
type ImageryWordAssociation struct {
	Imagery      string                   `json:"imagery"`
	Associations []ingest.WordAssociation `json:"associations"`
}

// AnalyzeImageryWordAssociations computes corpus-wide imagery/word
// associations.
//
// Unlike ExtractWordRelationships it splits at clause punctuation
// (，。！？；：) and whitespace, checks every lexicon term, and accepts any
// non-blank character as a partner word. Each (imagery, character) pair
// counts once per clause and records the clause as an occurrence.
//
// Strength is count / frequency, where a character's frequency is the
// number of clauses in the corpus containing it. Because every counted
// clause also contributes to the frequency, 0 < strength <= 1.
//
// Words with fewer than MinAssociationCount co-occurrences are dropped;
// the rest are sorted by strength descending. Imagery terms appear in the
// order they were first found.
func AnalyzeImageryWordAssociations(lex *lexicon.Lexicon, poems []ingest.Poem) []ImageryWordAssociation {
	freq := clauseFrequency(poems)
	terms := lex.Terms()

	var imageryOrder []string
	cooccur := make(map[string]*associationSet)

	for _, poem := range poems {
		for _, clause := range ingest.SplitClauses(poem.Content) {
			present := presentIn(clause, terms)
			if len(present) == 0 {
				continue
			}

			chars := ingest.UniqueChars(clause)
			for _, img := range present {
				set, ok := cooccur[img]
				if !ok {
					set = newAssociationSet()
					cooccur[img] = set
					imageryOrder = append(imageryOrder, img)
				}

				for _, ch := range chars {
					if ch == img || ingest.IsBlankString(ch) {
						continue
					}
					set.record(ch, freq[ch], ingest.Occurrence{PoemID: poem.ID, Sentence: clause})
				}
			}
		}
	}

	result := make([]ImageryWordAssociation, 0, len(imageryOrder))
	for _, img := range imageryOrder {
		set := cooccur[img]
		kept := []ingest.WordAssociation{}
		for _, word := range set.order {
			if a := set.byWord[word]; a.Count >= MinAssociationCount {
				kept = append(kept, *a)
			}
		}
		sort.SliceStable(kept, func(i, j int) bool {
			return kept[i].Strength > kept[j].Strength
		})
		result = append(result, ImageryWordAssociation{Imagery: img, Associations: kept})
	}
	return result
}

// clauseFrequency counts, per character, the clauses that contain it.
func clauseFrequency(poems []ingest.Poem) map[string]int {
	freq := make(map[string]int)
	for _, poem := range poems {
		for _, clause := range ingest.SplitClauses(poem.Content) {
			for _, ch := range ingest.UniqueChars(clause) {
				freq[ch]++
			}
		}
	}
	return freq
}

type associationSet struct {
	order  []string
	byWord map[string]*ingest.WordAssociation
}

func newAssociationSet() *associationSet {
	return &associationSet{byWord: make(map[string]*ingest.WordAssociation)}
}

// record adds one co-occurrence and recomputes strength against frequency
// (1 when the word was never counted).
func (s *associationSet) record(word string, frequency int, occ ingest.Occurrence) {
	if frequency <= 0 {
		frequency = 1
	}

	a, ok := s.byWord[word]
	if !ok {
		a = &ingest.WordAssociation{Word: word}
		s.byWord[word] = a
		s.order = append(s.order, word)
	}
	a.Count++
	a.Strength = float64(a.Count) / float64(frequency)
	a.Occurrences = append(a.Occurrences, occ)
}

// AttachAssociations returns copies of poems whose WordAssociations hold
// the corpus associations observed in that poem, one entry per word in the
// order first found. Count and Strength stay corpus-wide; Occurrences are
// narrowed to the poem. The input poems are not modified.
func AttachAssociations(poems []ingest.Poem, assoc []ImageryWordAssociation) []ingest.Poem {
	out := make([]ingest.Poem, len(poems))
	for i, poem := range poems {
		attached := []ingest.WordAssociation{}
		seen := make(map[string]struct{})

		for _, entry := range assoc {
			for _, a := range entry.Associations {
				if _, ok := seen[a.Word]; ok {
					continue
				}
				occs := occurrencesIn(a.Occurrences, poem.ID)
				if len(occs) == 0 {
					continue
				}
				seen[a.Word] = struct{}{}
				attached = append(attached, ingest.WordAssociation{
					Word:        a.Word,
					Count:       a.Count,
					Strength:    a.Strength,
					Occurrences: occs,
				})
			}
		}

		poem.Imagery = append([]ingest.ImageryCount(nil), poem.Imagery...)
		poem.WordAssociations = attached
		out[i] = poem
	}
	return out
}

func occurrencesIn(occs []ingest.Occurrence, poemID string) []ingest.Occurrence {
	var out []ingest.Occurrence
	for _, o := range occs {
		if o.PoemID == poemID {
			out = append(out, o)
		}
	}
	return out
}

package report

import (
	"crypto/rand"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/cognicore/yixiang/pkg/yixiang/ingest"
	"github.com/cognicore/yixiang/pkg/yixiang/internalerr"
	"github.com/cognicore/yixiang/pkg/yixiang/relations"
	"github.com/cognicore/yixiang/pkg/yixiang/stats"
)

// Report is a stored snapshot of one corpus analysis.
type Report struct {
	ID           string                             `json:"id"`
	Source       string                             `json:"source"`
	CreatedAt    time.Time                          `json:"createdAt"`
	PoemCount    int                                `json:"poemCount"`
	Bullets      []string                           `json:"bullets"`
	Poems        []ingest.Poem                      `json:"poems"`
	Associations []relations.ImageryWordAssociation `json:"associations"`
	Stats        stats.GlobalStats                  `json:"stats"`
}

// Summary is the listing view of a report.
type Summary struct {
	ID        string    `json:"id"`
	Source    string    `json:"source"`
	CreatedAt time.Time `json:"createdAt"`
	PoemCount int       `json:"poemCount"`
	Bullets   []string  `json:"bullets"`
}

// Summary drops the poems and statistics.
func (r *Report) Summary() Summary {
	return Summary{
		ID:        r.ID,
		Source:    r.Source,
		CreatedAt: r.CreatedAt,
		PoemCount: r.PoemCount,
		Bullets:   r.Bullets,
	}
}

// Validate checks the fields a store relies on.
func (r *Report) Validate() error {
	if strings.TrimSpace(r.ID) == "" {
		return fmt.Errorf("report id is required: %w", internalerr.ErrInvalidInput)
	}
	for i := range r.Poems {
		if err := r.Poems[i].Validate(); err != nil {
			return fmt.Errorf("report %s poem %d: %w", r.ID, i, err)
		}
	}
	return nil
}

// Builder assigns ULIDs and summary bullets to analysis results. It is
// safe for concurrent use.
type Builder struct {
	mu      sync.Mutex
	entropy *ulid.MonotonicEntropy
	clock   func() time.Time
}

// New creates a report builder.
func New() *Builder {
	return &Builder{
		entropy: ulid.Monotonic(rand.Reader, 0),
		clock:   time.Now,
	}
}

// Build creates a report for source.
func (b *Builder) Build(source string, poems []ingest.Poem, assoc []relations.ImageryWordAssociation, gs stats.GlobalStats) Report {
	b.mu.Lock()
	now := b.clock().UTC()
	id := ulid.MustNew(ulid.Timestamp(now), b.entropy).String()
	b.mu.Unlock()

	if assoc == nil {
		assoc = []relations.ImageryWordAssociation{}
	}
	if poems == nil {
		poems = []ingest.Poem{}
	}

	return Report{
		ID:           id,
		Source:       source,
		CreatedAt:    now,
		PoemCount:    len(poems),
		Bullets:      Bullets(len(poems), assoc, gs),
		Poems:        poems,
		Associations: assoc,
		Stats:        gs,
	}
}

// Bullets summarises an analysis in a few human-readable lines.
func Bullets(poemCount int, assoc []relations.ImageryWordAssociation, gs stats.GlobalStats) []string {
	bullets := []string{fmt.Sprintf("共 %d 首诗", poemCount)}

	var top *stats.Node
	for i := range gs.CoOccurrenceNetwork.Nodes {
		n := &gs.CoOccurrenceNetwork.Nodes[i]
		if top == nil || n.Value > top.Value {
			top = n
		}
	}
	if top != nil {
		bullets = append(bullets, fmt.Sprintf("最常见意象：%s（%d 次）", top.Name, top.Value))
	}

	if len(gs.TopPairs) > 0 {
		tp := gs.TopPairs[0]
		bullets = append(bullets, fmt.Sprintf("最常见搭配：%s（%d 首）", strings.Join(tp.Pair, " + "), tp.Count))
	}

	bestCat, bestTotal := "", 0
	for _, cd := range gs.CategoryAnalysis {
		if strings.Contains(cd.Category, "/") {
			continue
		}
		total := 0
		for _, n := range cd.ImageryCount {
			total += n
		}
		if total > bestTotal {
			bestCat, bestTotal = cd.Category, total
		}
	}
	if bestTotal > 0 {
		bullets = append(bullets, fmt.Sprintf("意象最多的类别：%s（%d 次）", bestCat, bestTotal))
	}

	var strongest struct {
		imagery string
		word    ingest.WordAssociation
		found   bool
	}
	for _, entry := range assoc {
		for _, a := range entry.Associations {
			if !strongest.found || a.Strength > strongest.word.Strength {
				strongest.imagery, strongest.word, strongest.found = entry.Imagery, a, true
			}
		}
	}
	if strongest.found {
		bullets = append(bullets, fmt.Sprintf("最强关联：%s - %s（强度 %.2f，%d 次）",
			strongest.imagery, strongest.word.Word, strongest.word.Strength, strongest.word.Count))
	}

	return bullets
}

package memstore

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"sync"

	"github.com/cognicore/yixiang/pkg/yixiang/internalerr"
	"github.com/cognicore/yixiang/pkg/yixiang/report"
	"github.com/cognicore/yixiang/pkg/yixiang/store"
)

// Store is an in-memory implementation of store.Store. Reports are kept
// as JSON so callers never share memory with stored values.
type Store struct {
	mu      sync.RWMutex
	reports map[string][]byte
	index   map[string]report.Summary
}

// New creates a new in-memory store.
func New() *Store {
	return &Store{
		reports: make(map[string][]byte),
		index:   make(map[string]report.Summary),
	}
}

// Close implements store.Store.
func (s *Store) Close() error { return nil }

// SaveReport implements store.Store.
func (s *Store) SaveReport(ctx context.Context, r report.Report) error {
	if err := r.Validate(); err != nil {
		return fmt.Errorf("save report: %w", err)
	}

	data, err := json.Marshal(r)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.reports[r.ID]; ok {
		return fmt.Errorf("save report %s: %w", r.ID, internalerr.ErrDuplicate)
	}
	s.reports[r.ID] = data
	sum := r.Summary()
	sum.Bullets = append([]string(nil), sum.Bullets...)
	s.index[r.ID] = sum
	return nil
}

// GetReport implements store.Store.
func (s *Store) GetReport(ctx context.Context, id string) (report.Report, error) {
	s.mu.RLock()
	data, ok := s.reports[id]
	s.mu.RUnlock()

	if !ok {
		return report.Report{}, fmt.Errorf("report %s: %w", id, internalerr.ErrNotFound)
	}

	var r report.Report
	if err := json.Unmarshal(data, &r); err != nil {
		return report.Report{}, err
	}
	return r, nil
}

// ListReports implements store.Store.
func (s *Store) ListReports(ctx context.Context, limit int) ([]report.Summary, error) {
	if limit <= 0 {
		limit = store.DefaultListLimit
	}

	s.mu.RLock()
	out := make([]report.Summary, 0, len(s.index))
	for _, sum := range s.index {
		sum.Bullets = append([]string(nil), sum.Bullets...)
		out = append(out, sum)
	}
	s.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		return out[i].ID > out[j].ID
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// DeleteReport implements store.Store.
func (s *Store) DeleteReport(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.reports[id]; !ok {
		return fmt.Errorf("report %s: %w", id, internalerr.ErrNotFound)
	}
	delete(s.reports, id)
	delete(s.index, id)
	return nil
}

var _ store.Store = (*Store)(nil)

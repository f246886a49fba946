package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/cognicore/yixiang/pkg/yixiang/ingest"
	"github.com/cognicore/yixiang/pkg/yixiang/internalerr"
	"github.com/cognicore/yixiang/pkg/yixiang/report"
	"github.com/cognicore/yixiang/pkg/yixiang/store"
)

// sqliteStore implements store.Store using SQLite
type sqliteStore struct {
	db *sql.DB
}

// OpenSQLite opens a SQLite database with WAL mode enabled and creates
// the schema if needed.
func OpenSQLite(ctx context.Context, path string) (store.Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	// Enable WAL mode for better concurrency
	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, err
	}

	if _, err := db.ExecContext(ctx, "PRAGMA foreign_keys=ON"); err != nil {
		db.Close()
		return nil, err
	}

	if err := initSchema(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	return &sqliteStore{db: db}, nil
}

// Close closes the database connection
func (s *sqliteStore) Close() error {
	return s.db.Close()
}

func initSchema(ctx context.Context, db *sql.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS reports (
	id TEXT PRIMARY KEY,
	source TEXT NOT NULL,
	created_at TEXT NOT NULL,
	poem_count INTEGER NOT NULL,
	bullets TEXT NOT NULL,
	associations TEXT NOT NULL,
	stats TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS report_poems (
	report_id TEXT NOT NULL,
	position INTEGER NOT NULL,
	poem_id TEXT NOT NULL,
	title TEXT NOT NULL,
	content TEXT NOT NULL,
	word_associations TEXT NOT NULL,
	PRIMARY KEY(report_id, position),
	FOREIGN KEY(report_id) REFERENCES reports(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS report_imagery (
	report_id TEXT NOT NULL,
	position INTEGER NOT NULL,
	ord INTEGER NOT NULL,
	term TEXT NOT NULL,
	count INTEGER NOT NULL,
	PRIMARY KEY(report_id, position, ord),
	FOREIGN KEY(report_id) REFERENCES reports(id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_report_imagery_term ON report_imagery(term);
`
	_, err := db.ExecContext(ctx, schema)
	return err
}

// SaveReport stores a report and its poems in one transaction.
func (s *sqliteStore) SaveReport(ctx context.Context, r report.Report) error {
	if err := r.Validate(); err != nil {
		return fmt.Errorf("save report: %w", err)
	}

	bulletsJSON, err := json.Marshal(r.Bullets)
	if err != nil {
		return err
	}
	assocJSON, err := json.Marshal(r.Associations)
	if err != nil {
		return err
	}
	statsJSON, err := json.Marshal(r.Stats)
	if err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var exists int
	err = tx.QueryRowContext(ctx, `SELECT 1 FROM reports WHERE id = ?`, r.ID).Scan(&exists)
	switch {
	case err == nil:
		return fmt.Errorf("save report %s: %w", r.ID, internalerr.ErrDuplicate)
	case !errors.Is(err, sql.ErrNoRows):
		return err
	}

	_, err = tx.ExecContext(ctx, `
INSERT INTO reports (id, source, created_at, poem_count, bullets, associations, stats)
VALUES (?, ?, ?, ?, ?, ?, ?);
`, r.ID, r.Source, r.CreatedAt.UTC().Format(time.RFC3339Nano), r.PoemCount,
		string(bulletsJSON), string(assocJSON), string(statsJSON))
	if err != nil {
		return err
	}

	if err := insertPoems(ctx, tx, r.ID, r.Poems); err != nil {
		return err
	}

	return tx.Commit()
}

func insertPoems(ctx context.Context, tx *sql.Tx, reportID string, poems []ingest.Poem) error {
	poemStmt, err := tx.PrepareContext(ctx, `
INSERT INTO report_poems (report_id, position, poem_id, title, content, word_associations)
VALUES (?, ?, ?, ?, ?, ?);
`)
	if err != nil {
		return err
	}
	defer poemStmt.Close()

	imageryStmt, err := tx.PrepareContext(ctx, `
INSERT INTO report_imagery (report_id, position, ord, term, count)
VALUES (?, ?, ?, ?, ?);
`)
	if err != nil {
		return err
	}
	defer imageryStmt.Close()

	for pos, p := range poems {
		waJSON, err := json.Marshal(p.WordAssociations)
		if err != nil {
			return err
		}
		if _, err := poemStmt.ExecContext(ctx, reportID, pos, p.ID, p.Title, p.Content, string(waJSON)); err != nil {
			return err
		}
		for ord, ic := range p.Imagery {
			if _, err := imageryStmt.ExecContext(ctx, reportID, pos, ord, ic.Word, ic.Count); err != nil {
				return err
			}
		}
	}
	return nil
}

// GetReport loads a report by id.
func (s *sqliteStore) GetReport(ctx context.Context, id string) (report.Report, error) {
	var r report.Report
	var createdAt, bulletsJSON, assocJSON, statsJSON string

	err := s.db.QueryRowContext(ctx, `
SELECT id, source, created_at, poem_count, bullets, associations, stats
FROM reports WHERE id = ?;
`, id).Scan(&r.ID, &r.Source, &createdAt, &r.PoemCount, &bulletsJSON, &assocJSON, &statsJSON)
	if errors.Is(err, sql.ErrNoRows) {
		return report.Report{}, fmt.Errorf("report %s: %w", id, internalerr.ErrNotFound)
	}
	if err != nil {
		return report.Report{}, err
	}

	if r.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt); err != nil {
		return report.Report{}, err
	}
	if err := json.Unmarshal([]byte(bulletsJSON), &r.Bullets); err != nil {
		return report.Report{}, err
	}
	if err := json.Unmarshal([]byte(assocJSON), &r.Associations); err != nil {
		return report.Report{}, err
	}
	if err := json.Unmarshal([]byte(statsJSON), &r.Stats); err != nil {
		return report.Report{}, err
	}

	if r.Poems, err = s.loadPoems(ctx, id); err != nil {
		return report.Report{}, err
	}
	return r, nil
}

func (s *sqliteStore) loadPoems(ctx context.Context, reportID string) ([]ingest.Poem, error) {
	rows, err := s.db.QueryContext(ctx, `
SELECT poem_id, title, content, word_associations
FROM report_poems
WHERE report_id = ?
ORDER BY position;
`, reportID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	poems := []ingest.Poem{}
	for rows.Next() {
		var p ingest.Poem
		var waJSON string
		if err := rows.Scan(&p.ID, &p.Title, &p.Content, &waJSON); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(waJSON), &p.WordAssociations); err != nil {
			return nil, err
		}
		p.Imagery = []ingest.ImageryCount{}
		poems = append(poems, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	imRows, err := s.db.QueryContext(ctx, `
SELECT position, term, count
FROM report_imagery
WHERE report_id = ?
ORDER BY position, ord;
`, reportID)
	if err != nil {
		return nil, err
	}
	defer imRows.Close()

	for imRows.Next() {
		var pos int
		var ic ingest.ImageryCount
		if err := imRows.Scan(&pos, &ic.Word, &ic.Count); err != nil {
			return nil, err
		}
		if pos < 0 || pos >= len(poems) {
			continue
		}
		poems[pos].Imagery = append(poems[pos].Imagery, ic)
	}
	return poems, imRows.Err()
}

// ListReports returns report summaries ordered by id descending. ULIDs
// sort by creation time, so this is newest first.
func (s *sqliteStore) ListReports(ctx context.Context, limit int) ([]report.Summary, error) {
	if limit <= 0 {
		limit = store.DefaultListLimit
	}

	rows, err := s.db.QueryContext(ctx, `
SELECT id, source, created_at, poem_count, bullets
FROM reports
ORDER BY id DESC
LIMIT ?;
`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []report.Summary{}
	for rows.Next() {
		var sum report.Summary
		var createdAt, bulletsJSON string
		if err := rows.Scan(&sum.ID, &sum.Source, &createdAt, &sum.PoemCount, &bulletsJSON); err != nil {
			return nil, err
		}
		if sum.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(bulletsJSON), &sum.Bullets); err != nil {
			return nil, err
		}
		out = append(out, sum)
	}
	return out, rows.Err()
}

// DeleteReport removes a report and its poems.
func (s *sqliteStore) DeleteReport(ctx context.Context, id string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	// foreign_keys is per connection, so children are removed explicitly
	for _, stmt := range []string{
		`DELETE FROM report_imagery WHERE report_id = ?`,
		`DELETE FROM report_poems WHERE report_id = ?`,
	} {
		if _, err := tx.ExecContext(ctx, stmt, id); err != nil {
			return err
		}
	}

	res, err := tx.ExecContext(ctx, `DELETE FROM reports WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("report %s: %w", id, internalerr.ErrNotFound)
	}
	return tx.Commit()
}

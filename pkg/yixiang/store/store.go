package store

import (
	"context"

	"github.com/cognicore/yixiang/pkg/yixiang/report"
)

// DefaultListLimit is used when ListReports is called with limit <= 0.
const DefaultListLimit = 20

// Store persists analysis reports.
//
// GetReport and DeleteReport return internalerr.ErrNotFound for unknown
// ids; SaveReport returns internalerr.ErrDuplicate when the id exists.
type Store interface {
	Close() error

	SaveReport(ctx context.Context, r report.Report) error
	GetReport(ctx context.Context, id string) (report.Report, error)
	// ListReports returns summaries, newest first.
	ListReports(ctx context.Context, limit int) ([]report.Summary, error)
	DeleteReport(ctx context.Context, id string) error
}

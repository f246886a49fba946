package maintenance

import (
	"context"
	"errors"
	"math"

	"github.com/cognicore/yixiang/pkg/yixiang/report"
	"github.com/cognicore/yixiang/pkg/yixiang/store"
)

// Rebuilder re-runs analysis for one stored report and saves the result
// under a new id.
type Rebuilder interface {
	RebuildReport(ctx context.Context, id string) (report.Report, error)
}

// Cleaner keeps a report store consistent with the current lexicon.
type Cleaner struct {
	Store     store.Store
	Rebuilder Rebuilder
}

// Result summarizes a maintenance run.
type Result struct {
	Processed int `json:"processed"`
	Updated   int `json:"updated"`
	Removed   int `json:"removed"`
	Errors    int `json:"errors"`
}

// Rebuild replaces every stored report with one rebuilt from its poems.
// A report is deleted only after its replacement was saved.
func (c *Cleaner) Rebuild(ctx context.Context) (Result, error) {
	var res Result
	if c.Store == nil || c.Rebuilder == nil {
		return res, errors.New("cleaner: invalid configuration")
	}

	list, err := c.Store.ListReports(ctx, math.MaxInt32)
	if err != nil {
		return res, err
	}

	for _, s := range list {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		res.Processed++

		if _, err := c.Rebuilder.RebuildReport(ctx, s.ID); err != nil {
			res.Errors++
			continue
		}
		if err := c.Store.DeleteReport(ctx, s.ID); err != nil {
			res.Errors++
			continue
		}
		res.Updated++
	}
	return res, nil
}

// Prune deletes all but the newest keep reports.
func (c *Cleaner) Prune(ctx context.Context, keep int) (Result, error) {
	var res Result
	if c.Store == nil || keep < 0 {
		return res, errors.New("cleaner: invalid configuration")
	}

	list, err := c.Store.ListReports(ctx, math.MaxInt32)
	if err != nil {
		return res, err
	}
	res.Processed = len(list)
	if len(list) <= keep {
		return res, nil
	}

	for _, s := range list[keep:] {
		if err := c.Store.DeleteReport(ctx, s.ID); err != nil {
			res.Errors++
			continue
		}
		res.Removed++
	}
	return res, nil
}

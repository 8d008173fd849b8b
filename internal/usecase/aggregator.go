// Package usecase contains the business logic of the application.
package usecase

import (
	"context"
	"log"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/orgstats/org-stats/internal/domain"
	"github.com/orgstats/org-stats/internal/gateway"
)

// Aggregator is the use case for aggregating per-account repository stats.
// It orchestrates the fetching and combining of data.
type Aggregator struct {
	fetcher gateway.Fetcher
	logger  *log.Logger
	diag    *log.Logger
}

// NewAggregator creates a new Aggregator instance. logger carries verbose
// progress output; diag carries per-target failure diagnostics and is always
// active.
func NewAggregator(fetcher gateway.Fetcher, logger, diag *log.Logger) *Aggregator {
	return &Aggregator{
		fetcher: fetcher,
		logger:  logger,
		diag:    diag,
	}
}

// Aggregate fetches stats for every target, folds them into buckets keyed by
// display label, and returns the rows sorted by descending star total with
// ties broken by descending repository count.
//
// A target that fails to fetch contributes (0, 0) to its label and emits a
// diagnostic; it never aborts the run. concurrency bounds the number of
// fetches in flight; values below 2 keep the original strictly sequential
// behavior. The fold is additive, so the result does not depend on fetch
// order.
func (a *Aggregator) Aggregate(ctx context.Context, targets []domain.Target, concurrency int) ([]domain.Row, error) {
	a.logger.Printf("Usecase: fetching stats for %d targets...", len(targets))

	fetched := make([]domain.Stats, len(targets))
	if concurrency > 1 {
		eg, egCtx := errgroup.WithContext(ctx)
		eg.SetLimit(concurrency)
		for i, target := range targets {
			i, target := i, target
			eg.Go(func() error {
				// Fetch errors are recovered per target inside fetchOne;
				// cancellation stops the remaining fetches.
				if err := egCtx.Err(); err != nil {
					return err
				}
				fetched[i] = a.fetchOne(egCtx, target)
				return nil
			})
		}
		if err := eg.Wait(); err != nil {
			return nil, err
		}
	} else {
		for i, target := range targets {
			fetched[i] = a.fetchOne(ctx, target)
		}
	}

	statsMap := make(map[string]*domain.Stats)
	for i, target := range targets {
		bucket, ok := statsMap[target.Label]
		if !ok {
			bucket = &domain.Stats{}
			statsMap[target.Label] = bucket
		}
		bucket.Add(fetched[i])
	}

	rows := make([]domain.Row, 0, len(statsMap))
	for label, stats := range statsMap {
		rows = append(rows, domain.Row{Label: label, Stats: *stats})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Stars != rows[j].Stars {
			return rows[i].Stars > rows[j].Stars
		}
		return rows[i].Repos > rows[j].Repos
	})

	a.logger.Printf("Usecase: aggregation complete, %d labels.", len(rows))
	return rows, nil
}

// fetchOne degrades any fetch failure to a zero-valued stats record.
func (a *Aggregator) fetchOne(ctx context.Context, target domain.Target) domain.Stats {
	stats, err := a.fetcher.FetchAccountStats(ctx, target.Account)
	if err != nil {
		a.diag.Printf("Error fetching data for %s: %v", target.Account, err)
		return domain.Stats{}
	}
	return stats
}

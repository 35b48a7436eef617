package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/guttosm/stockapi/config"
	"github.com/guttosm/stockapi/internal/domain/models"
	"github.com/guttosm/stockapi/internal/logger"
	"github.com/guttosm/stockapi/internal/provider"
)

// StockService defines the operations behind the /stock endpoints.
type StockService interface {
	Snapshot(ctx context.Context) ([]models.PriceBar, error)
	Profile(ctx context.Context, symbol string) (*models.CompanyProfile, error)
	History(ctx context.Context, symbol string) ([]models.PriceBar, error)
	Ready(ctx context.Context) error
}

// Option customizes a stock service.
type Option func(*stockService)

// WithClock overrides the time source used to compute the snapshot window.
func WithClock(now func() time.Time) Option {
	return func(s *stockService) { s.now = now }
}

type stockService struct {
	provider provider.Provider
	snapshot config.SnapshotConfig
	history  config.HistoryConfig
	now      func() time.Time
}

// NewStockService wires a provider with the snapshot universe and history window.
func NewStockService(p provider.Provider, snapshot config.SnapshotConfig, history config.HistoryConfig, opts ...Option) StockService {
	s := &stockService{
		provider: p,
		snapshot: snapshot,
		history:  history,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Snapshot returns daily bars for every configured symbol over the last
// snapshot.Months months, each bar tagged with its symbol.
//
// Behavior:
//   - Symbols are fetched concurrently, at most snapshot.Parallelism at a time.
//   - Output is grouped by symbol in configured order; per-symbol row order is kept.
//   - A symbol whose lookup fails is skipped and logged.
//   - An empty universe, or one where no symbol has rows, yields an empty slice.
//   - If every symbol fails, the joined errors are returned.
//   - Cancellation of ctx aborts the whole snapshot.
func (s *stockService) Snapshot(ctx context.Context) ([]models.PriceBar, error) {
	symbols := s.snapshot.Symbols
	if len(symbols) == 0 {
		return []models.PriceBar{}, nil
	}

	start, end := SnapshotWindow(s.now(), s.snapshot.Months)

	tables := make([][]models.PriceBar, len(symbols))
	errs := make([]error, len(symbols))

	parallel := s.snapshot.Parallelism
	if parallel < 1 {
		parallel = 1
	}
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(parallel)

	for i, symbol := range symbols {
		g.Go(func() error {
			bars, err := s.provider.DailyBars(gctx, symbol, start, end)
			if err != nil {
				if ctxErr := ctx.Err(); ctxErr != nil {
					return ctxErr
				}
				errs[i] = err
				logger.Ctx(ctx).Warn().Err(err).Str("symbol", symbol).Msg("snapshot: symbol skipped")
				return nil
			}
			for j := range bars {
				bars[j].Symbol = symbol
			}
			tables[i] = bars
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("snapshot: %w", err)
	}

	failed := 0
	for _, err := range errs {
		if err != nil {
			failed++
		}
	}
	if failed == len(symbols) {
		return nil, fmt.Errorf("snapshot: no symbol could be fetched: %w", errors.Join(errs...))
	}

	total := 0
	for _, t := range tables {
		total += len(t)
	}
	out := make([]models.PriceBar, 0, total)
	for _, t := range tables {
		out = append(out, t...)
	}
	return out, nil
}

// SnapshotWindow returns [start, end) for a snapshot computed at now:
// end is today's midnight and start is the same day `months` months earlier,
// clamped to the last day of a shorter month (Mar 31 -> Feb 28).
func SnapshotWindow(now time.Time, months int) (start, end time.Time) {
	y, m, d := now.Date()
	end = time.Date(y, m, d, 0, 0, 0, 0, now.Location())

	first := time.Date(y, m-time.Month(months), 1, 0, 0, 0, 0, now.Location())
	if last := first.AddDate(0, 1, -1).Day(); d > last {
		d = last
	}
	start = time.Date(first.Year(), first.Month(), d, 0, 0, 0, 0, now.Location())
	return start, end
}

// Profile returns company metadata for symbol, passed through unchanged.
func (s *stockService) Profile(ctx context.Context, symbol string) (*models.CompanyProfile, error) {
	return s.provider.Profile(ctx, symbol)
}

// History returns the configured window of daily bars for symbol.
func (s *stockService) History(ctx context.Context, symbol string) ([]models.PriceBar, error) {
	bars, err := s.provider.RangeBars(ctx, symbol, s.history.Range)
	if err != nil {
		return nil, err
	}
	if bars == nil {
		bars = []models.PriceBar{}
	}
	return bars, nil
}

// Ready reports whether the upstream provider is reachable.
func (s *stockService) Ready(ctx context.Context) error {
	return s.provider.Ping(ctx)
}

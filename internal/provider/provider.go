// Package provider defines the market-data lookups the API depends on.
package provider

import (
	"context"
	"errors"
	"time"

	"github.com/guttosm/stockapi/internal/domain/models"
)

var (
	// ErrNotFound is returned when the upstream reports an unknown symbol.
	ErrNotFound = errors.New("symbol not found")
	// ErrUpstream is returned for non-success upstream answers.
	ErrUpstream = errors.New("upstream error")
)

// Provider is the upstream data source.
//
//   - DailyBars returns daily bars whose date falls in [start, end).
//   - RangeBars returns daily bars for a provider range token such as "1mo".
//   - Profile returns descriptive and quote fields for one symbol.
//   - Ping verifies the upstream session can be established.
//
//go:generate mockgen -package=service_test -destination=../service/mock_provider_test.go -source=provider.go
type Provider interface {
	Name() string
	DailyBars(ctx context.Context, symbol string, start, end time.Time) ([]models.PriceBar, error)
	RangeBars(ctx context.Context, symbol string, rng string) ([]models.PriceBar, error)
	Profile(ctx context.Context, symbol string) (*models.CompanyProfile, error)
	Ping(ctx context.Context) error
}

package app

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/url"

	"github.com/guttosm/stockapi/config"
	"github.com/guttosm/stockapi/internal/domain/dto"
	"github.com/guttosm/stockapi/internal/provider/yahoo"
	"github.com/guttosm/stockapi/internal/service"
)

// NewStockService builds the Yahoo Finance client and the stock service on top of it.
//
// Returns:
//   - service.StockService: ready to serve snapshot, profile and history lookups.
//   - func(): cleanup releasing the provider session and idle connections.
//   - error: when the provider URLs are not absolute http(s) URLs.
func NewStockService(cfg config.Config) (service.StockService, func(), error) {
	for _, raw := range []string{cfg.Provider.BaseURL, cfg.Provider.CookieURL} {
		if err := checkURL(raw); err != nil {
			return nil, nil, err
		}
	}

	client := yahoo.New(cfg.Provider)
	svc := service.NewStockService(client, cfg.Snapshot, cfg.History)

	return svc, client.Close, nil
}

// WriteSnapshot runs one snapshot and writes it to w as the same JSON array
// GET /stock/ serves.
func WriteSnapshot(ctx context.Context, svc service.StockService, w io.Writer) error {
	bars, err := svc.Snapshot(ctx)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(dto.NewSnapshotResponse(bars))
}

func checkURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid provider url %q: %w", raw, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("invalid provider url %q: expected absolute http(s) url", raw)
	}
	return nil
}

package dto

import (
	"time"

	"github.com/guttosm/stockapi/internal/domain/models"
)

// PriceBarResponse is one row of GET /stock/history/:symbol.
// Keys are capitalized to match the column names clients already consume.
type PriceBarResponse struct {
	Date   time.Time `json:"Date" example:"2025-01-02T00:00:00-05:00"`
	Open   float64   `json:"Open" example:"248.93"`
	High   float64   `json:"High" example:"249.10"`
	Low    float64   `json:"Low" example:"241.82"`
	Close  float64   `json:"Close" example:"243.85"`
	Volume int64     `json:"Volume" example:"55740700"`
}

// SnapshotBarResponse is one row of GET /stock/, tagged with its symbol.
type SnapshotBarResponse struct {
	PriceBarResponse
	Symbol string `json:"Symbol" example:"AAPL"`
}

// NewPriceBarResponse flattens bars into history records, keeping order.
// A nil or empty input yields an empty (non-nil) slice so it encodes as [].
func NewPriceBarResponse(bars []models.PriceBar) []PriceBarResponse {
	out := make([]PriceBarResponse, 0, len(bars))
	for _, b := range bars {
		out = append(out, toRecord(b))
	}
	return out
}

// NewSnapshotResponse flattens bars into snapshot records, keeping order.
func NewSnapshotResponse(bars []models.PriceBar) []SnapshotBarResponse {
	out := make([]SnapshotBarResponse, 0, len(bars))
	for _, b := range bars {
		out = append(out, SnapshotBarResponse{PriceBarResponse: toRecord(b), Symbol: b.Symbol})
	}
	return out
}

func toRecord(b models.PriceBar) PriceBarResponse {
	return PriceBarResponse{
		Date:   b.Date,
		Open:   b.Open,
		High:   b.High,
		Low:    b.Low,
		Close:  b.Close,
		Volume: b.Volume,
	}
}

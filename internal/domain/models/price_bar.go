package models

import "time"

// PriceBar is one daily OHLCV row as returned by the market-data provider.
//
// Fields:
//   - Date: trading day, at midnight in the exchange's time zone.
//   - Open/High/Low/Close: prices in the instrument's quote currency.
//   - Volume: shares traded that day.
//   - Symbol: set only when the bar belongs to a multi-symbol snapshot.
type PriceBar struct {
	Date   time.Time
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume int64
	Symbol string
}

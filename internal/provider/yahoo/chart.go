package yahoo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"strconv"
	"time"
	_ "time/tzdata" // exchange time zones on hosts without zoneinfo

	"github.com/guttosm/stockapi/internal/domain/models"
	"github.com/guttosm/stockapi/internal/provider"
)

const dailyInterval = "1d"

// chartResponse is the envelope of /v8/finance/chart.
// Quote arrays hold nulls for days without trades.
type chartResponse struct {
	Chart struct {
		Result []chartResult `json:"result"`
		Error  *apiError     `json:"error"`
	} `json:"chart"`
}

type chartResult struct {
	Meta struct {
		Symbol               string `json:"symbol"`
		ExchangeTimezoneName string `json:"exchangeTimezoneName"`
		GMTOffset            int    `json:"gmtoffset"`
	} `json:"meta"`
	Timestamp  []int64 `json:"timestamp"`
	Indicators struct {
		Quote []chartQuote `json:"quote"`
	} `json:"indicators"`
}

type chartQuote struct {
	Open   []*float64 `json:"open"`
	High   []*float64 `json:"high"`
	Low    []*float64 `json:"low"`
	Close  []*float64 `json:"close"`
	Volume []*float64 `json:"volume"`
}

type apiError struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

// DailyBars fetches daily bars between start (inclusive) and end (exclusive).
func (c *Client) DailyBars(ctx context.Context, symbol string, start, end time.Time) ([]models.PriceBar, error) {
	return c.fetchChart(ctx, symbol, map[string]string{
		"interval": dailyInterval,
		"period1":  strconv.FormatInt(start.Unix(), 10),
		"period2":  strconv.FormatInt(end.Unix(), 10),
	})
}

// RangeBars fetches daily bars for a range token such as "1mo" or "1y".
func (c *Client) RangeBars(ctx context.Context, symbol string, rng string) ([]models.PriceBar, error) {
	return c.fetchChart(ctx, symbol, map[string]string{
		"interval": dailyInterval,
		"range":    rng,
	})
}

func (c *Client) fetchChart(ctx context.Context, symbol string, params map[string]string) ([]models.PriceBar, error) {
	params["includePrePost"] = "false"

	resp, err := c.http.R().
		SetContext(ctx).
		SetPathParam("symbol", symbol).
		SetQueryParams(params).
		Get(chartPath)
	if err != nil {
		return nil, fmt.Errorf("yahoo chart %s: %w", symbol, err)
	}

	var body chartResponse
	if err := json.Unmarshal(resp.Body(), &body); err != nil {
		if !resp.IsSuccess() {
			return nil, fmt.Errorf("yahoo chart %s: %w: status %d", symbol, provider.ErrUpstream, resp.StatusCode())
		}
		return nil, fmt.Errorf("yahoo chart %s: decode: %w", symbol, err)
	}
	if body.Chart.Error != nil {
		return nil, upstreamError("chart", symbol, resp.StatusCode(), body.Chart.Error)
	}
	if !resp.IsSuccess() {
		return nil, fmt.Errorf("yahoo chart %s: %w: status %d", symbol, provider.ErrUpstream, resp.StatusCode())
	}
	if len(body.Chart.Result) == 0 {
		return []models.PriceBar{}, nil
	}
	return toBars(body.Chart.Result[0]), nil
}

// toBars converts a chart result into chronological daily bars.
//
// Days where every price is null are dropped. Each bar is stamped at midnight
// in the exchange's zone; when Yahoo appends a live bar for a day it already
// reported, the later row replaces the earlier one.
func toBars(r chartResult) []models.PriceBar {
	bars := make([]models.PriceBar, 0, len(r.Timestamp))
	if len(r.Indicators.Quote) == 0 {
		return bars
	}
	q := r.Indicators.Quote[0]
	loc := exchangeLocation(r.Meta.ExchangeTimezoneName, r.Meta.GMTOffset)

	for i, ts := range r.Timestamp {
		o, h, l, cl := at(q.Open, i), at(q.High, i), at(q.Low, i), at(q.Close, i)
		if o == nil && h == nil && l == nil && cl == nil {
			continue
		}
		t := time.Unix(ts, 0).In(loc)
		bar := models.PriceBar{
			Date:   time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc),
			Open:   deref(o),
			High:   deref(h),
			Low:    deref(l),
			Close:  deref(cl),
			Volume: int64(deref(at(q.Volume, i))),
		}
		if n := len(bars); n > 0 && bars[n-1].Date.Equal(bar.Date) {
			bars[n-1] = bar
			continue
		}
		bars = append(bars, bar)
	}

	sort.SliceStable(bars, func(i, j int) bool { return bars[i].Date.Before(bars[j].Date) })
	return bars
}

func exchangeLocation(name string, gmtOffset int) *time.Location {
	if name != "" {
		if loc, err := time.LoadLocation(name); err == nil {
			return loc
		}
	}
	return time.FixedZone("", gmtOffset)
}

func at(s []*float64, i int) *float64 {
	if i < len(s) {
		return s[i]
	}
	return nil
}

func deref(f *float64) float64 {
	if f == nil {
		return 0
	}
	return *f
}

// upstreamError turns a Yahoo error object into a wrapped sentinel error.
func upstreamError(endpoint, symbol string, status int, e *apiError) error {
	sentinel := provider.ErrUpstream
	if status == http.StatusNotFound || e.Code == "Not Found" {
		sentinel = provider.ErrNotFound
	}
	return fmt.Errorf("yahoo %s %s: %w: %s", endpoint, symbol, sentinel, e.Description)
}

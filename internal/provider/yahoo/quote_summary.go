package yahoo

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/guttosm/stockapi/internal/domain/models"
	"github.com/guttosm/stockapi/internal/provider"
)

const summaryModules = "price,summaryDetail,assetProfile,defaultKeyStatistics"

type summaryResponse struct {
	QuoteSummary struct {
		Result []summaryResult `json:"result"`
		Error  *apiError       `json:"error"`
	} `json:"quoteSummary"`
}

type summaryResult struct {
	Price struct {
		Symbol    string   `json:"symbol"`
		LongName  string   `json:"longName"`
		MarketCap rawValue `json:"marketCap"`
	} `json:"price"`
	SummaryDetail struct {
		PreviousClose    rawValue `json:"previousClose"`
		Open             rawValue `json:"open"`
		DayHigh          rawValue `json:"dayHigh"`
		DayLow           rawValue `json:"dayLow"`
		Volume           rawValue `json:"volume"`
		FiftyTwoWeekHigh rawValue `json:"fiftyTwoWeekHigh"`
		FiftyTwoWeekLow  rawValue `json:"fiftyTwoWeekLow"`
		DividendYield    rawValue `json:"dividendYield"`
		TrailingPE       rawValue `json:"trailingPE"`
		MarketCap        rawValue `json:"marketCap"`
	} `json:"summaryDetail"`
	AssetProfile struct {
		Sector   string `json:"sector"`
		Industry string `json:"industry"`
		Website  string `json:"website"`
	} `json:"assetProfile"`
	DefaultKeyStatistics struct {
		TrailingEps rawValue `json:"trailingEps"`
	} `json:"defaultKeyStatistics"`
}

// rawValue accepts the shapes Yahoo uses for numeric fields: a bare number,
// a {"raw": n, "fmt": "..."} object, an empty object, or a non-numeric string
// such as "Infinity". Anything that is not a finite number is left unset.
type rawValue struct {
	v *float64
}

func (r *rawValue) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || b[0] == 'n' || b[0] == '"' {
		return nil
	}
	if b[0] == '{' {
		var obj struct {
			Raw *float64 `json:"raw"`
		}
		if err := json.Unmarshal(b, &obj); err != nil {
			return nil
		}
		r.v = obj.Raw
		return nil
	}
	var f float64
	if err := json.Unmarshal(b, &f); err != nil {
		return nil
	}
	r.v = &f
	return nil
}

func (r rawValue) asFloat() *float64 { return r.v }

func (r rawValue) asInt() *int64 {
	if r.v == nil {
		return nil
	}
	i := int64(*r.v)
	return &i
}

// Profile fetches company metadata for symbol.
func (c *Client) Profile(ctx context.Context, symbol string) (*models.CompanyProfile, error) {
	crumb, err := c.crumb(ctx)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetPathParam("symbol", symbol).
		SetQueryParams(map[string]string{
			"modules":   summaryModules,
			"formatted": "false",
			"crumb":     crumb,
		}).
		Get(summaryPath)
	if err != nil {
		return nil, fmt.Errorf("yahoo quoteSummary %s: %w", symbol, err)
	}

	if resp.StatusCode() == http.StatusUnauthorized || resp.StatusCode() == http.StatusForbidden {
		c.invalidateCrumb()
		return nil, fmt.Errorf("yahoo quoteSummary %s: %w: status %d (session rejected)", symbol, provider.ErrUpstream, resp.StatusCode())
	}

	var body summaryResponse
	if err := json.Unmarshal(resp.Body(), &body); err != nil {
		if !resp.IsSuccess() {
			return nil, fmt.Errorf("yahoo quoteSummary %s: %w: status %d", symbol, provider.ErrUpstream, resp.StatusCode())
		}
		return nil, fmt.Errorf("yahoo quoteSummary %s: decode: %w", symbol, err)
	}
	if body.QuoteSummary.Error != nil {
		return nil, upstreamError("quoteSummary", symbol, resp.StatusCode(), body.QuoteSummary.Error)
	}
	if !resp.IsSuccess() {
		return nil, fmt.Errorf("yahoo quoteSummary %s: %w: status %d", symbol, provider.ErrUpstream, resp.StatusCode())
	}
	if len(body.QuoteSummary.Result) == 0 {
		return nil, fmt.Errorf("yahoo quoteSummary %s: %w: empty result", symbol, provider.ErrNotFound)
	}

	return toProfile(body.QuoteSummary.Result[0]), nil
}

func toProfile(r summaryResult) *models.CompanyProfile {
	d := r.SummaryDetail
	marketCap := r.Price.MarketCap.asInt()
	if marketCap == nil {
		marketCap = d.MarketCap.asInt()
	}
	return &models.CompanyProfile{
		Symbol:           r.Price.Symbol,
		Name:             r.Price.LongName,
		Sector:           r.AssetProfile.Sector,
		Industry:         r.AssetProfile.Industry,
		Website:          r.AssetProfile.Website,
		MarketCap:        marketCap,
		Volume:           d.Volume.asInt(),
		PreviousClose:    d.PreviousClose.asFloat(),
		Open:             d.Open.asFloat(),
		DayHigh:          d.DayHigh.asFloat(),
		DayLow:           d.DayLow.asFloat(),
		FiftyTwoWeekHigh: d.FiftyTwoWeekHigh.asFloat(),
		FiftyTwoWeekLow:  d.FiftyTwoWeekLow.asFloat(),
		DividendYield:    d.DividendYield.asFloat(),
		PERatio:          d.TrailingPE.asFloat(),
		EPS:              r.DefaultKeyStatistics.TrailingEps.asFloat(),
	}
}

package dto

import "github.com/guttosm/stockapi/internal/domain/models"

// NotAvailable replaces any profile field the provider did not return.
const NotAvailable = "N/A"

// ProfileResponse is the body of GET /stock/details/:symbol.
//
// Every value is either the provider's value (string or number) or NotAvailable,
// so the fields are typed any. Field order matches the documented contract.
type ProfileResponse struct {
	Symbol        any `json:"symbol" swaggertype:"string" example:"AAPL"`
	Name          any `json:"name" swaggertype:"string" example:"Apple Inc."`
	Sector        any `json:"sector" swaggertype:"string" example:"Technology"`
	Industry      any `json:"industry" swaggertype:"string" example:"Consumer Electronics"`
	MarketCap     any `json:"market_cap" swaggertype:"number" example:"3400000000000"`
	PreviousClose any `json:"previous_close" swaggertype:"number" example:"229.98"`
	Open          any `json:"open" swaggertype:"number" example:"230.1"`
	DayHigh       any `json:"day_high" swaggertype:"number" example:"232.4"`
	DayLow        any `json:"day_low" swaggertype:"number" example:"228.7"`
	Volume        any `json:"volume" swaggertype:"number" example:"41234567"`
	High52Week    any `json:"52_week_high" swaggertype:"number" example:"260.1"`
	Low52Week     any `json:"52_week_low" swaggertype:"number" example:"164.08"`
	DividendYield any `json:"dividend_yield" swaggertype:"number" example:"0.44"`
	PERatio       any `json:"pe_ratio" swaggertype:"number" example:"35.2"`
	EPS           any `json:"eps" swaggertype:"number" example:"6.57"`
	Website       any `json:"website" swaggertype:"string" example:"https://www.apple.com"`
}

// NewProfileResponse shapes p for the wire. requested is echoed back as the
// symbol when the provider does not report one.
func NewProfileResponse(requested string, p *models.CompanyProfile) ProfileResponse {
	if p == nil {
		p = &models.CompanyProfile{}
	}
	symbol := p.Symbol
	if symbol == "" {
		symbol = requested
	}
	return ProfileResponse{
		Symbol:        symbol,
		Name:          str(p.Name),
		Sector:        str(p.Sector),
		Industry:      str(p.Industry),
		MarketCap:     integer(p.MarketCap),
		PreviousClose: number(p.PreviousClose),
		Open:          number(p.Open),
		DayHigh:       number(p.DayHigh),
		DayLow:        number(p.DayLow),
		Volume:        integer(p.Volume),
		High52Week:    number(p.FiftyTwoWeekHigh),
		Low52Week:     number(p.FiftyTwoWeekLow),
		DividendYield: number(p.DividendYield),
		PERatio:       number(p.PERatio),
		EPS:           number(p.EPS),
		Website:       str(p.Website),
	}
}

func str(s string) any {
	if s == "" {
		return NotAvailable
	}
	return s
}

func number(f *float64) any {
	if f == nil {
		return NotAvailable
	}
	return *f
}

func integer(i *int64) any {
	if i == nil {
		return NotAvailable
	}
	return *i
}

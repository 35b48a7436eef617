package models

// CompanyProfile holds descriptive and quote fields for one instrument.
//
// Absent values are represented by the zero string or a nil pointer so the
// response layer can substitute its "N/A" sentinel.
type CompanyProfile struct {
	Symbol   string
	Name     string
	Sector   string
	Industry string
	Website  string

	MarketCap *int64
	Volume    *int64

	PreviousClose    *float64
	Open             *float64
	DayHigh          *float64
	DayLow           *float64
	FiftyTwoWeekHigh *float64
	FiftyTwoWeekLow  *float64
	DividendYield    *float64
	PERatio          *float64
	EPS              *float64
}

package model

// Quote is the normalized result of looking up one symbol. Every field is
// populated before it reaches a caller; missing upstream data is repaired by
// the fallback policy, never surfaced as null.
type Quote struct {
	Symbol        string  `json:"symbol"`
	Price         float64 `json:"price"`
	Change        float64 `json:"change"`
	PercentChange float64 `json:"percentChange"`
}

// RawQuote is the adapter-level quote before fallback reconciliation.
// Nil fields mean the provider payload omitted the value; the adapter does
// not substitute defaults itself.
type RawQuote struct {
	Symbol        string
	Price         *float64
	Change        *float64
	PercentChange *float64
}

// WatchlistRequest carries an ordered list of symbols, 1..25 inclusive.
// Order is significant and duplicates are fetched independently.
type WatchlistRequest struct {
	Symbols []string `json:"symbols"`
}

// IndicesResponse is the named pair returned by /api/indices.
type IndicesResponse struct {
	Nifty  Quote `json:"nifty"`
	Sensex Quote `json:"sensex"`
}

// YahooChartResponse is the top-level container of the v8 chart API.
type YahooChartResponse struct {
	Chart ChartData `json:"chart"`
}

type ChartData struct {
	Result []ChartResult `json:"result"`
	Error  any           `json:"error"`
}

type ChartResult struct {
	Meta ChartMeta `json:"meta"`
}

// ChartMeta holds the summary fields of one chart result. Pointers keep
// "field absent or null" distinguishable from zero.
type ChartMeta struct {
	Symbol             string   `json:"symbol"`
	RegularMarketPrice *float64 `json:"regularMarketPrice"`
	ChartPreviousClose *float64 `json:"chartPreviousClose"`
	PreviousClose      *float64 `json:"previousClose"`
	Currency           string   `json:"currency"`
}

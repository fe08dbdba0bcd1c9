package client

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/omapatel2503/UptradeX-Trading-Platform/customerrors"
	"github.com/omapatel2503/UptradeX-Trading-Platform/model"

	"github.com/go-resty/resty/v2"
)

const defaultBaseURL = "https://query1.finance.yahoo.com/v8/finance/chart"

type YahooClient struct {
	client *resty.Client
}

type Option func(*YahooClient)

// WithBaseURL points the client at a different chart endpoint, used by tests.
func WithBaseURL(baseURL string) Option {
	return func(y *YahooClient) {
		y.client.SetBaseURL(baseURL)
	}
}

func NewYahooClient(timeout time.Duration, opts ...Option) *YahooClient {
	client := resty.New().
		SetBaseURL(defaultBaseURL).
		SetTimeout(timeout).
		SetHeaders(map[string]string{
			"Content-Type": "application/json",
			"Accept":       "application/json",
			"User-Agent":   "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
		})

	y := &YahooClient{client: client}
	for _, opt := range opts {
		opt(y)
	}
	return y
}

// FetchQuote looks up one symbol on the chart API and maps the result meta
// onto a RawQuote. Fields the provider omitted stay nil; defaulting belongs
// to the fallback policy one layer up. All failure modes collapse into a
// single ProviderError.
func (y *YahooClient) FetchQuote(ctx context.Context, symbol string) (*model.RawQuote, error) {
	var chartResponse model.YahooChartResponse
	resp, err := y.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"range":    "1d",
			"interval": "1d",
		}).
		SetResult(&chartResponse).
		Get("/" + symbol)

	if err != nil {
		return nil, customerrors.NewProviderError(symbol, err)
	}
	if !resp.IsSuccess() {
		return nil, customerrors.NewProviderError(symbol, fmt.Errorf("chart request returned status %d", resp.StatusCode()))
	}
	if chartResponse.Chart.Error != nil {
		return nil, customerrors.NewProviderError(symbol, fmt.Errorf("chart error: %v", chartResponse.Chart.Error))
	}
	if len(chartResponse.Chart.Result) == 0 {
		return nil, customerrors.NewProviderError(symbol, fmt.Errorf("chart response has no result"))
	}

	meta := chartResponse.Chart.Result[0].Meta

	raw := &model.RawQuote{Symbol: symbol}
	if meta.RegularMarketPrice != nil {
		raw.Price = roundedPtr(*meta.RegularMarketPrice)
	}

	prevClose := meta.ChartPreviousClose
	if prevClose == nil {
		prevClose = meta.PreviousClose
	}
	if raw.Price != nil && prevClose != nil {
		raw.Change = roundedPtr(*raw.Price - *prevClose)
		if *prevClose != 0 {
			raw.PercentChange = roundedPtr(*raw.Change / *prevClose * 100)
		}
	}

	return raw, nil
}

func roundedPtr(n float64) *float64 {
	val := math.Round(n*100) / 100
	return &val
}

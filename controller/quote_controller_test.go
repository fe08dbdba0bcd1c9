package controller

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/omapatel2503/UptradeX-Trading-Platform/model"
	"github.com/omapatel2503/UptradeX-Trading-Platform/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

type stubFetcher struct {
	mu    sync.Mutex
	calls int
	fail  bool
}

func (f *stubFetcher) FetchQuote(_ context.Context, symbol string) (*model.RawQuote, error) {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()

	if f.fail {
		return nil, errors.New("provider unreachable")
	}
	price := 150.25
	change := 2.5
	percent := 1.69
	return &model.RawQuote{Symbol: symbol, Price: &price, Change: &change, PercentChange: &percent}, nil
}

func (f *stubFetcher) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func newQuoteRouter(fetcher service.QuoteFetcher) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	svc := service.NewQuoteService(fetcher, service.DefaultFallbackPolicy(), 0).
		WithSleep(func(context.Context, time.Duration) {})
	NewQuoteController(svc).RegisterRoutes(r.Group("/api"))
	return r
}

func TestWatchlistEndpoint_ReturnsQuotesInRequestOrder(t *testing.T) {
	router := newQuoteRouter(&stubFetcher{})

	body := `{"symbols":["RELIANCE.NS","TCS.NS"]}`
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/watchlist", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var quotes []model.Quote
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &quotes))
	require.Len(t, quotes, 2)
	require.Equal(t, "RELIANCE.NS", quotes[0].Symbol)
	require.Equal(t, "TCS.NS", quotes[1].Symbol)
	require.Equal(t, 150.25, quotes[0].Price)
}

func TestWatchlistEndpoint_EmptySymbolsIsBadRequest(t *testing.T) {
	fetcher := &stubFetcher{}
	router := newQuoteRouter(fetcher)

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/watchlist", strings.NewReader(`{"symbols":[]}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusBadRequest, rr.Code)
	require.Contains(t, rr.Body.String(), "no symbols provided")
	require.Zero(t, fetcher.callCount())
}

func TestWatchlistEndpoint_TooManySymbolsIsBadRequest(t *testing.T) {
	fetcher := &stubFetcher{}
	router := newQuoteRouter(fetcher)

	symbols := make([]string, 26)
	for i := range symbols {
		symbols[i] = "SYM.NS"
	}
	body, err := json.Marshal(model.WatchlistRequest{Symbols: symbols})
	require.NoError(t, err)

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/watchlist", strings.NewReader(string(body)))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusBadRequest, rr.Code)
	require.Contains(t, rr.Body.String(), "too many symbols")
	require.Zero(t, fetcher.callCount())
}

func TestWatchlistEndpoint_MalformedBodyIsBadRequest(t *testing.T) {
	router := newQuoteRouter(&stubFetcher{})

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/watchlist", strings.NewReader(`{"symbols":`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestIndicesEndpoint_UnreachableProviderStaysOKAndIdempotent(t *testing.T) {
	router := newQuoteRouter(&stubFetcher{fail: true})

	fetch := func() *httptest.ResponseRecorder {
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/indices", nil)
		router.ServeHTTP(rr, req)
		return rr
	}

	first := fetch()
	second := fetch()

	require.Equal(t, http.StatusOK, first.Code)
	require.Equal(t, first.Body.String(), second.Body.String())

	var indices model.IndicesResponse
	require.NoError(t, json.Unmarshal(first.Body.Bytes(), &indices))
	require.Equal(t, 1000.0, indices.Nifty.Price)
	require.Equal(t, 1000.0, indices.Sensex.Price)
	require.Equal(t, service.NiftySymbol, indices.Nifty.Symbol)
	require.Equal(t, service.SensexSymbol, indices.Sensex.Symbol)
}

func TestStockEndpoint_FallbackOnProviderFailure(t *testing.T) {
	router := newQuoteRouter(&stubFetcher{fail: true})

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/stock/INFY.NS", nil)
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var quote model.Quote
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &quote))
	require.Equal(t, model.Quote{Symbol: "INFY.NS", Price: 1000, Change: 0, PercentChange: 0}, quote)
}

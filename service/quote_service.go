package service

import (
	"context"
	"sync"
	"time"

	"github.com/omapatel2503/UptradeX-Trading-Platform/customerrors"
	"github.com/omapatel2503/UptradeX-Trading-Platform/model"

	"github.com/rs/zerolog/log"
)

// MaxWatchlistSymbols caps one watchlist request.
const MaxWatchlistSymbols = 25

const (
	NiftySymbol  = "^NSEI"
	SensexSymbol = "^BSESN"
)

// QuoteFetcher is the provider adapter seam; the Yahoo client satisfies it
// in production and tests inject doubles.
type QuoteFetcher interface {
	FetchQuote(ctx context.Context, symbol string) (*model.RawQuote, error)
}

type QuoteService interface {
	Watchlist(ctx context.Context, symbols []string) ([]model.Quote, error)
	Indices(ctx context.Context) model.IndicesResponse
	Stock(ctx context.Context, symbol string) model.Quote
}

type QuoteServiceImpl struct {
	fetcher QuoteFetcher
	policy  FallbackPolicy
	pace    time.Duration
	sleep   func(ctx context.Context, d time.Duration)
}

func NewQuoteService(fetcher QuoteFetcher, policy FallbackPolicy, pace time.Duration) *QuoteServiceImpl {
	return &QuoteServiceImpl{
		fetcher: fetcher,
		policy:  policy,
		pace:    pace,
		sleep:   sleepWithContext,
	}
}

// WithSleep swaps the pacing delay implementation, used by tests to avoid
// wall-clock waits.
func (s *QuoteServiceImpl) WithSleep(sleep func(ctx context.Context, d time.Duration)) *QuoteServiceImpl {
	s.sleep = sleep
	return s
}

// Watchlist fans out one lookup per symbol and merges the outcomes into a
// sequence that matches the input in order and length. Call starts are paced
// by a fixed delay as a rate-limit courtesy to the provider; the calls still
// overlap once started. A symbol's failure never aborts or delays the others:
// after the pre-flight size check this method cannot fail.
func (s *QuoteServiceImpl) Watchlist(ctx context.Context, symbols []string) ([]model.Quote, error) {
	if len(symbols) == 0 {
		return nil, customerrors.NewValidationError(customerrors.ErrNoSymbols)
	}
	if len(symbols) > MaxWatchlistSymbols {
		return nil, customerrors.NewValidationError(customerrors.ErrTooManySymbols)
	}

	results := make([]model.Quote, len(symbols))
	var wg sync.WaitGroup

	for i, symbol := range symbols {
		if i > 0 {
			s.sleep(ctx, s.pace)
		}

		wg.Add(1)
		go func(idx int, sym string) {
			defer wg.Done()
			raw, err := s.fetcher.FetchQuote(ctx, sym)
			if err != nil {
				log.Warn().Str("symbol", sym).Err(err).Msg("Quote lookup failed, using fallback")
			}
			results[idx] = s.policy.Reconcile(sym, raw, err)
		}(i, symbol)
	}

	wg.Wait()
	return results, nil
}

// Indices is the fixed pair of market indices for the dashboard header.
// Same fallback semantics as Watchlist, applied to each index independently.
func (s *QuoteServiceImpl) Indices(ctx context.Context) model.IndicesResponse {
	quotes, _ := s.Watchlist(ctx, []string{NiftySymbol, SensexSymbol})
	return model.IndicesResponse{
		Nifty:  quotes[0],
		Sensex: quotes[1],
	}
}

func (s *QuoteServiceImpl) Stock(ctx context.Context, symbol string) model.Quote {
	raw, err := s.fetcher.FetchQuote(ctx, symbol)
	if err != nil {
		log.Warn().Str("symbol", symbol).Err(err).Msg("Quote lookup failed, using fallback")
	}
	return s.policy.Reconcile(symbol, raw, err)
}

func sleepWithContext(ctx context.Context, d time.Duration) {
	if d <= 0 {
		return
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}

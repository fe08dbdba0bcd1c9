package service

import (
	"errors"
	"math"
	"testing"

	"github.com/omapatel2503/UptradeX-Trading-Platform/model"

	"github.com/stretchr/testify/require"
)

func ptr(n float64) *float64 { return &n }

func TestReconcile_CompleteQuotePassesThrough(t *testing.T) {
	policy := DefaultFallbackPolicy()

	raw := &model.RawQuote{
		Symbol:        "RELIANCE.NS",
		Price:         ptr(2843.5),
		Change:        ptr(-12.3),
		PercentChange: ptr(-0.43),
	}

	quote := policy.Reconcile("RELIANCE.NS", raw, nil)
	require.Equal(t, model.Quote{
		Symbol:        "RELIANCE.NS",
		Price:         2843.5,
		Change:        -12.3,
		PercentChange: -0.43,
	}, quote)
}

func TestReconcile_PartialSubstitution(t *testing.T) {
	policy := DefaultFallbackPolicy()

	// percentChange missing, the other two present
	raw := &model.RawQuote{
		Symbol: "TCS.NS",
		Price:  ptr(4100.0),
		Change: ptr(25.0),
	}

	quote := policy.Reconcile("TCS.NS", raw, nil)
	require.Equal(t, 4100.0, quote.Price)
	require.Equal(t, 25.0, quote.Change)
	require.Equal(t, 0.0, quote.PercentChange)
}

func TestReconcile_FailureYieldsFullFallback(t *testing.T) {
	policy := DefaultFallbackPolicy()

	quote := policy.Reconcile("BAD.NS", nil, errors.New("connection refused"))
	require.Equal(t, model.Quote{
		Symbol:        "BAD.NS",
		Price:         1000,
		Change:        0,
		PercentChange: 0,
	}, quote)
}

func TestReconcile_FailureIndistinguishableFromAllMissing(t *testing.T) {
	policy := DefaultFallbackPolicy()

	failed := policy.Reconcile("X.NS", nil, errors.New("timeout"))
	empty := policy.Reconcile("X.NS", &model.RawQuote{Symbol: "X.NS"}, nil)
	require.Equal(t, failed, empty)
}

func TestReconcile_NonFiniteValuesCountAsMissing(t *testing.T) {
	policy := DefaultFallbackPolicy()

	raw := &model.RawQuote{
		Symbol:        "INFY.NS",
		Price:         ptr(math.NaN()),
		Change:        ptr(math.Inf(1)),
		PercentChange: ptr(1.5),
	}

	quote := policy.Reconcile("INFY.NS", raw, nil)
	require.Equal(t, 1000.0, quote.Price)
	require.Equal(t, 0.0, quote.Change)
	require.Equal(t, 1.5, quote.PercentChange)
}

func TestReconcile_CustomPolicyValues(t *testing.T) {
	policy := FallbackPolicy{Price: 500, Change: 0, PercentChange: 0}

	quote := policy.Reconcile("Y.NS", nil, errors.New("boom"))
	require.Equal(t, 500.0, quote.Price)
}

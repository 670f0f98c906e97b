package tracker

import "math"

// TradingDaysPerYear is used to annualize volatility.
const TradingDaysPerYear = 252

// Returns computes the simple returns between consecutive prices of h.
// A point following a zero price is skipped.
func Returns(h History) []float64 {
	prices := h.Prices()
	if len(prices) < 2 {
		return nil
	}
	returns := make([]float64, 0, len(prices)-1)
	for i := 1; i < len(prices); i++ {
		if prices[i-1] == 0 {
			continue
		}
		returns = append(returns, prices[i]/prices[i-1]-1)
	}
	return returns
}

// CumulativeReturns returns the running growth factor of returns, i.e. the
// product of (1+r) up to each point.
func CumulativeReturns(returns []float64) []float64 {
	cum := make([]float64, len(returns))
	growth := 1.0
	for i, r := range returns {
		growth *= 1 + r
		cum[i] = growth
	}
	return cum
}

// Volatility returns the annualized volatility of daily returns: the sample
// standard deviation scaled by the square root of TradingDaysPerYear.
// It is 0 with fewer than two returns.
func Volatility(returns []float64) float64 {
	n := len(returns)
	if n < 2 {
		return 0
	}
	var mean float64
	for _, r := range returns {
		mean += r
	}
	mean /= float64(n)
	var variance float64
	for _, r := range returns {
		variance += (r - mean) * (r - mean)
	}
	variance /= float64(n - 1)
	return math.Sqrt(variance) * math.Sqrt(TradingDaysPerYear)
}

// Normalize rebases h so that its first non-zero price is 100.
// Points before that price are dropped.
func Normalize(h History) History {
	var res History
	var base float64
	for t, price := range h.Values() {
		if base == 0 {
			if price == 0 {
				continue
			}
			base = price
		}
		res.Append(t, price/base*100)
	}
	return res
}

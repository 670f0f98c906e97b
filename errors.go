package tracker

import "errors"

// Errors returned by the engine. They are always wrapped with some context,
// use errors.Is to test for them.
var (
	// ErrValidation reports a malformed input: negative quantity or price,
	// empty ticker, or a currency that does not match.
	ErrValidation = errors.New("invalid input")
	// ErrDuplicateAsset is returned when adding a ticker that is already held.
	ErrDuplicateAsset = errors.New("asset already in portfolio")
	// ErrNotFound is returned when a ticker is not held.
	ErrNotFound = errors.New("asset not found")
	// ErrQuoteNotFound is returned by providers for unknown or delisted tickers.
	ErrQuoteNotFound = errors.New("quote not found")
	// ErrQuoteService is returned by providers when the quote service failed.
	ErrQuoteService = errors.New("quote service failure")
)

// Package tracker is an in-memory portfolio ledger and analytics engine.
//
// It keeps a set of held positions (Asset) in an explicitly constructed
// Portfolio and computes, on demand:
//   - per-asset metrics: transaction value, current value, profit/loss;
//   - portfolio aggregates: total invested, total value, total profit/loss;
//   - allocation: per-asset weights, sector and asset-class breakdowns.
//
// Market data comes from a Provider, a narrow interface resolving a ticker
// into a description, a latest price and a price History. Prices are
// refreshed with Portfolio.RefreshPrices which never aborts on a single
// failure: failures are collected in a RefreshReport.
//
// Monetary amounts and quantities are exact decimals so that, for every
// asset, current value - transaction value == profit/loss holds exactly.
// Ratios are zero-guarded: a zero denominator yields 0, never an error.
//
// This package serves as the foundational logic for the `trk` command-line
// tool.
package tracker

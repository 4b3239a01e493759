// Package fenn maintains a local snapshot of a brokerage portfolio and turns
// it into consolidated views. It is designed to be local-first: account and
// position data is pulled from a brokerage-aggregation API, archived as JSON
// on disk, and every report is computed from that local copy.
//
// The core functionalities include:
//   - Holdings Aggregation: folding the positions of every connected account
//     into one holding per ticker symbol, with exact decimal accumulation of
//     quantities and values and a per-account contribution trail.
//   - Normalization Boundary: defensive typed extraction of symbol, quantity,
//     price and cost from the loosely-typed records the API returns, so a
//     single malformed field can never abort an aggregation.
//   - Day-Scoped Cache: a single-slot JSON snapshot of the aggregate, fresh
//     only on the calendar date it was computed, silently recomputed otherwise.
//   - Presentation Transforms: allocation, by-account, top-N, concentration
//     and broker-distribution views consumed by the table renderer and the
//     chart builders.
//
// This package serves as the foundational logic for the `fenn` command-line
// tool.
package fenn

// Package salescope provides the functions and types to turn a raw sales CSV
// into business analytics. It is designed as a batch pipeline: data flows in
// one direction, from a dirty file to validated records to computed metrics,
// and every report surface renders from the same computed result.
//
// The core functionalities include:
//   - Data Cleaning: A deterministic, idempotent policy that deduplicates
//     rows, fills missing numeric values with the column mean, and drops rows
//     that cannot be repaired, with a report counting every action taken.
//   - Validation: Self-checking domain values (records, products, services,
//     customers) that report every field failure at once.
//   - Analytics: Revenue, customer and category metrics, monthly trends, and
//     interquartile-range outlier detection over the cleaned records.
//   - Exact Amounts: Monetary values and quantities carried as decimals so
//     that cleaning and aggregating never drift.
//   - Demo Data: A seeded generator producing realistic raw datasets, dirt
//     included, for demonstrations and tests.
//
// This package serves as the foundational logic for the `scs` command-line
// tool; the subpackages algo, renderer, chart, workbook and agent build the
// benchmark and report surfaces on top of it.
package salescope

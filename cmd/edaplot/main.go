// Package main provides the entry point for the edaplot CLI.
//
// edaplot generates exploratory plots for a tabular dataset: one scatter
// chart per explanatory column, with a boxplot or OLS trend overlay chosen
// from the column's kind, plus an optional markdown report.
//
// Usage:
//
//	edaplot render --data housing.csv --meta housing.yaml --out plots/
//
// See --help for all available options.
package main

// main is the entry point for edaplot.
func main() {
	Execute()
}

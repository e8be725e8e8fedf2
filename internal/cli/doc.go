// Package cli implements the uscf-history command-line interface: flag
// handling, wiring of the fetcher and traversal controller, and the CSV and
// report writers that consume the resolved rows.
package cli

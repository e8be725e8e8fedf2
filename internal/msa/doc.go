// Package msa defines the record types extracted from the USCF Member
// Services Area pages and the link helpers shared by the extraction and
// traversal layers.
//
// All records are value-like: they are populated once by an extraction pass
// and never mutated afterward, except the per-event game slice which is only
// appended to during its own pass.
package msa

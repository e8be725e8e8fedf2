// Package normalize provides the pure text-cleanup rules applied to raw MSA
// cell text: rating-pair splitting, location truncation, embedded-ID
// extraction, rating-prefix stripping, and date-prefix recovery.
//
// Every function is deterministic and does no I/O.
package normalize

// Package fetch provides the retrying document fetcher used by the traversal
// controller.
//
// The retry policy is deliberately simple: a fixed pause before every attempt
// (including the first) and a hard attempt cap, after which the final error
// propagates to the caller. A failed URL is the only hard-fail path in the
// system.
package fetch

// Package traverse walks a player's tournament history: one fetch of the
// history document, then one crosstable resolution per event, following the
// player-specific sub-link and falling back to the "all sections" variant
// when the direct link is absent.
//
// Cross-reference links form a graph that can re-converge (two history rows
// may share one crosstable), so traversal keeps an explicit visited set keyed
// by link string and never fetches the same cross-reference twice in a run.
// Events are resolved strictly sequentially.
package traverse

// Package extract recovers typed records from the legacy table markup of the
// USCF Member Services Area pages: the tournament-history list, the
// crosstable metadata table, the player-specific games table, and the
// player's own rating row.
//
// The source documents are rendered HTML, not a data-exchange format, so
// extraction rests on a small set of structural heuristics (row highlight
// colors, a table bgcolor/width signature, a filler-cell shape, a six-column
// game-row gate). Each heuristic is a named function so layout drift can be
// patched in one place. When a document deviates beyond the known variants
// the extractors return empty results rather than guessing.
package extract

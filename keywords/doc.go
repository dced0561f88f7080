// Package keywords derives ranked keyword sets and thematic categories from
// article text.
//
// Extract builds a title-prioritized, frequency-ranked keyword set used to
// drive search prompt construction and candidate scoring. InferThemes maps a
// keyword set onto a closed list of theme categories consumed by the thematic
// search stage. Both functions are pure and never fail: degenerate input
// produces an empty keyword set and the fixed fallback theme pair.
package keywords

// Package odds computes exact draw probabilities for a deck holding some
// target cards: hypergeometric terms over big integers, an opening hand with
// an optional mulligan, and any number of later single-card draws.
package odds

// Package match scores how well a set of search patterns matches a candidate
// string such as a branch name or a file path.
//
// A score of zero means no match. Positive scores rank candidates: a candidate
// that contains every pattern scores 2, and a candidate that spells out the
// patterns in order from its first to its last character scores a further 4.
package match

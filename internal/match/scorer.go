package match

import (
	"regexp"
	"sort"
	"strings"
)

const (
	// ContainsAllWeight is awarded when every pattern occurs in the candidate, in any order
	ContainsAllWeight = 2
	// ContainsInOrderWeight is awarded when the patterns span the whole candidate in order
	ContainsInOrderWeight = 4
)

// Patterns is a normalized, ordered set of search tokens
type Patterns []string

// Coerce joins the arguments with spaces and splits the result on whitespace,
// so "foo bar" and "foo", "bar" produce the same pattern set.
func Coerce(args ...string) Patterns {
	return Patterns(strings.Fields(strings.Join(args, " ")))
}

// String returns the patterns joined by a single space
func (p Patterns) String() string {
	return strings.Join(p, " ")
}

// SubScorer contributes a non-negative amount to a candidate's score
type SubScorer interface {
	Score(candidate string) int
}

// ContainsAll scores candidates that contain every pattern, ignoring case
type ContainsAll struct {
	lowered []string
}

// NewContainsAll creates a ContainsAll sub-scorer
func NewContainsAll(patterns Patterns) *ContainsAll {
	lowered := make([]string, len(patterns))
	for i, p := range patterns {
		lowered[i] = strings.ToLower(p)
	}
	return &ContainsAll{lowered: lowered}
}

// Score returns ContainsAllWeight when every pattern is a case-insensitive substring
func (c *ContainsAll) Score(candidate string) int {
	if len(c.lowered) == 0 {
		return 0
	}
	lower := strings.ToLower(candidate)
	for _, p := range c.lowered {
		if !strings.Contains(lower, p) {
			return 0
		}
	}
	return ContainsAllWeight
}

// ContainsInOrder scores candidates matched in full by the patterns joined with ".*".
// The match is case-sensitive and anchored at both ends.
type ContainsInOrder struct {
	re *regexp.Regexp
}

// NewContainsInOrder creates a ContainsInOrder sub-scorer
func NewContainsInOrder(patterns Patterns) *ContainsInOrder {
	if len(patterns) == 0 {
		return &ContainsInOrder{}
	}
	quoted := make([]string, len(patterns))
	for i, p := range patterns {
		quoted[i] = regexp.QuoteMeta(p)
	}
	return &ContainsInOrder{re: regexp.MustCompile(`^(?s:` + strings.Join(quoted, ".*") + `)$`)}
}

// Score returns ContainsInOrderWeight when the whole candidate matches
func (c *ContainsInOrder) Score(candidate string) int {
	if c.re == nil || !c.re.MatchString(candidate) {
		return 0
	}
	return ContainsInOrderWeight
}

// Scorer sums the scores of its sub-scorers
type Scorer struct {
	patterns Patterns
	scorers  []SubScorer
}

// NewScorer creates the default scorer for a set of raw pattern arguments
func NewScorer(args ...string) *Scorer {
	patterns := Coerce(args...)
	return &Scorer{
		patterns: patterns,
		scorers: []SubScorer{
			NewContainsAll(patterns),
			NewContainsInOrder(patterns),
		},
	}
}

// Patterns returns the normalized patterns the scorer was built from
func (s *Scorer) Patterns() Patterns {
	return s.patterns
}

// Score returns the total score of a candidate; zero means no match
func (s *Scorer) Score(candidate string) int {
	total := 0
	for _, sub := range s.scorers {
		total += sub.Score(candidate)
	}
	return total
}

// Matches reports whether the candidate has a positive score
func (s *Scorer) Matches(candidate string) bool {
	return s.Score(candidate) > 0
}

// First returns the first candidate, in enumeration order, with a positive score
func (s *Scorer) First(candidates []string) (string, bool) {
	for _, c := range candidates {
		if s.Matches(c) {
			return c, true
		}
	}
	return "", false
}

// Ranked is a candidate together with its score
type Ranked struct {
	Value string
	Score int
}

// Rank drops candidates scoring zero and orders the rest by descending score.
// Ties keep their enumeration order.
func (s *Scorer) Rank(candidates []string) []Ranked {
	ranked := make([]Ranked, 0, len(candidates))
	for _, c := range candidates {
		if score := s.Score(c); score > 0 {
			ranked = append(ranked, Ranked{Value: c, Score: score})
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	return ranked
}

// Values returns the candidate strings of a ranking, in order
func Values(ranked []Ranked) []string {
	values := make([]string, len(ranked))
	for i, r := range ranked {
		values[i] = r.Value
	}
	return values
}

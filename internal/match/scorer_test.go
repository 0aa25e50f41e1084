package match_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"coderly.dev/code/internal/match"
)

func TestCoerce(t *testing.T) {
	t.Run("keeps separate arguments", func(t *testing.T) {
		require.Equal(t, match.Patterns{"abc", "def", "123"}, match.Coerce("abc", "def", "123"))
	})

	t.Run("splits arguments on whitespace", func(t *testing.T) {
		require.Equal(t, match.Patterns{"abc", "def", "123"}, match.Coerce("abc def", "  123 "))
	})

	t.Run("drops empty arguments", func(t *testing.T) {
		require.Empty(t, match.Coerce("", "   "))
	})
}

func TestContainsAll(t *testing.T) {
	scorer := match.NewContainsAll(match.Coerce("test", "BRANCH"))

	require.Equal(t, match.ContainsAllWeight, scorer.Score("test-branch"))
	require.Equal(t, match.ContainsAllWeight, scorer.Score("branch-of-the-Test"))
	require.Equal(t, 0, scorer.Score("test_bran"))
}

func TestContainsInOrder(t *testing.T) {
	t.Run("requires the patterns to span the whole candidate", func(t *testing.T) {
		scorer := match.NewContainsInOrder(match.Coerce("test", "1"))

		require.Equal(t, match.ContainsInOrderWeight, scorer.Score("test-branch-1"))
		require.Equal(t, 0, scorer.Score("my-test-branch-1"), "must anchor at the start")
		require.Equal(t, 0, scorer.Score("test-branch-12"), "must anchor at the end")
	})

	t.Run("rejects patterns out of order", func(t *testing.T) {
		scorer := match.NewContainsInOrder(match.Coerce("branch", "test"))
		require.Equal(t, 0, scorer.Score("test-branch"))
	})

	t.Run("is case sensitive", func(t *testing.T) {
		scorer := match.NewContainsInOrder(match.Coerce("Test"))
		require.Equal(t, 0, scorer.Score("test"))
		require.Equal(t, match.ContainsInOrderWeight, scorer.Score("Test"))
	})

	t.Run("treats patterns as literals", func(t *testing.T) {
		scorer := match.NewContainsInOrder(match.Coerce("a.c"))
		require.Equal(t, 0, scorer.Score("abc"))
		require.Equal(t, match.ContainsInOrderWeight, scorer.Score("a.c"))
	})
}

func TestScorer(t *testing.T) {
	t.Run("scores zero when a pattern is missing", func(t *testing.T) {
		scorer := match.NewScorer("tst", "test")
		require.Equal(t, 0, scorer.Score("test-branch"))
		require.False(t, scorer.Matches("test-branch"))
	})

	t.Run("scores zero for an empty pattern set", func(t *testing.T) {
		scorer := match.NewScorer()
		require.Equal(t, 0, scorer.Score("anything"))
	})

	t.Run("sums both signals for a full ordered match", func(t *testing.T) {
		scorer := match.NewScorer("test", "branch")
		require.Equal(t, match.ContainsAllWeight+match.ContainsInOrderWeight, scorer.Score("test-branch"))
	})

	t.Run("any-order match ranks below an ordered match", func(t *testing.T) {
		scorer := match.NewScorer("branch", "test")
		require.Equal(t, match.ContainsAllWeight, scorer.Score("test-branch"))
		require.Greater(t, scorer.Score("branch-test"), scorer.Score("test-branch"))
	})

	t.Run("never scores negative", func(t *testing.T) {
		candidates := []string{"", "a", "test-branch", "TEST", "hotfix-x", "foo-local"}
		patternSets := [][]string{{}, {"a"}, {"TEST"}, {"x", "y"}, {"-"}}
		for _, ps := range patternSets {
			scorer := match.NewScorer(ps...)
			for _, c := range candidates {
				require.GreaterOrEqual(t, scorer.Score(c), 0)
			}
		}
	})
}

func TestFirst(t *testing.T) {
	t.Run("finds the branch matching the patterns", func(t *testing.T) {
		got, ok := match.NewScorer("test", "branch", "1").First([]string{"master", "test-branch-1"})
		require.True(t, ok)
		require.Equal(t, "test-branch-1", got)
	})

	t.Run("returns the first match in enumeration order", func(t *testing.T) {
		// "test-branch" scores higher but comes later
		got, ok := match.NewScorer("test", "branch").First([]string{"my-test-branch", "test-branch"})
		require.True(t, ok)
		require.Equal(t, "my-test-branch", got)
	})

	t.Run("reports no match", func(t *testing.T) {
		_, ok := match.NewScorer("nothing").First([]string{"master", "development"})
		require.False(t, ok)
	})
}

func TestRank(t *testing.T) {
	t.Run("orders by descending score and keeps enumeration order on ties", func(t *testing.T) {
		candidates := []string{
			"lib/random_file",
			"random_file",
			"non_random_file",
			"other",
			"random_other_file",
		}
		ranked := match.NewScorer("random", "file").Rank(candidates)

		require.Equal(t, []string{
			"random_file",
			"random_other_file",
			"lib/random_file",
			"non_random_file",
		}, match.Values(ranked))
		require.Equal(t, 6, ranked[0].Score)
		require.Equal(t, 2, ranked[3].Score)
	})

	t.Run("returns an empty ranking when nothing matches", func(t *testing.T) {
		require.Empty(t, match.NewScorer("zzz").Rank([]string{"a", "b"}))
	})
}

func TestSuggest(t *testing.T) {
	candidates := []string{"master", "development", "feature-login", "feature-logout"}

	t.Run("suggests close candidates", func(t *testing.T) {
		suggestions := match.Suggest(match.Coerce("ftrlogin"), candidates, 3)
		require.NotEmpty(t, suggestions)
		require.Contains(t, suggestions, "feature-login")
	})

	t.Run("respects the limit", func(t *testing.T) {
		suggestions := match.Suggest(match.Coerce("e"), candidates, 2)
		require.Len(t, suggestions, 2)
	})

	t.Run("returns nothing for empty input", func(t *testing.T) {
		require.Nil(t, match.Suggest(nil, candidates, 3))
		require.Nil(t, match.Suggest(match.Coerce("x"), nil, 3))
	})
}

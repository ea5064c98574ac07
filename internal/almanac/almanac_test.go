package almanac

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyRuleOverlap(t *testing.T) {
	rule := Rule{SourceStart: 10, DestStart: 20, Length: 5}

	// Interval spanning past both ends of the rule's source span.
	mapped, ok := applyRule(Interval{Start: 8, Length: 10}, rule)
	require.True(t, ok)
	assert.Equal(t, Interval{Start: 20, Length: 5}, mapped)

	// Interval entirely inside the source span.
	mapped, ok = applyRule(Interval{Start: 11, Length: 2}, rule)
	require.True(t, ok)
	assert.Equal(t, Interval{Start: 21, Length: 2}, mapped)

	// Overlapping only the start of the source span.
	mapped, ok = applyRule(Interval{Start: 8, Length: 3}, rule)
	require.True(t, ok)
	assert.Equal(t, Interval{Start: 20, Length: 1}, mapped)

	// Overlapping only the end.
	mapped, ok = applyRule(Interval{Start: 14, Length: 10}, rule)
	require.True(t, ok)
	assert.Equal(t, Interval{Start: 24, Length: 1}, mapped)
}

func TestApplyRuleDisjoint(t *testing.T) {
	rule := Rule{SourceStart: 10, DestStart: 20, Length: 5}

	for _, iv := range []Interval{
		{Start: 0, Length: 10},  // touches the rule start, half-open
		{Start: 15, Length: 3},  // starts right at the rule end
		{Start: 100, Length: 1}, // far away
	} {
		_, ok := applyRule(iv, rule)
		assert.False(t, ok, "interval %v should not map", iv)
	}
}

func TestSubtract(t *testing.T) {
	src := Interval{Start: 8, Length: 10} // 8..18

	left, right := subtract(src, Interval{Start: 10, Length: 5})
	assert.Equal(t, Interval{Start: 8, Length: 2}, left)
	assert.Equal(t, Interval{Start: 15, Length: 3}, right)

	// Covered equals src: nothing remains.
	left, right = subtract(src, src)
	assert.True(t, left.Empty())
	assert.True(t, right.Empty())

	// Covered touching the left edge only.
	left, right = subtract(src, Interval{Start: 8, Length: 4})
	assert.True(t, left.Empty())
	assert.Equal(t, Interval{Start: 12, Length: 6}, right)

	// Covered touching the right edge only.
	left, right = subtract(src, Interval{Start: 14, Length: 4})
	assert.Equal(t, Interval{Start: 8, Length: 6}, left)
	assert.True(t, right.Empty())
}

// The translated overlap plus both remainders must reconstitute the
// source interval exactly, with no gap and no double counting.
func TestSubtractConservesCoverage(t *testing.T) {
	rules := []Rule{
		{SourceStart: 10, DestStart: 20, Length: 5},
		{SourceStart: 0, DestStart: 100, Length: 9},
		{SourceStart: 17, DestStart: 3, Length: 1},
	}
	intervals := []Interval{
		{Start: 8, Length: 10},
		{Start: 0, Length: 30},
		{Start: 16, Length: 2},
	}
	for _, r := range rules {
		for _, iv := range intervals {
			mapped, ok := applyRule(iv, r)
			if !ok {
				continue
			}
			covered := Interval{
				Start:  mapped.Start - r.DestStart + r.SourceStart,
				Length: mapped.Length,
			}
			left, right := subtract(iv, covered)

			rest := Coverage([]Interval{iv})
			rest.DeleteRange(covered.Start, covered.End())
			if !left.Empty() {
				rest.DeleteRange(left.Start, left.End())
			}
			if !right.Empty() {
				rest.DeleteRange(right.Start, right.End())
			}
			assert.Empty(t, rest, "rule %v interval %v leaves a gap", r, iv)

			total := covered.Length
			if !left.Empty() {
				total += left.Length
			}
			if !right.Empty() {
				total += right.Length
			}
			assert.Equal(t, iv.Length, total, "rule %v interval %v double counts", r, iv)
		}
	}
}

func TestStageApplySplits(t *testing.T) {
	stage := Stage{
		Name:        "seed",
		Destination: "soil",
		Rules: []Rule{
			{SourceStart: 10, DestStart: 20, Length: 5},
		},
	}

	got := stage.Apply([]Interval{{Start: 8, Length: 10}})
	assert.ElementsMatch(t, []Interval{
		{Start: 20, Length: 5}, // mapped 10..15 -> 20..25
		{Start: 8, Length: 2},  // left remainder
		{Start: 15, Length: 3}, // right remainder
	}, got)
	assert.Equal(t, uint64(10), TotalLength(got))
}

func TestStageApplyIdentityPassThrough(t *testing.T) {
	stage := Stage{
		Name:        "seed",
		Destination: "soil",
		Rules: []Rule{
			{SourceStart: 100, DestStart: 0, Length: 10},
		},
	}

	in := []Interval{{Start: 0, Length: 5}, {Start: 50, Length: 7}}
	assert.ElementsMatch(t, in, stage.Apply(in))
}

func TestStageApplyMultipleRules(t *testing.T) {
	stage := Stage{
		Name:        "seed",
		Destination: "soil",
		Rules: []Rule{
			{SourceStart: 0, DestStart: 1000, Length: 5},
			{SourceStart: 10, DestStart: 2000, Length: 5},
		},
	}

	// One interval overlapping both rules' spans plus the gap between.
	got := stage.Apply([]Interval{{Start: 0, Length: 20}})
	assert.ElementsMatch(t, []Interval{
		{Start: 1000, Length: 5}, // 0..5
		{Start: 2000, Length: 5}, // 10..15
		{Start: 5, Length: 5},    // gap, identity
		{Start: 15, Length: 5},   // tail, identity
	}, got)
	assert.Equal(t, uint64(20), TotalLength(got))
}

func TestStageApplyFirstRuleWins(t *testing.T) {
	// Overlapping rules are malformed input; the documented tie-break
	// is that the earlier rule claims the contested span.
	stage := Stage{
		Name:        "seed",
		Destination: "soil",
		Rules: []Rule{
			{SourceStart: 0, DestStart: 100, Length: 10},
			{SourceStart: 5, DestStart: 200, Length: 10},
		},
	}

	got := stage.Apply([]Interval{{Start: 0, Length: 15}})
	assert.ElementsMatch(t, []Interval{
		{Start: 100, Length: 10}, // 0..10 by the first rule
		{Start: 205, Length: 5},  // 10..15 by the second
	}, got)
}

func TestStageApplyDropsEmptyInput(t *testing.T) {
	stage := Stage{Name: "seed", Destination: "soil"}
	got := stage.Apply([]Interval{{Start: 3, Length: 0}, {Start: 7, Length: 1}})
	assert.Equal(t, []Interval{{Start: 7, Length: 1}}, got)
}

func TestStageLookup(t *testing.T) {
	stage := Stage{
		Name:        "seed",
		Destination: "soil",
		Rules: []Rule{
			{DestStart: 50, SourceStart: 98, Length: 2},
			{DestStart: 52, SourceStart: 50, Length: 48},
		},
	}

	assert.Equal(t, uint64(50), stage.Lookup(98))
	assert.Equal(t, uint64(51), stage.Lookup(99))
	assert.Equal(t, uint64(52), stage.Lookup(50))
	assert.Equal(t, uint64(99), stage.Lookup(97))
	assert.Equal(t, uint64(100), stage.Lookup(100)) // uncovered, identity
	assert.Equal(t, uint64(10), stage.Lookup(10))

	assert.Equal(t, []uint64{50, 100, 10}, stage.LookupAll([]uint64{98, 100, 10}))
}

func TestNewChainOrdersStages(t *testing.T) {
	chain, err := NewChain([]Stage{
		{Name: "soil", Destination: "fertilizer"},
		{Name: "seed", Destination: "soil"},
		{Name: "unrelated", Destination: "elsewhere"},
	}, "seed")
	require.NoError(t, err)
	assert.Equal(t, 2, chain.Len())
}

func TestNewChainRejectsCycle(t *testing.T) {
	_, err := NewChain([]Stage{
		{Name: "seed", Destination: "soil"},
		{Name: "soil", Destination: "seed"},
	}, "seed")
	assert.ErrorContains(t, err, "cycle")
}

func TestNewChainRejectsDuplicate(t *testing.T) {
	_, err := NewChain([]Stage{
		{Name: "seed", Destination: "soil"},
		{Name: "seed", Destination: "water"},
	}, "seed")
	assert.ErrorContains(t, err, "duplicate")
}

func TestChainRemapAcrossStages(t *testing.T) {
	chain, err := NewChain([]Stage{
		{Name: "seed", Destination: "soil", Rules: []Rule{
			{SourceStart: 0, DestStart: 100, Length: 5},
		}},
		{Name: "soil", Destination: "fertilizer", Rules: []Rule{
			{SourceStart: 100, DestStart: 200, Length: 2},
		}},
	}, "seed")
	require.NoError(t, err)

	// 0..8 splits at stage one into 100..105 and identity 5..8; stage
	// two then splits 100..105 again into 200..202 and 102..105.
	got := chain.Remap([]Interval{{Start: 0, Length: 8}})
	assert.ElementsMatch(t, []Interval{
		{Start: 200, Length: 2},
		{Start: 102, Length: 3},
		{Start: 5, Length: 3},
	}, got)
	assert.Equal(t, uint64(8), TotalLength(got))

	m, ok := Min(got)
	require.True(t, ok)
	assert.Equal(t, uint64(5), m)
}

func TestChainRemapConservesTotalLength(t *testing.T) {
	chain, err := NewChain([]Stage{
		{Name: "seed", Destination: "soil", Rules: []Rule{
			{SourceStart: 50, DestStart: 52, Length: 48},
			{SourceStart: 98, DestStart: 50, Length: 2},
		}},
		{Name: "soil", Destination: "fertilizer", Rules: []Rule{
			{SourceStart: 0, DestStart: 39, Length: 15},
			{SourceStart: 15, DestStart: 0, Length: 37},
			{SourceStart: 52, DestStart: 37, Length: 2},
		}},
	}, "seed")
	require.NoError(t, err)

	in := []Interval{{Start: 79, Length: 14}, {Start: 55, Length: 13}}
	out := chain.Remap(in)
	assert.Equal(t, TotalLength(in), TotalLength(out))
	for _, iv := range out {
		assert.False(t, iv.Empty())
	}
}

func TestMin(t *testing.T) {
	_, ok := Min(nil)
	assert.False(t, ok)

	m, ok := Min([]Interval{{Start: 9, Length: 2}, {Start: 4, Length: 1}, {Start: 12, Length: 3}})
	require.True(t, ok)
	assert.Equal(t, uint64(4), m)
}

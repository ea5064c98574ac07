package almanac

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleAlmanac = `seeds: 79 14 55 13

seed-to-soil map:
50 98 2
52 50 48

soil-to-fertilizer map:
0 15 37
37 52 2
39 0 15

fertilizer-to-water map:
49 53 8
0 11 42
42 0 7
57 7 4

water-to-light map:
88 18 7
18 25 70

light-to-temperature map:
45 77 23
81 45 19
68 64 13

temperature-to-humidity map:
0 69 1
1 0 69

humidity-to-location map:
60 56 37
56 93 4
`

func TestParseSample(t *testing.T) {
	a, err := Parse(strings.NewReader(sampleAlmanac))
	require.NoError(t, err)

	assert.Equal(t, []uint64{79, 14, 55, 13}, a.Seeds)
	require.Len(t, a.Stages, 7)

	want := Stage{
		Name:        "seed",
		Destination: "soil",
		Rules: []Rule{
			{DestStart: 50, SourceStart: 98, Length: 2},
			{DestStart: 52, SourceStart: 50, Length: 48},
		},
	}
	if diff := cmp.Diff(want, a.Stages[0]); diff != "" {
		t.Errorf("first stage mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, "humidity", a.Stages[6].Name)
	assert.Equal(t, "location", a.Stages[6].Destination)
}

func TestParseErrors(t *testing.T) {
	for name, in := range map[string]string{
		"missing seeds":   "seed-to-soil map:\n50 98 2\n",
		"rule outside":    "seeds: 1\n\n50 98 2\n",
		"short rule":      "seeds: 1\n\nseed-to-soil map:\n50 98\n",
		"bad number":      "seeds: 1\n\nseed-to-soil map:\n50 98 x\n",
		"bad header":      "seeds: 1\n\nbroken map:\n50 98 2\n",
		"bad seed number": "seeds: one two\n",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(in))
			assert.Error(t, err)
		})
	}
}

func TestParseSkipsZeroLengthRules(t *testing.T) {
	a, err := Parse(strings.NewReader("seeds: 1\n\nseed-to-soil map:\n5 10 0\n7 20 3\n"))
	require.NoError(t, err)
	require.Len(t, a.Stages, 1)
	assert.Equal(t, []Rule{{DestStart: 7, SourceStart: 20, Length: 3}}, a.Stages[0].Rules)
}

func TestSeedIntervals(t *testing.T) {
	a := &Almanac{Seeds: []uint64{79, 14, 55, 13}}
	intervals, err := a.SeedIntervals()
	require.NoError(t, err)
	assert.Equal(t, []Interval{{Start: 79, Length: 14}, {Start: 55, Length: 13}}, intervals)

	a = &Almanac{Seeds: []uint64{79, 14, 55}}
	_, err = a.SeedIntervals()
	assert.ErrorContains(t, err, "odd seed count")

	a = &Almanac{Seeds: []uint64{79, 0}}
	intervals, err = a.SeedIntervals()
	require.NoError(t, err)
	assert.Empty(t, intervals)
}

// End-to-end over the documented sample: the lowest location is 35 for
// single seeds and 46 for seed ranges.
func TestSampleLowestLocations(t *testing.T) {
	a, err := Parse(strings.NewReader(sampleAlmanac))
	require.NoError(t, err)
	chain, err := a.Chain()
	require.NoError(t, err)
	assert.Equal(t, 7, chain.Len())

	var lowest uint64
	for i, seed := range a.Seeds {
		if loc := chain.Lookup(seed); i == 0 || loc < lowest {
			lowest = loc
		}
	}
	assert.Equal(t, uint64(35), lowest)

	intervals, err := a.SeedIntervals()
	require.NoError(t, err)
	out := chain.Remap(intervals)
	assert.Equal(t, TotalLength(intervals), TotalLength(out))

	m, ok := Min(out)
	require.True(t, ok)
	assert.Equal(t, uint64(46), m)
}

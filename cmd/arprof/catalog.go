package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/arprax/algos/dataset"
	"github.com/arprax/algos/profiler"
	"github.com/arprax/algos/searching"
	"github.com/arprax/algos/sorting"
)

// inputShape names the dataset layout a subject needs. Subjects in one
// comparison must share a shape, otherwise the race is meaningless.
type inputShape string

const (
	shapeRandom inputShape = "random"
	shapeSorted inputShape = "sorted"
)

// subject couples a measurable workload with the dataset shape it
// expects and the complexity class the textbook predicts for it.
type subject struct {
	name     string
	kind     string
	shape    inputShape
	expected profiler.Class
	workload func(data []int) error
	desc     string
}

// searchSink keeps search results observable so the timed call cannot
// be hollowed out.
var searchSink int

// catalog lists every algorithm arprof can profile, keyed by CLI name.
var catalog = map[string]subject{
	"bubble": {
		name: "bubble", kind: "sort", shape: shapeRandom,
		expected: profiler.ClassQuadratic,
		workload: sorting.Workload(sorting.Bubble),
		desc:     "adjacent swaps with early exit on a clean pass",
	},
	"selection": {
		name: "selection", kind: "sort", shape: shapeRandom,
		expected: profiler.ClassQuadratic,
		workload: sorting.Workload(sorting.Selection),
		desc:     "swap the minimum of the tail into place",
	},
	"insertion": {
		name: "insertion", kind: "sort", shape: shapeRandom,
		expected: profiler.ClassQuadratic,
		workload: sorting.Workload(sorting.Insertion),
		desc:     "sink each element into the sorted prefix",
	},
	"shell": {
		name: "shell", kind: "sort", shape: shapeRandom,
		expected: profiler.ClassLinearithmic,
		workload: sorting.Workload(sorting.Shell),
		desc:     "gapped insertion over Knuth's increments",
	},
	"merge": {
		name: "merge", kind: "sort", shape: shapeRandom,
		expected: profiler.ClassLinearithmic,
		workload: sorting.Workload(sorting.Merge),
		desc:     "divide and conquer with one shared buffer",
	},
	"quick": {
		name: "quick", kind: "sort", shape: shapeRandom,
		expected: profiler.ClassLinearithmic,
		workload: sorting.Workload(sorting.Quick),
		desc:     "three-way partition, duplicate-proof",
	},
	"heap": {
		name: "heap", kind: "sort", shape: shapeRandom,
		expected: profiler.ClassLinearithmic,
		workload: sorting.Workload(sorting.Heap),
		desc:     "bottom-up heap construction, then sort-down",
	},
	"binary-sweep": {
		name: "binary-sweep", kind: "search", shape: shapeSorted,
		expected: profiler.ClassLinearithmic,
		workload: func(data []int) error {
			for _, v := range data {
				searchSink = searching.Binary(data, v)
			}
			return nil
		},
		desc: "one binary search per element of a sorted slice",
	},
	"quick-select": {
		name: "quick-select", kind: "search", shape: shapeRandom,
		expected: profiler.ClassLinear,
		workload: func(data []int) error {
			v, err := searching.QuickSelect(data, len(data)/2)
			if err != nil {
				return err
			}
			searchSink = v
			return nil
		},
		desc: "median via partitioning, no full sort",
	},
	"two-sum": {
		name: "two-sum", kind: "search", shape: shapeSorted,
		expected: profiler.ClassLinear,
		workload: func(data []int) error {
			// A guaranteed miss drags both pointers across the
			// whole slice, the worst case.
			i, j, _ := searching.TwoSumSorted(data, -1)
			searchSink = i + j
			return nil
		},
		desc: "converging pointers over a sorted slice",
	},
}

// lookupSubject resolves a CLI name, listing both catalogs on a miss.
func lookupSubject(name string) (subject, error) {
	s, ok := catalog[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return subject{}, fmt.Errorf("unknown algorithm %q (try: %s)", name, strings.Join(allSubjectNames(), ", "))
	}
	return s, nil
}

// catalogNames returns all CLI names in stable order.
func catalogNames() []string {
	names := make([]string, 0, len(catalog))
	for name := range catalog {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// generatorFor builds the dataset generator matching a subject's input
// shape, seeded for reproducible runs.
func generatorFor(shape inputShape, seed int64) func(n int) []int {
	switch shape {
	case shapeSorted:
		return dataset.Sorted()
	default:
		return dataset.Random(dataset.WithSeed(seed))
	}
}

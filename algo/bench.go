package algo

import (
	"cmp"
	"fmt"
	"log"
	"math/rand"
	"slices"
	"time"
)

// Kind distinguishes the two benchmark families.
type Kind string

const (
	Sorting   Kind = "sort"
	Searching Kind = "search"
)

// Result is one row of the comparison table: one algorithm at one input size.
type Result struct {
	Name       string
	Kind       Kind
	Size       int
	Repeats    int           // number of timed calls (1 for sorts)
	Elapsed    time.Duration // wall clock over all repeats
	Complexity string        // theoretical label, e.g. "O(n log n)"
	Err        error         // a failed row; other rows still run
}

// PerCall returns the mean elapsed time of a single call.
func (r Result) PerCall() time.Duration {
	if r.Repeats <= 1 {
		return r.Elapsed
	}
	return r.Elapsed / time.Duration(r.Repeats)
}

// Suite drives the benchmark: for each input size it draws a dataset, times
// every algorithm variant plus its standard-library equivalent, and verifies
// the outputs after the clock stops. There is no state across runs beyond
// the accumulated result table.
type Suite struct {
	Sizes         []int
	SearchRepeats int   // timed search calls per row
	Seed          int64 // for the random datasets
	Data          []float64
	// Data, when set, seeds the datasets with real order amounts; sizes
	// beyond len(Data) are topped up with random values.
}

// DefaultSuite is tuned so that the O(n²) row is visibly slower without
// making the demo crawl.
func DefaultSuite() *Suite {
	return &Suite{Sizes: []int{100, 1000, 5000}, SearchRepeats: 1000, Seed: 1}
}

// Run executes the whole suite and returns one Result per algorithm and size.
func (s *Suite) Run() []Result {
	repeats := s.SearchRepeats
	if repeats <= 0 {
		repeats = 1000
	}
	rng := rand.New(rand.NewSource(s.Seed))

	var results []Result
	for _, size := range s.Sizes {
		if size <= 0 {
			// a dataset-level failure belongs to no family: its Kind stays
			// zero and renderers show it in every table.
			err := fmt.Errorf("invalid input size %d", size)
			log.Printf("benchmark dataset: %v", err)
			results = append(results, Result{Name: "dataset", Size: size, Err: err})
			continue
		}
		data := s.dataset(size, rng)
		sorted := slices.Clone(data)
		slices.Sort(sorted)
		target := data[size/2] // present by construction

		results = append(results,
			s.timeSort("Bubble Sort", "O(n²)", size, data, sorted,
				func() []float64 { return BubbleSort(data, cmp.Compare) }),
			s.timeSort("Merge Sort", "O(n log n)", size, data, sorted,
				func() []float64 { return MergeSort(data, cmp.Compare) }),
			s.timeSort("slices.Sort", "O(n log n)", size, data, sorted,
				func() []float64 {
					out := slices.Clone(data)
					slices.Sort(out)
					return out
				}),
			s.timeSearch("Linear Search", "O(n)", size, repeats,
				func() bool { _, ok := LinearSearch(data, target, cmp.Compare); return ok }),
			s.timeSearch("Binary Search", "O(log n)", size, repeats,
				func() bool { _, ok := BinarySearch(sorted, target, cmp.Compare); return ok }),
			s.timeSearch("slices.Contains", "O(n)", size, repeats,
				func() bool { return slices.Contains(data, target) }),
		)
	}
	return results
}

// dataset draws the sequence-under-test for one size.
func (s *Suite) dataset(size int, rng *rand.Rand) []float64 {
	data := make([]float64, size)
	n := copy(data, s.Data)
	for i := n; i < size; i++ {
		data[i] = rng.Float64() * 10_000
	}
	return data
}

// timeSort times one sorting run and verifies, outside the timed section,
// that the output is the same non-decreasing permutation the standard
// library produces.
func (s *Suite) timeSort(name, complexity string, size int, data, want []float64, run func() []float64) Result {
	r := Result{Name: name, Kind: Sorting, Size: size, Repeats: 1, Complexity: complexity}

	start := time.Now()
	got := run()
	r.Elapsed = time.Since(start)

	if !slices.Equal(got, want) {
		r.Err = fmt.Errorf("%s produced a wrong ordering on n=%d", name, size)
	}
	return r
}

// timeSearch times repeated search calls for a target known to be present.
func (s *Suite) timeSearch(name, complexity string, size, repeats int, run func() bool) Result {
	r := Result{Name: name, Kind: Searching, Size: size, Repeats: repeats, Complexity: complexity}

	found := true
	start := time.Now()
	for i := 0; i < repeats; i++ {
		found = run() && found
	}
	r.Elapsed = time.Since(start)

	if !found {
		r.Err = fmt.Errorf("%s missed a present target on n=%d", name, size)
	}
	return r
}

package algo

import (
	"cmp"
	"math/rand"
	"slices"
	"testing"
)

func TestBubbleSortExample(t *testing.T) {
	got := BubbleSort([]int{5, 3, 1, 4, 2}, cmp.Compare)
	want := []int{1, 2, 3, 4, 5}
	if !slices.Equal(got, want) {
		t.Errorf("BubbleSort = %v, want %v", got, want)
	}
}

func TestSortProperties(t *testing.T) {
	sorts := map[string]func([]float64, func(a, b float64) int) []float64{
		"bubble": BubbleSort[float64],
		"merge":  MergeSort[float64],
	}

	inputs := map[string][]float64{
		"empty":       {},
		"single":      {42},
		"sorted":      {1, 2, 3, 4, 5},
		"reversed":    {5, 4, 3, 2, 1},
		"duplicates":  {2, 1, 2, 1, 2},
		"random 1000": randomFloats(1000, 7),
	}

	for sortName, sortFunc := range sorts {
		for inputName, input := range inputs {
			t.Run(sortName+"/"+inputName, func(t *testing.T) {
				original := slices.Clone(input)
				got := sortFunc(input, cmp.Compare)

				if !slices.Equal(input, original) {
					t.Errorf("input was mutated: %v", input)
				}
				if !slices.IsSorted(got) {
					t.Errorf("output is not non-decreasing: %v", got)
				}
				// a sorted permutation of the input is exactly what
				// the standard library produces.
				want := slices.Clone(input)
				slices.Sort(want)
				if !slices.Equal(got, want) {
					t.Errorf("output is not a permutation of the input:\ngot  %v\nwant %v", got, want)
				}
				// idempotence: sorting a sorted sequence changes nothing.
				if again := sortFunc(got, cmp.Compare); !slices.Equal(again, got) {
					t.Errorf("sort(sort(S)) = %v, want %v", again, got)
				}
			})
		}
	}
}

func TestSortStability(t *testing.T) {
	type pair struct{ key, seq int }
	byKey := func(a, b pair) int { return cmp.Compare(a.key, b.key) }

	input := []pair{{2, 0}, {1, 1}, {2, 2}, {1, 3}, {2, 4}}
	want := []pair{{1, 1}, {1, 3}, {2, 0}, {2, 2}, {2, 4}}

	for name, sorted := range map[string][]pair{
		"bubble": BubbleSort(input, byKey),
		"merge":  MergeSort(input, byKey),
	} {
		if !slices.Equal(sorted, want) {
			t.Errorf("%s sort is not stable: got %v, want %v", name, sorted, want)
		}
	}
}

func randomFloats(n int, seed int64) []float64 {
	rng := rand.New(rand.NewSource(seed))
	out := make([]float64, n)
	for i := range out {
		out[i] = rng.Float64() * 1_000_000
	}
	return out
}

func BenchmarkBubbleSort1000(b *testing.B) {
	data := randomFloats(1000, 1)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		BubbleSort(data, cmp.Compare)
	}
}

func BenchmarkMergeSort1000(b *testing.B) {
	data := randomFloats(1000, 1)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		MergeSort(data, cmp.Compare)
	}
}

func BenchmarkSlicesSort1000(b *testing.B) {
	data := randomFloats(1000, 1)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		out := slices.Clone(data)
		slices.Sort(out)
	}
}

package sorting

// Workload adapts an in-place sort to the error-returning signature
// timing harnesses consume. Sorts cannot fail, so the returned
// workload always reports nil.
func Workload(sort func([]int)) func(data []int) error {
	return func(data []int) error {
		sort(data)
		return nil
	}
}

// IsSorted reports whether data is in non-decreasing order.
func IsSorted(data []int) bool {
	for i := 1; i < len(data); i++ {
		if data[i] < data[i-1] {
			return false
		}
	}
	return true
}

package sorting

// Bubble sorts data in place by swapping adjacent out-of-order pairs.
// A pass with no swaps ends the sort early, so already-sorted input
// costs a single O(N) sweep.
func Bubble(data []int) {
	for n := len(data); n > 1; n-- {
		swapped := false
		for j := 1; j < n; j++ {
			if data[j] < data[j-1] {
				data[j-1], data[j] = data[j], data[j-1]
				swapped = true
			}
		}
		if !swapped {
			return
		}
	}
}

// Selection sorts data in place by repeatedly swapping the minimum of
// the unsorted tail into position. Always O(N^2) comparisons.
func Selection(data []int) {
	n := len(data)
	for i := 0; i < n; i++ {
		min := i
		for j := i + 1; j < n; j++ {
			if data[j] < data[min] {
				min = j
			}
		}
		data[i], data[min] = data[min], data[i]
	}
}

// Insertion sorts data in place by sinking each element into the
// sorted prefix. O(N^2) worst case, O(N) on nearly-sorted input.
func Insertion(data []int) {
	for i := 1; i < len(data); i++ {
		for j := i; j > 0 && data[j] < data[j-1]; j-- {
			data[j], data[j-1] = data[j-1], data[j]
		}
	}
}

// Shell sorts data in place with gapped insertion passes over Knuth's
// increment sequence 1, 4, 13, 40, ...
func Shell(data []int) {
	n := len(data)
	h := 1
	for h < n/3 {
		h = 3*h + 1
	}
	for ; h >= 1; h /= 3 {
		for i := h; i < n; i++ {
			for j := i; j >= h && data[j] < data[j-h]; j -= h {
				data[j], data[j-h] = data[j-h], data[j]
			}
		}
	}
}

// Merge sorts data in place via recursive divide-and-conquer.
// Guaranteed O(N log N) time; one auxiliary buffer of len(data) is
// shared across the whole recursion.
func Merge(data []int) {
	if len(data) < 2 {
		return
	}
	aux := make([]int, len(data))
	mergeSort(data, aux, 0, len(data)-1)
}

func mergeSort(data, aux []int, lo, hi int) {
	if hi <= lo {
		return
	}
	mid := lo + (hi-lo)/2
	mergeSort(data, aux, lo, mid)
	mergeSort(data, aux, mid+1, hi)
	mergeHalves(data, aux, lo, mid, hi)
}

func mergeHalves(data, aux []int, lo, mid, hi int) {
	copy(aux[lo:hi+1], data[lo:hi+1])
	i, j := lo, mid+1
	for k := lo; k <= hi; k++ {
		switch {
		case i > mid:
			data[k] = aux[j]
			j++
		case j > hi:
			data[k] = aux[i]
			i++
		case aux[j] < aux[i]:
			data[k] = aux[j]
			j++
		default:
			data[k] = aux[i]
			i++
		}
	}
}

// Quick sorts data in place with Dijkstra's three-way partition around
// a median-of-three pivot. Duplicate keys stay out of the recursion and
// pre-sorted input cannot drive it quadratic. O(N log N) average.
func Quick(data []int) {
	quickSort(data, 0, len(data)-1)
}

func quickSort(data []int, lo, hi int) {
	if hi <= lo {
		return
	}
	medianToFront(data, lo, hi)
	lt, i, gt := lo, lo+1, hi
	v := data[lo]
	for i <= gt {
		switch {
		case data[i] < v:
			data[lt], data[i] = data[i], data[lt]
			lt++
			i++
		case data[i] > v:
			data[i], data[gt] = data[gt], data[i]
			gt--
		default:
			i++
		}
	}
	quickSort(data, lo, lt-1)
	quickSort(data, gt+1, hi)
}

// medianToFront moves the median of data[lo], data[mid] and data[hi]
// into the pivot slot data[lo].
func medianToFront(data []int, lo, hi int) {
	mid := lo + (hi-lo)/2
	if data[mid] < data[lo] {
		data[mid], data[lo] = data[lo], data[mid]
	}
	if data[hi] < data[lo] {
		data[hi], data[lo] = data[lo], data[hi]
	}
	if data[hi] < data[mid] {
		data[hi], data[mid] = data[mid], data[hi]
	}
	data[lo], data[mid] = data[mid], data[lo]
}

// Heap sorts data in place through a binary max-heap: bottom-up
// construction, then repeated sink of the swapped-out root.
// Guaranteed O(N log N) time and O(1) space.
func Heap(data []int) {
	n := len(data)
	for k := n/2 - 1; k >= 0; k-- {
		sink(data, k, n)
	}
	for k := n - 1; k > 0; k-- {
		data[0], data[k] = data[k], data[0]
		sink(data, 0, k)
	}
}

// sink restores heap order below index k within data[:n].
func sink(data []int, k, n int) {
	for 2*k+1 < n {
		j := 2*k + 1
		if j < n-1 && data[j] < data[j+1] {
			j++
		}
		if data[k] >= data[j] {
			return
		}
		data[k], data[j] = data[j], data[k]
		k = j
	}
}

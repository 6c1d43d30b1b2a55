package searching

import (
	"fmt"
	"math/rand"
)

// Binary returns the index of key in the sorted slice a, or -1 when key
// is absent. With duplicate keys any matching index may be returned.
// O(log N) time, O(1) space.
func Binary(a []int, key int) int {
	lo, hi := 0, len(a)-1
	for lo <= hi {
		mid := lo + (hi-lo)/2
		switch {
		case key < a[mid]:
			hi = mid - 1
		case key > a[mid]:
			lo = mid + 1
		default:
			return mid
		}
	}
	return -1
}

// Rank returns the number of elements in the sorted slice a strictly
// less than key. When key is present this is the index of its first
// occurrence; when absent it is the insertion point, so the result
// ranges over [0, len(a)]. O(log N) time.
func Rank(a []int, key int) int {
	lo, hi := 0, len(a)-1
	for lo <= hi {
		mid := lo + (hi-lo)/2
		switch {
		case key < a[mid]:
			hi = mid - 1
		case key > a[mid]:
			lo = mid + 1
		default:
			for mid > 0 && a[mid-1] == key {
				mid--
			}
			return mid
		}
	}
	return lo
}

// QuickSelect returns the k-th smallest element of a (k=0 is the
// minimum) without fully sorting it. The input is copied, then
// shuffled so adversarial orderings keep the O(N) average. Returns
// ErrRankRange when k is outside [0, len(a)).
func QuickSelect(a []int, k int) (int, error) {
	if k < 0 || k >= len(a) {
		return 0, fmt.Errorf("%w: k=%d, len=%d", ErrRankRange, k, len(a))
	}
	aux := append([]int(nil), a...)
	rand.Shuffle(len(aux), func(i, j int) {
		aux[i], aux[j] = aux[j], aux[i]
	})

	lo, hi := 0, len(aux)-1
	for hi > lo {
		j := partition(aux, lo, hi)
		switch {
		case j == k:
			return aux[k], nil
		case j > k:
			hi = j - 1
		default:
			lo = j + 1
		}
	}
	return aux[k], nil
}

// partition rearranges a[lo..hi] around the pivot a[lo] so that
// a[lo..j-1] <= a[j] <= a[j+1..hi], returning j.
func partition(a []int, lo, hi int) int {
	i, j := lo, hi+1
	v := a[lo]
	for {
		for i++; i < hi && a[i] < v; i++ {
		}
		for j--; j > lo && v < a[j]; j-- {
		}
		if i >= j {
			break
		}
		a[i], a[j] = a[j], a[i]
	}
	a[lo], a[j] = a[j], a[lo]
	return j
}

// TwoSumSorted returns indices i < j with a[i]+a[j] == target in the
// sorted slice a, advancing two converging pointers in one linear
// pass. ok is false when no such pair exists.
func TwoSumSorted(a []int, target int) (i, j int, ok bool) {
	i, j = 0, len(a)-1
	for i < j {
		switch sum := a[i] + a[j]; {
		case sum == target:
			return i, j, true
		case sum < target:
			i++
		default:
			j--
		}
	}
	return 0, 0, false
}

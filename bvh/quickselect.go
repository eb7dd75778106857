package bvh

// quickselect partitions indices in place so that the element at position k
// (after partitioning) is the one that would occupy that position in sorted
// order by key, with every element before it <= and every element after it
// >= that value: the Hoare-partition analogue of a linear-time nth_element,
// used to find the median triangle-center coordinate along a candidate
// split axis without a full O(n log n) sort.
func quickselect(indices []int, k int, key func(int) float64) {
	lo, hi := 0, len(indices)-1
	for lo < hi {
		pivot := key(indices[lo+(hi-lo)/2])
		i, j := lo, hi
		for i <= j {
			for key(indices[i]) < pivot {
				i++
			}
			for key(indices[j]) > pivot {
				j--
			}
			if i <= j {
				indices[i], indices[j] = indices[j], indices[i]
				i++
				j--
			}
		}
		if k <= j {
			hi = j
		} else if k >= i {
			lo = i
		} else {
			return
		}
	}
}

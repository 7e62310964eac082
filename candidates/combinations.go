package candidates

// combinations calls visit once for every size-k subset of [0,n), expressed
// as the subset's indices in ascending order, visited in lexicographic
// order. visit must not retain the slice it is given; it is reused between
// calls.
func combinations(n, k int, visit func(idx []int)) {
	if k < 0 || k > n {
		return
	}
	if k == 0 {
		visit(nil)
		return
	}

	idx := make([]int, k)
	for i := range idx {
		idx[i] = i
	}

	for {
		visit(idx)

		// Find the rightmost index that can still be incremented.
		i := k - 1
		for i >= 0 && idx[i] == n-k+i {
			i--
		}
		if i < 0 {
			return // exhausted every combination
		}
		idx[i]++
		for j := i + 1; j < k; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
}

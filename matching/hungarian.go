package matching

import "math"

// hungarianMinCost solves the square assignment problem: given an n×n cost
// matrix, find a bijection from rows to columns minimizing total cost. This
// is the classic O(n^3) successive-shortest-path formulation (Kuhn-Munkres /
// Jonker-Volgenant); no assignment-problem library exists anywhere in the
// example pack this module was grounded on, so it is hand-written here,
// standard library only. Callers with a non-square cost matrix (GED's
// insertion/deletion padding) must pad to square before calling.
//
// Returns assignment where assignment[i] is the column matched to row i, and
// the total cost of that assignment. Panics if cost is not square.
func hungarianMinCost(cost [][]float64) (assignment []int, total float64) {
	n := len(cost)
	if n == 0 {
		return nil, 0
	}
	for _, row := range cost {
		if len(row) != n {
			panic("matching: hungarianMinCost requires a square cost matrix")
		}
	}

	const inf = math.MaxFloat64

	u := make([]float64, n+1)
	v := make([]float64, n+1)
	p := make([]int, n+1)   // p[j] = 1-based row currently assigned to column j
	way := make([]int, n+1) // way[j] = previous column on the augmenting path

	for i := 1; i <= n; i++ {
		p[0] = i
		j0 := 0
		minv := make([]float64, n+1)
		used := make([]bool, n+1)
		for j := range minv {
			minv[j] = inf
		}

		for {
			used[j0] = true
			i0 := p[j0]
			delta := inf
			j1 := -1
			for j := 1; j <= n; j++ {
				if used[j] {
					continue
				}
				cur := cost[i0-1][j-1] - u[i0] - v[j]
				if cur < minv[j] {
					minv[j] = cur
					way[j] = j0
				}
				if minv[j] < delta {
					delta = minv[j]
					j1 = j
				}
			}
			for j := 0; j <= n; j++ {
				if used[j] {
					u[p[j]] += delta
					v[j] -= delta
				} else {
					minv[j] -= delta
				}
			}
			j0 = j1
			if p[j0] == 0 {
				break
			}
		}

		for j0 != 0 {
			j1 := way[j0]
			p[j0] = p[j1]
			j0 = j1
		}
	}

	assignment = make([]int, n)
	for j := 1; j <= n; j++ {
		if p[j] != 0 {
			assignment[p[j]-1] = j - 1
		}
	}
	total = 0
	for i := 0; i < n; i++ {
		total += cost[i][assignment[i]]
	}
	return assignment, total
}

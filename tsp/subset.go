package tsp

// subset is a bitmask over the non-origin cities: bit i-1 set ⇔ city i ∈ S.
// Two subsets with the same members are the same integer.
type subset uint32

// single returns the subset {city}; city must be ≥ 1.
func single(city int) subset {
	return subset(1) << (city - 1)
}

// has reports whether city ∈ s.
func (s subset) has(city int) bool {
	return s&single(city) != 0
}

// without returns s \ {city}.
func (s subset) without(city int) subset {
	return s &^ single(city)
}

// full returns {1..k}.
func full(k int) subset {
	return subset(1)<<k - 1
}

// layer lists every subset of {1..k} with exactly size members in increasing
// numeric order, using Gosper's hack to step between equal-popcount masks.
//
// Complexity: O(C(k,size)) time and memory.
func layer(k, size int) []subset {
	if size <= 0 || size > k {
		return nil
	}
	var (
		out   = make([]subset, 0, binomial(k, size))
		limit = subset(1) << k
		x     = subset(1)<<size - 1
		c, r  subset
	)
	for x < limit {
		out = append(out, x)
		c = x & -x
		r = x + c
		x = (((r ^ x) >> 2) / c) | r
	}

	return out
}

// binomial returns C(n, k) for the small n used here.
func binomial(n, k int) int {
	if k < 0 || k > n {
		return 0
	}
	if k > n-k {
		k = n - k
	}
	var (
		res = 1
		i   int
	)
	for i = 1; i <= k; i++ {
		res = res * (n - k + i) / i
	}

	return res
}

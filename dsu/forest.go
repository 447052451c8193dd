package dsu

// Forest is a disjoint-set forest over 0..n-1.
// parent[i] == i marks a root; rank bounds the height of each root's tree.
type Forest struct {
	parent []int
	rank   []uint8
	count  int
}

var _ Tracker = (*Forest)(nil)

// NewForest returns a forest of n singleton components.
// Complexity: O(n) time and memory.
func NewForest(n int) *Forest {
	f := &Forest{
		parent: make([]int, n),
		rank:   make([]uint8, n),
		count:  n,
	}
	for i := range f.parent {
		f.parent[i] = i
	}
	return f
}

// Find returns the root of i, halving the path on the way up.
func (f *Forest) Find(i int) int {
	for f.parent[i] != i {
		// Path halving: point i at its grandparent.
		f.parent[i] = f.parent[f.parent[i]]
		i = f.parent[i]
	}
	return i
}

// Same reports whether a and b share a root.
func (f *Forest) Same(a, b int) bool {
	return f.Find(a) == f.Find(b)
}

// Union attaches the lower-rank root under the higher-rank one.
func (f *Forest) Union(a, b int) bool {
	ra, rb := f.Find(a), f.Find(b)
	if ra == rb {
		return false
	}
	switch {
	case f.rank[ra] < f.rank[rb]:
		f.parent[ra] = rb
	case f.rank[ra] > f.rank[rb]:
		f.parent[rb] = ra
	default:
		f.parent[rb] = ra
		f.rank[ra]++
	}
	f.count--
	return true
}

// Count returns the number of components.
func (f *Forest) Count() int { return f.count }

// Len returns the number of elements.
func (f *Forest) Len() int { return len(f.parent) }

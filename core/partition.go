// File: partition.go
// Role: Disjoint-set Partition over nodes 0..n-1 (path compression + union by rank).
// Invariants:
//   - Find(x) terminates and x, y are connected iff Find(x) == Find(y).
//   - Groups only merge; they never split.

package core

import (
	"fmt"
	"sort"
)

// Partition is a disjoint-set forest over nodes 0..n-1.
//
// parent[i] == i marks a root. Every rank starts at 1. Partition has no
// internal locking.
type Partition struct {
	parent []int
	rank   []int
}

// NewPartition returns n singleton groups.
//
// Errors:
//   - ErrIndexOutOfRange if n < 0.
func NewPartition(n int) (*Partition, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: partition size %d is negative", ErrIndexOutOfRange, n)
	}
	p := &Partition{parent: make([]int, n), rank: make([]int, n)}
	for i := 0; i < n; i++ {
		p.parent[i] = i
		p.rank[i] = 1
	}

	return p, nil
}

// Len returns the number of nodes.
func (p *Partition) Len() int { return len(p.parent) }

// Check returns ErrIndexOutOfRange when x is outside [0, n).
func (p *Partition) Check(x int) error {
	if x < 0 || x >= len(p.parent) {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, x, len(p.parent))
	}

	return nil
}

// Find returns the representative of x's group.
//
// Path compression is iterative: the first pass walks to the root, the
// second repoints every visited node directly at it.
//
// Complexity: amortized near O(1).
func (p *Partition) Find(x int) (int, error) {
	if err := p.Check(x); err != nil {
		return -1, err
	}

	return p.find(x), nil
}

func (p *Partition) find(x int) int {
	root := x
	for p.parent[root] != root {
		root = p.parent[root]
	}
	for p.parent[x] != root {
		next := p.parent[x]
		p.parent[x] = root
		x = next
	}

	return root
}

// Union merges the groups of x and y.
//
// It returns false without touching parent or rank when both already share
// a representative. Otherwise the lower-rank root goes under the higher-rank
// one; on a tie y's root goes under x's root and x's root gains one rank.
func (p *Partition) Union(x, y int) (bool, error) {
	if err := p.Check(x); err != nil {
		return false, err
	}
	if err := p.Check(y); err != nil {
		return false, err
	}

	return p.union(x, y), nil
}

func (p *Partition) union(x, y int) bool {
	rx, ry := p.find(x), p.find(y)
	if rx == ry {
		return false
	}
	switch {
	case p.rank[rx] > p.rank[ry]:
		p.parent[ry] = rx
	case p.rank[rx] < p.rank[ry]:
		p.parent[rx] = ry
	default:
		p.parent[ry] = rx
		p.rank[rx]++
	}

	return true
}

// Connected reports whether x and y share a group.
func (p *Partition) Connected(x, y int) (bool, error) {
	rx, err := p.Find(x)
	if err != nil {
		return false, err
	}
	ry, err := p.Find(y)
	if err != nil {
		return false, err
	}

	return rx == ry, nil
}

// Parent returns the raw parent pointer of x (no compression).
func (p *Partition) Parent(x int) (int, error) {
	if err := p.Check(x); err != nil {
		return -1, err
	}

	return p.parent[x], nil
}

// Rank returns the raw rank of x.
func (p *Partition) Rank(x int) (int, error) {
	if err := p.Check(x); err != nil {
		return 0, err
	}

	return p.rank[x], nil
}

// Groups returns the members of every group, each sorted ascending, with
// groups ordered by their smallest member.
func (p *Partition) Groups() [][]int {
	byRoot := make(map[int][]int)
	for i := range p.parent {
		r := p.find(i)
		byRoot[r] = append(byRoot[r], i)
	}
	out := make([][]int, 0, len(byRoot))
	for _, members := range byRoot {
		out = append(out, members)
	}
	sort.Slice(out, func(i, j int) bool { return out[i][0] < out[j][0] })

	return out
}

// Snapshot returns copies of the parent and rank arrays.
func (p *Partition) Snapshot() (parent, rank []int) {
	parent = append([]int(nil), p.parent...)
	rank = append([]int(nil), p.rank...)

	return parent, rank
}

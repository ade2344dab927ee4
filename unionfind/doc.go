// Package unionfind approves or denies group-join requests under pairwise
// exclusion constraints.
//
// A RestrictedUnionFind wraps a core.Partition with a fixed list of
// restrictions (a, b): the groups holding a and b must never merge, directly
// or through any chain of approved requests. Each request is checked against
// the current representatives, so a request may be denied only because of
// unions formed by earlier approvals.
//
//	decisions, err := unionfind.ProcessRequests(5,
//	    []unionfind.Pair{{0, 1}, {1, 2}, {2, 3}},
//	    []unionfind.Pair{{0, 4}, {1, 2}, {3, 1}, {3, 4}},
//	)
//	// approved, denied, approved, denied
//
// Groups only ever merge. Replaying the same stream on a fresh instance
// yields the same decisions in the same positions.
//
// The restriction scan is linear in the number of restrictions per request.
// An index keyed by representative pair would make it O(1), but would need
// rebuilding after every approval; the scan is kept for simplicity.
package unionfind

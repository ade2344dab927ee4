package unionfind

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/netfeas/core"
)

// RestrictedUnionFind is a Partition guarded by an immutable restriction
// list. Each join request is approved only when it would not put the two
// endpoints of any restriction into one group.
//
// Decisions are final: an approval changes what later requests see, but a
// later request never revisits an earlier decision. Not safe for concurrent use.
type RestrictedUnionFind struct {
	part         *core.Partition
	restrictions []Pair
	log          []Decision
	logger       *zap.Logger
}

// New returns a RestrictedUnionFind over n singleton groups.
//
// restrictions is copied; later changes to the caller's slice have no effect.
//
// Errors:
//   - ErrIndexOutOfRange if n < 0 or a restriction endpoint is outside [0, n).
func New(n int, restrictions []Pair, opts ...Option) (*RestrictedUnionFind, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	part, err := core.NewPartition(n)
	if err != nil {
		return nil, err
	}
	for i, r := range restrictions {
		if err = checkPair(part, r); err != nil {
			return nil, fmt.Errorf("restriction #%d: %w", i, err)
		}
	}

	return &RestrictedUnionFind{
		part:         part,
		restrictions: append([]Pair(nil), restrictions...),
		logger:       cfg.Logger.Named("unionfind"),
	}, nil
}

// Len returns the number of nodes.
func (u *RestrictedUnionFind) Len() int { return u.part.Len() }

// Restrictions returns a copy of the restriction list.
func (u *RestrictedUnionFind) Restrictions() []Pair {
	return append([]Pair(nil), u.restrictions...)
}

// Partition exposes the underlying partition for read-only inspection.
func (u *RestrictedUnionFind) Partition() *core.Partition { return u.part }

// Find returns the representative of x's group, compressing the path.
func (u *RestrictedUnionFind) Find(x int) (int, error) {
	return u.part.Find(x)
}

// Union merges x's and y's groups without consulting restrictions.
// It returns false, changing nothing, when they are already joined.
func (u *RestrictedUnionFind) Union(x, y int) (bool, error) {
	return u.part.Union(x, y)
}

// Request processes one join request (a, b).
//
// Steps:
//  1. Validate a and b (ErrIndexOutOfRange; nothing is logged).
//  2. ra, rb = Find(a), Find(b).
//  3. For each restriction (x, y): deny when {ra, rb} == {Find(x), Find(y)}.
//  4. Otherwise approve and Union(a, b).
//
// The decision is appended to Log. A denial leaves the partition as it was
// apart from path compression.
//
// Complexity: O(len(restrictions)) finds per request.
func (u *RestrictedUnionFind) Request(a, b int) (Decision, error) {
	if err := checkPair(u.part, Pair{A: a, B: b}); err != nil {
		return "", err
	}

	ra, _ := u.part.Find(a)
	rb, _ := u.part.Find(b)
	u.logger.Debug("processing request",
		zap.Int("a", a), zap.Int("b", b),
		zap.Int("rootA", ra), zap.Int("rootB", rb),
	)

	decision := Approved
	for _, r := range u.restrictions {
		rx, _ := u.part.Find(r.A)
		ry, _ := u.part.Find(r.B)
		if (ra == rx && rb == ry) || (ra == ry && rb == rx) {
			u.logger.Debug("restriction violated",
				zap.Int("restrictedA", r.A), zap.Int("restrictedB", r.B),
				zap.Int("rootA", rx), zap.Int("rootB", ry),
			)
			decision = Denied
			break
		}
	}
	if decision == Approved {
		_, _ = u.part.Union(a, b)
	}
	u.log = append(u.log, decision)
	u.logger.Debug("request decided", zap.Int("a", a), zap.Int("b", b), zap.String("decision", string(decision)))

	return decision, nil
}

// Log returns a copy of every decision made so far, in request order.
func (u *RestrictedUnionFind) Log() []Decision {
	return append([]Decision(nil), u.log...)
}

// ProcessRequests runs a fresh RestrictedUnionFind of n nodes over requests
// in order and returns one decision per request.
//
// Every restriction and request endpoint is validated before the first
// request is processed, so an invalid stream yields no decisions at all.
//
// Errors:
//   - ErrIndexOutOfRange for a negative n or any endpoint outside [0, n).
func ProcessRequests(n int, restrictions, requests []Pair, opts ...Option) ([]Decision, error) {
	u, err := New(n, restrictions, opts...)
	if err != nil {
		return nil, err
	}
	for i, q := range requests {
		if err = checkPair(u.part, q); err != nil {
			return nil, fmt.Errorf("request #%d: %w", i, err)
		}
	}

	out := make([]Decision, 0, len(requests))
	for _, q := range requests {
		d, err := u.Request(q.A, q.B)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}

	return out, nil
}

func checkPair(p *core.Partition, q Pair) error {
	if err := p.Check(q.A); err != nil {
		return err
	}

	return p.Check(q.B)
}

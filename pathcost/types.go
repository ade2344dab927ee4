package pathcost

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/netfeas/core"
)

// Sentinel errors returned by the resolver.
var (
	// ErrInvalidGraph is core.ErrInvalidGraph, re-exported for callers that
	// only import pathcost.
	ErrInvalidGraph = core.ErrInvalidGraph

	// ErrInfeasibleTarget indicates that the target cost cannot be reached
	// with non-negative weights (or not under the selected Strategy).
	ErrInfeasibleTarget = errors.New("pathcost: target cost is infeasible")

	// ErrBadPlaceholder indicates a placeholder weight below 1.
	ErrBadPlaceholder = errors.New("pathcost: placeholder weight must be at least 1")
)

// Strategy selects how the cost gap between the placeholder-weighted
// shortest path and the target is distributed over Unknown edges.
type Strategy int

const (
	// StrategyFirstUnknown sets every Unknown edge to the placeholder except
	// one designated edge, which absorbs the whole gap. The designated edge
	// is the first Unknown edge, in input order, for which the recomputed
	// shortest path hits the target.
	StrategyFirstUnknown Strategy = iota

	// StrategySaturate holds Unknown edges at the target cost and releases
	// them one by one in input order until the shortest path drops to the
	// target or below; the released edge then absorbs the remaining gap.
	// Finds an assignment whenever one exists.
	StrategySaturate
)

// String returns the flag spelling of s.
func (s Strategy) String() string {
	switch s {
	case StrategyFirstUnknown:
		return "first-unknown"
	case StrategySaturate:
		return "saturate"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// ParseStrategy maps a flag value back to a Strategy.
func ParseStrategy(s string) (Strategy, error) {
	switch s {
	case "first-unknown", "":
		return StrategyFirstUnknown, nil
	case "saturate":
		return StrategySaturate, nil
	default:
		return 0, fmt.Errorf("pathcost: unknown strategy %q (want first-unknown or saturate)", s)
	}
}

// Options configures a Resolver.
//
// Strategy    – gap distribution policy. Default StrategyFirstUnknown.
// Placeholder – provisional Unknown-edge cost, also the final weight of
// every Unknown edge that does not absorb the gap. Default 1.
// Logger      – receives the step-by-step narration at Debug level. Default no-op.
type Options struct {
	Strategy    Strategy
	Placeholder int64
	Logger      *zap.Logger
}

// Option represents a functional option for configuring a Resolver.
type Option func(*Options)

// WithStrategy selects the gap distribution policy.
func WithStrategy(s Strategy) Option {
	return func(o *Options) { o.Strategy = s }
}

// WithPlaceholder sets the provisional Unknown-edge cost.
// Panics with ErrBadPlaceholder when w < 1.
func WithPlaceholder(w int64) Option {
	return func(o *Options) {
		if w < 1 {
			panic(ErrBadPlaceholder.Error())
		}
		o.Placeholder = w
	}
}

// WithLogger routes resolver narration to l. A nil logger is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// DefaultOptions returns the resolver defaults.
func DefaultOptions() Options {
	return Options{
		Strategy:    StrategyFirstUnknown,
		Placeholder: 1,
		Logger:      zap.NewNop(),
	}
}

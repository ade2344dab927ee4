package unionfind

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/netfeas/core"
)

// ErrIndexOutOfRange is core.ErrIndexOutOfRange, re-exported for callers
// that only import unionfind.
var ErrIndexOutOfRange = core.ErrIndexOutOfRange

// Pair is an unordered (A, B) node pair: a restriction or a join request.
type Pair struct {
	A int
	B int
}

// Decision is the outcome of one join request.
type Decision string

const (
	// Approved means the request was accepted and the two groups merged.
	Approved Decision = "approved"

	// Denied means a restriction forbade the merge; the partition is unchanged.
	Denied Decision = "denied"
)

// Options configures a RestrictedUnionFind.
//
// Logger – receives per-request narration at Debug level. Default no-op.
type Options struct {
	Logger *zap.Logger
}

// Option represents a functional option for configuring a RestrictedUnionFind.
type Option func(*Options)

// WithLogger routes request narration to l. A nil logger is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// DefaultOptions returns the defaults.
func DefaultOptions() Options {
	return Options{Logger: zap.NewNop()}
}

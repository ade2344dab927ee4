// Package render writes resolved road networks for the netfeas command,
// either as plain "from to weight" lines or as a Graphviz DOT document.
package render

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/dominikbraun/graph"
	"github.com/dominikbraun/graph/draw"

	"github.com/katalvlaran/netfeas/core"
)

// ErrUnknownFormat is returned by ParseFormat for an unsupported name.
var ErrUnknownFormat = errors.New("render: unknown format")

// Format is an output format for road listings.
type Format string

const (
	FormatText Format = "text"
	FormatDOT  Format = "dot"
)

// String returns the string representation of the format
func (f Format) String() string {
	return string(f)
}

// ParseFormat maps a flag value to a Format. The empty string is text.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatText, "":
		return FormatText, nil
	case FormatDOT:
		return FormatDOT, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// Write renders the n-node network described by specs to w in format f.
func Write(w io.Writer, f Format, n int, specs []core.EdgeSpec) error {
	switch f {
	case FormatText, "":
		return Text(w, specs)
	case FormatDOT:
		return DOT(w, n, specs)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, string(f))
	}
}

// Text writes one "from to weight" line per road in input order. Roads
// still under construction print "?" as their weight.
func Text(w io.Writer, specs []core.EdgeSpec) error {
	for _, s := range specs {
		if _, err := fmt.Fprintf(w, "%d %d %s\n", s.From, s.To, weightLabel(s)); err != nil {
			return err
		}
	}

	return nil
}

// DOT writes the network as an undirected, weighted Graphviz graph. Every
// node in [0, n) is emitted, including isolated ones. Unknown roads are
// drawn dashed.
func DOT(w io.Writer, n int, specs []core.EdgeSpec) error {
	g := graph.New(graph.IntHash, graph.Weighted())
	for v := 0; v < n; v++ {
		if err := g.AddVertex(v); err != nil {
			return err
		}
	}

	for i, s := range specs {
		opts := []func(*graph.EdgeProperties){
			graph.EdgeAttribute("label", weightLabel(s)),
		}
		if s.IsUnknown() {
			opts = append(opts, graph.EdgeAttribute("style", "dashed"))
		} else {
			opts = append(opts, graph.EdgeWeight(int(s.Weight)))
		}
		if err := g.AddEdge(s.From, s.To, opts...); err != nil {
			return fmt.Errorf("road #%d: %w", i, err)
		}
	}

	return draw.DOT(g, w)
}

func weightLabel(s core.EdgeSpec) string {
	if s.IsUnknown() {
		return "?"
	}

	return strconv.FormatInt(s.Weight, 10)
}

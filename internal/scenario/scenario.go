// Package scenario reads the YAML documents the netfeas command works on:
// road networks for the path-cost resolver and friend-request streams for
// the restricted union-find.
package scenario

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/netfeas/core"
	"github.com/katalvlaran/netfeas/unionfind"
)

// ErrInvalidScenario indicates a document that cannot be decoded or has the
// wrong shape. Semantic checks (ranges, duplicates) are left to the core.
var ErrInvalidScenario = errors.New("scenario: invalid document")

// Road is one undirected road. A missing or null weight, or -1, marks the
// road as under construction.
type Road struct {
	From   int    `yaml:"from"`
	To     int    `yaml:"to"`
	Weight *int64 `yaml:"weight,omitempty"`
}

// RoadNetwork is a road-network document.
type RoadNetwork struct {
	Nodes       int    `yaml:"nodes"`
	Source      int    `yaml:"source"`
	Destination int    `yaml:"destination"`
	Target      int64  `yaml:"target"`
	Roads       []Road `yaml:"roads"`
}

// Specs converts the roads to core edge specs, in document order.
func (n *RoadNetwork) Specs() []core.EdgeSpec {
	out := make([]core.EdgeSpec, len(n.Roads))
	for i, r := range n.Roads {
		w := core.Unknown
		if r.Weight != nil {
			w = *r.Weight
		}
		out[i] = core.EdgeSpec{From: r.From, To: r.To, Weight: w}
	}

	return out
}

// FriendRequests is a friend-request document. Each restriction and
// request is a two-element list of house indices.
type FriendRequests struct {
	Houses       int     `yaml:"houses"`
	Restrictions [][]int `yaml:"restrictions"`
	Requests     [][]int `yaml:"requests"`
}

// RestrictionPairs returns the restrictions as union-find pairs.
func (f *FriendRequests) RestrictionPairs() []unionfind.Pair { return toPairs(f.Restrictions) }

// RequestPairs returns the requests as union-find pairs.
func (f *FriendRequests) RequestPairs() []unionfind.Pair { return toPairs(f.Requests) }

// LoadRoadNetwork decodes a road-network document from r.
func LoadRoadNetwork(r io.Reader) (*RoadNetwork, error) {
	var doc RoadNetwork
	if err := decode(r, &doc); err != nil {
		return nil, err
	}

	return &doc, nil
}

// LoadFriendRequests decodes a friend-request document from r.
func LoadFriendRequests(r io.Reader) (*FriendRequests, error) {
	var doc FriendRequests
	if err := decode(r, &doc); err != nil {
		return nil, err
	}
	if err := checkPairs("restriction", doc.Restrictions); err != nil {
		return nil, err
	}
	if err := checkPairs("request", doc.Requests); err != nil {
		return nil, err
	}

	return &doc, nil
}

// ReadRoadNetworkFile opens path and decodes it with LoadRoadNetwork.
func ReadRoadNetworkFile(path string) (*RoadNetwork, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	doc, err := LoadRoadNetwork(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return doc, nil
}

// ReadFriendRequestsFile opens path and decodes it with LoadFriendRequests.
func ReadFriendRequestsFile(path string) (*FriendRequests, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	doc, err := LoadFriendRequests(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return doc, nil
}

func decode(r io.Reader, out interface{}) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(out); err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("%w: empty document", ErrInvalidScenario)
		}

		return fmt.Errorf("%w: %v", ErrInvalidScenario, err)
	}

	return nil
}

func checkPairs(kind string, pairs [][]int) error {
	for i, p := range pairs {
		if len(p) != 2 {
			return fmt.Errorf("%w: %s #%d has %d elements, want 2", ErrInvalidScenario, kind, i, len(p))
		}
	}

	return nil
}

func toPairs(pairs [][]int) []unionfind.Pair {
	out := make([]unionfind.Pair, len(pairs))
	for i, p := range pairs {
		out[i] = unionfind.Pair{A: p[0], B: p[1]}
	}

	return out
}

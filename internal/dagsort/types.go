// Package dagsort provides cycle detection and topological sort over a
// graphcore.Graph, the two DAG operations curriculum and pert need: is this
// prerequisite graph acyclic, and if so, in what order can its courses be
// taken.
package dagsort

import "errors"

// Vertex visitation state used by both DetectCycle and TopologicalSort.
const (
	White = iota // not yet visited
	Gray         // on the current DFS path
	Black        // fully explored
)

var (
	// ErrGraphNil is returned when a nil *graphcore.Graph is passed to
	// TopologicalSort. DetectCycle treats a nil graph as cycle-free instead.
	ErrGraphNil = errors.New("dagsort: graph is nil")

	// ErrCycleDetected is returned by TopologicalSort when the graph is
	// not a DAG.
	ErrCycleDetected = errors.New("dagsort: cycle detected")
)

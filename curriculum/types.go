// Package curriculum assembles the Master Map into an immutable Course
// catalog plus its prerequisite DAG (C3): resolving malla_id prerequisite
// references to name keys, dropping references that do not resolve, and
// rejecting cyclic curricula.
package curriculum

import (
	"errors"

	"github.com/mallaplan/planner/internal/graphcore"
)

// ErrCyclicCurriculum is returned when the prerequisite graph contains a
// cycle — a fatal input error (spec.md §4.3, §7).
var ErrCyclicCurriculum = errors.New("curriculum: cyclic prerequisite graph")

// Warning is a non-fatal diagnostic accumulated while assembling the
// catalog, surfaced in the response's diagnostics.warnings.
type Warning struct {
	Kind    string // "DanglingPrerequisite"
	Message string
}

// Course is the final, immutable catalog entry (spec.md §3's Course).
//
// Invariant: NameKey is unique across the catalog; either CodeOffering or
// CodeDifficulty should be present (not enforced here — a course with
// neither is still useful if it has sections or a difficulty rating
// attached by a later revision of either table; callers may warn on it).
type Course struct {
	NameKey string
	Name    string

	MallaID  *int
	Semester *int // nil: elective, not tied to a recommended term

	CodeOffering   string
	CodeDifficulty string

	Difficulty *float64 // approval percentage in [0,100]; nil if unknown
	IsElective bool

	PrerequisiteNameKeys []string // resolved, deduplicated, sorted
	OutDegree            int      // size of transitive closure this course unlocks
}

// Catalog is the assembled, queryable set of Courses plus the prerequisite
// DAG they were assembled from (exposed for C4's PERT engine).
type Catalog struct {
	courses map[string]*Course
	order   []string // NameKeys in ascending order, for deterministic iteration
	graph   *graphcore.Graph
}

// Graph returns the prerequisite DAG the catalog was assembled from, vertex
// IDs are NameKeys and edge u->v means u must be approved before v. C4's
// PERT engine consumes this directly instead of rebuilding it from
// PrerequisiteNameKeys.
func (c *Catalog) Graph() *graphcore.Graph { return c.graph }

// Course looks up a catalog entry by name key.
func (c *Catalog) Course(key string) (*Course, bool) {
	course, ok := c.courses[key]
	return course, ok
}

// Courses returns all catalog entries in ascending NameKey order.
func (c *Catalog) Courses() []*Course {
	out := make([]*Course, 0, len(c.order))
	for _, k := range c.order {
		out = append(out, c.courses[k])
	}
	return out
}

// Len returns the number of courses in the catalog.
func (c *Catalog) Len() int { return len(c.order) }

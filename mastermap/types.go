// Package mastermap implements the three-way merge identity resolver (C2):
// it unifies curriculum, offering, and difficulty rows into one dictionary
// keyed by normalize.Key(name), because catalog codes drift between
// academic years while the normalized name does not.
//
// The merge is a left-outer join that only ever accumulates information: a
// later row enriches an existing entry but never overwrites a non-empty
// value with an empty one (spec.md §9, "Cross-year code drift").
package mastermap

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrDuplicateName is returned when two rows in the same source normalize
// to the same key but carry different, non-empty codes — a genuine name
// collision between two distinct courses, which is a fatal input error.
var ErrDuplicateName = errors.New("mastermap: duplicate name")

// CourseSkeleton is one entry of the Master Map: the accumulated, partial
// view of a course after merging whichever of the three sources have
// mentioned it so far. curriculum.Assemble resolves this into the final,
// immutable Course catalog entry.
type CourseSkeleton struct {
	NameKey string
	Name    string // first non-empty display name seen, any source

	MallaID         *int
	Semester        *int
	PrerequisiteIDs []int // malla_ids of prerequisites, resolved later by curriculum

	CodeOffering   string
	CodeDifficulty string

	Difficulty *float64 // approval percentage, [0,100]
	IsElective bool
}

// MasterMap is the merged dictionary plus its secondary indices.
//
// Invariants: no key maps to two distinct CourseSkeletons (By construction,
// byKey has a single entry per key); the resolver is deterministic under any
// row order within each source (row order only affects which row's codes.
// are merged first, and merging is commutative for empty-vs-non-empty
// fields — see mergeNonEmpty).
type MasterMap struct {
	byKey map[string]*CourseSkeleton

	byCodeOffering   map[string]string // code_offering -> key
	byCodeDifficulty map[string]string // code_difficulty -> key
	byMallaID        map[int]string    // malla_id -> key
}

// Lookup resolves a course reference by name key, offering code, difficulty
// code, or malla id, in that order, returning the matched skeleton or nil.
func (m *MasterMap) Lookup(ref string) *CourseSkeleton {
	if s, ok := m.byKey[ref]; ok {
		return s
	}
	if k, ok := m.byCodeOffering[ref]; ok {
		return m.byKey[k]
	}
	if k, ok := m.byCodeDifficulty[ref]; ok {
		return m.byKey[k]
	}
	if id, err := strconv.Atoi(ref); err == nil {
		if s, ok := m.ByMallaID(id); ok {
			return s
		}
	}
	return nil
}

// ByMallaID resolves a course by its curriculum id, used by curriculum.Assemble
// to turn prerequisite malla_ids into name keys.
func (m *MasterMap) ByMallaID(id int) (*CourseSkeleton, bool) {
	k, ok := m.byMallaID[id]
	if !ok {
		return nil, false
	}
	s, ok := m.byKey[k]
	return s, ok
}

// Skeletons returns all merged entries, in no particular order; callers
// needing determinism must sort by NameKey themselves (curriculum.Assemble
// does).
func (m *MasterMap) Skeletons() []*CourseSkeleton {
	out := make([]*CourseSkeleton, 0, len(m.byKey))
	for _, s := range m.byKey {
		out = append(out, s)
	}
	return out
}

func duplicateNameErr(key, source string) error {
	return fmt.Errorf("%w: key %q appears more than once in %s with conflicting codes", ErrDuplicateName, key, source)
}

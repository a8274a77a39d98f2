package mastermap

import (
	"github.com/mallaplan/planner/normalize"
	"github.com/mallaplan/planner/rowmodel"
)

// Build merges difficulty, offering, and curriculum rows into a MasterMap,
// in that fixed order (spec.md §4.2's 3-step merge: D, then O, then M).
// Each step is linear in its input; total cost is O(|D|+|O|+|M|).
//
// Returns ErrDuplicateName if two rows within a single source normalize to
// the same key but disagree on a non-empty code — a genuine identity
// collision rather than a second mention of the same course.
func Build(difficulty []rowmodel.DifficultyRow, offering []rowmodel.OfferingRow, curriculum []rowmodel.CurriculumRow) (*MasterMap, error) {
	m := &MasterMap{
		byKey:            make(map[string]*CourseSkeleton),
		byCodeOffering:   make(map[string]string),
		byCodeDifficulty: make(map[string]string),
		byMallaID:        make(map[int]string),
	}

	seenDifficultyCode := make(map[string]string) // key -> code seen so far
	for _, row := range difficulty {
		k := normalize.Key(row.Name)
		if prev, ok := seenDifficultyCode[k]; ok && prev != "" && row.Code != "" && prev != row.Code {
			return nil, duplicateNameErr(k, "difficulty table")
		}
		if row.Code != "" {
			seenDifficultyCode[k] = row.Code
		}

		s := m.get(k, row.Name)
		s.CodeDifficulty = mergeNonEmpty(s.CodeDifficulty, row.Code)
		pct, err := rowmodel.ParseApprovalPercent(row.ApprovalPercent)
		if err == nil {
			s.Difficulty = &pct
		}
		s.IsElective = s.IsElective || row.IsElective
		m.byCodeDifficulty[row.Code] = k
	}

	seenOfferingCode := make(map[string]string)
	for _, row := range offering {
		k := normalize.Key(row.Name)
		if prev, ok := seenOfferingCode[k]; ok && prev != "" && row.Code != "" && prev != row.Code {
			return nil, duplicateNameErr(k, "offering table")
		}
		if row.Code != "" {
			seenOfferingCode[k] = row.Code
		}

		s := m.get(k, row.Name)
		// Never overwrite an existing value with an empty one.
		s.CodeOffering = mergeNonEmpty(s.CodeOffering, row.Code)
		m.byCodeOffering[row.Code] = k
	}

	seenMallaID := make(map[string]int)
	for _, row := range curriculum {
		k := normalize.Key(row.Name)
		if prev, ok := seenMallaID[k]; ok && prev != row.MallaID {
			return nil, duplicateNameErr(k, "curriculum table")
		}
		seenMallaID[k] = row.MallaID

		s := m.get(k, row.Name)
		id := row.MallaID
		s.MallaID = &id
		s.Semester = row.Semester
		s.PrerequisiteIDs = row.PrerequisiteIDs
		m.byMallaID[row.MallaID] = k
	}

	return m, nil
}

// get returns the existing skeleton for k or creates a new one, recording
// name as its display name if none is set yet.
func (m *MasterMap) get(k, name string) *CourseSkeleton {
	s, ok := m.byKey[k]
	if !ok {
		s = &CourseSkeleton{NameKey: k}
		m.byKey[k] = s
	}
	if s.Name == "" {
		s.Name = name
	}
	return s
}

// mergeNonEmpty returns incoming if existing is empty, otherwise existing:
// information only accumulates, it is never overwritten with null/empty.
func mergeNonEmpty(existing, incoming string) string {
	if existing != "" {
		return existing
	}
	return incoming
}

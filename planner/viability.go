package planner

import (
	"github.com/mallaplan/planner/curriculum"
	"github.com/mallaplan/planner/normalize"
	"github.com/mallaplan/planner/section"
)

// resolveKeys normalizes each raw reference (a code or display name) and
// resolves it against the catalog, returning the matched NameKeys and the
// references that matched nothing (for the UnresolvedCourseReference
// warning).
func resolveKeys(cat *curriculum.Catalog, refs []string) (keys map[string]bool, unresolved []string) {
	keys = make(map[string]bool, len(refs))
	byCode := make(map[string]string, cat.Len())
	for _, c := range cat.Courses() {
		if c.CodeOffering != "" {
			byCode[normalize.Key(c.CodeOffering)] = c.NameKey
		}
		if c.CodeDifficulty != "" {
			byCode[normalize.Key(c.CodeDifficulty)] = c.NameKey
		}
	}

	for _, ref := range refs {
		if ref == "" {
			continue
		}
		k := normalize.Key(ref)
		if _, ok := cat.Course(k); ok {
			keys[k] = true
			continue
		}
		if mapped, ok := byCode[k]; ok {
			keys[mapped] = true
			continue
		}
		unresolved = append(unresolved, ref)
	}

	return keys, unresolved
}

// isApproved reports whether key or any of its catalog codes appears in
// approved (spec.md §4.5, after normalization on both sides — normalization
// already happened in resolveKeys, so this is a direct set membership
// check).
func isApproved(approved map[string]bool, key string) bool {
	return approved[key]
}

// filterViable returns the sections belonging to courses not in approved
// (C5). Prerequisite satisfaction is deliberately not checked here — see
// DESIGN.md's open-question decision on same-term prerequisite eligibility.
func filterViable(sections []*section.Section, approved map[string]bool) []*section.Section {
	var out []*section.Section
	for _, s := range sections {
		if !isApproved(approved, s.NameKey) {
			out = append(out, s)
		}
	}
	return out
}

package planner

import (
	"github.com/mallaplan/planner/curriculum"
	"github.com/mallaplan/planner/pert"
)

// Priority weights (spec.md §3's "Priority score"). Not named numerically
// in the distilled spec; chosen so that criticality and unlock bonuses
// meaningfully outweigh a one-semester difference in term proximity
// without letting a single highly-connected elective dominate a student's
// whole ranking.
const (
	termProximityWeight = 10
	criticalityBonus    = 50
	unlockWeight        = 5
	priorityOverride    = 200
)

// priorityScore computes spec.md §3's per-course integer priority: base
// term proximity (earlier recommended semester scores higher), a
// criticality bonus for courses on the critical path, an unlock bonus
// proportional to transitive out-degree, and a large override when the
// caller explicitly prioritized the course.
func priorityScore(c *curriculum.Course, node *pert.Node, maxSemester int, prioritized bool) int {
	score := 0

	switch {
	case c.Semester != nil:
		score += (maxSemester - *c.Semester + 1) * termProximityWeight
	default:
		// Electives have no fixed term; treat as lowest proximity tier.
	}

	if node != nil {
		if node.Critical {
			score += criticalityBonus
		}
		score += node.OutDegree * unlockWeight
	}

	if prioritized {
		score += priorityOverride
	}

	return score
}

// maxSemesterOf returns the highest recommended semester among the given
// courses, or 0 if none have one (all electives).
func maxSemesterOf(courses []*curriculum.Course) int {
	max := 0
	for _, c := range courses {
		if c.Semester != nil && *c.Semester > max {
			max = *c.Semester
		}
	}
	return max
}

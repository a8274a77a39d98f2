package clique

import "time"

// Config bounds the clique selector's search, per spec.md §4.7/§5.
type Config struct {
	Seeds            int           // number of greedy seed starts
	KTotal           int           // max distinct schedules retained
	KMin             int           // diversity threshold triggering exhaustive completion
	ExhaustiveBudget int           // max node expansions during exhaustive completion
	CancelEvery      int           // check ctx.Done() every N iterations/expansions
	MaxCourses       int           // max sections per schedule
	TimeBudget       time.Duration // soft wall-clock budget; 0 disables
}

// DefaultConfig returns the bounds named in spec.md §4.7: SEEDS=80,
// K_TOTAL=80, K_MIN=15, a 5000-iteration exhaustive-completion budget, a
// 256-iteration cancellation-check interval, and a 500ms soft time budget.
// MaxCourses is not named by the distilled spec; 8 is a typical full-time
// course load per term and bounds schedule size without over-constraining
// smaller curricula.
func DefaultConfig() Config {
	return Config{
		Seeds:            80,
		KTotal:           80,
		KMin:             15,
		ExhaustiveBudget: 5000,
		CancelEvery:      256,
		MaxCourses:       8,
		TimeBudget:       500 * time.Millisecond,
	}
}

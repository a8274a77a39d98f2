package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mallaplan/planner/filter"
	"github.com/mallaplan/planner/planner"
	"github.com/mallaplan/planner/rowmodel"
)

var (
	curriculumPath string
	offeringPath   string
	difficultyPath string
	requestPath    string
)

// planRequestFile is the on-disk shape of --request: spec.md §6.2 fields
// with filters left unset (the CLI entry point is for reproducing a plan
// call against fixtures, not for exercising the full filter surface — use
// the HTTP binding for that).
type planRequestFile struct {
	ApprovedCourseKeys []string `json:"approved_course_keys"`
	PriorityCourseKeys []string `json:"priority_course_keys"`
	PreferredTimes     []string `json:"preferred_times"`
	MallaID            string   `json:"malla_id"`
}

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "run one planning pass against local CSV fixtures and print the response",
	RunE: func(cmd *cobra.Command, args []string) error {
		curriculum, err := rowmodel.LoadCurriculumCSV(curriculumPath)
		if err != nil {
			return fmt.Errorf("loading curriculum: %w", err)
		}
		offering, err := rowmodel.LoadOfferingCSV(offeringPath)
		if err != nil {
			return fmt.Errorf("loading offering: %w", err)
		}
		difficulty, err := rowmodel.LoadDifficultyCSV(difficultyPath)
		if err != nil {
			return fmt.Errorf("loading difficulty: %w", err)
		}

		reqData, err := os.ReadFile(requestPath)
		if err != nil {
			return fmt.Errorf("reading request file: %w", err)
		}
		var reqFile planRequestFile
		if err := json.Unmarshal(reqData, &reqFile); err != nil {
			return fmt.Errorf("parsing request file: %w", err)
		}

		req := planner.Request{
			ApprovedCourseKeys: reqFile.ApprovedCourseKeys,
			PriorityCourseKeys: reqFile.PriorityCourseKeys,
			PreferredTimes:     reqFile.PreferredTimes,
			MallaID:            reqFile.MallaID,
			Filters:            filter.Filters{},
		}

		resp, err := planner.Plan(context.Background(), planner.Rows{
			Curriculum: curriculum,
			Offering:   offering,
			Difficulty: difficulty,
		}, req)
		if err != nil {
			if perr, ok := err.(*planner.Error); ok {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(perr)
			}
			return err
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(resp)
	},
}

func init() {
	planCmd.Flags().StringVar(&curriculumPath, "curriculum", "", "path to curriculum CSV")
	planCmd.Flags().StringVar(&offeringPath, "offering", "", "path to offering CSV")
	planCmd.Flags().StringVar(&difficultyPath, "difficulty", "", "path to difficulty CSV")
	planCmd.Flags().StringVar(&requestPath, "request", "", "path to request JSON")
	_ = planCmd.MarkFlagRequired("curriculum")
	_ = planCmd.MarkFlagRequired("offering")
	_ = planCmd.MarkFlagRequired("difficulty")
	_ = planCmd.MarkFlagRequired("request")
}

package rowmodel

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// LoadCurriculumCSV reads a curriculum ("malla") CSV with header
// malla_id,name,semester,prerequisite_ids,is_critical_hint, where
// prerequisite_ids is a "|"-separated list of ints and semester may be
// empty (elective, no fixed term).
func LoadCurriculumCSV(path string) ([]CurriculumRow, error) {
	records, err := readCSV(path)
	if err != nil {
		return nil, err
	}

	var out []CurriculumRow
	for i, record := range records {
		if i == 0 || len(record) == 0 {
			continue
		}
		if len(record) < 4 {
			return nil, fmt.Errorf("rowmodel: curriculum row %d has too few fields", i)
		}

		mallaID, err := strconv.Atoi(record[0])
		if err != nil {
			return nil, fmt.Errorf("rowmodel: curriculum row %d: bad malla_id: %w", i, err)
		}

		var semester *int
		if s := strings.TrimSpace(record[2]); s != "" {
			v, err := strconv.Atoi(s)
			if err != nil {
				return nil, fmt.Errorf("rowmodel: curriculum row %d: bad semester: %w", i, err)
			}
			semester = &v
		}

		var prereqs []int
		for _, tok := range strings.Split(record[3], "|") {
			tok = strings.TrimSpace(tok)
			if tok == "" {
				continue
			}
			v, err := strconv.Atoi(tok)
			if err != nil {
				return nil, fmt.Errorf("rowmodel: curriculum row %d: bad prerequisite id %q: %w", i, tok, err)
			}
			prereqs = append(prereqs, v)
		}

		row := CurriculumRow{
			MallaID:         mallaID,
			Name:            record[1],
			Semester:        semester,
			PrerequisiteIDs: prereqs,
		}
		if len(record) > 4 {
			row.IsCriticalHint = strings.EqualFold(strings.TrimSpace(record[4]), "true")
		}
		out = append(out, row)
	}
	return out, nil
}

// LoadOfferingCSV reads an offering CSV with header
// code,name,section_label,meetings,instructor,raw_code.
func LoadOfferingCSV(path string) ([]OfferingRow, error) {
	records, err := readCSV(path)
	if err != nil {
		return nil, err
	}

	var out []OfferingRow
	for i, record := range records {
		if i == 0 || len(record) == 0 {
			continue
		}
		if len(record) < 5 {
			return nil, fmt.Errorf("rowmodel: offering row %d has too few fields", i)
		}
		row := OfferingRow{
			Code:         record[0],
			Name:         record[1],
			SectionLabel: record[2],
			Meetings:     record[3],
			Instructor:   record[4],
		}
		if len(record) > 5 {
			row.RawCode = record[5]
		}
		out = append(out, row)
	}
	return out, nil
}

// LoadDifficultyCSV reads a difficulty CSV with header
// code,name,approval_percent,is_elective.
func LoadDifficultyCSV(path string) ([]DifficultyRow, error) {
	records, err := readCSV(path)
	if err != nil {
		return nil, err
	}

	var out []DifficultyRow
	for i, record := range records {
		if i == 0 || len(record) == 0 {
			continue
		}
		if len(record) < 3 {
			return nil, fmt.Errorf("rowmodel: difficulty row %d has too few fields", i)
		}
		row := DifficultyRow{
			Code:            record[0],
			Name:            record[1],
			ApprovalPercent: record[2],
		}
		if len(record) > 3 {
			row.IsElective = strings.EqualFold(strings.TrimSpace(record[3]), "true")
		}
		out = append(out, row)
	}
	return out, nil
}

func readCSV(path string) ([][]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	return reader.ReadAll()
}

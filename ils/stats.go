package ils

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// StatRecord is one outer-iteration datum: the incumbent's cost/feasibility
// at the start of the iteration ("current"), the perturbed-and-reoptimised
// candidate's, the incumbent's after this iteration's accept step ("best"),
// and elapsed wall-clock time.
type StatRecord struct {
	CurrentCost       int64
	CurrentFeasible   bool
	CandidateCost     int64
	CandidateFeasible bool
	BestCost          int64
	BestFeasible      bool
	RuntimeSeconds    float64
}

var statHeader = []string{
	"current_cost", "current_feas", "candidate_cost", "candidate_feas",
	"best_cost", "best_feas", "runtime_seconds",
}

// WriteCSV serialises records as a header row followed by one row per
// record, using comma as the field delimiter.
func WriteCSV(w io.Writer, records []StatRecord, comma rune) error {
	cw := csv.NewWriter(w)
	cw.Comma = comma
	if err := cw.Write(statHeader); err != nil {
		return fmt.Errorf("ils: write csv header: %w", err)
	}
	for _, r := range records {
		row := []string{
			strconv.FormatInt(r.CurrentCost, 10),
			strconv.FormatBool(r.CurrentFeasible),
			strconv.FormatInt(r.CandidateCost, 10),
			strconv.FormatBool(r.CandidateFeasible),
			strconv.FormatInt(r.BestCost, 10),
			strconv.FormatBool(r.BestFeasible),
			strconv.FormatFloat(r.RuntimeSeconds, 'g', -1, 64),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("ils: write csv row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// ReadCSV parses the format WriteCSV produces, inverse to it: ReadCSV(buf
// populated by WriteCSV(..., records, comma)) reproduces records exactly.
func ReadCSV(r io.Reader, comma rune) ([]StatRecord, error) {
	cr := csv.NewReader(r)
	cr.Comma = comma
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("ils: read csv: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	records := make([]StatRecord, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if len(row) != len(statHeader) {
			return nil, fmt.Errorf("ils: csv row has %d fields, want %d", len(row), len(statHeader))
		}
		rec, err := parseStatRow(row)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}

func parseStatRow(row []string) (StatRecord, error) {
	currentCost, err := strconv.ParseInt(row[0], 10, 64)
	if err != nil {
		return StatRecord{}, fmt.Errorf("ils: parse current_cost: %w", err)
	}
	currentFeas, err := strconv.ParseBool(row[1])
	if err != nil {
		return StatRecord{}, fmt.Errorf("ils: parse current_feas: %w", err)
	}
	candidateCost, err := strconv.ParseInt(row[2], 10, 64)
	if err != nil {
		return StatRecord{}, fmt.Errorf("ils: parse candidate_cost: %w", err)
	}
	candidateFeas, err := strconv.ParseBool(row[3])
	if err != nil {
		return StatRecord{}, fmt.Errorf("ils: parse candidate_feas: %w", err)
	}
	bestCost, err := strconv.ParseInt(row[4], 10, 64)
	if err != nil {
		return StatRecord{}, fmt.Errorf("ils: parse best_cost: %w", err)
	}
	bestFeas, err := strconv.ParseBool(row[5])
	if err != nil {
		return StatRecord{}, fmt.Errorf("ils: parse best_feas: %w", err)
	}
	runtimeSeconds, err := strconv.ParseFloat(row[6], 64)
	if err != nil {
		return StatRecord{}, fmt.Errorf("ils: parse runtime_seconds: %w", err)
	}
	return StatRecord{
		CurrentCost: currentCost, CurrentFeasible: currentFeas,
		CandidateCost: candidateCost, CandidateFeasible: candidateFeas,
		BestCost: bestCost, BestFeasible: bestFeas,
		RuntimeSeconds: runtimeSeconds,
	}, nil
}

package requests

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// LoadJobs reads "id,arrival,burst" rows. A first row whose arrival column is
// not a number is treated as a header.
func LoadJobs(r io.Reader) ([]Job, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.Comment = '#'
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading CSV: %w", err)
	}

	jobs := make([]Job, 0, len(rows))
	for i, row := range rows {
		if len(row) < 3 {
			return nil, fmt.Errorf("line %d: expected 3 columns, got %d", i+1, len(row))
		}
		arrival, err := strconv.Atoi(strings.TrimSpace(row[1]))
		if err != nil {
			if i == 0 {
				continue // header
			}
			return nil, fmt.Errorf("line %d: arrival time: %w", i+1, err)
		}
		burst, err := strconv.Atoi(strings.TrimSpace(row[2]))
		if err != nil {
			return nil, fmt.Errorf("line %d: burst time: %w", i+1, err)
		}
		jobs = append(jobs, Job{
			ProcessId:   strings.TrimSpace(row[0]),
			ArrivalTime: arrival,
			BurstTime:   burst,
		})
	}
	return jobs, nil
}

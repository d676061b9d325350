package linebench

import "fmt"

// Row contains all six formula outputs at one integer WIP level.
type Row struct {
	WIP              int     // WIP level w, 1-based
	THBest           float64 // Best-case throughput
	THWorst          float64 // Worst-case throughput (same in every row)
	THPracticalWorst float64 // Practical-worst-case throughput
	CTBest           float64 // Best-case cycle time
	CTWorst          float64 // Worst-case cycle time
	CTPracticalWorst float64 // Practical-worst-case cycle time
}

// Sweep evaluates all six formulas at every integer WIP level from 1 to
// maxWIP inclusive and returns one Row per level, ascending and contiguous.
//
// Downstream consumers (charts, tables) rely on the contiguous 1..maxWIP
// WIP axis. Rows are recomputed on every call; each evaluation is O(1)
// arithmetic, the sweep is O(maxWIP).
//
// Fails with ErrInvalidParameter if maxWIP < 1.
func Sweep(line Line, maxWIP int) ([]Row, error) {
	if maxWIP < 1 {
		return nil, fmt.Errorf("max WIP must be at least 1, got %d: %w",
			maxWIP, ErrInvalidParameter)
	}

	thWorst := line.ThroughputWorst()

	rows := make([]Row, 0, maxWIP)
	for w := 1; w <= maxWIP; w++ {
		wf := float64(w)
		rows = append(rows, Row{
			WIP:              w,
			THBest:           line.throughputBest(wf),
			THWorst:          thWorst,
			THPracticalWorst: line.throughputPracticalWorst(wf),
			CTBest:           line.cycleTimeBest(wf),
			CTWorst:          line.cycleTimeWorst(wf),
			CTPracticalWorst: line.cycleTimePracticalWorst(wf),
		})
	}

	return rows, nil
}

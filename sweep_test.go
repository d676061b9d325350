package linebench

import (
	"errors"
	"testing"
)

// TestSweep_RowCountAndContiguity verifies the sweep returns exactly
// maxWIP rows with WIP levels 1, 2, ..., maxWIP in order.
func TestSweep_RowCountAndContiguity(t *testing.T) {
	line, err := NewLine(0.5, 10, "")
	if err != nil {
		t.Fatalf("NewLine failed: %v", err)
	}

	for _, maxWIP := range []int{1, 2, 12, 100} {
		rows, err := Sweep(line, maxWIP)
		if err != nil {
			t.Fatalf("Sweep(maxWIP=%d) failed: %v", maxWIP, err)
		}

		if len(rows) != maxWIP {
			t.Fatalf("Sweep(maxWIP=%d) returned %d rows", maxWIP, len(rows))
		}
		for i, row := range rows {
			if row.WIP != i+1 {
				t.Errorf("rows[%d].WIP = %d, want %d (axis must be contiguous)", i, row.WIP, i+1)
			}
		}

		t.Logf("✓ maxWIP=%d: %d contiguous rows", maxWIP, len(rows))
	}
}

// TestSweep_RejectsNonPositiveMaxWIP verifies the domain check.
func TestSweep_RejectsNonPositiveMaxWIP(t *testing.T) {
	line, err := NewLine(0.5, 10, "")
	if err != nil {
		t.Fatalf("NewLine failed: %v", err)
	}

	for _, maxWIP := range []int{0, -1, -20} {
		rows, err := Sweep(line, maxWIP)
		if !errors.Is(err, ErrInvalidParameter) {
			t.Errorf("Sweep(maxWIP=%d): want ErrInvalidParameter, got %v", maxWIP, err)
		}
		if rows != nil {
			t.Errorf("Sweep(maxWIP=%d): want nil rows on failure", maxWIP)
		}

		t.Logf("✓ Correctly rejected maxWIP=%d", maxWIP)
	}
}

// TestSweep_WorstThroughputConstant verifies TH_worst is identical in
// every row, as the closed form promises.
func TestSweep_WorstThroughputConstant(t *testing.T) {
	line, err := NewLine(0.5, 10, "")
	if err != nil {
		t.Fatalf("NewLine failed: %v", err)
	}

	rows, err := Sweep(line, 50)
	if err != nil {
		t.Fatalf("Sweep failed: %v", err)
	}

	want := line.ThroughputWorst()
	for _, row := range rows {
		if row.THWorst != want {
			t.Errorf("rows[%d].THWorst = %g, want constant %g", row.WIP-1, row.THWorst, want)
		}
	}

	t.Logf("✓ TH_worst constant at 1/T_0 = %g across %d rows", want, len(rows))
}

// TestSweep_MatchesFormulaMethods verifies each row agrees with the
// exported formula methods evaluated at the same WIP level.
func TestSweep_MatchesFormulaMethods(t *testing.T) {
	line, err := NewLine(0.5, 8, "Penny Fab One")
	if err != nil {
		t.Fatalf("NewLine failed: %v", err)
	}

	rows, err := Sweep(line, 12)
	if err != nil {
		t.Fatalf("Sweep failed: %v", err)
	}

	for _, row := range rows {
		w := float64(row.WIP)

		checks := []struct {
			name string
			got  float64
			want func(float64) (float64, error)
		}{
			{"THBest", row.THBest, line.ThroughputBest},
			{"THPracticalWorst", row.THPracticalWorst, line.ThroughputPracticalWorst},
			{"CTBest", row.CTBest, line.CycleTimeBest},
			{"CTWorst", row.CTWorst, line.CycleTimeWorst},
			{"CTPracticalWorst", row.CTPracticalWorst, line.CycleTimePracticalWorst},
		}

		for _, c := range checks {
			want, err := c.want(w)
			if err != nil {
				t.Fatalf("%s(%g): %v", c.name, w, err)
			}
			if c.got != want {
				t.Errorf("rows[%d].%s = %g, method returns %g", row.WIP-1, c.name, c.got, want)
			}
		}
	}

	t.Logf("✓ All %d rows match the formula methods", len(rows))
}

// TestSweep_CurveShape spot-checks the regime ordering: at every WIP level
// the best case dominates the practical worst case, which dominates the
// worst case (throughput), with cycle times ordered the other way.
func TestSweep_CurveShape(t *testing.T) {
	line, err := NewLine(0.5, 10, "")
	if err != nil {
		t.Fatalf("NewLine failed: %v", err)
	}

	rows, err := Sweep(line, 30)
	if err != nil {
		t.Fatalf("Sweep failed: %v", err)
	}

	for _, row := range rows {
		if row.THBest < row.THPracticalWorst {
			t.Errorf("w=%d: TH_best %g < TH_pwc %g", row.WIP, row.THBest, row.THPracticalWorst)
		}
		if row.THPracticalWorst < row.THWorst {
			t.Errorf("w=%d: TH_pwc %g < TH_worst %g", row.WIP, row.THPracticalWorst, row.THWorst)
		}
		if row.CTBest > row.CTPracticalWorst {
			t.Errorf("w=%d: CT_best %g > CT_pwc %g", row.WIP, row.CTBest, row.CTPracticalWorst)
		}
		if row.CTPracticalWorst > row.CTWorst {
			t.Errorf("w=%d: CT_pwc %g > CT_worst %g", row.WIP, row.CTPracticalWorst, row.CTWorst)
		}
	}

	t.Logf("✓ Regime ordering holds: best ≥ practical worst ≥ worst for TH, reversed for CT")
}

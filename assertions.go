package linebench

import (
	"math"
	"testing"
)

// AssertionConfig contains thresholds for flow-law verification.
type AssertionConfig struct {
	// Relative floating tolerance for identity checks
	Tolerance float64

	// Highest WIP level to sweep when checking identities
	MaxWIP int
}

// DefaultAssertionConfig returns conservative thresholds.
//
// MaxWIP defaults to well past the critical WIP of any sensibly scaled
// line, so both branches of the best-case formulas get exercised.
func DefaultAssertionConfig() AssertionConfig {
	return AssertionConfig{
		Tolerance: 1e-9,
		MaxWIP:    32,
	}
}

// AssertLittlesLaw verifies TH(w) · CT(w) = w for all three regimes.
//
// Little's Law is the structural identity of the theory: the
// practical-worst-case throughput formula is literally derived by
// inverting it, and the best- and worst-case pairs satisfy it by
// construction. A violation means a formula has drifted.
func AssertLittlesLaw(t *testing.T, line Line, cfg AssertionConfig) {
	t.Helper()

	for w := 1; w <= cfg.MaxWIP; w++ {
		wf := float64(w)

		checkLittle(t, "best", wf, line.throughputBest(wf), line.cycleTimeBest(wf), cfg.Tolerance)
		checkLittle(t, "worst", wf, line.ThroughputWorst(), line.cycleTimeWorst(wf), cfg.Tolerance)
		checkLittle(t, "practical worst", wf, line.throughputPracticalWorst(wf), line.cycleTimePracticalWorst(wf), cfg.Tolerance)
	}

	t.Logf("✓ Little's Law: TH(w)·CT(w) = w for all regimes, w ≤ %d", cfg.MaxWIP)
}

func checkLittle(t *testing.T, regime string, w, th, ct, tol float64) {
	t.Helper()

	product := th * ct
	if relDiff(product, w) > tol {
		t.Errorf("Little's Law violated (%s case): TH(%g)·CT(%g) = %.12f, want %g",
			regime, w, w, product, w)
	}
}

// AssertBestCaseContinuity verifies both best-case branches agree at the
// critical WIP boundary.
//
// At w = W_0 the plateau branch (T_0, r_b) and the linear branch
// (w/r_b, w/T_0) describe the same point; the curves are continuous.
func AssertBestCaseContinuity(t *testing.T, line Line, cfg AssertionConfig) {
	t.Helper()

	w0 := line.CriticalWIP()

	ctPlateau := line.NaturalProcessTime()
	ctLinear := w0 / line.BottleneckRate()
	if relDiff(ctPlateau, ctLinear) > cfg.Tolerance {
		t.Errorf("CT_best discontinuous at W_0=%g: plateau=%g, linear=%g",
			w0, ctPlateau, ctLinear)
	}

	thSaturated := line.BottleneckRate()
	thLinear := w0 / line.NaturalProcessTime()
	if relDiff(thSaturated, thLinear) > cfg.Tolerance {
		t.Errorf("TH_best discontinuous at W_0=%g: saturated=%g, linear=%g",
			w0, thSaturated, thLinear)
	}

	t.Logf("✓ Best-case continuity at W_0=%g: CT=%g, TH=%g", w0, ctPlateau, thSaturated)
}

// AssertMonotonicity verifies the shape of the curves over 1..MaxWIP:
// worst- and practical-worst-case cycle times strictly increase with WIP,
// best-case throughput never decreases and never exceeds r_b.
func AssertMonotonicity(t *testing.T, line Line, cfg AssertionConfig) {
	t.Helper()

	for w := 2; w <= cfg.MaxWIP; w++ {
		wf := float64(w)

		if line.cycleTimeWorst(wf) <= line.cycleTimeWorst(wf-1) {
			t.Errorf("CT_worst not strictly increasing at w=%d", w)
		}
		if line.cycleTimePracticalWorst(wf) <= line.cycleTimePracticalWorst(wf-1) {
			t.Errorf("CT_pwc not strictly increasing at w=%d", w)
		}
		if line.throughputBest(wf) < line.throughputBest(wf-1) {
			t.Errorf("TH_best decreased at w=%d: %g → %g",
				w, line.throughputBest(wf-1), line.throughputBest(wf))
		}
	}

	for w := 1; w <= cfg.MaxWIP; w++ {
		th := line.throughputBest(float64(w))
		if th > line.BottleneckRate()*(1+cfg.Tolerance) {
			t.Errorf("TH_best exceeds bottleneck rate at w=%d: %g > %g",
				w, th, line.BottleneckRate())
		}
	}

	t.Logf("✓ Monotonicity: CT curves increase, TH_best bounded by r_b=%g", line.BottleneckRate())
}

// AssertConstantWorstThroughput verifies the worst-case throughput is the
// same value the closed form promises, 1/T_0, regardless of WIP.
func AssertConstantWorstThroughput(t *testing.T, line Line, cfg AssertionConfig) {
	t.Helper()

	want := 1 / line.NaturalProcessTime()
	if relDiff(line.ThroughputWorst(), want) > cfg.Tolerance {
		t.Errorf("TH_worst = %g, want 1/T_0 = %g", line.ThroughputWorst(), want)
	}

	t.Logf("✓ Constant worst-case throughput: 1/T_0 = %g", want)
}

// AssertFlowLaws runs all flow-law assertions with default config.
func AssertFlowLaws(t *testing.T, line Line) {
	t.Helper()

	cfg := DefaultAssertionConfig()

	t.Run("LittlesLaw", func(t *testing.T) {
		AssertLittlesLaw(t, line, cfg)
	})

	t.Run("BestCaseContinuity", func(t *testing.T) {
		AssertBestCaseContinuity(t, line, cfg)
	})

	t.Run("Monotonicity", func(t *testing.T) {
		AssertMonotonicity(t, line, cfg)
	})

	t.Run("ConstantWorstThroughput", func(t *testing.T) {
		AssertConstantWorstThroughput(t, line, cfg)
	})
}

// relDiff returns |a-b| scaled by the larger magnitude, or the absolute
// difference when both values are near zero.
func relDiff(a, b float64) float64 {
	diff := math.Abs(a - b)
	scale := math.Max(math.Abs(a), math.Abs(b))
	if scale < 1 {
		return diff
	}
	return diff / scale
}

// Package linebench evaluates idealized production-line performance using
// the closed-form laws of Factory Physics.
//
// # Overview
//
// linebench answers one question: given a line's bottleneck rate and its
// natural process time, what cycle time and throughput should you expect at
// a given WIP level? It computes exact values from closed-form formulas
// under three theoretical regimes. Nothing is simulated, fitted, or
// searched; every number is deterministic arithmetic.
//
// A line is described by two parameters:
//
//   - r_b: bottleneck rate, the capacity of the slowest station
//     (parts per unit time)
//   - T_0: natural process time, the raw time through an empty line
//     (unit time)
//
// From these a single constant is derived:
//
//	W_0 = r_b · T_0   (critical WIP)
//
// W_0 is the WIP level at which a zero-variability line stops being limited
// by job availability and starts being limited by its bottleneck.
//
// # The three regimes
//
// Best case (zero variability, Hopp & Spearman, Factory Physics 3e p.241):
//
//	CT_best(w) = T_0        if w ≤ W_0, else w / r_b
//	TH_best(w) = w / T_0    if w ≤ W_0, else r_b
//
// Worst case (maximum variability, p.243):
//
//	CT_worst(w) = w · T_0
//	TH_worst    = 1 / T_0   (independent of w)
//
// Practical worst case (maximum randomness, p.247):
//
//	CT_pwc(w) = T_0 + (w - 1) / r_b
//	TH_pwc(w) = w / (W_0 + w - 1) · r_b
//
// All three regimes satisfy Little's Law exactly: TH(w) · CT(w) = w.
// A real line should land between the practical-worst-case and best-case
// curves; a line tracking the worst-case curve has a variability problem.
//
// # Quick start
//
//	line, err := linebench.NewLine(0.5, 10, "assembly line 2")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	rows, err := linebench.Sweep(line, 20)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for _, row := range rows {
//	    fmt.Printf("WIP=%2d  TH_best=%.3f  CT_best=%.3f\n",
//	        row.WIP, row.THBest, row.CTBest)
//	}
//
// # Rendering
//
// The formula engine hands off to renderers through the Renderer interface;
// CSVRenderer, TableRenderer, and ChartRenderer consume the same ordered
// row sequence. See cmd/linebench for the CLI wrapping.
//
// # Testing
//
// Assertion helpers validate the structural identities of the theory
// against any Line value:
//
//	func TestMyLine(t *testing.T) {
//	    line, _ := linebench.NewLine(0.5, 10, "")
//	    linebench.AssertFlowLaws(t, line)
//	}
package linebench

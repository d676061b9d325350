package linebench

import (
	"errors"
	"fmt"
)

// ErrInvalidParameter reports a caller error: a non-positive line parameter
// or WIP level. Formula results are undefined outside the positive domain,
// so violations surface immediately instead of propagating NaN/Inf.
var ErrInvalidParameter = errors.New("invalid parameter")

// Line is an immutable description of a production line.
//
// It carries the two independent physical parameters of Factory Physics
// line analysis and the constant derived from them:
//
//   - bottleneck rate r_b: capacity of the station with the highest
//     long-term utilization (parts per unit time)
//   - natural process time T_0: sum of mean process times across all
//     stations, one job in the line, no queueing (unit time)
//   - critical WIP W_0 = r_b · T_0, fixed at construction
//
// The zero value is not usable; construct with NewLine. Line values are
// safe to copy and to share between goroutines.
type Line struct {
	bottleneckRate     float64
	naturalProcessTime float64
	criticalWIP        float64
	name               string
}

// NewLine builds a Line from its two physical parameters.
//
// Both parameters must be strictly positive (every formula divides by one
// or the other); otherwise NewLine fails with ErrInvalidParameter. The name
// is a presentation label and has no effect on any computation.
func NewLine(bottleneckRate, naturalProcessTime float64, name string) (Line, error) {
	if bottleneckRate <= 0 {
		return Line{}, fmt.Errorf("bottleneck rate must be positive, got %g: %w",
			bottleneckRate, ErrInvalidParameter)
	}
	if naturalProcessTime <= 0 {
		return Line{}, fmt.Errorf("natural process time must be positive, got %g: %w",
			naturalProcessTime, ErrInvalidParameter)
	}

	return Line{
		bottleneckRate:     bottleneckRate,
		naturalProcessTime: naturalProcessTime,
		criticalWIP:        bottleneckRate * naturalProcessTime,
		name:               name,
	}, nil
}

// BottleneckRate returns r_b in parts per unit time.
func (l Line) BottleneckRate() float64 { return l.bottleneckRate }

// NaturalProcessTime returns T_0 in unit time.
func (l Line) NaturalProcessTime() float64 { return l.naturalProcessTime }

// CriticalWIP returns W_0 = r_b · T_0.
func (l Line) CriticalWIP() float64 { return l.criticalWIP }

// Name returns the presentation label, possibly empty.
func (l Line) Name() string { return l.name }

// CycleTimeBest returns the minimum possible cycle time at WIP level w.
//
// On a zero-variability line jobs never queue below the critical WIP, so
// cycle time stays at T_0; above it the bottleneck paces the line and cycle
// time grows linearly with WIP (Factory Physics 3e, p.241).
//
// Fails with ErrInvalidParameter if w ≤ 0.
func (l Line) CycleTimeBest(w float64) (float64, error) {
	if err := checkWIP(w); err != nil {
		return 0, err
	}
	return l.cycleTimeBest(w), nil
}

// ThroughputBest returns the maximum possible throughput at WIP level w.
//
// Dual of CycleTimeBest: throughput rises linearly with WIP until it
// saturates at the bottleneck rate (Factory Physics 3e, p.241).
//
// Fails with ErrInvalidParameter if w ≤ 0.
func (l Line) ThroughputBest(w float64) (float64, error) {
	if err := checkWIP(w); err != nil {
		return 0, err
	}
	return l.throughputBest(w), nil
}

// CycleTimeWorst returns the worst-case cycle time at WIP level w.
//
// Under maximum variability every job waits for every other job in
// sequence, so cycle time is w · T_0 with no saturation
// (Factory Physics 3e, p.243).
//
// Fails with ErrInvalidParameter if w ≤ 0.
func (l Line) CycleTimeWorst(w float64) (float64, error) {
	if err := checkWIP(w); err != nil {
		return 0, err
	}
	return l.cycleTimeWorst(w), nil
}

// ThroughputWorst returns the worst-case throughput, 1 / T_0.
//
// The fully serialized line moves one job per natural process time no
// matter how much WIP it holds, so this is constant by construction and
// takes no WIP argument (Factory Physics 3e, p.243).
func (l Line) ThroughputWorst() float64 {
	return 1 / l.naturalProcessTime
}

// CycleTimePracticalWorst returns the practical-worst-case cycle time at
// WIP level w.
//
// The practical worst case models maximum randomness rather than literal
// worst-case variability; it interpolates between the best- and worst-case
// curves (Factory Physics 3e, p.247).
//
// Fails with ErrInvalidParameter if w ≤ 0.
func (l Line) CycleTimePracticalWorst(w float64) (float64, error) {
	if err := checkWIP(w); err != nil {
		return 0, err
	}
	return l.cycleTimePracticalWorst(w), nil
}

// ThroughputPracticalWorst returns the practical-worst-case throughput at
// WIP level w.
//
// Derived from CycleTimePracticalWorst by inverting Little's Law
// (CT = WIP / TH), so TH_pwc(w) · CT_pwc(w) = w holds exactly
// (Factory Physics 3e, p.247).
//
// Fails with ErrInvalidParameter if w ≤ 0.
func (l Line) ThroughputPracticalWorst(w float64) (float64, error) {
	if err := checkWIP(w); err != nil {
		return 0, err
	}
	return l.throughputPracticalWorst(w), nil
}

// Unchecked formula bodies. Sweep iterates w = 1..maxWIP and skips the
// per-call domain check that the exported methods perform.

func (l Line) cycleTimeBest(w float64) float64 {
	if w <= l.criticalWIP {
		return l.naturalProcessTime
	}
	return w / l.bottleneckRate
}

func (l Line) throughputBest(w float64) float64 {
	if w <= l.criticalWIP {
		return w / l.naturalProcessTime
	}
	return l.bottleneckRate
}

func (l Line) cycleTimeWorst(w float64) float64 {
	return w * l.naturalProcessTime
}

func (l Line) cycleTimePracticalWorst(w float64) float64 {
	return l.naturalProcessTime + (w-1)/l.bottleneckRate
}

func (l Line) throughputPracticalWorst(w float64) float64 {
	return w / (l.criticalWIP + w - 1) * l.bottleneckRate
}

func checkWIP(w float64) error {
	if w <= 0 {
		return fmt.Errorf("WIP level must be positive, got %g: %w", w, ErrInvalidParameter)
	}
	return nil
}

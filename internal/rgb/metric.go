package rgb

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// Metric measures how far apart two colors are. Tolerances are compared
// against the metric's distance: a pair is similar when distance <= tolerance,
// so every metric is reflexive and monotonic in the tolerance.
type Metric int

const (
	// MetricRGB is the sum of absolute channel differences (0..765).
	MetricRGB Metric = iota
	// MetricLab is the CIE76 delta E in L*a*b* space, scaled by 100.
	MetricLab
)

// ParseMetric resolves a metric by name ("rgb" or "lab").
func ParseMetric(name string) (Metric, error) {
	switch name {
	case "", "rgb":
		return MetricRGB, nil
	case "lab":
		return MetricLab, nil
	}
	return 0, fmt.Errorf("unknown color metric %q", name)
}

func (m Metric) String() string {
	switch m {
	case MetricRGB:
		return "rgb"
	case MetricLab:
		return "lab"
	default:
		return "unknown"
	}
}

// Distance returns the distance between a and b under the metric.
func (m Metric) Distance(a, b Color) float64 {
	if a == b {
		return 0
	}
	if m == MetricLab {
		return toColorful(a).DistanceLab(toColorful(b)) * 100
	}
	return float64(absDiff(a.R, b.R) + absDiff(a.G, b.G) + absDiff(a.B, b.B))
}

// Similar reports whether a and b are close enough to share one escape code.
// A negative tolerance behaves like 0 (exact match only).
func (m Metric) Similar(a, b Color, tolerance int) bool {
	if a == b {
		return true
	}
	if tolerance <= 0 {
		return false
	}
	return m.Distance(a, b) <= float64(tolerance)
}

// SimilarPaint is Similar lifted to paints. The terminal default only
// matches itself.
func (m Metric) SimilarPaint(a, b Paint, tolerance int) bool {
	if a.Default || b.Default {
		return a.Default == b.Default
	}
	return m.Similar(a.Color, b.Color, tolerance)
}

func toColorful(c Color) colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}
}

func absDiff(a, b uint8) int {
	if a > b {
		return int(a - b)
	}
	return int(b - a)
}

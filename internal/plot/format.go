package plot

import (
	"fmt"
	"math"
)

// machineEpsilon is the spacing between 1.0 and the next float64
const machineEpsilon = 2.220446049250313e-16

// FormatNumber renders an axis label value, keeping labels short at every scale.
// NaN formats as "0".
func FormatNumber(v float64) string {
	abs := math.Abs(v)

	switch {
	case abs >= 1_000_000:
		return fmt.Sprintf("%.1fM", v/1_000_000)
	case abs >= 10_000:
		return fmt.Sprintf("%.0fK", v/1000)
	case abs >= 1000:
		return fmt.Sprintf("%.0f", v)
	case abs >= 1:
		_, frac := math.Modf(v)
		if math.Abs(frac) < 0.01 {
			return fmt.Sprintf("%.0f", v)
		}
		return fmt.Sprintf("%.1f", v)
	case abs >= 0.01:
		return fmt.Sprintf("%.3f", v)
	case abs > machineEpsilon:
		return fmt.Sprintf("%.4f", v)
	default:
		return "0"
	}
}

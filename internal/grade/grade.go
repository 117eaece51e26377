// Package grade maps normalized [0,1] scores to discrete letter grades.
//
// Two scales coexist: the coarse 5-tier scale used for performance and
// overall grades, and the finer 9-tier scale used for accessibility and
// test-monitoring grades. Both are pure threshold lookups: deterministic,
// side-effect free, and total over all real inputs. Values outside [0,1]
// are not validated separately; they fall into the lowest or highest bucket
// through the same comparisons.
package grade

// Letter maps a score to the 5-tier scale: A >=0.90, B >=0.80, C >=0.70,
// D >=0.60, else F.
func Letter(score float64) string {
	switch {
	case score >= 0.90:
		return "A"
	case score >= 0.80:
		return "B"
	case score >= 0.70:
		return "C"
	case score >= 0.60:
		return "D"
	default:
		return "F"
	}
}

// FineLetter maps a score to the 9-tier scale with plus grades:
// A+ >=0.95 down to D >=0.60, else F.
func FineLetter(score float64) string {
	switch {
	case score >= 0.95:
		return "A+"
	case score >= 0.90:
		return "A"
	case score >= 0.85:
		return "B+"
	case score >= 0.80:
		return "B"
	case score >= 0.75:
		return "C+"
	case score >= 0.70:
		return "C"
	case score >= 0.65:
		return "D+"
	case score >= 0.60:
		return "D"
	default:
		return "F"
	}
}

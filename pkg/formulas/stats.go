package formulas

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// Mean calculates the arithmetic mean of a slice of float64 values
func Mean(data []float64) float64 {
	if len(data) == 0 {
		return 0
	}
	return stat.Mean(data, nil)
}

// StdDev calculates the standard deviation of a slice of float64 values
func StdDev(data []float64) float64 {
	if len(data) == 0 {
		return 0
	}
	return stat.StdDev(data, nil)
}

// YearOverYearGrowth converts a chronologically ordered series of annual
// values to growth rates. Years with a zero prior value are skipped.
func YearOverYearGrowth(values []float64) []float64 {
	if len(values) < 2 {
		return nil
	}

	growth := make([]float64, 0, len(values)-1)
	for i := 1; i < len(values); i++ {
		if values[i-1] != 0 {
			growth = append(growth, (values[i]-values[i-1])/values[i-1])
		}
	}
	return growth
}

// CAGR calculates the compound annual growth rate between the first and last
// values of a chronologically ordered series. Returns 0 for series that are
// too short or start at or below zero.
func CAGR(values []float64) float64 {
	if len(values) < 2 || values[0] <= 0 || values[len(values)-1] <= 0 {
		return 0
	}
	periods := float64(len(values) - 1)
	return math.Pow(values[len(values)-1]/values[0], 1/periods) - 1
}

// Clamp bounds v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

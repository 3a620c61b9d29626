package formula

import "math"

// Counts are uint32 and charges int32 throughout the pipeline. Every
// combination site goes through one of these checked helpers; arithmetic
// never wraps silently.

func mulAdd10(v uint32, digit uint8) (uint32, bool) {
	if v > (math.MaxUint32-uint32(digit))/10 {
		return 0, false
	}
	return v*10 + uint32(digit), true
}

func addCount(a, b uint32) (uint32, bool) {
	if a > math.MaxUint32-b {
		return 0, false
	}
	return a + b, true
}

func addCharge(a, b int32) (int32, bool) {
	s := int64(a) + int64(b)
	if s < math.MinInt32 || s > math.MaxInt32 {
		return 0, false
	}
	return int32(s), true
}

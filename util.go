package heredity

import "math"

// ScenarioCount returns the worst-case number of joint scenarios Infer
// evaluates for a pedigree of n people: 2^n trait candidates times 3^n
// gene-count partitions, so 6^n. Observed evidence prunes the trait factor.
// Returned as a float64 because the count overflows int64 past n = 24.
func ScenarioCount(n int) float64 {
	return math.Pow(6, float64(n))
}

func WhichSQLiteDriver() string {
	return whichSQLiteDriver
}

package cooccur

import "math"

// Calculator computes smoothed pointwise mutual information over poem
// presence counts.
type Calculator struct {
	epsilon float64 // smoothing constant
}

// NewCalculator creates a calculator; a non-positive epsilon becomes 1.
func NewCalculator(epsilon float64) *Calculator {
	if epsilon <= 0 {
		epsilon = 1.0
	}
	return &Calculator{epsilon: epsilon}
}

// PMI returns log((nAB + ε) * N / ((nA + ε)(nB + ε))).
//
//   - nAB = poems containing both terms
//   - nA, nB = poems containing each term
//   - N = total poems
func (c *Calculator) PMI(nAB, nA, nB, N int64) float64 {
	if N == 0 {
		return 0
	}

	numerator := (float64(nAB) + c.epsilon) * float64(N)
	denominator := (float64(nA) + c.epsilon) * (float64(nB) + c.epsilon)

	return math.Log(numerator / denominator)
}

// NPMI normalises PMI by -log P(a,b). It is 0 when the pair never
// co-occurs.
func (c *Calculator) NPMI(nAB, nA, nB, N int64) float64 {
	if N == 0 || nAB == 0 {
		return 0
	}

	pAB := (float64(nAB) + c.epsilon) / float64(N)
	logPAB := math.Log(pAB)
	if logPAB == 0 {
		return 0
	}

	return c.PMI(nAB, nA, nB, N) / -logPAB
}

// PairPMI is PMI for a pair recorded in counter.
func (c *Calculator) PairPMI(counter *Counter, a, b string) float64 {
	return c.PMI(counter.Count(a, b), counter.TermCount(a), counter.TermCount(b), counter.TotalPoems())
}

// PairNPMI is NPMI for a pair recorded in counter.
func (c *Calculator) PairNPMI(counter *Counter, a, b string) float64 {
	return c.NPMI(counter.Count(a, b), counter.TermCount(a), counter.TermCount(b), counter.TotalPoems())
}

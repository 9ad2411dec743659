package models

// EligibilityThreshold is the lowest model score treated as eligible.
const EligibilityThreshold = 0.5

// Verdict is the message returned to the caller for a scored candidate.
type Verdict string

const (
	VerdictEligible    Verdict = "This candidate is eligible for government assistance."
	VerdictNotEligible Verdict = "This candidate is not eligible for government assistance."
)

// EvaluateScore maps a model score to a verdict.
func EvaluateScore(score float64) Verdict {
	if score < EligibilityThreshold {
		return VerdictNotEligible
	}
	return VerdictEligible
}

// IsEligible reports whether the verdict is the eligible one.
func (v Verdict) IsEligible() bool {
	return v == VerdictEligible
}

// String returns the verdict message.
func (v Verdict) String() string {
	return string(v)
}

package similarity

// Detector flags near-duplicate texts using Levenshtein distance against
// a configured threshold. The threshold is loaded once from configuration
// and treated as immutable.
type Detector struct {
	threshold int
}

// NewDetector creates a Detector. Texts at edit distance <= threshold are
// considered near-duplicates.
func NewDetector(threshold int) *Detector {
	return &Detector{threshold: threshold}
}

// IsNearDuplicate reports whether candidate is within the threshold distance
// of any of the existing texts. Linear scan, no caching across calls.
func (d *Detector) IsNearDuplicate(candidate string, existing []string) bool {
	for _, text := range existing {
		if Levenshtein(candidate, text) <= d.threshold {
			return true
		}
	}
	return false
}

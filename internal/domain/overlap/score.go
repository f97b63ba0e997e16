package overlap

import "sort"

// Result holds the outcome of comparing two item sets for one metric.
// The three slices are sorted ascending and partition the union of the
// reference and target sets.
type Result struct {
	Score       float64  `json:"score"`
	Overlapping []string `json:"overlapping"`
	RefOnly     []string `json:"ref_only"`
	TargetOnly  []string `json:"target_only"`
}

// Compare scores a reference item set against a target item set.
// Score is |R∩T| / |R∪T|; an empty union scores 0 rather than NaN (neither
// text contributed an item, treated as no overlap). Metric-agnostic: the
// same function serves every metric.
func Compare(ref, target Set) Result {
	overlapping := make([]string, 0)
	refOnly := make([]string, 0)
	targetOnly := make([]string, 0)

	for item := range ref {
		if _, ok := target[item]; ok {
			overlapping = append(overlapping, item)
		} else {
			refOnly = append(refOnly, item)
		}
	}
	for item := range target {
		if _, ok := ref[item]; !ok {
			targetOnly = append(targetOnly, item)
		}
	}

	sort.Strings(overlapping)
	sort.Strings(refOnly)
	sort.Strings(targetOnly)

	var score float64
	if union := len(overlapping) + len(refOnly) + len(targetOnly); union > 0 {
		score = float64(len(overlapping)) / float64(union)
	}

	return Result{
		Score:       score,
		Overlapping: overlapping,
		RefOnly:     refOnly,
		TargetOnly:  targetOnly,
	}
}

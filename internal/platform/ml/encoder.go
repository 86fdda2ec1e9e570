// Package ml implements the regression model behind the price predictions:
// a least-squares gradient-boosted tree ensemble, the label encoders for
// categorical features, and the persisted artifact tying them together.
package ml

import "sort"

// LabelEncoder maps the categorical values of one column to integer codes.
// Classes are kept sorted, so codes are stable across training runs and the
// encoder survives a JSON round trip without extra state.
type LabelEncoder struct {
	Classes []string `json:"classes"`
}

// FitLabelEncoder learns the sorted set of distinct values.
func FitLabelEncoder(values []string) *LabelEncoder {
	seen := make(map[string]struct{}, len(values))
	classes := make([]string, 0, 16)
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		classes = append(classes, v)
	}
	sort.Strings(classes)
	return &LabelEncoder{Classes: classes}
}

// Transform returns the code for v and whether v was seen during fitting.
// Unknown values report ok=false; the caller decides the fallback policy.
func (e *LabelEncoder) Transform(v string) (int, bool) {
	i := sort.SearchStrings(e.Classes, v)
	if i < len(e.Classes) && e.Classes[i] == v {
		return i, true
	}
	return 0, false
}

package catalog

import "strings"

// ByCategory keeps questions whose category id matches exactly. Relative
// order is preserved.
func ByCategory(questions []Question, categoryID int64) []Question {
	var out []Question
	for _, q := range questions {
		if q.Category == categoryID {
			out = append(out, q)
		}
	}
	return out
}

// MatchingText keeps questions whose text contains term, case-insensitively.
// An empty term matches nothing; callers wanting the full set must not
// filter at all.
func MatchingText(questions []Question, term string) []Question {
	if term == "" {
		return nil
	}
	needle := strings.ToLower(term)
	var out []Question
	for _, q := range questions {
		if strings.Contains(strings.ToLower(q.Question), needle) {
			out = append(out, q)
		}
	}
	return out
}

// Excluding keeps questions whose id is not in the exclusion list.
func Excluding(questions []Question, exclude []int64) []Question {
	if len(exclude) == 0 {
		return questions
	}
	skip := make(map[int64]struct{}, len(exclude))
	for _, id := range exclude {
		skip[id] = struct{}{}
	}
	var out []Question
	for _, q := range questions {
		if _, ok := skip[q.ID]; !ok {
			out = append(out, q)
		}
	}
	return out
}

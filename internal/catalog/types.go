package catalog

// QuestionsPerPage is the fixed window size for every paginated question
// listing. It is intentionally not configurable at the boundary.
const QuestionsPerPage = 10

// AllCategories is the quiz category sentinel meaning "draw from every
// category".
const AllCategories int64 = 0

// Question is an immutable catalog entry once fetched from the repository.
type Question struct {
	ID         int64  `json:"id"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Category   int64  `json:"category"`
	Difficulty int    `json:"difficulty"`
}

// Category groups questions for listing and quiz filtering.
type Category struct {
	ID   int64  `json:"id"`
	Type string `json:"type"`
}

// CategoryMap renders categories the way clients consume them: an id -> type
// lookup table.
func CategoryMap(categories []Category) map[int64]string {
	m := make(map[int64]string, len(categories))
	for _, c := range categories {
		m[c.ID] = c.Type
	}
	return m
}

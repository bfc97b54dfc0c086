package catalog

import "errors"

var (
	ErrQuestionNotFound = errors.New("question not found")
	ErrCategoryNotFound = errors.New("category not found")

	// ErrPageOutOfRange reports a page past the end of the general question
	// listing.
	ErrPageOutOfRange = errors.New("page is past the end of the question list")

	// ErrMissingFields reports a create request with an empty question,
	// answer, category or difficulty.
	ErrMissingFields = errors.New("question, answer, category and difficulty are required")
)

package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func numberedQuestions(n int) []Question {
	qs := make([]Question, n)
	for i := range qs {
		qs[i] = Question{ID: int64(i + 1), Question: "q", Answer: "a", Category: 1, Difficulty: 1}
	}
	return qs
}

func TestPaginateWindowLength(t *testing.T) {
	qs := numberedQuestions(15)

	first := Paginate(qs, 1, QuestionsPerPage)
	assert.Len(t, first, 10)

	second := Paginate(qs, 2, QuestionsPerPage)
	assert.Len(t, second, 5)
	assert.Equal(t, int64(11), second[0].ID)
	assert.Equal(t, int64(15), second[4].ID)
}

func TestPaginatePastEndIsEmpty(t *testing.T) {
	qs := numberedQuestions(15)

	assert.Empty(t, Paginate(qs, 3, QuestionsPerPage))
	assert.Empty(t, Paginate(qs, 100, QuestionsPerPage))
}

func TestPaginateClampsNonPositivePages(t *testing.T) {
	qs := numberedQuestions(12)

	first := Paginate(qs, 1, QuestionsPerPage)
	assert.Equal(t, first, Paginate(qs, 0, QuestionsPerPage))
	assert.Equal(t, first, Paginate(qs, -3, QuestionsPerPage))
}

func TestPaginateReconstructsInput(t *testing.T) {
	qs := numberedQuestions(27)

	var combined []Question
	for page := 1; ; page++ {
		window := Paginate(qs, page, QuestionsPerPage)
		if len(window) == 0 {
			break
		}
		assert.LessOrEqual(t, len(window), QuestionsPerPage)
		combined = append(combined, window...)
	}
	assert.Equal(t, qs, combined)
}

func TestPaginateEmptyInput(t *testing.T) {
	assert.Empty(t, Paginate([]Question(nil), 1, QuestionsPerPage))
}

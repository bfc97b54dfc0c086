package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubQuestionRepo struct {
	questions []Question
	nextID    int64
}

func (s *stubQuestionRepo) List(context.Context) ([]Question, error) {
	return append([]Question(nil), s.questions...), nil
}

func (s *stubQuestionRepo) ListByCategory(_ context.Context, categoryID int64) ([]Question, error) {
	return ByCategory(s.questions, categoryID), nil
}

func (s *stubQuestionRepo) Search(_ context.Context, term string) ([]Question, error) {
	return MatchingText(s.questions, term), nil
}

func (s *stubQuestionRepo) GetByID(_ context.Context, id int64) (Question, error) {
	for _, q := range s.questions {
		if q.ID == id {
			return q, nil
		}
	}
	return Question{}, ErrQuestionNotFound
}

func (s *stubQuestionRepo) Create(_ context.Context, q Question) (Question, error) {
	s.nextID++
	q.ID = s.nextID
	s.questions = append(s.questions, q)
	return q, nil
}

func (s *stubQuestionRepo) Delete(_ context.Context, id int64) error {
	for i, q := range s.questions {
		if q.ID == id {
			s.questions = append(s.questions[:i], s.questions[i+1:]...)
			return nil
		}
	}
	return ErrQuestionNotFound
}

type stubCategoryRepo struct {
	categories []Category
}

func (s *stubCategoryRepo) List(context.Context) ([]Category, error) {
	return append([]Category(nil), s.categories...), nil
}

func (s *stubCategoryRepo) GetByID(_ context.Context, id int64) (Category, error) {
	for _, c := range s.categories {
		if c.ID == id {
			return c, nil
		}
	}
	return Category{}, ErrCategoryNotFound
}

func newTestService(questions []Question) (*Service, *stubQuestionRepo) {
	var maxID int64
	for _, q := range questions {
		if q.ID > maxID {
			maxID = q.ID
		}
	}
	qRepo := &stubQuestionRepo{questions: questions, nextID: maxID}
	cRepo := &stubCategoryRepo{categories: []Category{
		{ID: 1, Type: "Science"},
		{ID: 2, Type: "Art"},
	}}
	return NewService(qRepo, cRepo, zerolog.Nop()), qRepo
}

func serviceFixture() []Question {
	qs := make([]Question, 0, 15)
	for i := 1; i <= 15; i++ {
		category := int64(1)
		if i%3 == 0 {
			category = 2
		}
		qs = append(qs, Question{
			ID:         int64(i),
			Question:   "Question number " + string(rune('A'+i-1)),
			Answer:     "answer",
			Category:   category,
			Difficulty: 1 + i%5,
		})
	}
	return qs
}

func TestQuestionPageReturnsWindowAndTotals(t *testing.T) {
	svc, _ := newTestService(serviceFixture())

	page, err := svc.QuestionPage(context.Background(), 2)
	require.NoError(t, err)

	assert.Len(t, page.Questions, 5)
	assert.Equal(t, int64(11), page.Questions[0].ID)
	assert.Equal(t, 15, page.Total)
	assert.Len(t, page.Categories, 2)
}

func TestQuestionPagePastEnd(t *testing.T) {
	svc, _ := newTestService(serviceFixture())

	_, err := svc.QuestionPage(context.Background(), 3)
	assert.ErrorIs(t, err, ErrPageOutOfRange)
}

func TestSearchEmptyTermMatchesNothing(t *testing.T) {
	svc, _ := newTestService(serviceFixture())

	result, err := svc.Search(context.Background(), "   ", 1)
	require.NoError(t, err)
	assert.Empty(t, result.Questions)
	assert.Zero(t, result.Total)
}

func TestSearchPaginatesMatches(t *testing.T) {
	svc, _ := newTestService(serviceFixture())

	result, err := svc.Search(context.Background(), "question number", 1)
	require.NoError(t, err)
	assert.Len(t, result.Questions, QuestionsPerPage)
	assert.Equal(t, 15, result.Total)

	result, err = svc.Search(context.Background(), "question number", 2)
	require.NoError(t, err)
	assert.Len(t, result.Questions, 5)
}

func TestCategoryListingUnknownCategory(t *testing.T) {
	svc, _ := newTestService(serviceFixture())

	_, err := svc.CategoryListing(context.Background(), 42, 1)
	assert.ErrorIs(t, err, ErrCategoryNotFound)
}

func TestCategoryListingFiltersAndPaginates(t *testing.T) {
	svc, _ := newTestService(serviceFixture())

	listing, err := svc.CategoryListing(context.Background(), 2, 1)
	require.NoError(t, err)

	assert.Equal(t, "Art", listing.Category.Type)
	assert.Equal(t, 5, listing.Total)
	for _, q := range listing.Questions {
		assert.Equal(t, int64(2), q.Category)
	}
}

func TestCategoryListingEmptyPageIsNotAnError(t *testing.T) {
	svc, _ := newTestService(serviceFixture())

	listing, err := svc.CategoryListing(context.Background(), 2, 4)
	require.NoError(t, err)
	assert.Empty(t, listing.Questions)
	assert.Equal(t, 5, listing.Total)
}

func TestCreateQuestionRejectsMissingFields(t *testing.T) {
	svc, repo := newTestService(nil)

	cases := []CreateQuestionParams{
		{Question: "", Answer: "a", Category: 1, Difficulty: 1},
		{Question: "q", Answer: "", Category: 1, Difficulty: 1},
		{Question: "q", Answer: "a", Category: 0, Difficulty: 1},
		{Question: "q", Answer: "a", Category: 1, Difficulty: 0},
	}
	for _, params := range cases {
		_, err := svc.CreateQuestion(context.Background(), params)
		assert.ErrorIs(t, err, ErrMissingFields)
	}
	assert.Empty(t, repo.questions)
}

func TestCreateQuestionAssignsIDAndCounts(t *testing.T) {
	svc, _ := newTestService(serviceFixture())

	result, err := svc.CreateQuestion(context.Background(), CreateQuestionParams{
		Question:   "Who wrote War and Peace?",
		Answer:     "Tolstoy",
		Category:   2,
		Difficulty: 3,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(16), result.Created.ID)
	assert.Equal(t, 16, result.TotalQuestions)
}

func TestDeleteQuestionUnknownID(t *testing.T) {
	svc, _ := newTestService(serviceFixture())

	_, err := svc.DeleteQuestion(context.Background(), 999)
	assert.ErrorIs(t, err, ErrQuestionNotFound)
}

func TestDeleteQuestionReportsRemainingTotal(t *testing.T) {
	svc, repo := newTestService(serviceFixture())

	result, err := svc.DeleteQuestion(context.Background(), 7)
	require.NoError(t, err)

	assert.Equal(t, int64(7), result.DeletedID)
	assert.Equal(t, 14, result.TotalQuestions)
	_, err = repo.GetByID(context.Background(), 7)
	assert.ErrorIs(t, err, ErrQuestionNotFound)
}

func TestNextQuizQuestionFiltersAndExcludes(t *testing.T) {
	svc, _ := newTestService([]Question{
		{ID: 10, Question: "q", Answer: "a", Category: 1, Difficulty: 1},
		{ID: 11, Question: "q", Answer: "a", Category: 1, Difficulty: 1},
		{ID: 20, Question: "q", Answer: "a", Category: 2, Difficulty: 1},
	})

	q, ok, err := svc.NextQuizQuestion(context.Background(), 1, []int64{10})
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, int64(11), q.ID)

	_, ok, err = svc.NextQuizQuestion(context.Background(), 1, []int64{10, 11})
	require.NoError(t, err)
	assert.False(t, ok)
}

type failingQuestionRepo struct {
	stubQuestionRepo
	err error
}

func (f *failingQuestionRepo) List(context.Context) ([]Question, error) {
	return nil, f.err
}

func TestQuestionPagePropagatesRepositoryErrors(t *testing.T) {
	repoErr := errors.New("connection refused")
	svc := NewService(&failingQuestionRepo{err: repoErr}, &stubCategoryRepo{}, zerolog.Nop())

	_, err := svc.QuestionPage(context.Background(), 1)
	assert.ErrorIs(t, err, repoErr)
}

package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

// Service orchestrates repository access and the pure listing/quiz logic.
// It holds no mutable state; every operation works on values fetched per
// call.
type Service struct {
	questions  QuestionRepository
	categories CategoryRepository
	logger     zerolog.Logger
}

func NewService(questions QuestionRepository, categories CategoryRepository, logger zerolog.Logger) *Service {
	return &Service{
		questions:  questions,
		categories: categories,
		logger:     logger.With().Str("component", "catalog_service").Logger(),
	}
}

// QuestionPage is one window of the general question listing.
type QuestionPage struct {
	Questions  []Question
	Total      int
	Categories []Category
}

// SearchResult is one window of a substring search.
type SearchResult struct {
	Questions []Question
	Total     int
}

// CategoryListing is one window of a single category's questions.
type CategoryListing struct {
	Questions []Question
	Total     int
	Category  Category
}

// CreateResult reports a newly stored question and the catalog size after
// the insert.
type CreateResult struct {
	Created        Question
	TotalQuestions int
}

// DeleteResult reports a removed question id and the catalog size after the
// delete.
type DeleteResult struct {
	DeletedID      int64
	TotalQuestions int
}

// CreateQuestionParams carries the client-supplied fields for a new
// question. The id is assigned by the repository.
type CreateQuestionParams struct {
	Question   string
	Answer     string
	Category   int64
	Difficulty int
}

// Categories returns every category in the catalog.
func (s *Service) Categories(ctx context.Context) ([]Category, error) {
	cats, err := s.categories.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return cats, nil
}

// QuestionPage returns one page of the full question listing together with
// the category map clients render alongside it. A page past the end of the
// data is ErrPageOutOfRange.
func (s *Service) QuestionPage(ctx context.Context, page int) (QuestionPage, error) {
	all, err := s.questions.List(ctx)
	if err != nil {
		return QuestionPage{}, fmt.Errorf("list questions: %w", err)
	}

	window := Paginate(all, page, QuestionsPerPage)
	if len(window) == 0 {
		return QuestionPage{}, ErrPageOutOfRange
	}

	cats, err := s.categories.List(ctx)
	if err != nil {
		return QuestionPage{}, fmt.Errorf("list categories: %w", err)
	}

	return QuestionPage{Questions: window, Total: len(all), Categories: cats}, nil
}

// Search returns one page of questions whose text contains term,
// case-insensitively. An empty page is a valid, empty result.
func (s *Service) Search(ctx context.Context, term string, page int) (SearchResult, error) {
	if strings.TrimSpace(term) == "" {
		// "match nothing", mirroring MatchingText
		return SearchResult{}, nil
	}

	matched, err := s.questions.Search(ctx, term)
	if err != nil {
		return SearchResult{}, fmt.Errorf("search questions: %w", err)
	}

	return SearchResult{
		Questions: Paginate(matched, page, QuestionsPerPage),
		Total:     len(matched),
	}, nil
}

// CategoryListing returns one page of a category's questions. An unknown
// category is ErrCategoryNotFound; an empty page is a valid, empty result.
func (s *Service) CategoryListing(ctx context.Context, categoryID int64, page int) (CategoryListing, error) {
	cat, err := s.categories.GetByID(ctx, categoryID)
	if err != nil {
		return CategoryListing{}, err
	}

	selection, err := s.questions.ListByCategory(ctx, categoryID)
	if err != nil {
		return CategoryListing{}, fmt.Errorf("list questions by category: %w", err)
	}

	return CategoryListing{
		Questions: Paginate(selection, page, QuestionsPerPage),
		Total:     len(selection),
		Category:  cat,
	}, nil
}

// CreateQuestion validates and stores a new question, returning the stored
// row and the new catalog size. Empty required fields are ErrMissingFields.
func (s *Service) CreateQuestion(ctx context.Context, params CreateQuestionParams) (CreateResult, error) {
	if strings.TrimSpace(params.Question) == "" ||
		strings.TrimSpace(params.Answer) == "" ||
		params.Category == 0 || params.Difficulty == 0 {
		return CreateResult{}, ErrMissingFields
	}

	created, err := s.questions.Create(ctx, Question{
		Question:   params.Question,
		Answer:     params.Answer,
		Category:   params.Category,
		Difficulty: params.Difficulty,
	})
	if err != nil {
		return CreateResult{}, fmt.Errorf("create question: %w", err)
	}

	total, err := s.countQuestions(ctx)
	if err != nil {
		return CreateResult{}, err
	}

	s.logger.Info().Int64("question_id", created.ID).Int64("category", created.Category).Msg("question created")
	return CreateResult{Created: created, TotalQuestions: total}, nil
}

// DeleteQuestion removes a question by id, returning the remaining catalog
// size. An unknown id is ErrQuestionNotFound.
func (s *Service) DeleteQuestion(ctx context.Context, id int64) (DeleteResult, error) {
	if _, err := s.questions.GetByID(ctx, id); err != nil {
		return DeleteResult{}, err
	}

	if err := s.questions.Delete(ctx, id); err != nil {
		return DeleteResult{}, fmt.Errorf("delete question: %w", err)
	}

	total, err := s.countQuestions(ctx)
	if err != nil {
		return DeleteResult{}, err
	}

	s.logger.Info().Int64("question_id", id).Msg("question deleted")
	return DeleteResult{DeletedID: id, TotalQuestions: total}, nil
}

// NextQuizQuestion draws a random question for a quiz session. ok is false
// when the session has exhausted the eligible set; the caller treats that
// as quiz complete.
func (s *Service) NextQuizQuestion(ctx context.Context, categoryID int64, previous []int64) (Question, bool, error) {
	pool, err := s.questions.List(ctx)
	if err != nil {
		return Question{}, false, fmt.Errorf("list questions: %w", err)
	}
	q, ok := NextQuestion(pool, categoryID, previous)
	return q, ok, nil
}

func (s *Service) countQuestions(ctx context.Context) (int, error) {
	all, err := s.questions.List(ctx)
	if err != nil {
		return 0, fmt.Errorf("count questions: %w", err)
	}
	return len(all), nil
}

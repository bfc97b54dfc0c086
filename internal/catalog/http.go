package catalog

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/rs/zerolog"

	httperr "github.com/openquiz/trivia-api/pkg/http/errors"
)

// HTTPHandlers provides the REST endpoints for the catalog.
type HTTPHandlers struct {
	service *Service
	logger  zerolog.Logger
}

func NewHTTPHandlers(service *Service, logger zerolog.Logger) *HTTPHandlers {
	return &HTTPHandlers{
		service: service,
		logger:  logger.With().Str("component", "catalog_http").Logger(),
	}
}

// GetCategories handles GET /categories.
func (h *HTTPHandlers) GetCategories(w http.ResponseWriter, r *http.Request) {
	cats, err := h.service.Categories(r.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to list categories")
		httperr.Internal(w)
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]any{
		"success":          true,
		"categories":       CategoryMap(cats),
		"total_categories": len(cats),
	})
}

// ListQuestions handles GET /questions?page=N.
func (h *HTTPHandlers) ListQuestions(w http.ResponseWriter, r *http.Request) {
	page := pageParam(r)

	result, err := h.service.QuestionPage(r.Context(), page)
	if err != nil {
		if errors.Is(err, ErrPageOutOfRange) {
			httperr.NotFound(w)
			return
		}
		h.logger.Error().Err(err).Int("page", page).Msg("failed to list questions")
		httperr.Internal(w)
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]any{
		"success":          true,
		"questions":        nonNil(result.Questions),
		"total_questions":  result.Total,
		"categories":       CategoryMap(result.Categories),
		"current_category": nil,
	})
}

// CreateQuestion handles POST /questions.
func (h *HTTPHandlers) CreateQuestion(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Question   string `json:"question"`
		Answer     string `json:"answer"`
		Category   int64  `json:"category"`
		Difficulty int    `json:"difficulty"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httperr.BadRequest(w)
		return
	}

	result, err := h.service.CreateQuestion(r.Context(), CreateQuestionParams{
		Question:   req.Question,
		Answer:     req.Answer,
		Category:   req.Category,
		Difficulty: req.Difficulty,
	})
	if err != nil {
		if !errors.Is(err, ErrMissingFields) {
			h.logger.Error().Err(err).Msg("failed to create question")
		}
		httperr.Unprocessable(w)
		return
	}

	h.respondJSON(w, http.StatusCreated, map[string]any{
		"success":         true,
		"created":         result.Created.ID,
		"total_questions": result.TotalQuestions,
	})
}

// DeleteQuestion handles DELETE /questions/{id}.
func (h *HTTPHandlers) DeleteQuestion(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		httperr.NotFound(w)
		return
	}

	result, err := h.service.DeleteQuestion(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrQuestionNotFound) {
			httperr.NotFound(w)
			return
		}
		h.logger.Error().Err(err).Int64("question_id", id).Msg("failed to delete question")
		httperr.Unprocessable(w)
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]any{
		"success":         true,
		"deleted":         result.DeletedID,
		"total_questions": result.TotalQuestions,
	})
}

// SearchQuestions handles POST /questions/results.
func (h *HTTPHandlers) SearchQuestions(w http.ResponseWriter, r *http.Request) {
	var req struct {
		SearchTerm *string `json:"searchTerm"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.SearchTerm == nil {
		httperr.BadRequest(w)
		return
	}

	result, err := h.service.Search(r.Context(), *req.SearchTerm, pageParam(r))
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to search questions")
		httperr.Internal(w)
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]any{
		"success":         true,
		"questions":       nonNil(result.Questions),
		"total_questions": result.Total,
	})
}

// CategoryQuestions handles GET /categories/{id}/questions.
func (h *HTTPHandlers) CategoryQuestions(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		httperr.NotFound(w)
		return
	}

	result, err := h.service.CategoryListing(r.Context(), id, pageParam(r))
	if err != nil {
		if errors.Is(err, ErrCategoryNotFound) {
			httperr.NotFound(w)
			return
		}
		h.logger.Error().Err(err).Int64("category_id", id).Msg("failed to list category questions")
		httperr.Internal(w)
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]any{
		"success":          true,
		"questions":        nonNil(result.Questions),
		"total_questions":  result.Total,
		"current_category": result.Category.Type,
	})
}

// PlayQuiz handles POST /quizzes. Both quiz_category and previous_questions
// are required; a drained eligible set yields "question": null, which the
// client reads as quiz complete.
func (h *HTTPHandlers) PlayQuiz(w http.ResponseWriter, r *http.Request) {
	var req struct {
		QuizCategory *struct {
			ID   int64  `json:"id"`
			Type string `json:"type"`
		} `json:"quiz_category"`
		PreviousQuestions *[]int64 `json:"previous_questions"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil ||
		req.QuizCategory == nil || req.PreviousQuestions == nil {
		httperr.BadRequest(w)
		return
	}

	question, ok, err := h.service.NextQuizQuestion(r.Context(), req.QuizCategory.ID, *req.PreviousQuestions)
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to draw quiz question")
		httperr.Internal(w)
		return
	}

	var payload *Question
	if ok {
		payload = &question
	}
	h.respondJSON(w, http.StatusOK, map[string]any{
		"success":  true,
		"question": payload,
	})
}

func (h *HTTPHandlers) respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error().Err(err).Msg("failed to encode response")
	}
}

// pageParam reads the page query parameter, defaulting to the first page
// when absent or unparseable. Non-positive values clamp to 1 in Paginate.
func pageParam(r *http.Request) int {
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil {
		return 1
	}
	return page
}

// nonNil keeps empty listings rendering as [] rather than null.
func nonNil(qs []Question) []Question {
	if qs == nil {
		return []Question{}
	}
	return qs
}

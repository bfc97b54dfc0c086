package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/openquiz/trivia-api/internal/catalog"
)

// QuestionRepository implements catalog.QuestionRepository over Postgres.
// All listings order by id so pagination windows are stable.
type QuestionRepository struct {
	pool *pgxpool.Pool
}

func NewQuestionRepository(pool *pgxpool.Pool) *QuestionRepository {
	return &QuestionRepository{pool: pool}
}

// List returns every question ordered by id.
func (r *QuestionRepository) List(ctx context.Context) ([]catalog.Question, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, question, answer, category, difficulty
		FROM questions
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("list questions: %w", err)
	}
	defer rows.Close()
	return scanQuestions(rows)
}

// ListByCategory returns a category's questions ordered by id.
func (r *QuestionRepository) ListByCategory(ctx context.Context, categoryID int64) ([]catalog.Question, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, question, answer, category, difficulty
		FROM questions
		WHERE category = $1
		ORDER BY id
	`, categoryID)
	if err != nil {
		return nil, fmt.Errorf("list questions by category: %w", err)
	}
	defer rows.Close()
	return scanQuestions(rows)
}

// Search returns questions whose text contains term, case-insensitively,
// ordered by id.
func (r *QuestionRepository) Search(ctx context.Context, term string) ([]catalog.Question, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, question, answer, category, difficulty
		FROM questions
		WHERE question ILIKE '%' || $1 || '%'
		ORDER BY id
	`, term)
	if err != nil {
		return nil, fmt.Errorf("search questions: %w", err)
	}
	defer rows.Close()
	return scanQuestions(rows)
}

// GetByID fetches a single question or catalog.ErrQuestionNotFound.
func (r *QuestionRepository) GetByID(ctx context.Context, id int64) (catalog.Question, error) {
	var q catalog.Question
	err := r.pool.QueryRow(ctx, `
		SELECT id, question, answer, category, difficulty
		FROM questions
		WHERE id = $1
	`, id).Scan(&q.ID, &q.Question, &q.Answer, &q.Category, &q.Difficulty)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return catalog.Question{}, catalog.ErrQuestionNotFound
		}
		return catalog.Question{}, fmt.Errorf("get question: %w", err)
	}
	return q, nil
}

// Create inserts a question and returns it with the assigned id.
func (r *QuestionRepository) Create(ctx context.Context, q catalog.Question) (catalog.Question, error) {
	err := r.pool.QueryRow(ctx, `
		INSERT INTO questions (question, answer, category, difficulty)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, q.Question, q.Answer, q.Category, q.Difficulty).Scan(&q.ID)
	if err != nil {
		return catalog.Question{}, fmt.Errorf("insert question: %w", err)
	}
	return q, nil
}

// Delete removes a question, reporting catalog.ErrQuestionNotFound when the
// id does not exist.
func (r *QuestionRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM questions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete question: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return catalog.ErrQuestionNotFound
	}
	return nil
}

func scanQuestions(rows pgx.Rows) ([]catalog.Question, error) {
	var questions []catalog.Question
	for rows.Next() {
		var q catalog.Question
		if err := rows.Scan(&q.ID, &q.Question, &q.Answer, &q.Category, &q.Difficulty); err != nil {
			return nil, fmt.Errorf("scan question: %w", err)
		}
		questions = append(questions, q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate questions: %w", err)
	}
	return questions, nil
}

package catalog

import "context"

// QuestionRepository is the persistence contract the service depends on.
// Implementations must return questions in a stable order so pagination
// windows stay consistent across requests.
type QuestionRepository interface {
	List(ctx context.Context) ([]Question, error)
	ListByCategory(ctx context.Context, categoryID int64) ([]Question, error)
	Search(ctx context.Context, term string) ([]Question, error)
	GetByID(ctx context.Context, id int64) (Question, error)
	Create(ctx context.Context, q Question) (Question, error)
	Delete(ctx context.Context, id int64) error
}

// CategoryRepository provides category lookups.
type CategoryRepository interface {
	List(ctx context.Context) ([]Category, error)
	GetByID(ctx context.Context, id int64) (Category, error)
}

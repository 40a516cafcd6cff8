package trivia

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
)

var ErrNotFound = errors.New("resource not found")

// ValidationError reports request fields that were required but absent.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "invalid input"
	}
	fields := append([]string(nil), e.Fields...)
	sort.Strings(fields)
	return fmt.Sprintf("missing required fields: %s", strings.Join(fields, ", "))
}

type CategoryRepository interface {
	ListCategories(ctx context.Context) ([]Category, error)
	CreateCategory(ctx context.Context, categoryType string) (int, error)
}

type QuestionRepository interface {
	ListQuestions(ctx context.Context) ([]Question, error)
	GetQuestion(ctx context.Context, id int) (Question, error)
	CreateQuestion(ctx context.Context, question Question) (int, error)
	DeleteQuestion(ctx context.Context, id int) error
	SearchQuestions(ctx context.Context, term string) ([]Question, error)
	QuestionsByCategory(ctx context.Context, categoryID int) ([]Question, error)
}

// Store is a persistence backend serving both tables.
type Store interface {
	CategoryRepository
	QuestionRepository
	Close() error
}

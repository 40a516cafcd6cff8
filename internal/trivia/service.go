package trivia

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

type Service struct {
	categories CategoryRepository
	questions  QuestionRepository
	validate   *validator.Validate
	intn       func(n int) int
}

func NewService(categories CategoryRepository, questions QuestionRepository) *Service {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return field.Name
		}
		return name
	})

	return &Service{
		categories: categories,
		questions:  questions,
		validate:   validate,
		intn:       rand.Intn,
	}
}

func (s *Service) ListCategories(ctx context.Context) (map[int]string, error) {
	categories, err := s.categories.ListCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	if len(categories) == 0 {
		return nil, ErrNotFound
	}
	return CategoryMap(categories), nil
}

func (s *Service) ListQuestions(ctx context.Context, page int) (QuestionPage, error) {
	questions, err := s.questions.ListQuestions(ctx)
	if err != nil {
		return QuestionPage{}, fmt.Errorf("list questions: %w", err)
	}

	current := Paginate(questions, page, QuestionsPerPage)
	if len(current) == 0 {
		return QuestionPage{}, ErrNotFound
	}

	categories, err := s.categories.ListCategories(ctx)
	if err != nil {
		return QuestionPage{}, fmt.Errorf("list categories: %w", err)
	}

	return QuestionPage{
		Questions:  current,
		Total:      len(questions),
		Categories: CategoryMap(categories),
	}, nil
}

func (s *Service) DeleteQuestion(ctx context.Context, id int) (int, error) {
	if _, err := s.questions.GetQuestion(ctx, id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return 0, ErrNotFound
		}
		return 0, fmt.Errorf("get question %d: %w", id, err)
	}

	if err := s.questions.DeleteQuestion(ctx, id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return 0, ErrNotFound
		}
		return 0, fmt.Errorf("delete question %d: %w", id, err)
	}
	return id, nil
}

func (s *Service) CreateQuestion(ctx context.Context, input QuestionInput) (Question, error) {
	if err := s.validate.Struct(input); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			missing := make([]string, 0, len(fieldErrs))
			for _, fieldErr := range fieldErrs {
				missing = append(missing, fieldErr.Field())
			}
			return Question{}, &ValidationError{Fields: missing}
		}
		return Question{}, err
	}

	question := Question{
		Question:   *input.Question,
		Answer:     *input.Answer,
		Category:   *input.Category,
		Difficulty: *input.Difficulty,
	}

	id, err := s.questions.CreateQuestion(ctx, question)
	if err != nil {
		return Question{}, fmt.Errorf("create question: %w", err)
	}
	question.ID = id
	return question, nil
}

// SearchQuestions never reports ErrNotFound; no matches is an empty result.
func (s *Service) SearchQuestions(ctx context.Context, term string) ([]Question, error) {
	questions, err := s.questions.SearchQuestions(ctx, term)
	if err != nil {
		return nil, fmt.Errorf("search questions: %w", err)
	}
	if questions == nil {
		questions = []Question{}
	}
	return questions, nil
}

func (s *Service) QuestionsByCategory(ctx context.Context, categoryID int) ([]Question, error) {
	questions, err := s.questions.QuestionsByCategory(ctx, categoryID)
	if err != nil {
		return nil, fmt.Errorf("questions for category %d: %w", categoryID, err)
	}
	if len(questions) == 0 {
		return nil, ErrNotFound
	}
	return questions, nil
}

// NextQuizQuestion picks a random question not listed in previous. A zero
// categoryID draws from every category.
func (s *Service) NextQuizQuestion(ctx context.Context, previous []int, categoryID int) (Question, error) {
	var (
		candidates []Question
		err        error
	)
	if categoryID == 0 {
		candidates, err = s.questions.ListQuestions(ctx)
	} else {
		candidates, err = s.questions.QuestionsByCategory(ctx, categoryID)
	}
	if err != nil {
		return Question{}, fmt.Errorf("load quiz candidates: %w", err)
	}

	remaining := excludeQuestions(candidates, previous)
	if len(remaining) == 0 {
		return Question{}, ErrNotFound
	}
	return remaining[s.intn(len(remaining))], nil
}

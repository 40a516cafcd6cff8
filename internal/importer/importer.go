package importer

import (
	"context"
	"fmt"
	"html"
	"strings"

	"go.uber.org/zap"

	"trivia-api/internal/opentdb"
	"trivia-api/internal/trivia"
)

// DefaultCategories are the categories the web client ships icons for.
var DefaultCategories = []string{"Science", "Art", "Geography", "History", "Entertainment", "Sports"}

var difficultyRatings = map[string]int{
	"easy":   1,
	"medium": 2,
	"hard":   3,
}

type Store interface {
	trivia.CategoryRepository
	CreateQuestion(ctx context.Context, question trivia.Question) (int, error)
}

type Result struct {
	CategoriesCreated int
	QuestionsCreated  int
	Skipped           int
}

type Importer struct {
	store  Store
	logger *zap.Logger

	categoryIDs map[string]int
}

func New(store Store, logger *zap.Logger) *Importer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Importer{
		store:  store,
		logger: logger,
	}
}

// SeedCategories creates each named category that is not stored yet and
// returns how many were created.
func (im *Importer) SeedCategories(ctx context.Context, names []string) (int, error) {
	if err := im.loadCategories(ctx); err != nil {
		return 0, err
	}

	created := 0
	for _, name := range names {
		wasCreated, err := im.ensureCategory(ctx, name)
		if err != nil {
			return created, err
		}
		if wasCreated {
			created++
		}
	}
	return created, nil
}

// ImportQuestions stores OpenTriviaDB questions, creating categories by the
// part of their name before ":".
func (im *Importer) ImportQuestions(ctx context.Context, raw []opentdb.RawQuestion) (Result, error) {
	var result Result
	if err := im.loadCategories(ctx); err != nil {
		return result, err
	}

	for _, item := range raw {
		question, ok := buildQuestion(item)
		if !ok {
			result.Skipped++
			im.logger.Debug("skipping incomplete question", zap.String("question", item.Question))
			continue
		}

		name := CategoryName(item.Category)
		created, err := im.ensureCategory(ctx, name)
		if err != nil {
			return result, err
		}
		if created {
			result.CategoriesCreated++
		}
		question.Category = im.categoryIDs[strings.ToLower(name)]

		if _, err := im.store.CreateQuestion(ctx, question); err != nil {
			return result, fmt.Errorf("create question %q: %w", question.Question, err)
		}
		result.QuestionsCreated++
	}

	im.logger.Info("imported questions",
		zap.Int("questions_created", result.QuestionsCreated),
		zap.Int("categories_created", result.CategoriesCreated),
		zap.Int("skipped", result.Skipped),
	)
	return result, nil
}

// CategoryName maps "Science: Computers" to "Science".
func CategoryName(raw string) string {
	name := html.UnescapeString(raw)
	if idx := strings.Index(name, ":"); idx >= 0 {
		name = name[:idx]
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return "General Knowledge"
	}
	return name
}

func DifficultyRating(raw string) int {
	if rating, ok := difficultyRatings[strings.ToLower(strings.TrimSpace(raw))]; ok {
		return rating
	}
	return 1
}

func (im *Importer) loadCategories(ctx context.Context) error {
	if im.categoryIDs != nil {
		return nil
	}
	categories, err := im.store.ListCategories(ctx)
	if err != nil {
		return fmt.Errorf("list categories: %w", err)
	}
	im.categoryIDs = make(map[string]int, len(categories))
	for _, category := range categories {
		im.categoryIDs[strings.ToLower(category.Type)] = category.ID
	}
	return nil
}

func (im *Importer) ensureCategory(ctx context.Context, name string) (bool, error) {
	key := strings.ToLower(name)
	if _, ok := im.categoryIDs[key]; ok {
		return false, nil
	}
	id, err := im.store.CreateCategory(ctx, name)
	if err != nil {
		return false, fmt.Errorf("create category %q: %w", name, err)
	}
	im.categoryIDs[key] = id
	im.logger.Info("created category", zap.String("type", name), zap.Int("id", id))
	return true, nil
}

func buildQuestion(raw opentdb.RawQuestion) (trivia.Question, bool) {
	text := strings.TrimSpace(html.UnescapeString(raw.Question))
	answer := strings.TrimSpace(html.UnescapeString(raw.CorrectAnswer))
	if text == "" || answer == "" {
		return trivia.Question{}, false
	}
	return trivia.Question{
		Question:   text,
		Answer:     answer,
		Difficulty: DifficultyRating(raw.Difficulty),
	}, true
}

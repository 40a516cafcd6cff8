package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"trivia-api/internal/trivia"
)

const questionColumns = `id, question, answer, category, difficulty`

func (s *SQLiteStore) ListCategories(ctx context.Context) ([]trivia.Category, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, type FROM categories ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := make([]trivia.Category, 0)
	for rows.Next() {
		var category trivia.Category
		if err := rows.Scan(&category.ID, &category.Type); err != nil {
			return nil, err
		}
		categories = append(categories, category)
	}
	return categories, rows.Err()
}

func (s *SQLiteStore) CreateCategory(ctx context.Context, categoryType string) (int, error) {
	result, err := s.db.ExecContext(ctx, `INSERT INTO categories (type) VALUES (?)`, categoryType)
	if err != nil {
		return 0, err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, err
	}
	return int(id), nil
}

func (s *SQLiteStore) ListQuestions(ctx context.Context) ([]trivia.Question, error) {
	return s.queryQuestions(ctx, `SELECT `+questionColumns+` FROM questions ORDER BY id ASC`)
}

func (s *SQLiteStore) GetQuestion(ctx context.Context, id int) (trivia.Question, error) {
	var question trivia.Question
	err := s.db.QueryRowContext(
		ctx,
		`SELECT `+questionColumns+` FROM questions WHERE id = ?`,
		id,
	).Scan(&question.ID, &question.Question, &question.Answer, &question.Category, &question.Difficulty)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return trivia.Question{}, trivia.ErrNotFound
		}
		return trivia.Question{}, err
	}
	return question, nil
}

func (s *SQLiteStore) CreateQuestion(ctx context.Context, question trivia.Question) (int, error) {
	result, err := s.db.ExecContext(
		ctx,
		`INSERT INTO questions (question, answer, category, difficulty) VALUES (?, ?, ?, ?)`,
		question.Question,
		question.Answer,
		question.Category,
		question.Difficulty,
	)
	if err != nil {
		return 0, err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, err
	}
	return int(id), nil
}

func (s *SQLiteStore) DeleteQuestion(ctx context.Context, id int) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM questions WHERE id = ?`, id)
	if err != nil {
		return err
	}
	deleted, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if deleted == 0 {
		return trivia.ErrNotFound
	}
	return nil
}

// SearchQuestions matches term as a literal substring, ignoring case.
// SQLite's own LIKE folds ASCII only, so both sides go through casefold.
func (s *SQLiteStore) SearchQuestions(ctx context.Context, term string) ([]trivia.Question, error) {
	return s.queryQuestions(
		ctx,
		`SELECT `+questionColumns+` FROM questions
		 WHERE casefold(question) LIKE ? ESCAPE '\'
		 ORDER BY id ASC`,
		"%"+escapeLike(strings.ToLower(term))+"%",
	)
}

func (s *SQLiteStore) QuestionsByCategory(ctx context.Context, categoryID int) ([]trivia.Question, error) {
	return s.queryQuestions(
		ctx,
		`SELECT `+questionColumns+` FROM questions WHERE category = ? ORDER BY id ASC`,
		categoryID,
	)
}

func (s *SQLiteStore) queryQuestions(ctx context.Context, query string, args ...any) ([]trivia.Question, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	questions := make([]trivia.Question, 0)
	for rows.Next() {
		var question trivia.Question
		if err := rows.Scan(&question.ID, &question.Question, &question.Answer, &question.Category, &question.Difficulty); err != nil {
			return nil, err
		}
		questions = append(questions, question)
	}
	return questions, rows.Err()
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(term string) string {
	return likeEscaper.Replace(term)
}

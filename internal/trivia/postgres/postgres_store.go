// Package postgres stores the question bank in PostgreSQL through a pgx
// connection pool.
package postgres

import (
	"context"
	"errors"
	"math"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"trivia-api/internal/trivia"
)

const questionColumns = `id, question, answer, category, difficulty`

// inRange reports whether id fits the INTEGER id columns. Larger ids can
// never match a row.
func inRange(id int) bool {
	return id >= math.MinInt32 && id <= math.MaxInt32
}

type PostgresStore struct {
	pool *pgxpool.Pool
}

func NewPostgresStore(ctx context.Context, dsn string) (*PostgresStore, error) {
	if strings.TrimSpace(dsn) == "" {
		return nil, errors.New("postgres connection string is required")
	}

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, err
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	store := &PostgresStore{pool: pool}
	if err := store.initSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return store, nil
}

func (s *PostgresStore) Close() error {
	s.pool.Close()
	return nil
}

func (s *PostgresStore) initSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS categories (
			id SERIAL PRIMARY KEY,
			type TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS questions (
			id SERIAL PRIMARY KEY,
			question TEXT NOT NULL,
			answer TEXT NOT NULL,
			category INTEGER NOT NULL,
			difficulty INTEGER NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_questions_category ON questions(category)`,
	}

	for _, stmt := range statements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

func (s *PostgresStore) ListCategories(ctx context.Context) ([]trivia.Category, error) {
	rows, err := s.pool.Query(ctx, `SELECT id, type FROM categories ORDER BY id ASC`)
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

func (s *PostgresStore) CreateCategory(ctx context.Context, categoryType string) (int, error) {
	var id int
	err := s.pool.QueryRow(ctx, `INSERT INTO categories (type) VALUES ($1) RETURNING id`, categoryType).Scan(&id)
	return id, err
}

func (s *PostgresStore) ListQuestions(ctx context.Context) ([]trivia.Question, error) {
	return s.queryQuestions(ctx, `SELECT `+questionColumns+` FROM questions ORDER BY id ASC`)
}

func (s *PostgresStore) GetQuestion(ctx context.Context, id int) (trivia.Question, error) {
	if !inRange(id) {
		return trivia.Question{}, trivia.ErrNotFound
	}
	var question trivia.Question
	err := s.pool.QueryRow(
		ctx,
		`SELECT `+questionColumns+` FROM questions WHERE id = $1`,
		id,
	).Scan(&question.ID, &question.Question, &question.Answer, &question.Category, &question.Difficulty)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return trivia.Question{}, trivia.ErrNotFound
		}
		return trivia.Question{}, err
	}
	return question, nil
}

func (s *PostgresStore) CreateQuestion(ctx context.Context, question trivia.Question) (int, error) {
	var id int
	err := s.pool.QueryRow(
		ctx,
		`INSERT INTO questions (question, answer, category, difficulty) VALUES ($1, $2, $3, $4) RETURNING id`,
		question.Question,
		question.Answer,
		question.Category,
		question.Difficulty,
	).Scan(&id)
	return id, err
}

func (s *PostgresStore) DeleteQuestion(ctx context.Context, id int) error {
	if !inRange(id) {
		return trivia.ErrNotFound
	}
	tag, err := s.pool.Exec(ctx, `DELETE FROM questions WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return trivia.ErrNotFound
	}
	return nil
}

func (s *PostgresStore) SearchQuestions(ctx context.Context, term string) ([]trivia.Question, error) {
	return s.queryQuestions(
		ctx,
		`SELECT `+questionColumns+` FROM questions
		 WHERE question ILIKE $1 ESCAPE '\'
		 ORDER BY id ASC`,
		"%"+escapeLike(term)+"%",
	)
}

func (s *PostgresStore) QuestionsByCategory(ctx context.Context, categoryID int) ([]trivia.Question, error) {
	if !inRange(categoryID) {
		return []trivia.Question{}, nil
	}
	return s.queryQuestions(
		ctx,
		`SELECT `+questionColumns+` FROM questions WHERE category = $1 ORDER BY id ASC`,
		categoryID,
	)
}

func (s *PostgresStore) queryQuestions(ctx context.Context, query string, args ...any) ([]trivia.Question, error) {
	rows, err := s.pool.Query(ctx, query, args...)
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

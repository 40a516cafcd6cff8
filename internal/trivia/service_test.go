package trivia

import (
	"context"
	"errors"
	"math"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	categories []Category
	questions  []Question
	nextID     int

	listErr   error
	createErr error

	createCalls int
	deleteCalls int
}

func newFakeStore() *fakeStore {
	return &fakeStore{nextID: 1}
}

func (f *fakeStore) ListCategories(context.Context) ([]Category, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := append([]Category(nil), f.categories...)
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeStore) CreateCategory(_ context.Context, categoryType string) (int, error) {
	id := len(f.categories) + 1
	f.categories = append(f.categories, Category{ID: id, Type: categoryType})
	return id, nil
}

func (f *fakeStore) ListQuestions(context.Context) ([]Question, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return append([]Question(nil), f.questions...), nil
}

func (f *fakeStore) GetQuestion(_ context.Context, id int) (Question, error) {
	for _, question := range f.questions {
		if question.ID == id {
			return question, nil
		}
	}
	return Question{}, ErrNotFound
}

func (f *fakeStore) CreateQuestion(_ context.Context, question Question) (int, error) {
	f.createCalls++
	if f.createErr != nil {
		return 0, f.createErr
	}
	question.ID = f.nextID
	f.nextID++
	f.questions = append(f.questions, question)
	return question.ID, nil
}

func (f *fakeStore) DeleteQuestion(_ context.Context, id int) error {
	f.deleteCalls++
	for idx, question := range f.questions {
		if question.ID == id {
			f.questions = append(f.questions[:idx], f.questions[idx+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (f *fakeStore) SearchQuestions(_ context.Context, term string) ([]Question, error) {
	var out []Question
	for _, question := range f.questions {
		if strings.Contains(strings.ToLower(question.Question), strings.ToLower(term)) {
			out = append(out, question)
		}
	}
	return out, nil
}

func (f *fakeStore) QuestionsByCategory(_ context.Context, categoryID int) ([]Question, error) {
	out := make([]Question, 0)
	for _, question := range f.questions {
		if question.Category == categoryID {
			out = append(out, question)
		}
	}
	return out, nil
}

func seedQuestions(f *fakeStore, count, category int) {
	for i := 0; i < count; i++ {
		_, _ = f.CreateQuestion(context.Background(), Question{
			Question:   "question",
			Answer:     "answer",
			Category:   category,
			Difficulty: 1,
		})
	}
	f.createCalls = 0
}

func strPtr(v string) *string { return &v }
func intPtr(v int) *int       { return &v }

func TestListCategoriesEmptyIsNotFound(t *testing.T) {
	store := newFakeStore()
	_, err := NewService(store, store).ListCategories(context.Background())
	require.ErrorIs(t, err, ErrNotFound)
}

func TestListCategoriesMapsIDsToTypes(t *testing.T) {
	store := newFakeStore()
	store.categories = []Category{{ID: 2, Type: "Art"}, {ID: 1, Type: "Science"}}

	got, err := NewService(store, store).ListCategories(context.Background())
	require.NoError(t, err)
	assert.Equal(t, map[int]string{1: "Science", 2: "Art"}, got)
}

func TestListCategoriesWrapsStoreError(t *testing.T) {
	store := newFakeStore()
	store.listErr = errors.New("connection refused")

	_, err := NewService(store, store).ListCategories(context.Background())
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestListQuestionsPageSizes(t *testing.T) {
	store := newFakeStore()
	store.categories = []Category{{ID: 1, Type: "Science"}}
	seedQuestions(store, 23, 1)
	service := NewService(store, store)

	for page, want := range map[int]int{1: 10, 2: 10, 3: 3} {
		result, err := service.ListQuestions(context.Background(), page)
		require.NoError(t, err, "page %d", page)
		assert.Len(t, result.Questions, want, "page %d", page)
		assert.Equal(t, 23, result.Total)
		assert.Equal(t, map[int]string{1: "Science"}, result.Categories)
		assert.Equal(t, (page-1)*10+1, result.Questions[0].ID)
	}

	for _, page := range []int{4, 1000, 0, -1} {
		_, err := service.ListQuestions(context.Background(), page)
		assert.ErrorIs(t, err, ErrNotFound, "page %d", page)
	}
}

func TestDeleteQuestion(t *testing.T) {
	store := newFakeStore()
	seedQuestions(store, 2, 1)
	service := NewService(store, store)

	id, err := service.DeleteQuestion(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 1, id)

	_, err = store.GetQuestion(context.Background(), 1)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = service.DeleteQuestion(context.Background(), 1)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, 1, store.deleteCalls, "missing question must not reach the delete call")
}

func TestCreateQuestionStoresAnswer(t *testing.T) {
	store := newFakeStore()
	service := NewService(store, store)

	created, err := service.CreateQuestion(context.Background(), QuestionInput{
		Question:   strPtr("What is the boiling point of water?"),
		Answer:     strPtr("100C"),
		Category:   intPtr(1),
		Difficulty: intPtr(2),
	})
	require.NoError(t, err)
	assert.Equal(t, 1, created.ID)

	stored, err := store.GetQuestion(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "100C", stored.Answer)
	assert.Equal(t, 2, stored.Difficulty)
}

func TestCreateQuestionZeroValuesArePresent(t *testing.T) {
	store := newFakeStore()
	_, err := NewService(store, store).CreateQuestion(context.Background(), QuestionInput{
		Question:   strPtr(""),
		Answer:     strPtr(""),
		Category:   intPtr(0),
		Difficulty: intPtr(0),
	})
	require.NoError(t, err)
}

func TestCreateQuestionMissingFields(t *testing.T) {
	full := func() QuestionInput {
		return QuestionInput{
			Question:   strPtr("q"),
			Answer:     strPtr("a"),
			Category:   intPtr(1),
			Difficulty: intPtr(1),
		}
	}

	cases := map[string]func(in *QuestionInput){
		"question":   func(in *QuestionInput) { in.Question = nil },
		"answer":     func(in *QuestionInput) { in.Answer = nil },
		"category":   func(in *QuestionInput) { in.Category = nil },
		"difficulty": func(in *QuestionInput) { in.Difficulty = nil },
	}

	for field, strip := range cases {
		t.Run(field, func(t *testing.T) {
			store := newFakeStore()
			input := full()
			strip(&input)

			_, err := NewService(store, store).CreateQuestion(context.Background(), input)

			var validationErr *ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, []string{field}, validationErr.Fields)
			assert.Zero(t, store.createCalls)
		})
	}
}

func TestSearchQuestionsNoMatchIsEmptySuccess(t *testing.T) {
	store := newFakeStore()
	store.questions = []Question{
		{ID: 1, Question: "Who painted the Mona Lisa?"},
		{ID: 2, Question: "What is the largest planet?"},
	}
	service := NewService(store, store)

	got, err := service.SearchQuestions(context.Background(), "MONA")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 1, got[0].ID)

	got, err = service.SearchQuestions(context.Background(), "zebra")
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestQuestionsByCategory(t *testing.T) {
	store := newFakeStore()
	seedQuestions(store, 1, 1)
	seedQuestions(store, 1, 2)
	service := NewService(store, store)

	got, err := service.QuestionsByCategory(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 2, got[0].ID)

	_, err = service.QuestionsByCategory(context.Background(), 99)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestNextQuizQuestionSkipsPrevious(t *testing.T) {
	store := newFakeStore()
	seedQuestions(store, 5, 1)
	service := NewService(store, store)

	previous := []int{1, 2, 4}
	for i := 0; i < 50; i++ {
		got, err := service.NextQuizQuestion(context.Background(), previous, 0)
		require.NoError(t, err)
		assert.NotContains(t, previous, got.ID)
	}

	_, err := service.NextQuizQuestion(context.Background(), []int{1, 2, 3, 4, 5}, 0)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestNextQuizQuestionHonoursCategory(t *testing.T) {
	store := newFakeStore()
	seedQuestions(store, 3, 1)
	seedQuestions(store, 2, 2)
	service := NewService(store, store)
	service.intn = func(n int) int { return n - 1 }

	got, err := service.NextQuizQuestion(context.Background(), []int{5}, 2)
	require.NoError(t, err)
	assert.Equal(t, 4, got.ID)

	_, err = service.NextQuizQuestion(context.Background(), []int{4, 5}, 2)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPaginate(t *testing.T) {
	questions := make([]Question, 25)
	for i := range questions {
		questions[i].ID = i + 1
	}

	assert.Len(t, Paginate(questions, 1, 10), 10)
	assert.Len(t, Paginate(questions, 3, 10), 5)
	assert.Empty(t, Paginate(questions, 4, 10))
	assert.Empty(t, Paginate(questions, 0, 10))
	assert.Empty(t, Paginate(nil, 1, 10))
	assert.Empty(t, Paginate(questions, 1000000000000000000, 10))
	assert.Empty(t, Paginate(questions, math.MaxInt, 10))
	assert.Equal(t, 21, Paginate(questions, 3, 10)[0].ID)
}

func TestValidationErrorMessage(t *testing.T) {
	err := &ValidationError{Fields: []string{"difficulty", "answer"}}
	assert.Equal(t, "missing required fields: answer, difficulty", err.Error())
}

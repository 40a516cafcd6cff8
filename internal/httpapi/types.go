package httpapi

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"trivia-api/internal/trivia"
)

type categoriesResponse struct {
	Success    bool           `json:"success"`
	Categories map[int]string `json:"categories"`
}

type questionsPageResponse struct {
	Success        bool              `json:"success"`
	Questions      []trivia.Question `json:"questions"`
	TotalQuestions int               `json:"totalQuestions"`
	Categories     map[int]string    `json:"categories"`
}

type deleteQuestionResponse struct {
	Success bool `json:"success"`
	ID      int  `json:"id"`
}

type createQuestionResponse struct {
	Success bool `json:"success"`
	Created int  `json:"created"`
}

type searchQuestionsResponse struct {
	Success        bool              `json:"success"`
	Questions      []trivia.Question `json:"questions"`
	TotalQuestions int               `json:"total_questions"`
}

type categoryQuestionsResponse struct {
	Success         bool              `json:"success"`
	Questions       []trivia.Question `json:"questions"`
	TotalQuestions  int               `json:"total_questions"`
	CurrentCategory int               `json:"current_category"`
}

type quizResponse struct {
	Success  bool            `json:"success"`
	Question trivia.Question `json:"question"`
}

type errorResponse struct {
	Success bool   `json:"success"`
	Error   int    `json:"error"`
	Message string `json:"message"`
}

// questionRequest serves both creation and search; every field is optional.
type questionRequest struct {
	Question   *string  `json:"question"`
	Answer     *string  `json:"answer"`
	Category   *flexInt `json:"category"`
	Difficulty *flexInt `json:"difficulty"`
	SearchTerm *string  `json:"searchTerm"`
}

func (r questionRequest) searchTerm() (string, bool) {
	if r.SearchTerm == nil || *r.SearchTerm == "" {
		return "", false
	}
	return *r.SearchTerm, true
}

func (r questionRequest) toInput() trivia.QuestionInput {
	return trivia.QuestionInput{
		Question:   r.Question,
		Answer:     r.Answer,
		Category:   r.Category.intPtr(),
		Difficulty: r.Difficulty.intPtr(),
	}
}

type quizRequest struct {
	PreviousQuestions []flexInt     `json:"previous_questions"`
	QuizCategory      *quizCategory `json:"quiz_category"`
}

func (r quizRequest) previousIDs() []int {
	ids := make([]int, 0, len(r.PreviousQuestions))
	for _, id := range r.PreviousQuestions {
		ids = append(ids, int(id))
	}
	return ids
}

func (r quizRequest) categoryID() int {
	if r.QuizCategory == nil {
		return 0
	}
	return int(r.QuizCategory.ID)
}

// flexInt accepts a JSON number or a string holding one; web clients post
// <select> values as strings.
type flexInt int

func (n *flexInt) UnmarshalJSON(data []byte) error {
	text := strings.TrimSpace(string(data))
	if text == "null" {
		return nil
	}
	if unquoted, err := strconv.Unquote(text); err == nil {
		text = strings.TrimSpace(unquoted)
	}

	value, err := strconv.Atoi(text)
	if err != nil {
		return fmt.Errorf("expected an integer, got %s", data)
	}
	*n = flexInt(value)
	return nil
}

func (n *flexInt) intPtr() *int {
	if n == nil {
		return nil
	}
	value := int(*n)
	return &value
}

// quizCategory is either {"type": ..., "id": ...} or a bare id. Id 0 means
// every category.
type quizCategory struct {
	Type string  `json:"type"`
	ID   flexInt `json:"id"`
}

func (q *quizCategory) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '{' {
		type plain quizCategory
		var decoded plain
		if err := json.Unmarshal(trimmed, &decoded); err != nil {
			return err
		}
		*q = quizCategory(decoded)
		return nil
	}
	return q.ID.UnmarshalJSON(trimmed)
}

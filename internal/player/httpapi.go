package player

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"trivia-api/internal/trivia"
)

var ErrServiceUnavailable = errors.New("trivia service unavailable")

type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if strings.TrimSpace(e.Message) == "" {
		return fmt.Sprintf("request failed with status %d", e.StatusCode)
	}
	return e.Message
}

// NotFound reports whether the service answered 404.
func (e *APIError) NotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
}

type categoriesResponse struct {
	Categories map[int]string `json:"categories"`
}

type quizCategory struct {
	Type string `json:"type"`
	ID   int    `json:"id"`
}

type quizRequest struct {
	PreviousQuestions []int        `json:"previous_questions"`
	QuizCategory      quizCategory `json:"quiz_category"`
}

type quizResponse struct {
	Question trivia.Question `json:"question"`
}

type errorResponse struct {
	Success bool   `json:"success"`
	Error   int    `json:"error"`
	Message string `json:"message"`
}

func NewHTTPClient(baseURL string, httpClient *http.Client) *HTTPClient {
	baseURL = strings.TrimSpace(baseURL)
	baseURL = strings.TrimRight(baseURL, "/")
	if baseURL == "" {
		baseURL = defaultServer
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &HTTPClient{
		baseURL:    baseURL,
		httpClient: httpClient,
	}
}

func (c *HTTPClient) ListCategories(ctx context.Context) ([]trivia.Category, error) {
	var payload categoriesResponse
	if err := c.doJSON(ctx, http.MethodGet, "/categories", nil, &payload); err != nil {
		return nil, err
	}

	categories := make([]trivia.Category, 0, len(payload.Categories))
	for id, name := range payload.Categories {
		categories = append(categories, trivia.Category{ID: id, Type: name})
	}
	sortCategories(categories)
	return categories, nil
}

// NextQuestion asks for a random question not in previous. A categoryID of
// zero draws from every category.
func (c *HTTPClient) NextQuestion(ctx context.Context, previous []int, categoryID int) (trivia.Question, error) {
	if previous == nil {
		previous = []int{}
	}
	request := quizRequest{
		PreviousQuestions: previous,
		QuizCategory:      quizCategory{Type: "click", ID: categoryID},
	}

	var payload quizResponse
	if err := c.doJSON(ctx, http.MethodPost, "/quizzes", request, &payload); err != nil {
		return trivia.Question{}, err
	}
	return payload.Question, nil
}

func (c *HTTPClient) doJSON(ctx context.Context, method, path string, requestBody any, responseBody any) error {
	fullURL := c.baseURL + path

	var body io.Reader
	if requestBody != nil {
		encoded, err := json.Marshal(requestBody)
		if err != nil {
			return err
		}
		body = bytes.NewReader(encoded)
	}

	request, err := http.NewRequestWithContext(ctx, method, fullURL, body)
	if err != nil {
		return err
	}
	if requestBody != nil {
		request.Header.Set("Content-Type", "application/json")
	}

	response, err := c.httpClient.Do(request)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrServiceUnavailable, err)
	}
	defer response.Body.Close()

	if response.StatusCode < http.StatusOK || response.StatusCode >= http.StatusMultipleChoices {
		apiErr := APIError{StatusCode: response.StatusCode}
		var payload errorResponse
		if err := json.NewDecoder(response.Body).Decode(&payload); err == nil && strings.TrimSpace(payload.Message) != "" {
			apiErr.Message = payload.Message
		}
		if apiErr.Message == "" {
			apiErr.Message = response.Status
		}
		return &apiErr
	}

	if responseBody == nil {
		return nil
	}
	return json.NewDecoder(response.Body).Decode(responseBody)
}

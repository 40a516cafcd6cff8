package player

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"trivia-api/internal/trivia"
)

func TestParseCategoryArg(t *testing.T) {
	if got, err := parseCategoryArg([]string{"play"}, 1); err != nil || got != 0 {
		t.Fatalf("default parseCategoryArg = (%d, %v), want (0, nil)", got, err)
	}
	if got, err := parseCategoryArg([]string{"play", "3"}, 1); err != nil || got != 3 {
		t.Fatalf("valid parseCategoryArg = (%d, %v), want (3, nil)", got, err)
	}
	if _, err := parseCategoryArg([]string{"play", "-1"}, 1); err == nil {
		t.Fatalf("expected validation error for negative category")
	}
	if _, err := parseCategoryArg([]string{"play", "art"}, 1); err == nil {
		t.Fatalf("expected parse error for non-integer category")
	}
}

func TestPromptAnswerTrims(t *testing.T) {
	var out bytes.Buffer

	answer, err := promptAnswer(bufio.NewReader(strings.NewReader("  Mount Everest \n")), &out)
	if err != nil || answer != "Mount Everest" {
		t.Fatalf("promptAnswer = (%q, %v), want (Mount Everest, nil)", answer, err)
	}

	answer, err = promptAnswer(bufio.NewReader(strings.NewReader("no newline")), &out)
	if err != nil || answer != "no newline" {
		t.Fatalf("promptAnswer at EOF = (%q, %v), want (no newline, nil)", answer, err)
	}

	if _, err := promptAnswer(bufio.NewReader(strings.NewReader("")), &out); err == nil {
		t.Fatalf("expected error on empty input")
	}
}

func TestAnswerMatches(t *testing.T) {
	if !answerMatches(" mario ", "Mario") {
		t.Fatalf("expected case-insensitive match")
	}
	if answerMatches("Luigi", "Mario") {
		t.Fatalf("expected mismatch")
	}
}

// newQuizServer serves the given questions through /quizzes, honoring
// previous_questions and quiz_category the way the trivia service does.
func newQuizServer(t *testing.T, questions []trivia.Question) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/categories":
			_, _ = w.Write([]byte(`{"success":true,"categories":{"2":"Art","1":"Science"}}`))
		case "/quizzes":
			var request quizRequest
			if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
				t.Errorf("decode quiz request: %v", err)
			}
			asked := make(map[int]bool, len(request.PreviousQuestions))
			for _, id := range request.PreviousQuestions {
				asked[id] = true
			}
			for _, question := range questions {
				if asked[question.ID] {
					continue
				}
				if request.QuizCategory.ID != 0 && request.QuizCategory.ID != question.Category {
					continue
				}
				_ = json.NewEncoder(w).Encode(map[string]any{"success": true, "question": question})
				return
			}
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"success":false,"error":404,"message":"resource not found"}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(server.Close)
	return server
}

func TestRunPlaysRoundAndPrintsScore(t *testing.T) {
	server := newQuizServer(t, []trivia.Question{
		{ID: 1, Question: "Largest planet?", Answer: "Jupiter", Category: 1},
		{ID: 2, Question: "Painter of the Mona Lisa?", Answer: "Leonardo da Vinci", Category: 2},
		{ID: 3, Question: "Chemical symbol for gold?", Answer: "Au", Category: 1},
	})

	in := strings.NewReader("play\njupiter\nMichelangelo\n AU \nexit\n")
	var out bytes.Buffer
	if err := Run(context.Background(), in, &out, Config{ServerURL: server.URL, QuestionsPerRound: 5}); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	text := out.String()
	if !strings.Contains(text, "Wrong. The answer was Leonardo da Vinci.") {
		t.Fatalf("expected wrong-answer feedback, got: %s", text)
	}
	if !strings.Contains(text, "No more questions.") {
		t.Fatalf("expected round to end when questions run out, got: %s", text)
	}
	if !strings.Contains(text, "Score: 2/3") {
		t.Fatalf("expected score 2/3, got: %s", text)
	}
}

func TestRunPlayFiltersByCategoryAndStopsAtRoundSize(t *testing.T) {
	server := newQuizServer(t, []trivia.Question{
		{ID: 1, Question: "Largest planet?", Answer: "Jupiter", Category: 1},
		{ID: 2, Question: "Painter of the Mona Lisa?", Answer: "Leonardo da Vinci", Category: 2},
		{ID: 3, Question: "Chemical symbol for gold?", Answer: "Au", Category: 1},
	})

	in := strings.NewReader("play 1\nJupiter\n")
	var out bytes.Buffer
	if err := Run(context.Background(), in, &out, Config{ServerURL: server.URL, QuestionsPerRound: 1}); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	text := out.String()
	if strings.Contains(text, "Chemical symbol") {
		t.Fatalf("round should stop after one question, got: %s", text)
	}
	if !strings.Contains(text, "Score: 1/1") {
		t.Fatalf("expected score 1/1, got: %s", text)
	}
}

func TestRunListsCategoriesAndRejectsBadInput(t *testing.T) {
	server := newQuizServer(t, nil)

	in := strings.NewReader("categories\nplay art\ndance\nplay\nexit\n")
	var out bytes.Buffer
	if err := Run(context.Background(), in, &out, Config{ServerURL: server.URL}); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	text := out.String()
	for _, want := range []string{
		"1. Science\n2. Art\n",
		"invalid category id: must be a non-negative integer",
		"unknown command. type 'help' for usage.",
		"No more questions.",
		"No questions available.",
	} {
		if !strings.Contains(text, want) {
			t.Fatalf("expected %q in output, got: %s", want, text)
		}
	}
}

func TestRunReportsUnavailableService(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	serverURL := server.URL
	server.Close()

	in := strings.NewReader("categories\n")
	var out bytes.Buffer
	if err := Run(context.Background(), in, &out, Config{ServerURL: serverURL}); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if !strings.Contains(out.String(), "error: trivia service unavailable at "+serverURL) {
		t.Fatalf("expected unavailable message, got: %s", out.String())
	}
}

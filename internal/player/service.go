package player

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	defaultServer            = "http://127.0.0.1:8080"
	defaultQuestionsPerRound = 5
	defaultHTTPTimeout       = 5 * time.Second
)

type Config struct {
	ServerURL         string
	QuestionsPerRound int
	HTTPTimeout       time.Duration
}

func Run(ctx context.Context, in io.Reader, out io.Writer, cfg Config) error {
	serverURL := strings.TrimSpace(cfg.ServerURL)
	if serverURL == "" {
		serverURL = defaultServer
	}

	perRound := cfg.QuestionsPerRound
	if perRound <= 0 {
		perRound = defaultQuestionsPerRound
	}
	timeout := cfg.HTTPTimeout
	if timeout <= 0 {
		timeout = defaultHTTPTimeout
	}

	client := NewHTTPClient(serverURL, &http.Client{Timeout: timeout})
	reader := bufio.NewReader(in)

	fmt.Fprintf(out, "trivia-player\nserver=%s\n\n", serverURL)
	printHelp(out)

	for {
		fmt.Fprint(out, "\n> ")
		line, err := reader.ReadString('\n')
		if err != nil {
			if errors.Is(err, io.EOF) {
				fmt.Fprintln(out)
				return nil
			}
			return err
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		args := strings.Fields(line)
		command := strings.ToLower(args[0])

		switch command {
		case "help":
			printHelp(out)
		case "exit":
			return nil
		case "categories":
			if err := runCategories(ctx, out, client, serverURL); err != nil {
				fmt.Fprintf(out, "error: %v\n", err)
			}
		case "play":
			if len(args) > 2 {
				fmt.Fprintln(out, "usage: play [category_id]")
				continue
			}
			categoryID, parseErr := parseCategoryArg(args, 1)
			if parseErr != nil {
				fmt.Fprintf(out, "invalid category id: %v\n", parseErr)
				continue
			}
			if err := runRound(ctx, reader, out, client, categoryID, perRound, serverURL); err != nil {
				fmt.Fprintf(out, "error: %v\n", err)
			}
		default:
			fmt.Fprintln(out, "unknown command. type 'help' for usage.")
		}
	}
}

func runCategories(ctx context.Context, out io.Writer, client *HTTPClient, serverURL string) error {
	categories, err := client.ListCategories(ctx)
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.NotFound() {
			fmt.Fprintln(out, "No categories.")
			return nil
		}
		return describeClientError(err, serverURL)
	}

	fmt.Fprintln(out, "Categories:")
	for _, category := range categories {
		fmt.Fprintf(out, "%d. %s\n", category.ID, category.Type)
	}
	return nil
}

func runRound(ctx context.Context, reader *bufio.Reader, out io.Writer, client *HTTPClient, categoryID, perRound int, serverURL string) error {
	previous := make([]int, 0, perRound)
	score := 0

	for len(previous) < perRound {
		question, err := client.NextQuestion(ctx, previous, categoryID)
		if err != nil {
			var apiErr *APIError
			if errors.As(err, &apiErr) && apiErr.NotFound() {
				fmt.Fprintln(out, "No more questions.")
				break
			}
			return describeClientError(err, serverURL)
		}
		previous = append(previous, question.ID)

		fmt.Fprintf(out, "\n%d. %s\n", len(previous), question.Question)
		answer, err := promptAnswer(reader, out)
		if err != nil {
			return err
		}
		if answerMatches(answer, question.Answer) {
			score++
			fmt.Fprintln(out, "Correct!")
		} else {
			fmt.Fprintf(out, "Wrong. The answer was %s.\n", question.Answer)
		}
	}

	fmt.Fprintln(out)
	if len(previous) == 0 {
		fmt.Fprintln(out, "No questions available.")
		return nil
	}
	fmt.Fprintf(out, "Score: %d/%d\n", score, len(previous))
	return nil
}

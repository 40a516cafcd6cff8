package player

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"trivia-api/internal/trivia"
)

func printHelp(out io.Writer) {
	fmt.Fprintln(out, "Commands:")
	fmt.Fprintln(out, "  help")
	fmt.Fprintln(out, "  categories")
	fmt.Fprintln(out, "  play [category_id]")
	fmt.Fprintln(out, "  exit")
}

func parseCategoryArg(args []string, index int) (int, error) {
	if len(args) <= index {
		return 0, nil
	}

	value, err := strconv.Atoi(args[index])
	if err != nil || value < 0 {
		return 0, errors.New("must be a non-negative integer")
	}
	return value, nil
}

func promptAnswer(reader *bufio.Reader, out io.Writer) (string, error) {
	fmt.Fprint(out, "Your answer: ")
	line, err := reader.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// answerMatches compares answers ignoring case and surrounding whitespace.
func answerMatches(given, want string) bool {
	return strings.EqualFold(strings.TrimSpace(given), strings.TrimSpace(want))
}

func sortCategories(categories []trivia.Category) {
	sort.Slice(categories, func(i, j int) bool {
		return categories[i].ID < categories[j].ID
	})
}

func describeClientError(err error, serverURL string) error {
	if errors.Is(err, ErrServiceUnavailable) {
		return fmt.Errorf("trivia service unavailable at %s", serverURL)
	}
	return err
}

package importer

import (
	"strings"

	"github.com/brianvoe/gofakeit/v6"

	"trivia-api/internal/opentdb"
)

var fakeDifficulties = []string{"easy", "medium", "hard"}

// FakeQuestions generates OpenTriviaDB-shaped questions for local
// development databases.
func FakeQuestions(count int, seed int64) []opentdb.RawQuestion {
	faker := gofakeit.New(seed)

	questions := make([]opentdb.RawQuestion, 0, count)
	for i := 0; i < count; i++ {
		sentence := strings.TrimRight(faker.Sentence(faker.Number(5, 10)), ".")
		questions = append(questions, opentdb.RawQuestion{
			Type:          "text",
			Difficulty:    faker.RandomString(fakeDifficulties),
			Category:      faker.RandomString(DefaultCategories),
			Question:      sentence + "?",
			CorrectAnswer: faker.Word(),
		})
	}
	return questions
}

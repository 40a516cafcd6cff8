package trivia

// QuestionsPerPage is the fixed page size of the question listing.
const QuestionsPerPage = 10

type Category struct {
	ID   int    `json:"id"`
	Type string `json:"type"`
}

type Question struct {
	ID         int    `json:"id"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Category   int    `json:"category"`
	Difficulty int    `json:"difficulty"`
}

// QuestionInput is a partially filled creation request. A nil field was not
// supplied by the caller.
type QuestionInput struct {
	Question   *string `json:"question" validate:"required"`
	Answer     *string `json:"answer" validate:"required"`
	Category   *int    `json:"category" validate:"required"`
	Difficulty *int    `json:"difficulty" validate:"required"`
}

type QuestionPage struct {
	Questions  []Question
	Total      int
	Categories map[int]string
}

func CategoryMap(categories []Category) map[int]string {
	out := make(map[int]string, len(categories))
	for _, category := range categories {
		out[category.ID] = category.Type
	}
	return out
}

// Paginate returns the 1-based page of questions. Pages before the first or
// past the end come back empty.
func Paginate(questions []Question, page, perPage int) []Question {
	if page < 1 || perPage <= 0 {
		return []Question{}
	}
	pages := (len(questions) + perPage - 1) / perPage
	if page > pages {
		return []Question{}
	}
	start := (page - 1) * perPage
	end := start + perPage
	if end > len(questions) {
		end = len(questions)
	}
	return questions[start:end]
}

func excludeQuestions(questions []Question, ids []int) []Question {
	if len(ids) == 0 {
		return questions
	}
	seen := make(map[int]struct{}, len(ids))
	for _, id := range ids {
		seen[id] = struct{}{}
	}

	remaining := make([]Question, 0, len(questions))
	for _, question := range questions {
		if _, ok := seen[question.ID]; ok {
			continue
		}
		remaining = append(remaining, question)
	}
	return remaining
}

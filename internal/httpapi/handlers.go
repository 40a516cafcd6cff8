package httpapi

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
)

func (a *API) HandleCategories(c *gin.Context) {
	categories, err := a.service.ListCategories(c.Request.Context())
	if err != nil {
		a.writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, categoriesResponse{
		Success:    true,
		Categories: categories,
	})
}

func (a *API) HandleQuestions(c *gin.Context) {
	page, err := a.service.ListQuestions(c.Request.Context(), parsePage(c))
	if err != nil {
		a.writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, questionsPageResponse{
		Success:        true,
		Questions:      page.Questions,
		TotalQuestions: page.Total,
		Categories:     page.Categories,
	})
}

func (a *API) HandleDeleteQuestion(c *gin.Context) {
	questionID, ok := parseIDParam(c, "question_id")
	if !ok {
		writeError(c, http.StatusNotFound)
		return
	}

	deletedID, err := a.service.DeleteQuestion(c.Request.Context(), questionID)
	if err != nil {
		a.writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, deleteQuestionResponse{
		Success: true,
		ID:      deletedID,
	})
}

// HandlePostQuestions searches when searchTerm is non-empty and creates a
// question otherwise.
func (a *API) HandlePostQuestions(c *gin.Context) {
	var request questionRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		a.writeUnprocessable(c, err)
		return
	}

	if term, ok := request.searchTerm(); ok {
		questions, err := a.service.SearchQuestions(c.Request.Context(), term)
		if err != nil {
			a.writeServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, searchQuestionsResponse{
			Success:        true,
			Questions:      questions,
			TotalQuestions: len(questions),
		})
		return
	}

	created, err := a.service.CreateQuestion(c.Request.Context(), request.toInput())
	if err != nil {
		// Creation never reports not-found; a missing field is unprocessable.
		a.writeUnprocessable(c, err)
		return
	}

	c.JSON(http.StatusOK, createQuestionResponse{
		Success: true,
		Created: created.ID,
	})
}

func (a *API) HandleCategoryQuestions(c *gin.Context) {
	categoryID, ok := parseIDParam(c, "category_id")
	if !ok {
		writeError(c, http.StatusNotFound)
		return
	}

	questions, err := a.service.QuestionsByCategory(c.Request.Context(), categoryID)
	if err != nil {
		a.writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, categoryQuestionsResponse{
		Success:         true,
		Questions:       questions,
		TotalQuestions:  len(questions),
		CurrentCategory: categoryID,
	})
}

func (a *API) HandleQuiz(c *gin.Context) {
	var request quizRequest
	if err := c.ShouldBindJSON(&request); err != nil && !errors.Is(err, io.EOF) {
		a.writeUnprocessable(c, err)
		return
	}

	question, err := a.service.NextQuizQuestion(c.Request.Context(), request.previousIDs(), request.categoryID())
	if err != nil {
		a.writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, quizResponse{
		Success:  true,
		Question: question,
	})
}

func (a *API) HandleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

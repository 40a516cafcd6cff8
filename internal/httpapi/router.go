package httpapi

import (
	"net/http"
	"slices"
	"time"

	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"trivia-api/internal/trivia"
)

// NewRouter wires the trivia endpoints. An empty allowedOrigins list, or one
// containing "*", allows every origin.
func NewRouter(service *trivia.Service, logger *zap.Logger, allowedOrigins []string) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	api := NewAPI(service, logger)
	m := newMetrics()
	allowAll := len(allowedOrigins) == 0 || slices.Contains(allowedOrigins, "*")

	corsConfig := cors.Config{
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{"Content-Type", "Authorization"},
		MaxAge:       12 * time.Hour,
	}
	if allowAll {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = allowedOrigins
	}

	router := gin.New()
	router.HandleMethodNotAllowed = true
	router.Use(
		ginzap.Ginzap(logger, time.RFC3339, true),
		ginzap.CustomRecoveryWithZap(logger, true, func(c *gin.Context, _ any) {
			writeError(c, http.StatusUnprocessableEntity)
		}),
		requestID(),
		m.middleware(),
		corsHeaders(allowAll),
		cors.New(corsConfig),
	)

	router.GET("/categories", api.HandleCategories)
	router.GET("/categories/:category_id/questions", api.HandleCategoryQuestions)
	router.GET("/questions", api.HandleQuestions)
	router.POST("/questions", api.HandlePostQuestions)
	router.DELETE("/questions/:question_id", api.HandleDeleteQuestion)
	router.POST("/quizzes", api.HandleQuiz)
	router.GET("/healthz", api.HandleHealth)
	router.GET("/metrics", m.handler())

	router.NoRoute(func(c *gin.Context) { writeError(c, http.StatusNotFound) })
	router.NoMethod(writeMethodNotAllowed)

	return router
}

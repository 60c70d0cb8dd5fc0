package routes

import (
	"brainscript/controllers"
	"brainscript/internal/logger"
	"brainscript/internal/ratelimit"
	"brainscript/middlewares"

	"github.com/gin-gonic/gin"
)

// Limits are the per-user request budgets for the chatty endpoints
type Limits struct {
	TrackPerMinute int
	QuizPerMinute  int
}

// SetupUserRoutes mounts activity, learning and notes endpoints on an
// authenticated group.
func SetupUserRoutes(router *gin.RouterGroup, limiter *ratelimit.Limiter, limits Limits, log *logger.Logger) {
	trackLimit := middlewares.RateLimit(limiter, ratelimit.PerMinute("track", limits.TrackPerMinute), log)
	quizLimit := middlewares.RateLimit(limiter, ratelimit.PerMinute("quiz", limits.QuizPerMinute), log)

	router.GET("/dashboard", controllers.GetDashboard)
	router.PUT("/profile", controllers.UpdateProfile)
	router.POST("/track", trackLimit, controllers.Track)
	router.GET("/learning-history", controllers.GetLearningHistory)
	router.POST("/quiz-result", quizLimit, controllers.SaveQuizResult)

	router.POST("/notes", controllers.SaveNote)
	router.GET("/notes", controllers.ListNotes)
	router.GET("/notes/:videoId", controllers.GetNote)
	router.DELETE("/notes/:videoId", controllers.DeleteNote)
}

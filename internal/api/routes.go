package api

import (
	"math/rand"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/camica-bit/fitness-tracker-ai/internal/prompt"
	"github.com/camica-bit/fitness-tracker-ai/internal/service"
	"github.com/camica-bit/fitness-tracker-ai/pkg/logger"
)

func SetupRoutes(
	router *gin.Engine,
	workoutService service.WorkoutService,
	progressService service.ProgressService,
	log *logger.Logger,
) {
	profileHandler := NewProfileHandler(workoutService)
	workoutHandler := NewWorkoutHandler(workoutService)
	progressHandler := NewProgressHandler(progressService)

	router.Use(RequestLogger(log))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	router.GET("/api/quotes", func(c *gin.Context) {
		quotes := prompt.MotivationalQuotes()
		c.JSON(http.StatusOK, gin.H{"quote": quotes[rand.Intn(len(quotes))]})
	})

	apiV1 := router.Group("/api/v1")
	{
		apiV1.POST("/profile", profileHandler.SaveProfile)
		apiV1.GET("/profile/:userId", profileHandler.GetProfile)

		apiV1.POST("/workout/generate", workoutHandler.Generate)
		apiV1.POST("/workout/regenerate", workoutHandler.Regenerate)
		apiV1.GET("/workout/history/:userId", workoutHandler.GetHistory)
		apiV1.GET("/workout/:userId", workoutHandler.GetCurrent)

		apiV1.POST("/progress/exercise", progressHandler.ToggleExercise)
		apiV1.POST("/progress/streak", progressHandler.UpdateStreak)
		apiV1.GET("/progress/:userId", progressHandler.GetProgress)

		apiV1.GET("/stats/:userId", workoutHandler.GetStats)

		apiV1.POST("/user/generate-id", profileHandler.GenerateUserID)
		apiV1.DELETE("/user/:userId", profileHandler.DeleteUser)
	}
}

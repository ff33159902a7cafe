package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/camica-bit/fitness-tracker-ai/internal/service"
)

type ProgressHandler struct {
	progressService service.ProgressService
}

func NewProgressHandler(progressService service.ProgressService) *ProgressHandler {
	return &ProgressHandler{progressService: progressService}
}

// --- DTOs ---

// ToggleExerciseRequest marks one exercise complete or incomplete.
type ToggleExerciseRequest struct {
	UserID        string `json:"userId"`
	Day           string `json:"day"`
	ExerciseIndex *int   `json:"exerciseIndex"`
	Completed     bool   `json:"completed"`
}

// UpdateStreakRequest increments or resets the streak counter.
type UpdateStreakRequest struct {
	UserID      string `json:"userId"`
	Incremented bool   `json:"incremented"`
}

// --- Handler Methods ---

// ToggleExercise handles POST /api/v1/progress/exercise.
func (h *ProgressHandler) ToggleExercise(c *gin.Context) {
	var req ToggleExerciseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if req.UserID == "" || req.Day == "" || req.ExerciseIndex == nil {
		abortWithError(c, http.StatusBadRequest, "userId, day, and exerciseIndex are required")
		return
	}

	summary, err := h.progressService.ToggleExercise(
		c.Request.Context(), req.UserID, req.Day, *req.ExerciseIndex, req.Completed)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"message":   "Exercise status updated",
		"completed": req.Completed,
		"progress":  summary,
	})
}

// UpdateStreak handles POST /api/v1/progress/streak.
func (h *ProgressHandler) UpdateStreak(c *gin.Context) {
	var req UpdateStreakRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if req.UserID == "" {
		abortWithError(c, http.StatusBadRequest, "userId is required")
		return
	}

	streak, err := h.progressService.UpdateStreak(c.Request.Context(), req.UserID, req.Incremented)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Streak updated", "streak": streak})
}

// GetProgress handles GET /api/v1/progress/:userId.
func (h *ProgressHandler) GetProgress(c *gin.Context) {
	summary, err := h.progressService.GetProgress(c.Request.Context(), c.Param("userId"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":            true,
		"progress":           summary.Progress,
		"overall_completion": summary.OverallCompletion,
		"current_streak":     summary.CurrentStreak,
	})
}

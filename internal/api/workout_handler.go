package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/camica-bit/fitness-tracker-ai/internal/domain"
	"github.com/camica-bit/fitness-tracker-ai/internal/service"
)

type WorkoutHandler struct {
	workoutService service.WorkoutService
}

func NewWorkoutHandler(workoutService service.WorkoutService) *WorkoutHandler {
	return &WorkoutHandler{workoutService: workoutService}
}

// --- DTOs ---

// GenerateRequest carries the profile an initial generation runs against.
type GenerateRequest struct {
	Profile ProfileRequest `json:"userProfile"`
}

// RegenerateRequest selects the adjustment strategy for the current plan.
type RegenerateRequest struct {
	UserID       string `json:"userId"`
	FeedbackType string `json:"feedbackType"`
}

// --- Handler Methods ---

// Generate handles POST /api/v1/workout/generate.
func (h *WorkoutHandler) Generate(c *gin.Context) {
	var req GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	plan, err := h.workoutService.Generate(c.Request.Context(), req.Profile.toDomain())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"workout": plan,
		"message": "Workout generated successfully",
	})
}

// Regenerate handles POST /api/v1/workout/regenerate.
func (h *WorkoutHandler) Regenerate(c *gin.Context) {
	var req RegenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if req.UserID == "" {
		abortWithError(c, http.StatusBadRequest, "userId is required")
		return
	}

	plan, err := h.workoutService.Regenerate(c.Request.Context(), req.UserID, domain.FeedbackType(req.FeedbackType))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"workout": plan,
		"message": "Workout regenerated with '" + req.FeedbackType + "' adjustments",
	})
}

// GetCurrent handles GET /api/v1/workout/:userId.
func (h *WorkoutHandler) GetCurrent(c *gin.Context) {
	plan, err := h.workoutService.GetCurrentPlan(c.Request.Context(), c.Param("userId"))
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "workout": plan})
}

// GetHistory handles GET /api/v1/workout/history/:userId.
func (h *WorkoutHandler) GetHistory(c *gin.Context) {
	history, err := h.workoutService.GetPlanHistory(c.Request.Context(), c.Param("userId"))
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "workouts": history, "count": len(history)})
}

// GetStats handles GET /api/v1/stats/:userId.
func (h *WorkoutHandler) GetStats(c *gin.Context) {
	stats, err := h.workoutService.GetStats(c.Request.Context(), c.Param("userId"))
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "stats": stats})
}

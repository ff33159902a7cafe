package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/camica-bit/fitness-tracker-ai/internal/domain"
	"github.com/camica-bit/fitness-tracker-ai/internal/service"
)

type ProfileHandler struct {
	workoutService service.WorkoutService
}

func NewProfileHandler(workoutService service.WorkoutService) *ProfileHandler {
	return &ProfileHandler{workoutService: workoutService}
}

// --- DTOs ---

// ProfileRequest mirrors domain.Profile for request binding.
type ProfileRequest struct {
	UserID         string   `json:"userId"`
	Age            int      `json:"age"`
	Gender         string   `json:"gender"`
	HeightCm       int      `json:"heightCm"`
	WeightKg       float64  `json:"weightKg"`
	Goal           string   `json:"goal"`
	Experience     string   `json:"experience"`
	Equipment      []string `json:"equipment"`
	SessionMinutes int      `json:"sessionMinutes"`
	DaysPerWeek    int      `json:"daysPerWeek"`
}

func (r *ProfileRequest) toDomain() *domain.Profile {
	equipment := make([]domain.Equipment, 0, len(r.Equipment))
	for _, eq := range r.Equipment {
		equipment = append(equipment, domain.Equipment(eq))
	}
	return &domain.Profile{
		UserID:         r.UserID,
		Age:            r.Age,
		Gender:         r.Gender,
		HeightCm:       r.HeightCm,
		WeightKg:       r.WeightKg,
		Goal:           domain.FitnessGoal(r.Goal),
		Experience:     domain.ExperienceLevel(r.Experience),
		Equipment:      equipment,
		SessionMinutes: r.SessionMinutes,
		DaysPerWeek:    r.DaysPerWeek,
	}
}

// --- Handler Methods ---

// SaveProfile handles POST /api/v1/profile.
func (h *ProfileHandler) SaveProfile(c *gin.Context) {
	var req ProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	profile, err := h.workoutService.SaveProfile(c.Request.Context(), req.toDomain())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "User profile saved successfully",
		"userId":  profile.UserID,
	})
}

// GetProfile handles GET /api/v1/profile/:userId.
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	profile, err := h.workoutService.GetProfile(c.Request.Context(), c.Param("userId"))
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "profile": profile})
}

// GenerateUserID handles POST /api/v1/user/generate-id.
func (h *ProfileHandler) GenerateUserID(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"userId": uuid.NewString()})
}

// DeleteUser handles DELETE /api/v1/user/:userId.
func (h *ProfileHandler) DeleteUser(c *gin.Context) {
	userID := c.Param("userId")
	if err := h.workoutService.DeleteUser(c.Request.Context(), userID); err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "User data deleted"})
}

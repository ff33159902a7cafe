package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/camica-bit/fitness-tracker-ai/internal/domain"
	"github.com/camica-bit/fitness-tracker-ai/internal/engine"
	"github.com/camica-bit/fitness-tracker-ai/internal/generation"
	"github.com/camica-bit/fitness-tracker-ai/internal/service"
	"github.com/camica-bit/fitness-tracker-ai/pkg/logger"
)

// RequestLogger creates a Gin middleware that logs each request with method,
// path, status, and latency.
func RequestLogger(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Infow("request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency", time.Since(start).String(),
		)
	}
}

// Helper to return JSON error response and abort request
func abortWithError(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(code, gin.H{"success": false, "error": message})
}

// respondWithError maps core error kinds to HTTP status codes: validation →
// 400, not-found → 404, busy → 409, configuration → 503, upstream → 502/504.
// Messages stay actionable without leaking raw responses or credentials.
func respondWithError(c *gin.Context, err error) {
	var validationErr domain.ValidationError
	var genErr *generation.Error

	switch {
	case errors.As(err, &validationErr):
		abortWithError(c, http.StatusBadRequest, validationErr.Error())
	case errors.Is(err, engine.ErrNoPreviousPlan):
		abortWithError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, engine.ErrBusy):
		abortWithError(c, http.StatusConflict, err.Error())
	case errors.Is(err, service.ErrProfileNotFound),
		errors.Is(err, service.ErrPlanNotFound),
		errors.Is(err, service.ErrProgressNotFound),
		errors.Is(err, service.ErrDayNotFound),
		errors.Is(err, service.ErrExerciseNotFound):
		abortWithError(c, http.StatusNotFound, err.Error())
	case errors.As(err, &genErr):
		respondWithGenerationError(c, genErr)
	default:
		abortWithError(c, http.StatusInternalServerError, "Internal server error.")
	}
}

func respondWithGenerationError(c *gin.Context, genErr *generation.Error) {
	switch genErr.Kind {
	case generation.KindConfiguration:
		abortWithError(c, http.StatusServiceUnavailable, "Plan generation is not configured. Check the API credential.")
	case generation.KindUpstream:
		status := http.StatusBadGateway
		if errors.Is(genErr, context.DeadlineExceeded) {
			status = http.StatusGatewayTimeout
		}
		abortWithError(c, status, "The AI service is unavailable, please retry.")
	case generation.KindParse:
		abortWithError(c, http.StatusBadGateway, "AI response could not be parsed, please retry.")
	case generation.KindConstraint:
		abortWithError(c, http.StatusBadGateway, "The generated plan violated your equipment constraints, please retry.")
	default:
		abortWithError(c, http.StatusInternalServerError, "Internal server error.")
	}
}

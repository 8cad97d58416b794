package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/ErlanBelekov/jobboard/internal/domain"
	"github.com/ErlanBelekov/jobboard/internal/reqctx"
	"github.com/ErlanBelekov/jobboard/internal/usecase"
	"github.com/gin-gonic/gin"
)

type profileUsecaser interface {
	Create(ctx context.Context, input usecase.CreateProfileInput) (*domain.CompanyProfile, error)
	GetByUserID(ctx context.Context, userID string) (*domain.CompanyProfile, error)
}

type ProfileHandler struct {
	profileUsecase profileUsecaser
	logger         *slog.Logger
}

func NewProfileHandler(profileUsecase profileUsecaser, logger *slog.Logger) *ProfileHandler {
	return &ProfileHandler{
		profileUsecase: profileUsecase,
		logger:         logger.With("component", "profile_handler"),
	}
}

type createProfileRequest struct {
	Name        string  `json:"name"        binding:"required,notblank"`
	Description string  `json:"description" binding:"required,notblank"`
	Website     *string `json:"website"`
}

type profileResponse struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Website     *string   `json:"website"`
	CreatedAt   time.Time `json:"created_at"`
}

func toProfileResponse(p *domain.CompanyProfile) profileResponse {
	return profileResponse{
		ID:          p.ID,
		UserID:      p.UserID,
		Name:        p.Name,
		Description: p.Description,
		Website:     p.Website,
		CreatedAt:   p.CreatedAt,
	}
}

// POST /api/v1/users/profile/create
func (h *ProfileHandler) Create(c *gin.Context) {
	user, ok := reqctx.User(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": errUnauthenticated})
		return
	}

	var req createProfileRequest
	if !bindJSON(c, &req) {
		return
	}

	profile, err := h.profileUsecase.Create(c.Request.Context(), usecase.CreateProfileInput{
		UserID:      user.ID,
		Name:        req.Name,
		Description: req.Description,
		Website:     req.Website,
	})
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateProfile) {
			c.JSON(http.StatusBadRequest, gin.H{"error": errDuplicateProfile})
			return
		}
		writeInternalError(c, h.logger, "create company profile", err)
		return
	}

	c.JSON(http.StatusOK, toProfileResponse(profile))
}

// GET /api/v1/users/profile
func (h *ProfileHandler) Get(c *gin.Context) {
	user, ok := reqctx.User(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": errUnauthenticated})
		return
	}

	profile, err := h.profileUsecase.GetByUserID(c.Request.Context(), user.ID)
	if err != nil {
		if errors.Is(err, domain.ErrProfileNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": errProfileNotFound})
			return
		}
		writeInternalError(c, h.logger, "get company profile", err)
		return
	}

	c.JSON(http.StatusOK, toProfileResponse(profile))
}

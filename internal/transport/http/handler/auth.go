package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/ErlanBelekov/jobboard/internal/domain"
	"github.com/ErlanBelekov/jobboard/internal/usecase"
	"github.com/gin-gonic/gin"
)

// authUsecaser is the subset of AuthUsecase the handler needs.
// Defined here (point of use) so tests can inject a fake.
type authUsecaser interface {
	Signup(ctx context.Context, input usecase.SignupInput) (*domain.User, error)
	Login(ctx context.Context, email, password string) (*usecase.LoginResult, error)
}

type AuthHandler struct {
	authUsecase authUsecaser
	logger      *slog.Logger
}

func NewAuthHandler(authUsecase authUsecaser, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
		logger:      logger.With("component", "auth_handler"),
	}
}

type signupRequest struct {
	Email     string      `json:"email"     binding:"required,email"`
	Password  string      `json:"password"  binding:"required,maxbytes=72"`
	FirstName string      `json:"firstname" binding:"required,notblank"`
	LastName  string      `json:"lastname"  binding:"required,notblank"`
	Role      domain.Role `json:"role"      binding:"required,oneof=company job_seeker"`
	Country   string      `json:"country"   binding:"required,notblank"`
}

type loginRequest struct {
	Email    string `json:"email"    binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type userResponse struct {
	ID        string      `json:"id"`
	Email     string      `json:"email"`
	FirstName string      `json:"firstname"`
	LastName  string      `json:"lastname"`
	Role      domain.Role `json:"role"`
	Country   string      `json:"country"`
	CreatedAt time.Time   `json:"created_at"`
}

type loginResponse struct {
	Token string `json:"token"`
	Email string `json:"email"`
	ID    string `json:"id"`
}

// POST /api/v1/auth/signup
func (h *AuthHandler) Signup(c *gin.Context) {
	var req signupRequest
	if !bindJSON(c, &req) {
		return
	}

	user, err := h.authUsecase.Signup(c.Request.Context(), usecase.SignupInput{
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Role:      req.Role,
		Country:   req.Country,
	})
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateEmail) {
			c.JSON(http.StatusBadRequest, gin.H{"error": errDuplicateEmail})
			return
		}
		if errors.Is(err, domain.ErrPasswordTooLong) {
			writeFieldErrors(c, FieldError{Field: "password", Message: errPasswordTooLong})
			return
		}
		writeInternalError(c, h.logger, "signup", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data": userResponse{
			ID:        user.ID,
			Email:     user.Email,
			FirstName: user.FirstName,
			LastName:  user.LastName,
			Role:      user.Role,
			Country:   user.Country,
			CreatedAt: user.CreatedAt,
		},
	})
}

// POST /api/v1/auth/login
// Unknown email and wrong password return the same 400 body.
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if !bindJSON(c, &req) {
		return
	}

	res, err := h.authUsecase.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidCredentials})
			return
		}
		writeInternalError(c, h.logger, "login", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": loginResponse{
			Token: res.Token,
			Email: res.User.Email,
			ID:    res.User.ID,
		},
	})
}

// writeInternalError logs err and answers 503 for store outages, 500 otherwise.
// A request the client already abandoned is only logged.
func writeInternalError(c *gin.Context, logger *slog.Logger, op string, err error) {
	if errors.Is(err, context.Canceled) {
		logger.InfoContext(c.Request.Context(), op+": request canceled", "error", err)
		c.AbortWithStatus(statusClientClosedRequest)
		return
	}
	logger.ErrorContext(c.Request.Context(), op, "error", err)
	if errors.Is(err, domain.ErrStoreUnavailable) {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": errStoreUnavailable})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": errInternalServer})
}

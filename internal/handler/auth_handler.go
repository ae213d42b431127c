package handler

import (
	"errors"
	"net/http"

	"schedulink-backend/internal/middleware"
	"schedulink-backend/internal/model"
	"schedulink-backend/internal/service"
	apperrors "schedulink-backend/pkg/app_errors"
	"schedulink-backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AuthHandler struct {
	service service.AuthService
}

func NewAuthHandler(service service.AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

func (h *AuthHandler) RegisterRoutes(r *gin.RouterGroup) {
	router := r.Group("/auth")
	{
		router.POST("/register", h.Register)
		router.POST("/login", h.Login)

		authed := router.Group("", middleware.Authenticate(h.service))
		authed.GET("/me", h.Me)
		authed.POST("/logout", h.Logout)
		authed.GET("/users", middleware.RequireRole(model.UserRoleAdmin), h.ListUsers)
	}
}

// RegisterRequest 自行註冊一律為 user，body 內的 role 會被忽略
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := BindJson(c, &req); err != nil {
		return
	}
	id, err := h.service.Register(c, service.RegisterParams{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		h.handleError(c, err, "Register", "Failed to register user")
		return
	}
	logger.WithComponent("handler").Info("User registered",
		zap.Int("user_id", id),
		zap.String("username", req.Username),
	)
	respondCreated(c, id)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := BindJson(c, &req); err != nil {
		return
	}
	token, user, err := h.service.Login(c, req.Username, req.Password)
	if err != nil {
		h.handleError(c, err, "Login", "Failed to log in")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user":  user,
	})
}

func (h *AuthHandler) Me(c *gin.Context) {
	claims, _ := middleware.ClaimsFromContext(c)
	user, err := h.service.GetUser(c, claims.UserID)
	if err != nil {
		h.handleError(c, err, "Me", "Failed to load user")
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *AuthHandler) Logout(c *gin.Context) {
	claims, _ := middleware.ClaimsFromContext(c)
	if err := h.service.Logout(c, claims); err != nil {
		h.handleError(c, err, "Logout", "Failed to log out")
		return
	}
	respondMessage(c, "Logged out")
}

func (h *AuthHandler) ListUsers(c *gin.Context) {
	users, err := h.service.ListUsers(c)
	if err != nil {
		h.handleError(c, err, "ListUsers", "Failed to load users")
		return
	}
	c.JSON(http.StatusOK, users)
}

func (h *AuthHandler) handleError(c *gin.Context, err error, operation, fallback string) {
	log := logger.WithComponent("handler").With(zap.String("operation", operation), zap.Error(err))
	switch {
	case errors.Is(err, apperrors.ErrMissingRequiredFields):
		log.Warn("Missing required fields")
		c.JSON(http.StatusBadRequest, gin.H{"error": "username, email and password are required"})
	case errors.Is(err, apperrors.ErrDuplicateUser):
		log.Warn("Duplicate user")
		c.JSON(http.StatusConflict, gin.H{"error": "Username or email already exists"})
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		log.Warn("Invalid credentials")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid username or password"})
	case errors.Is(err, apperrors.ErrUserNotFound):
		log.Warn("User not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
	default:
		log.Error("Unexpected error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}

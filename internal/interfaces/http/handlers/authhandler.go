package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"issuetracker/internal/application/user/dto"
	"issuetracker/internal/application/user/usecases"
	"issuetracker/internal/interfaces/http/handlers/common"
	"issuetracker/internal/shared/errors"
	"issuetracker/internal/shared/logger"
	"issuetracker/internal/shared/utils"
)

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Name     string `json:"name" binding:"required"`
	LastName string `json:"last_name"`
	Password string `json:"password" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthHandler struct {
	registerUC registerUseCase
	loginUC    loginUseCase
	logger     logger.Interface
}

func NewAuthHandler(registerUC registerUseCase, loginUC loginUseCase, logger logger.Interface) *AuthHandler {
	return &AuthHandler{
		registerUC: registerUC,
		loginUC:    loginUC,
		logger:     logger,
	}
}

// Register godoc
// @Summary Register a new user
// @Description Create an account with email and password. New accounts hold the staff capability.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Registration data"
// @Success 201 {object} utils.APIResponse{data=dto.UserResponse} "User registered"
// @Failure 400 {object} utils.APIResponse "Validation error or email already registered"
// @Failure 429 {object} utils.APIResponse "Too many requests"
// @Router /api/auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for register", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	u, err := h.registerUC.Execute(c.Request.Context(), usecases.RegisterCommand{
		Email:    req.Email,
		Name:     req.Name,
		LastName: req.LastName,
		Password: req.Password,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, dto.ToUserResponse(u), "User registered successfully")
}

// Login godoc
// @Summary Login
// @Description Exchange email and password for a bearer access token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} utils.APIResponse{data=dto.LoginResponse} "Login successful"
// @Failure 400 {object} utils.APIResponse "Invalid request body"
// @Failure 401 {object} utils.APIResponse "Invalid email or password"
// @Failure 429 {object} utils.APIResponse "Too many requests"
// @Router /api/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	result, err := h.loginUC.Execute(c.Request.Context(), usecases.LoginCommand{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		if errors.ShouldLogAuthError(err) {
			h.logger.Warnw("login failed", "error", err)
		}
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Login successful", dto.LoginResponse{
		AccessToken: result.AccessToken,
		TokenType:   "Bearer",
		ExpiresIn:   result.ExpiresIn,
		User:        dto.ToUserResponse(result.User),
	})
}

// GetCurrentUser godoc
// @Summary Current user
// @Security Bearer
// @Tags auth
// @Produce json
// @Success 200 {object} utils.APIResponse{data=dto.UserResponse}
// @Failure 401 {object} utils.APIResponse "Unauthorized"
// @Router /api/auth/me [get]
func (h *AuthHandler) GetCurrentUser(c *gin.Context) {
	actor := common.CurrentActor(c)
	if actor == nil {
		utils.ErrorResponseWithError(c, errors.NewUnauthorizedError("authentication required"))
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", dto.ToUserResponse(actor))
}

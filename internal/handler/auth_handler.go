package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/interview-booking-api/internal/dto"
	"github.com/noah-isme/interview-booking-api/internal/models"
	"github.com/noah-isme/interview-booking-api/pkg/response"
)

type authService interface {
	CreateInvite(ctx context.Context, req dto.CreateInviteRequest) (*dto.InviteResponse, error)
	Register(ctx context.Context, req dto.RegisterRequest) (*dto.TokenResponse, error)
	Login(ctx context.Context, req dto.LoginRequest) (*dto.TokenResponse, error)
	Me(ctx context.Context, interviewerID int64) (*models.InterviewerProfile, error)
}

// AuthHandler wires interviewer onboarding and login endpoints to the auth service.
type AuthHandler struct {
	service authService
}

// NewAuthHandler creates a new handler.
func NewAuthHandler(svc authService) *AuthHandler {
	return &AuthHandler{service: svc}
}

// CreateInvite godoc
// @Summary Invite an interviewer
// @Description Creates a single-use registration invite. This route is not authenticated.
// @Tags Authentication
// @Accept json
// @Produce json
// @Param payload body dto.CreateInviteRequest true "Invitee"
// @Success 201 {object} dto.InviteResponse
// @Failure 400 {object} errors.Error
// @Router /auth/invite [post]
func (h *AuthHandler) CreateInvite(c *gin.Context) {
	var req dto.CreateInviteRequest
	if !bindJSON(c, &req) {
		return
	}
	res, err := h.service.CreateInvite(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, res)
}

// Register godoc
// @Summary Register an interviewer
// @Description Exchanges an invite token and profile for an interviewer account
// @Tags Authentication
// @Accept json
// @Produce json
// @Param payload body dto.RegisterRequest true "Registration payload"
// @Success 201 {object} dto.TokenResponse
// @Failure 400 {object} errors.Error
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if !bindJSON(c, &req) {
		return
	}
	res, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, res)
}

// Login godoc
// @Summary Authenticate interviewer
// @Tags Authentication
// @Accept json
// @Produce json
// @Param payload body dto.LoginRequest true "Login payload"
// @Success 200 {object} dto.TokenResponse
// @Failure 400 {object} errors.Error
// @Failure 401 {object} errors.Error
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindJSON(c, &req) {
		return
	}
	res, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, res)
}

// Me godoc
// @Summary Current interviewer profile
// @Tags Authentication
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.InterviewerProfile
// @Failure 401 {object} errors.Error
// @Failure 404 {object} errors.Error
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	claims, ok := currentClaims(c)
	if !ok {
		return
	}
	profile, err := h.service.Me(c.Request.Context(), claims.InterviewerID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, profile)
}

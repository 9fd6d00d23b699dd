package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/interview-booking-api/internal/dto"
	"github.com/noah-isme/interview-booking-api/internal/models"
	"github.com/noah-isme/interview-booking-api/pkg/response"
)

type studentService interface {
	RequestCode(ctx context.Context, req dto.RequestCodeRequest) error
	VerifyCode(ctx context.Context, req dto.VerifyCodeRequest) (*dto.TokenResponse, error)
	Me(ctx context.Context, email string) (*models.StudentProfile, error)
}

// StudentHandler exposes student email verification endpoints.
type StudentHandler struct {
	service studentService
}

// NewStudentHandler creates a new handler.
func NewStudentHandler(svc studentService) *StudentHandler {
	return &StudentHandler{service: svc}
}

// RequestCode godoc
// @Summary Email a verification code
// @Tags Student
// @Accept json
// @Produce json
// @Param payload body dto.RequestCodeRequest true "Student email"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.Error
// @Failure 429 {object} errors.Error
// @Router /student/request-code [post]
func (h *StudentHandler) RequestCode(c *gin.Context) {
	var req dto.RequestCodeRequest
	if !bindJSON(c, &req) {
		return
	}
	req.IP = c.ClientIP()
	if err := h.service.RequestCode(c.Request.Context(), req); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, http.StatusOK, "Verification code sent to your email")
}

// VerifyCode godoc
// @Summary Exchange a verification code for a student token
// @Tags Student
// @Accept json
// @Produce json
// @Param payload body dto.VerifyCodeRequest true "Email and code"
// @Success 200 {object} dto.TokenResponse
// @Failure 400 {object} errors.Error
// @Router /student/verify-code [post]
func (h *StudentHandler) VerifyCode(c *gin.Context) {
	var req dto.VerifyCodeRequest
	if !bindJSON(c, &req) {
		return
	}
	res, err := h.service.VerifyCode(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, res)
}

// Me godoc
// @Summary Current student and active booking
// @Tags Student
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.StudentProfile
// @Failure 401 {object} errors.Error
// @Router /student/me [get]
func (h *StudentHandler) Me(c *gin.Context) {
	claims, ok := currentClaims(c)
	if !ok {
		return
	}
	profile, err := h.service.Me(c.Request.Context(), claims.Email)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, profile)
}

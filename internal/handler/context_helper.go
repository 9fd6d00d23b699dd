package handler

import (
	"errors"
	"io"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/interview-booking-api/internal/middleware"
	"github.com/noah-isme/interview-booking-api/internal/models"
	appErrors "github.com/noah-isme/interview-booking-api/pkg/errors"
	"github.com/noah-isme/interview-booking-api/pkg/response"
)

var errInvalidBody = appErrors.Clone(appErrors.ErrValidation, "Invalid request body")

// currentClaims returns the verified claims or writes a 401 when the route was not guarded.
func currentClaims(c *gin.Context) (*models.Claims, bool) {
	claims, ok := middleware.ClaimsFromContext(c)
	if !ok {
		response.Error(c, appErrors.ErrNoToken)
		return nil, false
	}
	return claims, true
}

// bindJSON decodes the body into dest. An empty body leaves dest zero so the service reports the
// missing fields.
func bindJSON(c *gin.Context, dest interface{}) bool {
	if err := c.ShouldBindJSON(dest); err != nil && !errors.Is(err, io.EOF) {
		response.Error(c, appErrors.Wrap(err, errInvalidBody.Code, errInvalidBody.Status, errInvalidBody.Message))
		return false
	}
	return true
}

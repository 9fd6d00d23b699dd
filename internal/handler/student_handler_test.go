package handler

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/noah-isme/interview-booking-api/internal/dto"
	"github.com/noah-isme/interview-booking-api/internal/models"
	appErrors "github.com/noah-isme/interview-booking-api/pkg/errors"
)

type fakeStudentSrv struct {
	lastRequest dto.RequestCodeRequest
	lastVerify  dto.VerifyCodeRequest
	lastEmail   string
	err         error
}

func (f *fakeStudentSrv) RequestCode(_ context.Context, req dto.RequestCodeRequest) error {
	f.lastRequest = req
	return f.err
}

func (f *fakeStudentSrv) VerifyCode(_ context.Context, req dto.VerifyCodeRequest) (*dto.TokenResponse, error) {
	f.lastVerify = req
	if f.err != nil {
		return nil, f.err
	}
	return &dto.TokenResponse{Message: "Email verified", Token: "jwt"}, nil
}

func (f *fakeStudentSrv) Me(_ context.Context, email string) (*models.StudentProfile, error) {
	f.lastEmail = email
	return &models.StudentProfile{Email: email, CanBook: true}, f.err
}

func TestStudentHandlerRequestCode(t *testing.T) {
	srv := &fakeStudentSrv{}
	c, rec := newContext(http.MethodPost, "/student/request-code", `{"email":"bo@dal.ca"}`)
	c.Request.RemoteAddr = "10.1.2.3:5555"

	NewStudentHandler(srv).RequestCode(c)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Verification code sent to your email", decodeBody(t, rec)["message"])
	assert.Equal(t, "bo@dal.ca", srv.lastRequest.Email)
	assert.Equal(t, "10.1.2.3", srv.lastRequest.IP)
}

func TestStudentHandlerRequestCodeRateLimited(t *testing.T) {
	srv := &fakeStudentSrv{err: appErrors.ErrRateLimited}
	c, rec := newContext(http.MethodPost, "/student/request-code", `{"email":"bo@dal.ca"}`)

	NewStudentHandler(srv).RequestCode(c)

	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "RATE_LIMITED", decodeBody(t, rec)["code"])
}

func TestStudentHandlerVerifyCode(t *testing.T) {
	srv := &fakeStudentSrv{}
	c, rec := newContext(http.MethodPost, "/student/verify-code", `{"email":"bo@dal.ca","code":"123456"}`)

	NewStudentHandler(srv).VerifyCode(c)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "Email verified", body["message"])
	assert.Equal(t, "jwt", body["token"])
	assert.Equal(t, "123456", srv.lastVerify.Code)
}

func TestStudentHandlerMe(t *testing.T) {
	srv := &fakeStudentSrv{}
	c, rec := newContext(http.MethodGet, "/student/me", "")
	withClaims(c, &models.Claims{Email: "bo@dal.ca", Type: models.RoleStudent})

	NewStudentHandler(srv).Me(c)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "bo@dal.ca", body["email"])
	assert.Nil(t, body["activeBooking"])
	assert.Equal(t, true, body["canBook"])
}

package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/interview-booking-api/internal/models"
	"github.com/noah-isme/interview-booking-api/internal/service"
)

func newTokenService() *service.TokenService {
	return service.NewTokenService(service.TokenConfig{
		Secret:            "middleware-secret",
		StudentExpiry:     time.Hour,
		InterviewerExpiry: time.Hour,
	})
}

func protectedRouter(tokens *service.TokenService, role models.Role) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", RequireRole(tokens, role), func(c *gin.Context) {
		claims, ok := ClaimsFromContext(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.JSON(http.StatusOK, gin.H{"email": claims.Email, "id": claims.InterviewerID})
	})
	return r
}

func call(r *gin.Engine, header string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body["code"]
}

func TestRequireRoleOutcomes(t *testing.T) {
	tokens := newTokenService()
	r := protectedRouter(tokens, models.RoleInterviewer)

	interviewerToken, err := tokens.IssueInterviewer(42, "ada@dal.ca")
	require.NoError(t, err)
	studentToken, err := tokens.IssueStudent("bo@dal.ca")
	require.NoError(t, err)
	expired, err := tokens.Issue(models.Subject{InterviewerID: 42, Email: "ada@dal.ca"}, models.RoleInterviewer, -time.Minute)
	require.NoError(t, err)
	foreign, err := service.NewTokenService(service.TokenConfig{Secret: "other", InterviewerExpiry: time.Hour}).IssueInterviewer(42, "ada@dal.ca")
	require.NoError(t, err)

	cases := []struct {
		name   string
		header string
		status int
		code   string
	}{
		{"missing header", "", http.StatusUnauthorized, "NO_TOKEN"},
		{"wrong scheme", "Basic abc", http.StatusUnauthorized, "NO_TOKEN"},
		{"empty bearer", "Bearer ", http.StatusUnauthorized, "NO_TOKEN"},
		{"garbage", "Bearer not-a-jwt", http.StatusUnauthorized, "INVALID_TOKEN"},
		{"expired", "Bearer " + expired, http.StatusUnauthorized, "INVALID_TOKEN"},
		{"foreign signature", "Bearer " + foreign, http.StatusUnauthorized, "INVALID_TOKEN"},
		{"wrong role", "Bearer " + studentToken, http.StatusForbidden, "WRONG_TOKEN_TYPE"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := call(r, tc.header)
			assert.Equal(t, tc.status, rec.Code)
			assert.Equal(t, tc.code, errorCode(t, rec))
		})
	}

	rec := call(r, "bearer "+interviewerToken)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"email":"ada@dal.ca","id":42}`, rec.Body.String())
}

func TestRequireRoleStudent(t *testing.T) {
	tokens := newTokenService()
	r := protectedRouter(tokens, models.RoleStudent)

	studentToken, err := tokens.IssueStudent("bo@dal.ca")
	require.NoError(t, err)
	interviewerToken, err := tokens.IssueInterviewer(1, "ada@dal.ca")
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, call(r, "Bearer "+studentToken).Code)
	assert.Equal(t, http.StatusForbidden, call(r, "Bearer "+interviewerToken).Code)
}

func TestClaimsFromContextMissing(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	_, ok := ClaimsFromContext(c)
	assert.False(t, ok)
}

package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func respond(t *testing.T, err error) (int, map[string]interface{}) {
	t.Helper()

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	RespondError(c, err)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w.Code, body
}

func TestRespondError(t *testing.T) {
	cases := []struct {
		err    error
		status int
		msg    string
	}{
		{Validation("bad input"), http.StatusBadRequest, "bad input"},
		{Unauthenticated("invalid credentials"), http.StatusUnauthorized, "invalid credentials"},
		{AuthForbidden("account has been banned"), http.StatusForbidden, "account has been banned"},
		{Forbidden("not yours"), http.StatusForbidden, "not yours"},
		{NotFound("user not found"), http.StatusNotFound, "user not found"},
		{Conflict("user already exists"), http.StatusConflict, "user already exists"},
		{fmt.Errorf("wrapped: %w", NotFound("swap request not found")), http.StatusNotFound, "swap request not found"},
		{errors.New("connection reset"), http.StatusInternalServerError, "internal server error"},
	}
	for _, tc := range cases {
		status, body := respond(t, tc.err)
		assert.Equal(t, tc.status, status)
		assert.Equal(t, false, body["success"])
		assert.Equal(t, tc.msg, body["error"])
	}
}

func TestIsKind(t *testing.T) {
	assert.True(t, IsKind(fmt.Errorf("x: %w", Conflict("c")), KindConflict))
	assert.False(t, IsKind(Conflict("c"), KindNotFound))
	assert.False(t, IsKind(errors.New("plain"), KindValidation))
}

func TestBindingError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	RegisterValidators()

	type body struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required,min=6"`
		Type     string `json:"type" binding:"required,skilltype"`
	}

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", nil)
	c.Request.Body = http.NoBody
	c.Request.Header.Set("Content-Type", "application/json")

	var b body
	err := c.ShouldBindJSON(&b)
	require.Error(t, err)
	assert.Equal(t, "invalid request body", BindingError(err).Message)

	err = binding.Validator.ValidateStruct(body{Email: "nope", Password: "123", Type: "both"})
	appErr := BindingError(err)
	assert.Equal(t, http.StatusBadRequest, appErr.Status)
	assert.Contains(t, appErr.Message, "email must be a valid email")
	assert.Contains(t, appErr.Message, "password must be at least 6 characters")
	assert.Contains(t, appErr.Message, "type must be offered or wanted")
}

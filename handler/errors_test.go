package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"main/model"

	"github.com/gin-gonic/gin"
)

func TestRespondErrorMapping(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"validation", model.NewValidationError("bad input"), http.StatusBadRequest},
		{"not found", model.NewNotFoundError("task", "t1"), http.StatusNotFound},
		{"dependency", &model.DependencyError{Blocking: []string{"Write draft"}}, http.StatusConflict},
		{"unknown", errors.New("connection reset"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(recorder)

			respondError(c, tt.err)
			if recorder.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", recorder.Code, tt.wantStatus)
			}
		})
	}
}

func TestUserIDMissing(t *testing.T) {
	gin.SetMode(gin.TestMode)

	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)

	if _, ok := userID(c); ok {
		t.Fatal("missing user_id must fail")
	}
	if recorder.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", recorder.Code)
	}
}

func TestUserIDPresent(t *testing.T) {
	gin.SetMode(gin.TestMode)

	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)
	c.Set("user_id", "user-1")

	id, ok := userID(c)
	if !ok || id != "user-1" {
		t.Errorf("userID = %q, %v", id, ok)
	}
}

package httpx

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Paul-Briman/lumina-photography/internal/common"

	"github.com/gin-gonic/gin"
)

func TestWriteServiceError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		err     error
		status  int
		message string
	}{
		{common.NewValidationError("bad input"), http.StatusBadRequest, "bad input"},
		{common.NewUnauthorizedError("who are you"), http.StatusUnauthorized, "who are you"},
		{common.NewForbiddenError("not yours"), http.StatusForbidden, "not yours"},
		{common.NewConflictError("already there"), http.StatusConflict, "already there"},
		{common.NewNotFoundError("gone"), http.StatusNotFound, "gone"},
		{common.NewInternalError("broke"), http.StatusInternalServerError, "broke"},
		{errors.New("raw"), http.StatusInternalServerError, "fallback"},
	}

	for _, tc := range cases {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		WriteServiceError(c, tc.err, "fallback")

		if w.Code != tc.status {
			t.Errorf("%v: expected %d, got %d", tc.err, tc.status, w.Code)
		}
		want := `{"message":"` + tc.message + `"}`
		if w.Body.String() != want {
			t.Errorf("%v: expected body %s, got %s", tc.err, want, w.Body.String())
		}
	}
}

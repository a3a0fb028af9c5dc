package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	pkgErrors "laura-assistant/pkg/errors"
)

func performRequest(handler gin.HandlerFunc) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	handler(c)
	return w
}

func TestOK(t *testing.T) {
	w := performRequest(func(c *gin.Context) {
		OK(c, gin.H{"value": 42})
	})

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var resp Resp
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.ErrorCode != 0 || resp.Message != MessageSuccess {
		t.Errorf("envelope = %+v", resp)
	}
}

func TestErrorKeepsHTTPErrorStatus(t *testing.T) {
	w := performRequest(func(c *gin.Context) {
		Error(c, pkgErrors.NewHTTPError(409, "conflict"))
	})

	if w.Code != http.StatusConflict {
		t.Fatalf("status = %d, want 409", w.Code)
	}

	var resp Resp
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.ErrorCode != 409 || resp.Message != "conflict" {
		t.Errorf("envelope = %+v", resp)
	}
}

func TestErrorPlainErrorIsBadRequest(t *testing.T) {
	w := performRequest(func(c *gin.Context) {
		Error(c, errors.New("bad input"))
	})

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestInternalErrorHidesDetails(t *testing.T) {
	w := performRequest(func(c *gin.Context) {
		InternalError(c, errors.New("secret database failure"))
	})

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", w.Code)
	}

	var resp Resp
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.Message != DefaultErrorMessage {
		t.Errorf("message = %q, internal details must not leak", resp.Message)
	}
}

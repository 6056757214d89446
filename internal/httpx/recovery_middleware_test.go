package httpx

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestRecoveryMiddleware(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf)

	panicking := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})
	handler := Chain(panicking, AccessLogMiddleware(log), RecoveryMiddleware(log))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/books", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"fail"`)
	assert.Contains(t, buf.String(), "panic recovered")
	assert.Contains(t, buf.String(), `"status":500`)
}

func TestAccessLogMiddleware(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf)

	handler := Chain(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		JSONFail(w, http.StatusNotFound, "Book not found")
	}), RequestIDMiddleware, AccessLogMiddleware(log))

	req := httptest.NewRequest(http.MethodGet, "/books/missing", nil)
	req.Header.Set(RequestIDHeader, "req-1")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	out := buf.String()
	assert.Contains(t, out, `"status":404`)
	assert.Contains(t, out, `"path":"/books/missing"`)
	assert.Contains(t, out, `"request_id":"req-1"`)
}

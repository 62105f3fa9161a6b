package logger

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestRequestLogger(t *testing.T) {
	tests := []struct {
		name          string
		handler       http.HandlerFunc
		expectedLevel zapcore.Level
		expectedCode  int64
	}{
		{
			name:          "Implicit 200",
			handler:       func(w http.ResponseWriter, r *http.Request) { _, _ = w.Write([]byte("ok")) },
			expectedLevel: zapcore.InfoLevel,
			expectedCode:  http.StatusOK,
		},
		{
			name:          "Client error",
			handler:       func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusNotFound) },
			expectedLevel: zapcore.WarnLevel,
			expectedCode:  http.StatusNotFound,
		},
		{
			name:          "Server error",
			handler:       func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusInternalServerError) },
			expectedLevel: zapcore.ErrorLevel,
			expectedCode:  http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			core, logs := observer.New(zapcore.DebugLevel)
			restore := zap.ReplaceGlobals(zap.New(core))
			defer restore()

			h := middleware.RequestID(RequestLogger(tt.handler))
			req := httptest.NewRequest(http.MethodGet, "/pets/latest", nil)
			req.Header.Set(middleware.RequestIDHeader, "req-42")
			h.ServeHTTP(httptest.NewRecorder(), req)

			require.Equal(t, 1, logs.Len())
			entry := logs.All()[0]
			assert.Equal(t, tt.expectedLevel, entry.Level)
			fields := entry.ContextMap()
			assert.Equal(t, "req-42", fields["request_id"])
			assert.Equal(t, "/pets/latest", fields["path"])
			assert.Equal(t, tt.expectedCode, fields["status"])
		})
	}
}

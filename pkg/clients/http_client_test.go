package clients

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestHTTPClient_PostJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "key-1", r.Header.Get("X-Api-Key"))

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "tok", body["token"])

		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"email":"bob@x.com"}`))
	}))
	defer srv.Close()

	client := NewHTTPClient(time.Second)
	headers := http.Header{}
	headers.Set("X-Api-Key", "key-1")

	status, body, err := client.PostJSON(context.Background(), srv.URL, headers, map[string]string{"token": "tok"})

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"email":"bob@x.com"}`, string(body))
}

func TestHTTPClient_PostJSONCanceled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := NewHTTPClient(time.Second).PostJSON(ctx, srv.URL, nil, map[string]string{})
	assert.Error(t, err)
}

func TestHTTPClient_SetClient(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mock := NewMockHTTPClientI(ctrl)
	mock.EXPECT().PostJSON(gomock.Any(), "http://identity/v1", gomock.Any(), gomock.Any()).Return(http.StatusTeapot, nil, nil)

	client := NewHTTPClient(0)
	client.SetClient(mock)

	status, _, err := client.PostJSON(context.Background(), "http://identity/v1", nil, nil)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusTeapot, status)
}

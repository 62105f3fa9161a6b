package auth

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/GlebRadaev/unitedpets/pkg/clients"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestRemoteVerifier_Verify(t *testing.T) {
	tests := []struct {
		name        string
		token       string
		prepareMock func(client *clients.MockHTTPClientI)
		expected    Identity
		expectedErr error
	}{
		{
			name:  "Verified",
			token: "tok",
			prepareMock: func(client *clients.MockHTTPClientI) {
				client.EXPECT().
					PostJSON(gomock.Any(), "http://identity:9000/v1/tokens/verify", gomock.Any(), map[string]string{"token": "tok"}).
					DoAndReturn(func(_ context.Context, _ string, headers http.Header, _ any) (int, []byte, error) {
						assert.Equal(t, "Bearer tok", headers.Get("Authorization"))
						assert.Equal(t, "key", headers.Get("X-Api-Key"))
						return http.StatusOK, []byte(`{"user_id":"uid-7","email":"Alice@X.com"}`), nil
					})
			},
			expected: Identity{Email: "alice@x.com", Subject: "uid-7"},
		},
		{
			name:        "Empty token",
			token:       "  ",
			prepareMock: func(client *clients.MockHTTPClientI) {},
			expectedErr: ErrInvalidToken,
		},
		{
			name:  "Rejected by identity service",
			token: "tok",
			prepareMock: func(client *clients.MockHTTPClientI) {
				client.EXPECT().PostJSON(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(http.StatusUnauthorized, nil, nil)
			},
			expectedErr: ErrInvalidToken,
		},
		{
			name:  "Transport failure",
			token: "tok",
			prepareMock: func(client *clients.MockHTTPClientI) {
				client.EXPECT().PostJSON(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(0, nil, errors.New("dial tcp"))
			},
			expectedErr: ErrVerifierUnavailable,
		},
		{
			name:  "Upstream error status",
			token: "tok",
			prepareMock: func(client *clients.MockHTTPClientI) {
				client.EXPECT().PostJSON(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(http.StatusBadGateway, nil, nil)
			},
			expectedErr: ErrVerifierUnavailable,
		},
		{
			name:  "Missing email",
			token: "tok",
			prepareMock: func(client *clients.MockHTTPClientI) {
				client.EXPECT().PostJSON(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(http.StatusOK, []byte(`{"user_id":"uid-7"}`), nil)
			},
			expectedErr: ErrInvalidToken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			client := clients.NewMockHTTPClientI(ctrl)
			tt.prepareMock(client)
			verifier := NewRemoteVerifier("http://identity:9000/", "key", client)

			identity, err := verifier.Verify(context.Background(), tt.token)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, identity)
		})
	}
}

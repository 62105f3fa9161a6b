package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/GlebRadaev/unitedpets/pkg/clients"
)

const verifyPath = "/v1/tokens/verify"

// RemoteVerifier delegates token checks to an external identity service.
type RemoteVerifier struct {
	url    string
	apiKey string
	client clients.HTTPClientI
}

func NewRemoteVerifier(baseURL, apiKey string, client clients.HTTPClientI) *RemoteVerifier {
	return &RemoteVerifier{
		url:    strings.TrimRight(strings.TrimSpace(baseURL), "/") + verifyPath,
		apiKey: strings.TrimSpace(apiKey),
		client: client,
	}
}

type remoteResponse struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
}

func (v *RemoteVerifier) Verify(ctx context.Context, token string) (Identity, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return Identity{}, ErrInvalidToken
	}

	headers := http.Header{}
	headers.Set("Authorization", "Bearer "+token)
	if v.apiKey != "" {
		headers.Set("X-Api-Key", v.apiKey)
	}

	status, body, err := v.client.PostJSON(ctx, v.url, headers, map[string]string{"token": token})
	if err != nil {
		return Identity{}, fmt.Errorf("%w: %v", ErrVerifierUnavailable, err)
	}

	switch status {
	case http.StatusOK:
	case http.StatusUnauthorized, http.StatusForbidden:
		return Identity{}, ErrInvalidToken
	default:
		return Identity{}, fmt.Errorf("%w: status=%d", ErrVerifierUnavailable, status)
	}

	var out remoteResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return Identity{}, fmt.Errorf("%w: invalid json: %v", ErrVerifierUnavailable, err)
	}
	email := strings.ToLower(strings.TrimSpace(out.Email))
	if email == "" {
		return Identity{}, fmt.Errorf("%w: response missing email", ErrInvalidToken)
	}

	return Identity{Email: email, Subject: strings.TrimSpace(out.UserID)}, nil
}

package auth

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/stretchr/testify/assert"
)

func TestGenerateJWT(t *testing.T) {
	jwtService := NewJWTService("test-secret", "unitedpets")

	tests := []struct {
		name           string
		email          string
		expirationTime time.Time
	}{
		{
			name:           "Valid Token",
			email:          "bob@x.com",
			expirationTime: time.Now().Add(time.Hour),
		},
		{
			name:           "Expired Token",
			email:          "bob@x.com",
			expirationTime: time.Now().Add(-time.Hour),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := jwtService.GenerateJWT(tt.email, "uid-1", tt.expirationTime)
			assert.NoError(t, err)
			assert.NotEmpty(t, token)
		})
	}
}

func TestVerify(t *testing.T) {
	jwtService := NewJWTService("test-secret", "unitedpets")

	tests := []struct {
		name        string
		tokenString string
		setup       func() string
		expected    Identity
		expectError bool
	}{
		{
			name: "Valid Token",
			setup: func() string {
				token, _ := jwtService.GenerateJWT("Bob@X.com", "uid-1", time.Now().Add(time.Hour))
				return token
			},
			expected: Identity{Email: "bob@x.com", Subject: "uid-1"},
		},
		{
			name:        "Invalid Token",
			tokenString: "invalid.token.string",
			expectError: true,
		},
		{
			name: "Expired Token",
			setup: func() string {
				token, _ := jwtService.GenerateJWT("bob@x.com", "uid-1", time.Now().Add(-time.Hour))
				return token
			},
			expectError: true,
		},
		{
			name: "Foreign issuer",
			setup: func() string {
				token, _ := NewJWTService("test-secret", "someone-else").GenerateJWT("bob@x.com", "uid-1", time.Now().Add(time.Hour))
				return token
			},
			expectError: true,
		},
		{
			name: "Wrong secret",
			setup: func() string {
				token, _ := NewJWTService("other-secret", "unitedpets").GenerateJWT("bob@x.com", "uid-1", time.Now().Add(time.Hour))
				return token
			},
			expectError: true,
		},
		{
			name: "Missing email claim",
			setup: func() string {
				token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.StandardClaims{
					ExpiresAt: time.Now().Add(time.Hour).Unix(),
					Issuer:    "unitedpets",
				})
				signedToken, _ := token.SignedString([]byte("test-secret"))
				return signedToken
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokenString := tt.tokenString
			if tt.setup != nil {
				tokenString = tt.setup()
			}

			identity, err := jwtService.Verify(context.Background(), tokenString)

			if tt.expectError {
				assert.ErrorIs(t, err, ErrInvalidToken)
				assert.Equal(t, Identity{}, identity)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, identity)
			}
		})
	}
}

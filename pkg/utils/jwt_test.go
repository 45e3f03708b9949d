package utils

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
)

const testSecret = "test-secret"

func TestGenerateAndValidateToken(t *testing.T) {
	userID := uuid.New()

	token, err := GenerateToken(userID, "Alice", "alice@example.com", testSecret, time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	user, err := ValidateToken(token, testSecret)
	if err != nil {
		t.Fatalf("ValidateToken() error = %v", err)
	}

	if user.ID != userID {
		t.Errorf("ID = %v, expected %v", user.ID, userID)
	}
	if user.Name != "Alice" {
		t.Errorf("Name = %q, expected %q", user.Name, "Alice")
	}
	if user.Email != "alice@example.com" {
		t.Errorf("Email = %q, expected %q", user.Email, "alice@example.com")
	}
}

func TestValidateTokenWithBearerPrefix(t *testing.T) {
	userID := uuid.New()

	token, err := GenerateToken(userID, "Bob", "bob@example.com", testSecret, time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	user, err := ValidateToken("Bearer "+token, testSecret)
	if err != nil {
		t.Fatalf("ValidateToken() error = %v", err)
	}
	if user.ID != userID {
		t.Errorf("ID = %v, expected %v", user.ID, userID)
	}
}

func TestValidateTokenErrors(t *testing.T) {
	userID := uuid.New()

	expired, err := GenerateToken(userID, "Alice", "alice@example.com", testSecret, -time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	valid, err := GenerateToken(userID, "Alice", "alice@example.com", testSecret, time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	tests := []struct {
		name     string
		token    string
		expected error
	}{
		{"empty token", "", ErrMissingToken},
		{"garbage token", "not-a-token", ErrInvalidToken},
		{"expired token", expired, ErrExpiredToken},
		{"wrong secret", valid + "x", ErrInvalidToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ValidateToken(tt.token, testSecret)
			if !errors.Is(err, tt.expected) {
				t.Errorf("ValidateToken() error = %v, expected %v", err, tt.expected)
			}
		})
	}
}

func TestExtractTokenFromHeader(t *testing.T) {
	tests := []struct {
		name     string
		header   string
		expected string
	}{
		{"empty header", "", ""},
		{"valid bearer", "Bearer abc123", "abc123"},
		{"missing scheme", "abc123", ""},
		{"wrong scheme", "Basic abc123", ""},
		{"extra parts", "Bearer abc 123", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractTokenFromHeader(tt.header); got != tt.expected {
				t.Errorf("ExtractTokenFromHeader(%q) = %q, expected %q", tt.header, got, tt.expected)
			}
		})
	}
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestGenerateGateToken_RoundTrip(t *testing.T) {
	token, err := GenerateGateToken("joycribe", "desktop", time.Hour, "secret-key")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	subject, err := ValidateGateToken(token, "secret-key", "joycribe")
	if err != nil {
		t.Fatalf("expected valid token, got: %v", err)
	}
	if subject != "desktop" {
		t.Errorf("expected subject 'desktop', got %q", subject)
	}

	// пустой issuer принимает любой
	if _, err = ValidateGateToken(token, "secret-key", ""); err != nil {
		t.Errorf("expected any issuer accepted, got: %v", err)
	}
}

func TestGenerateGateToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name     string
		issuer   string
		subject  string
		duration time.Duration
		key      string
	}{
		{"empty issuer", "", "s", time.Hour, "key"},
		{"empty subject", "iss", "", time.Hour, "key"},
		{"zero duration", "iss", "s", 0, "key"},
		{"empty key", "iss", "s", time.Hour, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := GenerateGateToken(tt.issuer, tt.subject, tt.duration, tt.key); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestValidateGateToken_Rejects(t *testing.T) {
	valid, _ := GenerateGateToken("joycribe", "desktop", time.Hour, "secret-key")

	expiredClaims := &jwt.RegisteredClaims{
		Issuer:    "joycribe",
		Subject:   "desktop",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
	}
	expired, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, expiredClaims).SignedString([]byte("secret-key"))

	noExp, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, &jwt.RegisteredClaims{Subject: "desktop"}).SignedString([]byte("secret-key"))

	tests := []struct {
		name   string
		token  string
		key    string
		issuer string
	}{
		{"wrong key", valid, "other", "joycribe"},
		{"wrong issuer", valid, "secret-key", "someone-else"},
		{"expired", expired, "secret-key", "joycribe"},
		{"no expiry", noExp, "secret-key", ""},
		{"garbage", "not-a-token", "secret-key", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ValidateGateToken(tt.token, tt.key, tt.issuer); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestParseBearerToken(t *testing.T) {
	token, err := ParseBearerToken("Bearer abc.def")
	if err != nil || token != "abc.def" {
		t.Errorf("expected 'abc.def', got %q (%v)", token, err)
	}

	for _, bad := range []string{"", "Bearer", "Basic abc", "Bearer a b"} {
		if _, err = ParseBearerToken(bad); err == nil {
			t.Errorf("expected error for %q", bad)
		}
	}
}

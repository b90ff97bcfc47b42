package service

import (
	"strings"
	"testing"
)

func TestIssueAndValidateToken(t *testing.T) {
	auth := NewAuthService("test-secret")

	token, err := auth.IssueToken("ravi@example.com")
	if err != nil {
		t.Fatalf("IssueToken failed: %v", err)
	}

	claims, err := auth.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken failed: %v", err)
	}
	if claims.Email != "ravi@example.com" {
		t.Errorf("unexpected email %q", claims.Email)
	}
	if claims.TokenType != TokenTypeAccess {
		t.Errorf("unexpected token type %q", claims.TokenType)
	}
	if claims.TokenID == "" {
		t.Error("token id missing")
	}
}

func TestValidateTokenWrongSecret(t *testing.T) {
	token, err := NewAuthService("secret-a").IssueToken("ravi@example.com")
	if err != nil {
		t.Fatalf("IssueToken failed: %v", err)
	}

	if _, err := NewAuthService("secret-b").ValidateToken(token); err == nil {
		t.Fatal("expected validation to fail with wrong secret")
	}
}

func TestValidateTamperedToken(t *testing.T) {
	auth := NewAuthService("test-secret")

	token, err := auth.IssueToken("ravi@example.com")
	if err != nil {
		t.Fatalf("IssueToken failed: %v", err)
	}

	parts := strings.Split(token, ".")
	tampered := parts[0] + ".eyJmYWtlIjoidHJ1ZSJ9." + parts[2]
	if _, err := auth.ValidateToken(tampered); err == nil {
		t.Fatal("expected validation to fail for tampered token")
	}
}

func TestValidateGarbage(t *testing.T) {
	auth := NewAuthService("test-secret")
	if _, err := auth.ValidateToken("not-a-jwt"); err == nil {
		t.Fatal("expected validation to fail for garbage input")
	}
}

package auth

import (
	"testing"
	"time"

	apperrors "drportal/pkg/errors"
)

func TestTokenManagerIssueAndVerify(t *testing.T) {
	tm := NewTokenManager("test-secret", time.Hour)

	token, err := tm.Issue("patient@example.com")
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}
	if token == "" {
		t.Fatal("Issue() returned empty token")
	}

	email, err := tm.Verify(token)
	if err != nil {
		t.Fatalf("Verify() error = %v", err)
	}
	if email != "patient@example.com" {
		t.Errorf("Verify() email = %q, want %q", email, "patient@example.com")
	}
}

func TestTokenManagerVerifyRejectsExpired(t *testing.T) {
	tm := NewTokenManager("test-secret", -time.Minute)

	token, err := tm.Issue("patient@example.com")
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	if _, err := tm.Verify(token); err == nil {
		t.Fatal("Verify() accepted an expired token")
	}
}

func TestTokenManagerVerifyRejectsWrongSecret(t *testing.T) {
	issuer := NewTokenManager("secret-a", time.Hour)
	verifier := NewTokenManager("secret-b", time.Hour)

	token, err := issuer.Issue("patient@example.com")
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	_, err = verifier.Verify(token)
	if err == nil {
		t.Fatal("Verify() accepted a token signed with another secret")
	}
	appErr := apperrors.AsAppError(err)
	if appErr == nil {
		t.Fatalf("Verify() error = %v, want AppError", err)
	}
	if appErr.StatusCode() != 403 {
		t.Errorf("Verify() status = %d, want 403", appErr.StatusCode())
	}
}

func TestTokenManagerVerifyRejectsGarbage(t *testing.T) {
	tm := NewTokenManager("test-secret", time.Hour)

	if _, err := tm.Verify("not-a-token"); err == nil {
		t.Fatal("Verify() accepted malformed input")
	}
}

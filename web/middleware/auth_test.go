package middleware

import "testing"

func TestSignAndParseToken(t *testing.T) {
	const secret = "test-secret"

	token, err := SignToken(42, "Cashier", secret)
	if err != nil {
		t.Fatalf("SignToken() error = %v", err)
	}

	userID, err := ParseToken(token, secret)
	if err != nil {
		t.Fatalf("ParseToken() error = %v", err)
	}
	if userID != 42 {
		t.Errorf("ParseToken() subject = %d, want 42", userID)
	}
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	token, err := SignToken(42, "Admin", "secret-a")
	if err != nil {
		t.Fatalf("SignToken() error = %v", err)
	}

	if _, err := ParseToken(token, "secret-b"); err == nil {
		t.Error("ParseToken() with wrong secret = nil error, want failure")
	}
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	if _, err := ParseToken("not.a.token", "secret"); err == nil {
		t.Error("ParseToken(garbage) = nil error, want failure")
	}
}

package auth

import "testing"

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("admin")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "admin" {
		t.Fatal("password stored in plain text")
	}
	if !CheckPassword(hash, "admin") {
		t.Fatal("correct password rejected")
	}
	if CheckPassword(hash, "wrong") {
		t.Fatal("wrong password accepted")
	}
}

func TestTokenRoundTrip(t *testing.T) {
	Init("test-secret")

	token, err := GenerateToken("1", "admin", "superadmin")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	claims, err := ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if claims.UserID != "1" || claims.Username != "admin" || claims.Role != "superadmin" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestValidateTokenRejectsTampering(t *testing.T) {
	Init("test-secret")

	token, err := GenerateToken("1", "admin", "admin")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	if _, err := ValidateToken(token + "x"); err == nil {
		t.Fatal("tampered token accepted")
	}
	if _, err := ValidateToken("not-a-token"); err == nil {
		t.Fatal("malformed token accepted")
	}
}

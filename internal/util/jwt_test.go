package util

import (
	"testing"
	"time"

	"github.com/lshigami/Margays/internal/model"
)

func TestJWTRoundTrip(t *testing.T) {
	t.Parallel()

	user := &model.User{ID: 7, Email: "ada@example.com", Role: model.RoleUser}
	token, err := GenerateJWT(user, "secret", time.Hour)
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}

	claims, err := ParseJWT(token, "secret")
	if err != nil {
		t.Fatalf("ParseJWT: %v", err)
	}
	if claims.UserID != 7 || claims.Email != "ada@example.com" || claims.Role != model.RoleUser {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestParseJWTRejectsWrongSecret(t *testing.T) {
	t.Parallel()

	user := &model.User{ID: 7, Email: "ada@example.com", Role: model.RoleUser}
	token, err := GenerateJWT(user, "secret", time.Hour)
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}

	if _, err := ParseJWT(token, "other-secret"); err == nil {
		t.Fatalf("expected an error for a token signed with another secret")
	}
}

func TestParseJWTRejectsExpiredToken(t *testing.T) {
	t.Parallel()

	user := &model.User{ID: 7, Email: "ada@example.com", Role: model.RoleUser}
	token, err := GenerateJWT(user, "secret", -time.Minute)
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}

	if _, err := ParseJWT(token, "secret"); err == nil {
		t.Fatalf("expected an error for an expired token")
	}
}

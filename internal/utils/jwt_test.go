package utils

import (
	"testing"

	"saveur_back_end/internal/models"
)

func TestGenerateAndParseJWT(t *testing.T) {
	user := models.User{ID: "u-123", Email: "client@example.com"}

	token, err := GenerateJWT(user)
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}

	claims, err := ParseJWT(token)
	if err != nil {
		t.Fatalf("ParseJWT: %v", err)
	}
	if claims["user_id"] != "u-123" {
		t.Errorf("user_id = %v, attendu u-123", claims["user_id"])
	}
	if claims["role"] != "customer" {
		t.Errorf("role = %v, attendu customer", claims["role"])
	}
}

func TestGenerateAdminJWT(t *testing.T) {
	token, err := GenerateAdminJWT()
	if err != nil {
		t.Fatalf("GenerateAdminJWT: %v", err)
	}

	claims, err := ParseJWT(token)
	if err != nil {
		t.Fatalf("ParseJWT: %v", err)
	}
	if claims["role"] != "admin" {
		t.Errorf("role = %v, attendu admin", claims["role"])
	}
}

func TestParseJWTRejectsGarbage(t *testing.T) {
	if _, err := ParseJWT("pas.un.jwt"); err == nil {
		t.Error("jeton invalide accepté")
	}
}

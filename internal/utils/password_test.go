package utils

import (
	"strings"
	"testing"
)

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("motdepasse123")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if !strings.HasPrefix(hash, "$argon2id$") {
		t.Fatalf("hash = %q, préfixe $argon2id$ attendu", hash)
	}

	ok, err := VerifyPassword("motdepasse123", hash)
	if err != nil {
		t.Fatalf("VerifyPassword: %v", err)
	}
	if !ok {
		t.Error("le bon mot de passe est rejeté")
	}

	ok, err = VerifyPassword("mauvais", hash)
	if err != nil {
		t.Fatalf("VerifyPassword (mauvais): %v", err)
	}
	if ok {
		t.Error("un mauvais mot de passe est accepté")
	}
}

func TestHashPasswordUniqueSalt(t *testing.T) {
	h1, err := HashPassword("pareil")
	if err != nil {
		t.Fatal(err)
	}
	h2, err := HashPassword("pareil")
	if err != nil {
		t.Fatal(err)
	}
	if h1 == h2 {
		t.Error("deux hashs du même mot de passe sont identiques, sel attendu")
	}
}

func TestVerifyPasswordRejectsBcrypt(t *testing.T) {
	if _, err := VerifyPassword("x", "$2a$10$abcdefghijklmnopqrstuv"); err == nil {
		t.Error("hash bcrypt accepté, erreur attendue")
	}
	if _, err := VerifyPassword("x", "$2b$12$abcdefghijklmnopqrstuv"); err == nil {
		t.Error("hash bcrypt accepté, erreur attendue")
	}
}

func TestVerifyPasswordMalformedHash(t *testing.T) {
	if _, err := VerifyPassword("x", "pas un hash"); err == nil {
		t.Error("hash malformé accepté, erreur attendue")
	}
}

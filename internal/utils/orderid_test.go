package utils

import (
	"regexp"
	"testing"
)

var orderIDPattern = regexp.MustCompile(`^ORD-\d{8}-[ABCDEFGHJKLMNPQRSTUVWXYZ23456789]{4}$`)

func TestGenerateOrderID(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := GenerateOrderID()
		if !orderIDPattern.MatchString(id) {
			t.Fatalf("GenerateOrderID() = %q, format inattendu", id)
		}
		seen[id] = true
	}
	// Le suffixe aléatoire doit varier même à l'intérieur de la même milliseconde
	if len(seen) < 2 {
		t.Errorf("100 tirages ont produit %d identifiant(s) distinct(s)", len(seen))
	}
}

package utils

import (
	"crypto/rand"
	"fmt"
	"time"
)

const orderIDAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// GenerateOrderID synthétise l'identifiant opaque d'une commande, partageable
// par le client pour le suivi. Format : ORD-<8 derniers chiffres du timestamp
// milliseconde>-<4 caractères aléatoires>.
func GenerateOrderID() string {
	millis := fmt.Sprintf("%d", time.Now().UnixMilli())
	if len(millis) > 8 {
		millis = millis[len(millis)-8:]
	}

	suffix := make([]byte, 4)
	rand.Read(suffix)
	for i := range suffix {
		suffix[i] = orderIDAlphabet[int(suffix[i])%len(orderIDAlphabet)]
	}

	return fmt.Sprintf("ORD-%s-%s", millis, suffix)
}

package models

import "strings"

// Les deux vocabulaires de statut coexistent : le front "workflow" (minuscules)
// et le vocabulaire "ledger" (capitalisé) utilisé en base et sur la page de suivi.
// La table de correspondance vit ici et nulle part ailleurs.
const (
	StatusPending        = "Pending"
	StatusPreparing      = "Preparing"
	StatusOutForDelivery = "Out for Delivery"
	StatusCompleted      = "Completed"
	StatusCancelled      = "Cancelled"
)

// LedgerStatuses liste les statuts valides, dans l'ordre d'affichage de la barre de progression.
var LedgerStatuses = []string{
	StatusPending,
	StatusPreparing,
	StatusOutForDelivery,
	StatusCompleted,
	StatusCancelled,
}

var workflowToLedger = map[string]string{
	"pending":   StatusPending,
	"confirmed": StatusPreparing,
	"preparing": StatusPreparing,
	"ready":     StatusOutForDelivery,
	"delivered": StatusCompleted,
	"cancelled": StatusCancelled,
}

// ToLedgerStatus traduit un statut workflow vers le vocabulaire ledger.
// Une valeur inconnue est renvoyée telle quelle (compatibilité ascendante).
func ToLedgerStatus(workflowStatus string) string {
	if ledger, ok := workflowToLedger[workflowStatus]; ok {
		return ledger
	}
	return workflowStatus
}

// IsValidLedgerStatus vérifie l'appartenance au vocabulaire ledger.
func IsValidLedgerStatus(status string) bool {
	for _, s := range LedgerStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// ColorClassFor classe un statut (insensible à la casse) pour l'affichage uniquement.
func ColorClassFor(status string) string {
	switch strings.ToLower(status) {
	case "pending":
		return "pending"
	case "confirmed", "preparing":
		return "in-progress"
	case "ready", "out for delivery":
		return "ready"
	case "delivered", "completed":
		return "completed"
	case "cancelled":
		return "cancelled"
	default:
		return "unknown"
	}
}

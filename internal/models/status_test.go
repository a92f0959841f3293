package models

import "testing"

func TestToLedgerStatus(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"pending", "Pending"},
		{"confirmed", "Preparing"},
		{"preparing", "Preparing"},
		{"ready", "Out for Delivery"},
		{"delivered", "Completed"},
		{"cancelled", "Cancelled"},
		// Valeur inconnue : renvoyée telle quelle
		{"Pending", "Pending"},
		{"archived", "archived"},
		{"", ""},
	}

	for _, tc := range cases {
		if got := ToLedgerStatus(tc.in); got != tc.want {
			t.Errorf("ToLedgerStatus(%q) = %q, attendu %q", tc.in, got, tc.want)
		}
	}
}

func TestIsValidLedgerStatus(t *testing.T) {
	for _, s := range LedgerStatuses {
		if !IsValidLedgerStatus(s) {
			t.Errorf("IsValidLedgerStatus(%q) = false, attendu true", s)
		}
	}

	for _, s := range []string{"pending", "confirmed", "Delivered", "out for delivery", ""} {
		if IsValidLedgerStatus(s) {
			t.Errorf("IsValidLedgerStatus(%q) = true, attendu false", s)
		}
	}
}

func TestColorClassFor(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"pending", "pending"},
		{"Pending", "pending"},
		{"confirmed", "in-progress"},
		{"Preparing", "in-progress"},
		{"ready", "ready"},
		{"Out for Delivery", "ready"},
		{"OUT FOR DELIVERY", "ready"},
		{"delivered", "completed"},
		{"Completed", "completed"},
		{"Cancelled", "cancelled"},
		{"n'importe quoi", "unknown"},
		{"", "unknown"},
	}

	for _, tc := range cases {
		if got := ColorClassFor(tc.in); got != tc.want {
			t.Errorf("ColorClassFor(%q) = %q, attendu %q", tc.in, got, tc.want)
		}
	}
}

package report

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"saveur_back_end/internal/models"
)

func TestAnnotateUpdatedAt(t *testing.T) {
	series := []models.RevenuePoint{
		{Date: "2025-03-10", Amount: models.Cents(5000)},
		{Date: "2025-03-11", Amount: 0},
	}
	stamp := time.Date(2025, 3, 10, 18, 30, 0, 0, time.UTC)

	views := annotateUpdatedAt(series, func(day string) time.Time {
		if day == "2025-03-10" {
			return stamp
		}
		return time.Time{}
	})

	if len(views) != 2 {
		t.Fatalf("len(views) = %d, attendu 2", len(views))
	}
	if views[0].UpdatedAt != "2025-03-10T18:30:00Z" {
		t.Errorf("views[0].UpdatedAt = %q, attendu 2025-03-10T18:30:00Z", views[0].UpdatedAt)
	}
	if views[1].UpdatedAt != "" {
		t.Errorf("views[1].UpdatedAt = %q, attendu vide (jour sans tampon)", views[1].UpdatedAt)
	}

	// Le jour sans tampon ne doit pas exposer de champ updated_at sur le wire
	out, err := json.Marshal(views)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(out), `"updated_at":"2025-03-10T18:30:00Z"`) {
		t.Errorf("JSON sans l'horodatage attendu: %s", out)
	}
	if strings.Count(string(out), "updated_at") != 1 {
		t.Errorf("updated_at présent sur un jour sans tampon: %s", out)
	}
}

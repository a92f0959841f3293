package models

import (
	"testing"
	"time"
)

func TestFillDailySeries(t *testing.T) {
	start := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC)

	// Une seule commande de 50.00 € le jour du milieu
	byDay := map[string]Cents{"2025-03-11": Cents(5000)}

	series := FillDailySeries(start, end, byDay)
	if len(series) != 3 {
		t.Fatalf("len(series) = %d, attendu 3", len(series))
	}

	want := []RevenuePoint{
		{Date: "2025-03-10", Amount: 0},
		{Date: "2025-03-11", Amount: Cents(5000)},
		{Date: "2025-03-12", Amount: 0},
	}
	for i, p := range series {
		if p != want[i] {
			t.Errorf("series[%d] = %+v, attendu %+v", i, p, want[i])
		}
	}

	if total := SeriesTotal(series); total != Cents(5000) {
		t.Errorf("SeriesTotal = %d, attendu 5000", total)
	}
}

func TestFillDailySeriesSingleDay(t *testing.T) {
	day := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	series := FillDailySeries(day, day, nil)
	if len(series) != 1 || series[0].Date != "2025-03-10" || series[0].Amount != 0 {
		t.Errorf("series = %+v, attendu un seul point à zéro", series)
	}
}

func TestSummarizeLifetime(t *testing.T) {
	orders := []Order{
		{Status: StatusCompleted, TotalAmount: Cents(2000)},
		{Status: StatusCancelled, TotalAmount: Cents(3000)},
		{Status: StatusPending, TotalAmount: Cents(1000)},
	}

	s := SummarizeLifetime(orders)

	// Les annulées sont exclues du total, du compte et de la moyenne…
	if s.TotalRevenue != Cents(3000) {
		t.Errorf("TotalRevenue = %d, attendu 3000", s.TotalRevenue)
	}
	if s.TotalOrders != 2 {
		t.Errorf("TotalOrders = %d, attendu 2", s.TotalOrders)
	}
	if s.AverageOrderValue != Cents(1500) {
		t.Errorf("AverageOrderValue = %d, attendu 1500", s.AverageOrderValue)
	}

	// …mais présentes dans la ventilation par statut.
	if got := s.RevenueByStatus[StatusCancelled]; got != Cents(3000) {
		t.Errorf("RevenueByStatus[Cancelled] = %d, attendu 3000", got)
	}
	if got := s.RevenueByStatus[StatusCompleted]; got != Cents(2000) {
		t.Errorf("RevenueByStatus[Completed] = %d, attendu 2000", got)
	}
	if s.CalculatedAt.IsZero() {
		t.Error("CalculatedAt non renseigné")
	}
}

func TestSummarizeLifetimeEmpty(t *testing.T) {
	s := SummarizeLifetime(nil)
	if s.TotalRevenue != 0 || s.TotalOrders != 0 || s.AverageOrderValue != 0 {
		t.Errorf("résumé vide = %+v, attendu zéros", s)
	}
	if s.RevenueByStatus == nil {
		t.Error("RevenueByStatus doit être une map vide, pas nil")
	}
}

package models

import (
	"math"
	"time"
)

// DayFormat est la clé calendaire du ledger (pas de composante horaire).
const DayFormat = "2006-01-02"

// RevenuePoint est une entrée journalière de la série de revenus.
type RevenuePoint struct {
	Date   string `json:"date"`
	Amount Cents  `json:"amount"`
}

// FillDailySeries produit une série journalière dense et triée sur [start, end]
// inclus : chaque jour sans donnée reçoit une entrée explicite à zéro.
func FillDailySeries(start, end time.Time, byDay map[string]Cents) []RevenuePoint {
	var series []RevenuePoint
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		day := d.Format(DayFormat)
		series = append(series, RevenuePoint{Date: day, Amount: byDay[day]})
	}
	return series
}

// SeriesTotal somme la série remplie.
func SeriesTotal(series []RevenuePoint) Cents {
	var total Cents
	for _, p := range series {
		total += p.Amount
	}
	return total
}

// LifetimeSummary est le rapport de revenus global.
type LifetimeSummary struct {
	TotalRevenue      Cents            `json:"total_revenue"`
	TotalOrders       int              `json:"total_orders"`
	AverageOrderValue Cents            `json:"average_order_value"`
	RevenueByStatus   map[string]Cents `json:"revenue_by_status"`
	CalculatedAt      time.Time        `json:"calculated_at"`
}

// SummarizeLifetime calcule le rapport global. Les commandes annulées sont
// exclues du total, du compte et de la moyenne, mais la ventilation par statut
// couvre toutes les commandes, annulées comprises — c'est le comportement
// historique et il est conservé tel quel.
func SummarizeLifetime(orders []Order) LifetimeSummary {
	summary := LifetimeSummary{
		RevenueByStatus: make(map[string]Cents),
		CalculatedAt:    time.Now().UTC(),
	}

	for _, o := range orders {
		summary.RevenueByStatus[o.Status] += o.TotalAmount
		if o.Status == StatusCancelled {
			continue
		}
		summary.TotalRevenue += o.TotalAmount
		summary.TotalOrders++
	}

	if summary.TotalOrders > 0 {
		avg := float64(summary.TotalRevenue) / float64(summary.TotalOrders)
		summary.AverageOrderValue = Cents(math.Round(avg))
	}
	return summary
}

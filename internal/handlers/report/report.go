package report

import (
	"log"
	"net/http"
	"time"

	"saveur_back_end/internal/cache"
	"saveur_back_end/internal/database"
	"saveur_back_end/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/gocql/gocql"
)

const (
	sourceAggregated = "aggregated"
	sourceCalculated = "calculated"
)

// GetDailyRevenue gère GET /api/reports/daily-revenue?start=&end= (admin).
// Par défaut : les 30 derniers jours.
func GetDailyRevenue(c *gin.Context) {
	start, end, err := parseRange(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	series, source, err := loadDailySeries(start, end)
	if err != nil {
		log.Println("❌ Erreur calcul revenus journaliers:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur récupération revenus journaliers"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":          annotateUpdatedAt(series, cache.RevenueUpdatedAt),
		"total_days":    len(series),
		"total_revenue": models.SeriesTotal(series),
		"start_date":    start.Format(models.DayFormat),
		"end_date":      end.Format(models.DayFormat),
		"source":        source,
	})
}

// GetLifetimeRevenue gère GET /api/reports/lifetime-revenue (admin).
func GetLifetimeRevenue(c *gin.Context) {
	session, err := database.OrdersHotSession()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur connexion base de données"})
		return
	}

	orders, err := fetchOrderTotals(session)
	if err != nil {
		log.Println("❌ Erreur lecture commandes:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur récupération revenus"})
		return
	}

	c.JSON(http.StatusOK, models.SummarizeLifetime(orders))
}

// dailyRevenueView ajoute à un point de la série l'horodatage de dernière mise
// à jour du ledger pour ce jour, quand Redis le connaît (les tables counter ne
// portent pas de colonne timestamp).
type dailyRevenueView struct {
	models.RevenuePoint
	UpdatedAt string `json:"updated_at,omitempty"`
}

func annotateUpdatedAt(series []models.RevenuePoint, stampFor func(day string) time.Time) []dailyRevenueView {
	views := make([]dailyRevenueView, 0, len(series))
	for _, p := range series {
		v := dailyRevenueView{RevenuePoint: p}
		if at := stampFor(p.Date); !at.IsZero() {
			v.UpdatedAt = at.UTC().Format(time.RFC3339)
		}
		views = append(views, v)
	}
	return views
}

// parseRange lit start/end (YYYY-MM-DD inclus) avec repli sur les 30 derniers jours.
func parseRange(c *gin.Context) (time.Time, time.Time, error) {
	now := time.Now().UTC()
	start := now.AddDate(0, 0, -30)
	end := now

	var err error
	if s := c.Query("start"); s != "" {
		start, err = time.Parse(models.DayFormat, s)
		if err != nil {
			return time.Time{}, time.Time{}, errDateFormat
		}
	}
	if e := c.Query("end"); e != "" {
		end, err = time.Parse(models.DayFormat, e)
		if err != nil {
			return time.Time{}, time.Time{}, errDateFormat
		}
	}

	start = start.Truncate(24 * time.Hour)
	end = end.Truncate(24 * time.Hour)
	if end.Before(start) {
		return time.Time{}, time.Time{}, errRangeOrder
	}
	return start, end, nil
}

var (
	errDateFormat = rangeError("dates attendues au format YYYY-MM-DD")
	errRangeOrder = rangeError("la date de fin précède la date de début")
)

type rangeError string

func (e rangeError) Error() string { return string(e) }

// loadDailySeries lit le ledger jour par jour. Si aucune ligne n'existe sur la
// plage, on recalcule depuis la table des commandes (source de vérité) en
// excluant les annulées. Les deux chemins produisent une série dense : chaque
// jour de la plage a une entrée, à zéro s'il le faut.
func loadDailySeries(start, end time.Time) ([]models.RevenuePoint, string, error) {
	session, err := database.OrdersHotSession()
	if err != nil {
		return nil, "", err
	}

	byDay := make(map[string]models.Cents)
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		day := d.Format(models.DayFormat)

		var amountCents, orderCount int64
		err := database.SelectDailyRevenueQuery(session).Bind(day).Scan(&amountCents, &orderCount)
		if err == gocql.ErrNotFound {
			continue
		}
		if err != nil {
			return nil, "", err
		}
		byDay[day] = models.Cents(amountCents)
	}

	source := sourceAggregated
	if len(byDay) == 0 {
		// Le ledger n'a jamais été alimenté sur cette plage : repli sur les commandes
		byDay, err = computeFromOrders(session, start, end)
		if err != nil {
			return nil, "", err
		}
		source = sourceCalculated
	}

	return models.FillDailySeries(start, end, byDay), source, nil
}

// computeFromOrders agrège les totaux par jour depuis les commandes, hors annulées.
func computeFromOrders(session *gocql.Session, start, end time.Time) (map[string]models.Cents, error) {
	endOfRange := end.AddDate(0, 0, 1)

	iter := session.Query(`SELECT status, total_cents, created_at FROM orders`).Iter()

	byDay := make(map[string]models.Cents)
	var (
		status     string
		totalCents int64
		createdAt  time.Time
	)
	for iter.Scan(&status, &totalCents, &createdAt) {
		if status == models.StatusCancelled {
			continue
		}
		if createdAt.Before(start) || !createdAt.Before(endOfRange) {
			continue
		}
		byDay[createdAt.UTC().Format(models.DayFormat)] += models.Cents(totalCents)
	}
	if err := iter.Close(); err != nil {
		return nil, err
	}
	return byDay, nil
}

func fetchOrderTotals(session *gocql.Session) ([]models.Order, error) {
	iter := session.Query(`SELECT status, total_cents FROM orders`).Iter()

	var orders []models.Order
	var (
		status     string
		totalCents int64
	)
	for iter.Scan(&status, &totalCents) {
		orders = append(orders, models.Order{Status: status, TotalAmount: models.Cents(totalCents)})
	}
	if err := iter.Close(); err != nil {
		return nil, err
	}
	return orders, nil
}

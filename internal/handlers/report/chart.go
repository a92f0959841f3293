package report

import (
	"fmt"
	"log"
	"net/http"
	"strings"

	"saveur_back_end/internal/models"

	"github.com/gin-gonic/gin"
)

const (
	chartWidth   = 800
	chartHeight  = 300
	chartPadding = 40
)

// GetDailyRevenueChart gère GET /api/reports/daily-revenue/chart.svg (admin) :
// la même série que daily-revenue, rendue côté serveur.
func GetDailyRevenueChart(c *gin.Context) {
	start, end, err := parseRange(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	series, _, err := loadDailySeries(start, end)
	if err != nil {
		log.Println("❌ Erreur calcul revenus journaliers:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur récupération revenus journaliers"})
		return
	}

	c.Data(http.StatusOK, "image/svg+xml", []byte(RenderRevenueChartSVG(series, chartWidth, chartHeight)))
}

// RenderRevenueChartSVG trace la série en courbe : échelles linéaires en pixels,
// marge fixe de 40px, min en bas et max en haut de la zone utile.
func RenderRevenueChartSVG(series []models.RevenuePoint, width, height int) string {
	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d">`, width, height)
	b.WriteString(`<rect width="100%" height="100%" fill="white"/>`)

	if len(series) == 0 {
		fmt.Fprintf(&b, `<text x="%d" y="%d" text-anchor="middle" fill="#888">Aucune donnée disponible</text>`,
			width/2, height/2)
		b.WriteString(`</svg>`)
		return b.String()
	}

	minVal := series[0].Amount
	maxVal := series[0].Amount
	for _, p := range series {
		if p.Amount < minVal {
			minVal = p.Amount
		}
		if p.Amount > maxVal {
			maxVal = p.Amount
		}
	}

	span := float64(maxVal - minVal)
	if span == 0 {
		span = 1
	}
	xScale := 0.0
	if len(series) > 1 {
		xScale = float64(width-2*chartPadding) / float64(len(series)-1)
	}
	yScale := float64(height-2*chartPadding) / span

	// Axes
	fmt.Fprintf(&b, `<line x1="%d" y1="%d" x2="%d" y2="%d" stroke="#ccc"/>`,
		chartPadding, height-chartPadding, width-chartPadding, height-chartPadding)
	fmt.Fprintf(&b, `<line x1="%d" y1="%d" x2="%d" y2="%d" stroke="#ccc"/>`,
		chartPadding, chartPadding, chartPadding, height-chartPadding)

	// Graduations Y (0%, 25%, 50%, 75%, 100% de l'amplitude)
	for i := 0; i <= 4; i++ {
		ratio := float64(i) / 4
		value := minVal + models.Cents(ratio*float64(maxVal-minVal))
		y := float64(height-chartPadding) - ratio*float64(height-2*chartPadding)
		fmt.Fprintf(&b, `<text x="%d" y="%.1f" text-anchor="end" font-size="10" fill="#888">%.2f</text>`,
			chartPadding-8, y+3, value.Amount())
	}

	// Courbe
	var path strings.Builder
	for i, p := range series {
		x := float64(chartPadding) + float64(i)*xScale
		y := float64(height-chartPadding) - float64(p.Amount-minVal)*yScale
		if i == 0 {
			fmt.Fprintf(&path, "M %.1f %.1f", x, y)
		} else {
			fmt.Fprintf(&path, " L %.1f %.1f", x, y)
		}
	}
	fmt.Fprintf(&b, `<path d="%s" fill="none" stroke="#16a34a" stroke-width="2"/>`, path.String())

	// Premières et dernières dates en abscisse
	fmt.Fprintf(&b, `<text x="%d" y="%d" font-size="10" fill="#888">%s</text>`,
		chartPadding, height-chartPadding+15, series[0].Date)
	if len(series) > 1 {
		fmt.Fprintf(&b, `<text x="%d" y="%d" text-anchor="end" font-size="10" fill="#888">%s</text>`,
			width-chartPadding, height-chartPadding+15, series[len(series)-1].Date)
	}

	b.WriteString(`</svg>`)
	return b.String()
}

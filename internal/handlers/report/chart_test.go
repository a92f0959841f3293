package report

import (
	"strings"
	"testing"

	"saveur_back_end/internal/models"
)

func TestRenderRevenueChartSVGEmpty(t *testing.T) {
	svg := RenderRevenueChartSVG(nil, 800, 300)
	if !strings.HasPrefix(svg, `<svg xmlns="http://www.w3.org/2000/svg" width="800" height="300">`) {
		t.Errorf("en-tête SVG inattendu: %s", svg[:60])
	}
	if !strings.Contains(svg, "Aucune donnée disponible") {
		t.Error("le message de série vide est absent")
	}
	if strings.Contains(svg, "<path") {
		t.Error("une courbe est tracée sur une série vide")
	}
}

func TestRenderRevenueChartSVGSeries(t *testing.T) {
	series := []models.RevenuePoint{
		{Date: "2025-03-10", Amount: models.Cents(0)},
		{Date: "2025-03-11", Amount: models.Cents(5000)},
		{Date: "2025-03-12", Amount: models.Cents(2500)},
	}

	svg := RenderRevenueChartSVG(series, 800, 300)

	if !strings.Contains(svg, `<path d="M `) {
		t.Error("courbe absente")
	}
	if !strings.Contains(svg, `stroke="#16a34a"`) {
		t.Error("couleur de courbe absente")
	}
	// Premières et dernières dates en abscisse
	if !strings.Contains(svg, "2025-03-10") || !strings.Contains(svg, "2025-03-12") {
		t.Error("dates de début/fin absentes")
	}
	if !strings.HasSuffix(svg, "</svg>") {
		t.Error("SVG non fermé")
	}
}

func TestRenderRevenueChartSVGFlatSeries(t *testing.T) {
	// Série plate : l'amplitude nulle ne doit pas diviser par zéro
	series := []models.RevenuePoint{
		{Date: "2025-03-10", Amount: models.Cents(1000)},
		{Date: "2025-03-11", Amount: models.Cents(1000)},
	}
	svg := RenderRevenueChartSVG(series, 800, 300)
	if !strings.Contains(svg, `<path d="M `) {
		t.Error("courbe absente sur série plate")
	}
	if strings.Contains(svg, "NaN") || strings.Contains(svg, "Inf") {
		t.Errorf("coordonnées invalides dans le SVG: %s", svg)
	}
}

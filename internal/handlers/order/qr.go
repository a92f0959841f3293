package order

import (
	"fmt"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/gocql/gocql"
	qrcode "github.com/skip2/go-qrcode"
)

// GetOrderQR gère GET /api/orders/:id/qr : un QR code PNG de l'URL de suivi,
// à imprimer sur le ticket de caisse.
func GetOrderQR(c *gin.Context) {
	orderID := c.Param("id")

	if _, err := fetchOrder(orderID); err != nil {
		if err == gocql.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Commande introuvable"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur récupération commande"})
		return
	}

	baseURL := os.Getenv("BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}
	trackingURL := fmt.Sprintf("%s/track?orderId=%s", baseURL, orderID)

	png, err := qrcode.Encode(trackingURL, qrcode.Medium, 256)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur génération QR"})
		return
	}

	c.Data(http.StatusOK, "image/png", png)
}

package order

import (
	"fmt"
	"log"
	"net/http"

	"saveur_back_end/internal/models"
	"saveur_back_end/internal/utils"

	"github.com/gin-gonic/gin"
)

// SendOrderEmail gère POST /api/send-order-email. L'endpoint est conservé pour
// le front existant ; le corps reprend ses noms de champs camelCase.
func SendOrderEmail(c *gin.Context) {
	var input struct {
		Email        string             `json:"email"`
		OrderID      string             `json:"orderId"`
		CustomerName string             `json:"customerName"`
		Items        []models.OrderItem `json:"items"`
		TotalAmount  models.Cents       `json:"totalAmount"`
		IsPickup     bool               `json:"isPickup"`
		Address      string             `json:"address"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.Email == "" || input.OrderID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Champs requis manquants : email et orderId"})
		return
	}

	order := models.Order{
		ID:           input.OrderID,
		Email:        input.Email,
		CustomerName: input.CustomerName,
		Address:      input.Address,
		Pickup:       input.IsPickup,
		Items:        input.Items,
		TotalAmount:  input.TotalAmount,
	}

	subject := fmt.Sprintf("Confirmation de commande - %s", order.ID)
	html := utils.GenerateOrderConfirmationHTML(order)

	if err := utils.SendOrderConfirmationEmail(order.Email, subject, html); err != nil {
		log.Println("❌ Échec envoi e-mail:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Échec de l'envoi de l'e-mail"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "E-mail envoyé avec succès",
		"emailSent": true,
	})
}

package utils

import (
	"fmt"
	"os"

	"saveur_back_end/internal/models"
)

// GenerateOrderConfirmationHTML génère le HTML de confirmation de commande.
func GenerateOrderConfirmationHTML(order models.Order) string {
	itemsHTML := ""
	for _, item := range order.Items {
		qty := item.Quantity
		if qty < 1 {
			qty = 1
		}
		itemsHTML += fmt.Sprintf(`
			<tr>
				<td>%s</td>
				<td>%d</td>
				<td>%.2f€</td>
				<td>%.2f€</td>
			</tr>`, item.Name, qty, item.Price.Amount(), (item.Price * models.Cents(qty)).Amount())
	}

	deliveryHTML := "Commande à emporter"
	if !order.Pickup {
		deliveryHTML = fmt.Sprintf("Adresse de livraison : %s", order.Address)
	}

	baseURL := os.Getenv("BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}
	trackingURL := fmt.Sprintf("%s/track?orderId=%s", baseURL, order.ID)

	return fmt.Sprintf(`
<!DOCTYPE html>
<html lang="fr">
<head>
	<meta charset="UTF-8">
	<meta name="viewport" content="width=device-width, initial-scale=1.0">
	<title>Confirmation de commande</title>
</head>
<body style="font-family: Arial, sans-serif; background-color: #f9f9f9; padding: 20px;">
	<div style="max-width: 600px; margin: auto; background-color: white; padding: 20px; border-radius: 10px;">
		<h2 style="color: #333;">Confirmation de votre commande</h2>
		<p>Bonjour %s,</p>
		<p>Merci pour votre commande ! Voici le détail :</p>

		<h3>Commande %s</h3>
		<table style="width: 100%%; border-collapse: collapse; margin: 20px 0;">
			<thead>
				<tr style="background-color: #f0f0f0;">
					<th style="padding: 10px; text-align: left; border: 1px solid #ddd;">Plat</th>
					<th style="padding: 10px; text-align: left; border: 1px solid #ddd;">Quantité</th>
					<th style="padding: 10px; text-align: left; border: 1px solid #ddd;">Prix unitaire</th>
					<th style="padding: 10px; text-align: left; border: 1px solid #ddd;">Total</th>
				</tr>
			</thead>
			<tbody>
				%s
			</tbody>
			<tfoot>
				<tr>
					<td colspan="3" style="padding: 10px; text-align: right; font-weight: bold;">Total:</td>
					<td style="padding: 10px; font-weight: bold;">%.2f€</td>
				</tr>
			</tfoot>
		</table>

		<p>%s</p>
		<p>Suivez votre commande à tout moment : <a href="%s">%s</a></p>

		<p style="margin-top: 30px; color: #555;">
			Cordialement,<br>
			<strong>L'équipe Saveur</strong>
		</p>
		<hr>
		<p><small>E-mail automatique, merci de ne pas y répondre.</small></p>
	</div>
</body>
</html>`, order.CustomerName, order.ID, itemsHTML, order.TotalAmount.Amount(), deliveryHTML, trackingURL, trackingURL)
}

package order

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"sort"
	"strings"
	"time"

	"saveur_back_end/internal/cache"
	"saveur_back_end/internal/database"
	"saveur_back_end/internal/middleware"
	"saveur_back_end/internal/models"
	"saveur_back_end/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/gocql/gocql"
)

// orderView enrichit une commande d'une classe de couleur pour l'affichage.
type orderView struct {
	models.Order
	StatusColor string `json:"status_color"`
}

func viewOf(o models.Order) orderView {
	return orderView{Order: o, StatusColor: models.ColorClassFor(o.Status)}
}

// CreateOrder gère POST /api/orders (invité ou membre).
func CreateOrder(c *gin.Context) {
	var input models.CreateOrderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := input.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Le total est figé à la création : Σ(prix unitaire × quantité) sur les
	// lignes soumises. Les prix viennent du client, comme sur l'ancien back.
	totalCents := models.ComputeTotalCents(input.Items)

	if input.PaymentMethod == "" {
		input.PaymentMethod = models.DefaultPaymentMethod
	}

	address := input.Address
	if input.Pickup {
		address = ""
	}

	now := time.Now().UTC()
	order := models.Order{
		ID:                  utils.GenerateOrderID(),
		UserID:              input.UserID,
		Email:               input.Email,
		CustomerName:        input.CustomerName,
		Address:             address,
		Pickup:              input.Pickup,
		Items:               input.Items,
		SpecialInstructions: input.SpecialInstructions,
		Status:              models.StatusPending,
		TotalAmount:         totalCents,
		PaymentMethod:       input.PaymentMethod,
		CreatedAt:           now,
		UpdatedAt:           now,
	}

	session, err := database.OrdersHotSession()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur connexion base de données"})
		return
	}

	itemsJSON, err := json.Marshal(order.Items)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur création commande"})
		return
	}

	if err := database.InsertOrderQuery(session).Bind(
		order.ID, order.UserID, order.Email, order.CustomerName, order.Address,
		order.Pickup, string(itemsJSON), order.SpecialInstructions, order.Status,
		int64(order.TotalAmount), order.PaymentMethod, order.CreatedAt, order.UpdatedAt,
	).Exec(); err != nil {
		log.Println("❌ Erreur insertion commande:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur création commande"})
		return
	}

	// Table de requête pour le listing par membre
	if err := database.InsertOrderByEmailQuery(session).Bind(order.Email, order.CreatedAt, order.ID).Exec(); err != nil {
		log.Println("⚠️ Erreur indexation orders_by_email:", err)
	}

	// Upsert best-effort du ledger du jour : un échec est loggé et avalé,
	// jamais remonté au client — la commande, elle, est déjà créée.
	day := now.Format(models.DayFormat)
	if err := database.IncrementDailyRevenueQuery(session).Bind(int64(totalCents), day).Exec(); err != nil {
		log.Println("⚠️ Échec mise à jour daily_revenue:", err)
	} else {
		cache.StampRevenueUpdatedAt(day, now)
	}

	// Confirmation par e-mail en fire-and-forget, échec ignoré
	go func(o models.Order) {
		subject := fmt.Sprintf("Confirmation de commande - %s", o.ID)
		html := utils.GenerateOrderConfirmationHTML(o)
		if err := utils.SendOrderConfirmationEmail(o.Email, subject, html); err != nil {
			log.Println("⚠️ Échec envoi e-mail de confirmation:", err)
		}
	}(order)

	c.JSON(http.StatusCreated, gin.H{
		"message":      "Commande créée avec succès",
		"order":        viewOf(order),
		"tracking_url": fmt.Sprintf("/track?orderId=%s", order.ID),
	})
}

// GetOrderByID gère GET /api/orders/:id (suivi public par identifiant opaque).
func GetOrderByID(c *gin.Context) {
	orderID := c.Param("id")

	order, err := fetchOrder(orderID)
	if err == gocql.ErrNotFound {
		c.JSON(http.StatusNotFound, gin.H{"error": "Commande introuvable"})
		return
	}
	if err != nil {
		log.Println("❌ Erreur lecture commande:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur récupération commande"})
		return
	}

	c.JSON(http.StatusOK, viewOf(order))
}

// ListOrders gère GET /api/orders. Avec ?email= : les commandes du membre.
// Sans filtre : toutes les commandes, réservé à l'admin.
func ListOrders(c *gin.Context) {
	email := c.Query("email")

	session, err := database.OrdersHotSession()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur connexion base de données"})
		return
	}

	if email != "" {
		orders, err := fetchOrdersByEmail(session, email)
		if err != nil {
			log.Println("❌ Erreur lecture commandes membre:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur récupération commandes"})
			return
		}
		c.JSON(http.StatusOK, viewsOf(orders))
		return
	}

	if !middleware.IsAdmin(c) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	orders, err := fetchAllOrders(session)
	if err != nil {
		log.Println("❌ Erreur lecture commandes:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur récupération commandes"})
		return
	}

	c.JSON(http.StatusOK, viewsOf(orders))
}

// UpdateOrderStatus gère PUT /api/orders/:id (admin). Le statut cible doit
// appartenir au vocabulaire ledger tel quel : les valeurs workflow comme
// "delivered" ou "ready" sont refusées, pas traduites. Pas de machine à
// états : n'importe quel statut valide peut remplacer n'importe quel autre,
// dernier écrivain gagnant.
func UpdateOrderStatus(c *gin.Context) {
	orderID := c.Param("id")

	var input struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Refus avant tout accès au stockage : le statut enregistré ne bouge pas
	if input.Status != "" && !models.IsValidLedgerStatus(input.Status) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Statut invalide. Valeurs acceptées : " + strings.Join(models.LedgerStatuses, ", "),
		})
		return
	}

	order, err := fetchOrder(orderID)
	if err == gocql.ErrNotFound {
		c.JSON(http.StatusNotFound, gin.H{"error": "Commande introuvable"})
		return
	}
	if err != nil {
		log.Println("❌ Erreur lecture commande:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur récupération commande"})
		return
	}

	if input.Status != "" {
		order.Status = input.Status
	}
	order.UpdatedAt = time.Now().UTC()

	session, err := database.OrdersHotSession()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur connexion base de données"})
		return
	}

	if err := database.UpdateOrderStatusQuery(session).Bind(order.Status, order.UpdatedAt, order.ID).Exec(); err != nil {
		log.Println("❌ Erreur mise à jour statut:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur mise à jour commande"})
		return
	}

	c.JSON(http.StatusOK, viewOf(order))
}

// --- Accès stockage ---

func viewsOf(orders []models.Order) []orderView {
	views := make([]orderView, 0, len(orders))
	for _, o := range orders {
		views = append(views, viewOf(o))
	}
	return views
}

func fetchOrder(orderID string) (models.Order, error) {
	session, err := database.OrdersHotSession()
	if err != nil {
		return models.Order{}, err
	}

	var (
		o         models.Order
		itemsJSON string
	)
	o.ID = orderID

	err = database.SelectOrderQuery(session).Bind(orderID).Scan(
		&o.UserID, &o.Email, &o.CustomerName, &o.Address, &o.Pickup,
		&itemsJSON, &o.SpecialInstructions, &o.Status, (*int64)(&o.TotalAmount),
		&o.PaymentMethod, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		return models.Order{}, err
	}

	if err := json.Unmarshal([]byte(itemsJSON), &o.Items); err != nil {
		log.Printf("⚠️ Lignes illisibles pour la commande %s: %v", orderID, err)
	}
	return o, nil
}

func fetchOrdersByEmail(session *gocql.Session, email string) ([]models.Order, error) {
	iter := session.Query(`SELECT order_id FROM orders_by_email WHERE email = ?`, email).Iter()

	var orderIDs []string
	var id string
	for iter.Scan(&id) {
		orderIDs = append(orderIDs, id)
	}
	if err := iter.Close(); err != nil {
		return nil, err
	}

	orders := make([]models.Order, 0, len(orderIDs))
	for _, orderID := range orderIDs {
		o, err := fetchOrder(orderID)
		if err == gocql.ErrNotFound {
			continue
		}
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, nil
}

func fetchAllOrders(session *gocql.Session) ([]models.Order, error) {
	iter := session.Query(`SELECT order_id, user_id, email, customer_name, address, pickup, items, special_instructions, status, total_cents, payment_method, created_at, updated_at FROM orders`).Iter()

	var orders []models.Order
	var (
		o          models.Order
		itemsJSON  string
		totalCents int64
	)
	for iter.Scan(&o.ID, &o.UserID, &o.Email, &o.CustomerName, &o.Address, &o.Pickup,
		&itemsJSON, &o.SpecialInstructions, &o.Status, &totalCents,
		&o.PaymentMethod, &o.CreatedAt, &o.UpdatedAt) {
		o.TotalAmount = models.Cents(totalCents)
		if err := json.Unmarshal([]byte(itemsJSON), &o.Items); err != nil {
			log.Printf("⚠️ Lignes illisibles pour la commande %s: %v", o.ID, err)
			o.Items = nil
		}
		orders = append(orders, o)
		o = models.Order{} // Reset pour la prochaine itération
	}
	if err := iter.Close(); err != nil {
		return nil, err
	}

	// Les plus récentes d'abord, comme sur l'ancien back
	sort.Slice(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})
	return orders, nil
}

package models

import (
	"encoding/json"
	"errors"
	"math"
	"strconv"
	"time"
)

// Cents représente un montant en centimes. Les montants sont stockés en bigint
// côté ScyllaDB (les compteurs du ledger n'acceptent que des entiers) et
// sérialisés en euros à deux décimales sur le wire.
type Cents int64

func (c Cents) Amount() float64 {
	return float64(c) / 100
}

func (c Cents) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.Amount())
}

// UnmarshalJSON accepte un nombre JSON ou une chaîne numérique (les colonnes
// numeric de l'ancienne base arrivaient en chaînes, ex: "25.99").
func (c *Cents) UnmarshalJSON(data []byte) error {
	var f float64
	if err := json.Unmarshal(data, &f); err == nil {
		*c = CentsFromAmount(f)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s == "" {
		*c = 0
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return err
	}
	*c = CentsFromAmount(f)
	return nil
}

// CentsFromAmount convertit un montant en euros vers les centimes, arrondi au centime.
func CentsFromAmount(amount float64) Cents {
	return Cents(math.Round(amount * 100))
}

// DefaultItemPrice est le prix de repli quand une ligne arrive sans prix
// (comportement historique du front, conservé tel quel).
const DefaultItemPrice = Cents(2599)

// DefaultPaymentMethod est le libellé de paiement par défaut. Aucun paiement
// n'est réellement traité, c'est une simple étiquette.
const DefaultPaymentMethod = "pay-on-delivery"

// OrderItem est une ligne de commande. Le nom et le prix sont capturés au moment
// de la commande : les modifications ultérieures du menu ne la touchent pas.
type OrderItem struct {
	FoodID   string `json:"food_id,omitempty"`
	Name     string `json:"name"`
	Price    Cents  `json:"price"`
	Quantity int    `json:"quantity"`
}

// UnmarshalJSON résout la variante historique des lignes de commande : certaines
// anciennes commandes stockent une simple chaîne au lieu d'un objet. La forme est
// résolue ici une fois pour toutes, le reste du code ne voit que des OrderItem.
func (it *OrderItem) UnmarshalJSON(data []byte) error {
	var label string
	if err := json.Unmarshal(data, &label); err == nil {
		it.FoodID = ""
		it.Name = label
		it.Price = 0
		it.Quantity = 1
		return nil
	}

	var aux struct {
		ID       string `json:"id"`
		FoodID   string `json:"food_id"`
		Name     string `json:"name"`
		Price    Cents  `json:"price"`
		Quantity int    `json:"quantity"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	it.FoodID = aux.FoodID
	if it.FoodID == "" {
		it.FoodID = aux.ID
	}
	it.Name = aux.Name
	it.Price = aux.Price
	it.Quantity = aux.Quantity
	return nil
}

// Order est une commande persistée. Seuls Status et UpdatedAt changent après
// la création ; les lignes et le total sont figés.
type Order struct {
	ID                  string      `json:"id"`
	UserID              string      `json:"user_id,omitempty"`
	Email               string      `json:"email"`
	CustomerName        string      `json:"customer_name"`
	Address             string      `json:"address"`
	Pickup              bool        `json:"pickup"`
	Items               []OrderItem `json:"items"`
	SpecialInstructions string      `json:"special_instructions"`
	Status              string      `json:"status"`
	TotalAmount         Cents       `json:"total_amount"`
	PaymentMethod       string      `json:"payment_method"`
	CreatedAt           time.Time   `json:"created_at"`
	UpdatedAt           time.Time   `json:"updated_at"`
}

// CreateOrderInput est le corps attendu par POST /api/orders.
type CreateOrderInput struct {
	UserID              string      `json:"user_id"`
	Email               string      `json:"email"`
	CustomerName        string      `json:"customer_name"`
	Address             string      `json:"address"`
	Pickup              bool        `json:"pickup"`
	Items               []OrderItem `json:"items"`
	SpecialInstructions string      `json:"special_instructions"`
	PaymentMethod       string      `json:"payment_method"`
}

var (
	ErrMissingFields  = errors.New("champs requis manquants : email, customer_name et items")
	ErrMissingAddress = errors.New("une adresse est requise pour les commandes en livraison")
)

// Validate vérifie l'entrée avant toute écriture. Rien n'est persisté si elle échoue.
func (in CreateOrderInput) Validate() error {
	if in.Email == "" || in.CustomerName == "" || len(in.Items) == 0 {
		return ErrMissingFields
	}
	if !in.Pickup && in.Address == "" {
		return ErrMissingAddress
	}
	return nil
}

// ComputeTotalCents calcule le total de la commande : Σ(prix unitaire × quantité).
// Le prix soumis par le client est utilisé tel quel ; une ligne sans prix reçoit
// le prix de repli et une quantité absente vaut 1 (comportement historique).
func ComputeTotalCents(items []OrderItem) Cents {
	var total Cents
	for _, it := range items {
		price := it.Price
		if price == 0 {
			price = DefaultItemPrice
		}
		qty := it.Quantity
		if qty < 1 {
			qty = 1
		}
		total += price * Cents(qty)
	}
	return total
}

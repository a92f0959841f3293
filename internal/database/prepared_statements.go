package database

import (
	"log"
	"sync"

	"github.com/gocql/gocql"
)

// Requêtes du chemin chaud commandes/ledger. La session est résolue une seule
// fois ; les requêtes sont construites à la demande pour rester sûres en
// concurrence.
const (
	stmtInsertOrder = `INSERT INTO orders (order_id, user_id, email, customer_name, address, pickup, items, special_instructions, status, total_cents, payment_method, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	stmtInsertOrderByEmail = `INSERT INTO orders_by_email (email, created_at, order_id) VALUES (?, ?, ?)`
	stmtSelectOrder        = `SELECT user_id, email, customer_name, address, pickup, items, special_instructions, status, total_cents, payment_method, created_at, updated_at
		FROM orders WHERE order_id = ?`
	stmtUpdateOrderStatus = `UPDATE orders SET status = ?, updated_at = ? WHERE order_id = ?`

	// Upsert atomique du ledger : les compteurs ScyllaDB créent la ligne au
	// premier incrément et les incréments concurrents ne se perdent pas.
	stmtIncrementDailyRevenue = `UPDATE daily_revenue SET amount_cents = amount_cents + ?, order_count = order_count + 1 WHERE day = ?`
	stmtSelectDailyRevenue    = `SELECT amount_cents, order_count FROM daily_revenue WHERE day = ?`
)

var (
	ordersSession     *gocql.Session
	ordersSessionOnce sync.Once
)

// OrdersHotSession retourne la session orders mise en cache pour le chemin chaud.
func OrdersHotSession() (*gocql.Session, error) {
	var err error
	ordersSessionOnce.Do(func() {
		ordersSession, err = GetOrdersSession()
		if err != nil {
			log.Printf("⚠️ Impossible d'initialiser la session orders: %v", err)
			return
		}
		log.Println("✅ Session orders prête pour le chemin chaud")
	})
	if ordersSession == nil {
		return GetOrdersSession()
	}
	return ordersSession, err
}

func InsertOrderQuery(session *gocql.Session) *gocql.Query {
	return session.Query(stmtInsertOrder)
}

func InsertOrderByEmailQuery(session *gocql.Session) *gocql.Query {
	return session.Query(stmtInsertOrderByEmail)
}

func SelectOrderQuery(session *gocql.Session) *gocql.Query {
	return session.Query(stmtSelectOrder)
}

func UpdateOrderStatusQuery(session *gocql.Session) *gocql.Query {
	return session.Query(stmtUpdateOrderStatus)
}

func IncrementDailyRevenueQuery(session *gocql.Session) *gocql.Query {
	return session.Query(stmtIncrementDailyRevenue)
}

func SelectDailyRevenueQuery(session *gocql.Session) *gocql.Query {
	return session.Query(stmtSelectDailyRevenue)
}

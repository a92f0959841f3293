package main

import (
	"context"
	"log"
	"os"

	"saveur_back_end/internal/config"
	"saveur_back_end/internal/database"
	"saveur_back_end/internal/routes"

	"github.com/gin-gonic/gin"
)

func main() {
	config.Load()

	if os.Getenv("ADMIN_PASSWORD_HASH") == "" {
		log.Println("⚠️ ADMIN_PASSWORD_HASH manquant — la surface admin refusera tout accès")
	}
	if os.Getenv("SMTP_HOST") == "" {
		log.Println("⚠️ SMTP non configuré — les e-mails de confirmation échoueront (non bloquant)")
	}

	database.ConnectDatabases()

	// ✅ Pré-résoudre la session orders du chemin chaud
	if _, err := database.OrdersHotSession(); err != nil {
		log.Println("⚠️ Session orders indisponible au démarrage:", err)
	}

	// ✅ Pré-chauffer le cache Redis
	warmupRedisCache()

	r := gin.Default()
	routes.RegisterRoutes(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Println("🚀 Serveur Saveur lancé sur le port", port)
	r.Run(":" + port)
}

// warmupRedisCache pré-chauffe le cache Redis pour éviter la latence du premier appel
func warmupRedisCache() {
	ctx := context.Background()
	if err := database.Redis.Ping(ctx).Err(); err == nil {
		log.Println("✅ Cache Redis pré-chauffé")
	}
}

package config

import (
	"log"

	"github.com/joho/godotenv"
)

// Load charge le .env du service (ScyllaDB, Redis, Elastic, MinIO, SMTP, admin).
// En son absence, les variables viennent de l'environnement du processus.
func Load() {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("⚠️  Pas de fichier .env — configuration lue depuis l'environnement")
		return
	}
	log.Println("✅ Configuration .env chargée")
}

package models

import (
	"time"

	"github.com/gocql/gocql"
)

// Catégories du menu : exactement deux valeurs, salé ou sucré.
const (
	CategorySalt  = "salt"
	CategorySweet = "sweet"
)

func IsValidCategory(category string) bool {
	return category == CategorySalt || category == CategorySweet
}

// Food est un plat du menu. Les commandes capturent une copie du nom et du prix
// au moment de la commande, elles ne pointent pas vers le plat vivant.
type Food struct {
	ID          gocql.UUID `json:"id"`
	Category    string     `json:"category"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	ImageURL    string     `json:"image_url"`
	Price       Cents      `json:"price"`
	CreatedAt   *time.Time `json:"created_at,omitempty"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
}

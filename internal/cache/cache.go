package cache

import (
	"context"
	"encoding/json"
	"time"

	"saveur_back_end/internal/database"
	"saveur_back_end/internal/models"
)

const (
	MenuCacheTTL = 10 * time.Minute

	menuCacheKey = "foods:all"
)

// GetMenuFromCache récupère le menu complet depuis Redis, ou nil si absent.
func GetMenuFromCache() []models.Food {
	ctx := context.Background()

	data, err := database.Redis.Get(ctx, menuCacheKey).Result()
	if err != nil {
		return nil
	}

	var foods []models.Food
	if json.Unmarshal([]byte(data), &foods) != nil {
		return nil
	}
	return foods
}

// SetMenuCache met le menu complet en cache.
func SetMenuCache(foods []models.Food) {
	ctx := context.Background()
	jsonData, err := json.Marshal(foods)
	if err != nil {
		return
	}
	database.Redis.Set(ctx, menuCacheKey, jsonData, MenuCacheTTL)
}

// InvalidateMenuCache invalide le cache du menu après toute mutation admin.
func InvalidateMenuCache() {
	ctx := context.Background()
	database.Redis.Del(ctx, menuCacheKey)
}

// StampRevenueUpdatedAt enregistre l'horodatage de dernière mise à jour du
// ledger pour un jour donné. Les tables counter de ScyllaDB ne peuvent pas
// porter de colonne timestamp, le tampon vit donc ici. Best-effort.
func StampRevenueUpdatedAt(day string, at time.Time) {
	ctx := context.Background()
	database.Redis.Set(ctx, "revenue:updated:"+day, at.UTC().Format(time.RFC3339), 0)
}

// RevenueUpdatedAt retourne l'horodatage de dernière mise à jour du ledger
// pour un jour donné, ou zéro si inconnu.
func RevenueUpdatedAt(day string) time.Time {
	ctx := context.Background()
	val, err := database.Redis.Get(ctx, "revenue:updated:"+day).Result()
	if err != nil {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339, val)
	if err != nil {
		return time.Time{}
	}
	return t
}

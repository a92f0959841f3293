package food

import (
	"log"
	"net/http"
	"time"

	"saveur_back_end/internal/cache"
	"saveur_back_end/internal/database"
	"saveur_back_end/internal/models"
	"saveur_back_end/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/gocql/gocql"
)

// GetAllFoods gère GET /api/foods : le menu complet, via le cache Redis.
func GetAllFoods(c *gin.Context) {
	if cached := cache.GetMenuFromCache(); cached != nil {
		c.JSON(http.StatusOK, cached)
		return
	}

	session, err := database.GetMenuSession()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur connexion base de données"})
		return
	}

	iter := session.Query(`SELECT food_id, category, name, description, image_url, price_cents, created_at, updated_at FROM foods`).Iter()

	foods := []models.Food{}
	var (
		f          models.Food
		priceCents int64
	)
	for iter.Scan(&f.ID, &f.Category, &f.Name, &f.Description, &f.ImageURL, &priceCents, &f.CreatedAt, &f.UpdatedAt) {
		f.Price = models.Cents(priceCents)
		foods = append(foods, f)
		f = models.Food{} // Reset pour la prochaine itération
	}
	if err := iter.Close(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture menu: " + err.Error()})
		return
	}

	cache.SetMenuCache(foods)
	c.JSON(http.StatusOK, foods)
}

// GetFoodByID gère GET /api/foods/:id.
func GetFoodByID(c *gin.Context) {
	foodID, err := gocql.ParseUUID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID de plat invalide"})
		return
	}

	f, err := fetchFood(foodID)
	if err == gocql.ErrNotFound {
		c.JSON(http.StatusNotFound, gin.H{"error": "Plat introuvable"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur récupération plat"})
		return
	}

	c.JSON(http.StatusOK, f)
}

type foodInput struct {
	Category    string        `json:"category"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	ImageURL    string        `json:"image_url"`
	Price       *models.Cents `json:"price"`
}

// CreateFood gère POST /api/foods (admin).
func CreateFood(c *gin.Context) {
	var input foodInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.Category == "" || input.Name == "" || input.Description == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Champs requis manquants : category, name et description"})
		return
	}
	if !models.IsValidCategory(input.Category) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "La catégorie doit être 'salt' ou 'sweet'"})
		return
	}

	price := models.DefaultItemPrice
	if input.Price != nil && *input.Price > 0 {
		price = *input.Price
	}

	now := time.Now().UTC()
	f := models.Food{
		ID:          gocql.TimeUUID(),
		Category:    input.Category,
		Name:        input.Name,
		Description: input.Description,
		ImageURL:    input.ImageURL,
		Price:       price,
		CreatedAt:   &now,
		UpdatedAt:   &now,
	}

	session, err := database.GetMenuSession()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur connexion base de données"})
		return
	}

	if err := session.Query(`INSERT INTO foods (food_id, category, name, description, image_url, price_cents, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		f.ID, f.Category, f.Name, f.Description, f.ImageURL, int64(f.Price), f.CreatedAt, f.UpdatedAt).Exec(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur création plat: " + err.Error()})
		return
	}

	cache.InvalidateMenuCache()

	// 🔄 Indexation Elasticsearch
	go services.IndexFood(f)

	c.JSON(http.StatusCreated, f)
}

// UpdateFood gère PUT /api/foods/:id (admin). Mise à jour partielle.
func UpdateFood(c *gin.Context) {
	foodID, err := gocql.ParseUUID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID de plat invalide"})
		return
	}

	var input foodInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	f, err := fetchFood(foodID)
	if err == gocql.ErrNotFound {
		c.JSON(http.StatusNotFound, gin.H{"error": "Plat introuvable"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur récupération plat"})
		return
	}

	if input.Category != "" {
		if !models.IsValidCategory(input.Category) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "La catégorie doit être 'salt' ou 'sweet'"})
			return
		}
		f.Category = input.Category
	}
	if input.Name != "" {
		f.Name = input.Name
	}
	if input.Description != "" {
		f.Description = input.Description
	}
	if input.ImageURL != "" {
		f.ImageURL = input.ImageURL
	}
	if input.Price != nil && *input.Price > 0 {
		f.Price = *input.Price
	}
	now := time.Now().UTC()
	f.UpdatedAt = &now

	session, err := database.GetMenuSession()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur connexion base de données"})
		return
	}

	if err := session.Query(`UPDATE foods SET category = ?, name = ?, description = ?, image_url = ?, price_cents = ?, updated_at = ? WHERE food_id = ?`,
		f.Category, f.Name, f.Description, f.ImageURL, int64(f.Price), f.UpdatedAt, f.ID).Exec(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur mise à jour plat: " + err.Error()})
		return
	}

	cache.InvalidateMenuCache()
	go services.IndexFood(f)

	c.JSON(http.StatusOK, f)
}

// DeleteFood gère DELETE /api/foods/:id (admin).
func DeleteFood(c *gin.Context) {
	foodID, err := gocql.ParseUUID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID de plat invalide"})
		return
	}

	f, err := fetchFood(foodID)
	if err == gocql.ErrNotFound {
		c.JSON(http.StatusNotFound, gin.H{"error": "Plat introuvable"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur récupération plat"})
		return
	}

	session, err := database.GetMenuSession()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur connexion base de données"})
		return
	}

	if err := session.Query(`DELETE FROM foods WHERE food_id = ?`, f.ID).Exec(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur suppression plat: " + err.Error()})
		return
	}

	cache.InvalidateMenuCache()
	go services.RemoveFoodFromIndex(f.ID.String())

	c.JSON(http.StatusOK, gin.H{
		"message": "Plat supprimé avec succès",
		"deleted": gin.H{"id": f.ID, "name": f.Name},
	})
}

// SearchFoods gère GET /api/foods/search?q= via Elasticsearch.
func SearchFoods(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Le paramètre 'q' est requis"})
		return
	}

	results, err := services.SearchFoods(query)
	if err != nil {
		log.Println("❌ Erreur recherche Elastic:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur recherche"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"results": results, "count": len(results)})
}

func fetchFood(foodID gocql.UUID) (models.Food, error) {
	session, err := database.GetMenuSession()
	if err != nil {
		return models.Food{}, err
	}

	var (
		f          models.Food
		priceCents int64
	)
	f.ID = foodID

	err = session.Query(`SELECT category, name, description, image_url, price_cents, created_at, updated_at FROM foods WHERE food_id = ?`, foodID).
		Scan(&f.Category, &f.Name, &f.Description, &f.ImageURL, &priceCents, &f.CreatedAt, &f.UpdatedAt)
	if err != nil {
		return models.Food{}, err
	}
	f.Price = models.Cents(priceCents)
	return f, nil
}

package handlers

import (
	"net/http"

	"saveur_back_end/internal/services"

	"github.com/gin-gonic/gin"
)

// === POST /api/images/upload ===

// UploadFoodImage reçoit une photo de plat (multipart, champ "file"), la pousse
// vers MinIO et renvoie l'URL publique à enregistrer sur le plat.
func UploadFoodImage(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Aucun fichier reçu"})
		return
	}

	url, err := services.UploadFoodImage(c.Request.Context(), fileHeader)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur upload MinIO", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "Image uploadée avec succès",
		"image_url": url,
	})
}

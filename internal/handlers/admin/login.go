package admin

import (
	"log"
	"net/http"
	"os"

	"saveur_back_end/internal/utils"

	"github.com/gin-gonic/gin"
)

// Login gère POST /api/admin/login : mot de passe partagé contre le hash
// configuré, et en échange un jeton admin de courte durée. Le navigateur garde
// le jeton, plus le mot de passe. Aucune indication sur la cause d'un refus.
func Login(c *gin.Context) {
	var input struct {
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	hash := os.Getenv("ADMIN_PASSWORD_HASH")
	if hash == "" {
		log.Println("❌ ADMIN_PASSWORD_HASH non configuré")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	ok, err := utils.VerifyPassword(input.Password, hash)
	if err != nil || !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	token, err := utils.GenerateAdminJWT()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur génération token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":      token,
		"expires_in": 12 * 60 * 60,
	})
}

package user

import (
	"log"
	"net/http"
	"time"

	"arabica_back_end/internal/cache"
	"arabica_back_end/internal/database"

	"github.com/gin-gonic/gin"
)

// GetMe retourne le profil de l'utilisateur connecté
func GetMe(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "non authentifié"})
		return
	}

	user, err := cache.GetUserFromCache(userID)
	if err != nil {
		log.Printf("❌ Erreur lecture profil %s: %v", userID, err)
		c.JSON(http.StatusNotFound, gin.H{"error": "Profil introuvable"})
		return
	}

	c.JSON(http.StatusOK, user)
}

// UpdateMe met à jour nom / téléphone / email du profil
func UpdateMe(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "non authentifié"})
		return
	}

	var input struct {
		Name  string `json:"name"`
		Phone string `json:"phone"`
		Email string `json:"email"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	current, err := cache.GetUserFromCache(userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Profil introuvable"})
		return
	}

	if input.Name == "" {
		input.Name = current.Name
	}
	if input.Phone == "" {
		input.Phone = current.Phone
	}
	if input.Email == "" {
		input.Email = current.Email
	}

	err = database.GetPreparedUpdateUser().Bind(
		input.Name, input.Phone, input.Email, time.Now(), userID).Exec()
	if err != nil {
		log.Printf("❌ Erreur mise à jour profil %s: %v", userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur mise à jour du profil"})
		return
	}

	// L'email sert de clé de lookup : maintenir users_by_email
	if input.Email != current.Email {
		session, err := database.GetUsersSession()
		if err == nil {
			if err := session.Query("DELETE FROM users_by_email WHERE email = ?", current.Email).Exec(); err != nil {
				log.Printf("⚠️ Erreur suppression ancien email: %v", err)
			}
			if err := database.GetPreparedInsertUserByEmail().Bind(input.Email, userID).Exec(); err != nil {
				log.Printf("⚠️ Erreur insertion nouvel email: %v", err)
			}
		}
	}

	cache.InvalidateUserCache(userID)

	c.JSON(http.StatusOK, gin.H{"message": "Profil mis à jour"})
}

package user

import (
	"log"
	"net/http"

	"arabica_back_end/internal/database"
	"arabica_back_end/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/gocql/gocql"
	"github.com/google/uuid"
)

//
// --- HANDLERS ADRESSES ---
//

// 🟢 GET /api/addresses
func ListMyAddresses(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "non authentifié"})
		return
	}

	session, err := database.GetUsersSession()
	if err != nil {
		log.Printf("❌ Erreur session ScyllaDB: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur connexion base de données"})
		return
	}

	results := []models.Address{}

	iter := session.Query(`SELECT address_id, user_id, street, postal_code, city, country, is_default
		FROM addresses WHERE user_id = ? ALLOW FILTERING`, userID).Iter()
	var (
		addressID                                 gocql.UUID
		userIDDB, street, postalCode, city, country string
		isDefault                                 bool
	)
	for iter.Scan(&addressID, &userIDDB, &street, &postalCode, &city, &country, &isDefault) {
		results = append(results, models.Address{
			ID:         addressID,
			UserID:     userIDDB,
			Street:     street,
			PostalCode: postalCode,
			City:       city,
			Country:    country,
			IsDefault:  isDefault,
		})
	}
	if err := iter.Close(); err != nil {
		log.Printf("⚠️ Erreur fermeture iter: %v", err)
	}

	c.JSON(http.StatusOK, results)
}

// 🟢 POST /api/addresses
func AddAddress(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "non authentifié"})
		return
	}

	var input struct {
		Street     string `json:"street" binding:"required"`
		PostalCode string `json:"postal_code" binding:"required"`
		City       string `json:"city" binding:"required"`
		Country    string `json:"country"`
		IsDefault  bool   `json:"is_default"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	if input.Country == "" {
		input.Country = "France"
	}

	session, err := database.GetUsersSession()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur connexion base de données"})
		return
	}

	address := models.Address{
		ID:         gocql.UUID(uuid.New()),
		UserID:     userID,
		Street:     input.Street,
		PostalCode: input.PostalCode,
		City:       input.City,
		Country:    input.Country,
		IsDefault:  input.IsDefault,
	}

	err = session.Query(`INSERT INTO addresses (address_id, user_id, street, postal_code, city, country, is_default)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		address.ID, address.UserID, address.Street, address.PostalCode,
		address.City, address.Country, address.IsDefault).Exec()
	if err != nil {
		log.Printf("❌ Erreur insertion adresse: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur enregistrement adresse"})
		return
	}

	c.JSON(http.StatusCreated, address)
}

// ❌ DELETE /api/addresses/:id
func DeleteAddress(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "non authentifié"})
		return
	}

	addressID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID adresse invalide"})
		return
	}

	session, err := database.GetUsersSession()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur connexion base de données"})
		return
	}

	// Vérifie que l'adresse appartient bien à l'utilisateur
	var ownerID string
	err = session.Query("SELECT user_id FROM addresses WHERE address_id = ?", gocql.UUID(addressID)).Scan(&ownerID)
	if err != nil || ownerID != userID {
		c.JSON(http.StatusForbidden, gin.H{"error": "Adresse introuvable ou non autorisée"})
		return
	}

	if err := session.Query("DELETE FROM addresses WHERE address_id = ?", gocql.UUID(addressID)).Exec(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur suppression adresse"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Adresse supprimée"})
}

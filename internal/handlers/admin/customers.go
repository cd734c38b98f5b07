package admin

import (
	"log"
	"net/http"

	"arabica_back_end/internal/cache"
	"arabica_back_end/internal/database"
	"arabica_back_end/internal/models"

	"github.com/gin-gonic/gin"
)

// 👥 GET /api/admin/customers — liste des profils clients
func GetCustomers(c *gin.Context) {
	session, err := database.GetUsersSession()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur connexion base de données"})
		return
	}

	iter := session.Query(`SELECT user_id, email, name, phone, role, provider FROM users`).Iter()

	customers := []models.User{}
	var u models.User
	for iter.Scan(&u.ID, &u.Email, &u.Name, &u.Phone, &u.Role, &u.Provider) {
		customers = append(customers, u)
		u = models.User{}
	}
	if err := iter.Close(); err != nil {
		log.Printf("❌ Erreur lecture clients: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur récupération clients"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"customers": customers, "count": len(customers)})
}

// ✅ PUT /api/admin/customers/:id/role — promotion / rétrogradation
func UpdateCustomerRole(c *gin.Context) {
	userID := c.Param("id")

	var body struct {
		Role string `json:"role"`
	}
	if err := c.ShouldBindJSON(&body); err != nil ||
		(body.Role != models.RoleAdmin && body.Role != models.RoleCustomer) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Rôle invalide"})
		return
	}

	session, err := database.GetUsersSession()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur connexion base de données"})
		return
	}

	// Vérifie que le compte existe avant de le modifier
	var existing string
	if err := session.Query("SELECT role FROM users WHERE user_id = ?", userID).Scan(&existing); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Utilisateur introuvable"})
		return
	}

	if err := session.Query("UPDATE users SET role = ? WHERE user_id = ?", body.Role, userID).Exec(); err != nil {
		log.Printf("❌ Erreur mise à jour rôle: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur mise à jour du rôle"})
		return
	}

	cache.InvalidateUserCache(userID)

	log.Printf("✅ Rôle de %s changé en %s", userID, body.Role)
	c.JSON(http.StatusOK, gin.H{"message": "Rôle mis à jour", "role": body.Role})
}

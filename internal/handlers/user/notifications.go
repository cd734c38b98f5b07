package user

import (
	"log"
	"net/http"
	"time"

	"arabica_back_end/internal/database"
	"arabica_back_end/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/gocql/gocql"
	"github.com/google/uuid"
)

// 🔔 GET /api/notifications — les plus récentes en premier (clustering DESC)
func GetNotifications(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Utilisateur non authentifié"})
		return
	}

	session, err := database.GetUsersSession()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur connexion base de données"})
		return
	}

	iter := session.Query(`SELECT notification_id, message, read, created_at
		FROM notifications_by_user WHERE user_id = ?`, userID).Iter()

	notifications := []models.Notification{}
	var n models.Notification
	for iter.Scan(&n.ID, &n.Message, &n.Read, &n.CreatedAt) {
		n.UserID = userID
		notifications = append(notifications, n)
	}
	if err := iter.Close(); err != nil {
		log.Printf("❌ Erreur lecture notifications: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur récupération notifications"})
		return
	}

	unread := 0
	for _, notif := range notifications {
		if !notif.Read {
			unread++
		}
	}

	c.JSON(http.StatusOK, gin.H{"notifications": notifications, "unread": unread})
}

// ✅ PUT /api/notifications/:id/read
func MarkNotificationRead(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Utilisateur non authentifié"})
		return
	}

	notifUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID notification invalide"})
		return
	}

	session, err := database.GetUsersSession()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur connexion base de données"})
		return
	}

	// La clé de clustering contient created_at : on le retrouve d'abord
	var createdAt time.Time
	if err := session.Query(`SELECT created_at FROM notifications_by_user
		WHERE user_id = ? AND notification_id = ? ALLOW FILTERING`,
		userID, gocql.UUID(notifUUID)).Scan(&createdAt); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Notification introuvable"})
		return
	}

	if err := session.Query(`UPDATE notifications_by_user SET read = true
		WHERE user_id = ? AND created_at = ? AND notification_id = ?`,
		userID, createdAt, gocql.UUID(notifUUID)).Exec(); err != nil {
		log.Printf("❌ Erreur mise à jour notification: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur mise à jour notification"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Notification marquée comme lue"})
}

// ✅ PUT /api/notifications/read-all
func MarkAllNotificationsRead(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Utilisateur non authentifié"})
		return
	}

	session, err := database.GetUsersSession()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur connexion base de données"})
		return
	}

	iter := session.Query(`SELECT notification_id, created_at, read
		FROM notifications_by_user WHERE user_id = ?`, userID).Iter()

	type key struct {
		id        gocql.UUID
		createdAt time.Time
	}
	var pending []key
	var (
		notifID   gocql.UUID
		createdAt time.Time
		read      bool
	)
	for iter.Scan(&notifID, &createdAt, &read) {
		if !read {
			pending = append(pending, key{id: notifID, createdAt: createdAt})
		}
	}
	if err := iter.Close(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture notifications"})
		return
	}

	for _, k := range pending {
		if err := session.Query(`UPDATE notifications_by_user SET read = true
			WHERE user_id = ? AND created_at = ? AND notification_id = ?`,
			userID, k.createdAt, k.id).Exec(); err != nil {
			log.Printf("⚠️ Erreur mise à jour notification %s: %v", k.id, err)
		}
	}

	c.JSON(http.StatusOK, gin.H{"message": "Toutes les notifications marquées comme lues", "updated": len(pending)})
}

// 🧹 DELETE /api/notifications — suppression en masse
func DeleteNotifications(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Utilisateur non authentifié"})
		return
	}

	session, err := database.GetUsersSession()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur connexion base de données"})
		return
	}

	if err := session.Query("DELETE FROM notifications_by_user WHERE user_id = ?", userID).Exec(); err != nil {
		log.Printf("❌ Erreur suppression notifications: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur suppression notifications"})
		return
	}

	log.Printf("🧹 Notifications supprimées pour %s", userID)
	c.JSON(http.StatusOK, gin.H{"message": "Notifications supprimées"})
}

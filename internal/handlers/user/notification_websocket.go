package user

import (
	"context"
	"log"
	"net/http"
	"time"

	"arabica_back_end/internal/database"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// 🔔 GET /api/ws/notifications — push en temps réel des nouvelles
// notifications publiées sur Redis (canal notifications:<user_id>)
func NotificationWebSocket(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Utilisateur non authentifié"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("❌ Erreur upgrade websocket: %v", err)
		return
	}
	defer conn.Close()

	ctx, cancel := context.WithCancel(c.Request.Context())
	defer cancel()

	pubsub := database.Redis.Subscribe(ctx, "notifications:"+userID)
	defer pubsub.Close()

	// Le client ne nous envoie rien d'utile, mais il faut lire pour
	// détecter la fermeture de la connexion
	go func() {
		defer cancel()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(30 * time.Second)
	defer ticker.Stop()

	ch := pubsub.Channel()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case msg, ok := <-ch:
			if !ok {
				return
			}
			if err := conn.WriteJSON(gin.H{"type": "notification", "message": msg.Payload}); err != nil {
				return
			}
		}
	}
}

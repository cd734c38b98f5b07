package handlers

import (
	"log"
	"net/http"
	"strings"

	"arabica_back_end/internal/cache"
	"arabica_back_end/internal/database"
	"arabica_back_end/internal/models"
	"arabica_back_end/internal/services"

	"github.com/gin-gonic/gin"
)

func loadCatalog() []models.MenuItem {
	if items := cache.GetMenuFromCache(); items != nil {
		return items
	}

	session, err := database.GetMenuSession()
	if err != nil {
		return nil
	}

	iter := session.Query(`SELECT item_id, name, description, price, image_url, category,
		popular, new, chef_special, vegan FROM menu_items`).Iter()

	items := []models.MenuItem{}
	var item models.MenuItem
	for iter.Scan(&item.ID, &item.Name, &item.Description, &item.Price, &item.ImageURL,
		&item.Category, &item.Popular, &item.New, &item.ChefSpecial, &item.Vegan) {
		items = append(items, item)
	}
	if err := iter.Close(); err != nil {
		return nil
	}

	cache.SetMenuCache(items)
	return items
}

// 💬 POST /api/chat — réponse locale par mots-clés, repli IA sinon
func Chat(c *gin.Context) {
	var body struct {
		Message string `json:"message"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || strings.TrimSpace(body.Message) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Le champ 'message' est obligatoire"})
		return
	}

	intent := services.DetectIntent(body.Message)
	reply := services.BuildLocalReply(intent, loadCatalog())

	source := "local"
	if reply == "" {
		// Aucune réponse locale : on passe la main au modèle
		aiReply, err := services.GenerateAIReply(c.Request.Context(), body.Message)
		if err != nil {
			log.Printf("⚠️ Erreur IA, réponse générique: %v", err)
			reply = "Désolé, je n'ai pas compris. Vous pouvez me demander notre menu, nos horaires, notre adresse ou le suivi de vos commandes ☕"
		} else {
			reply = aiReply
			source = "ai"
		}
	}

	c.JSON(http.StatusOK, gin.H{"reply": reply, "intent": intent, "source": source})
}

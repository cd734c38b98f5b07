package user

import (
	"log"
	"net/http"
	"time"

	"arabica_back_end/internal/cache"
	"arabica_back_end/internal/database"
	"arabica_back_end/internal/models"
	"arabica_back_end/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/gocql/gocql"
)

// loadFullMenu lit le menu depuis le cache Redis, avec repli ScyllaDB
func loadFullMenu() ([]models.MenuItem, error) {
	if items := cache.GetMenuFromCache(); items != nil {
		return items, nil
	}

	session, err := database.GetMenuSession()
	if err != nil {
		return nil, err
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
		return nil, err
	}

	cache.SetMenuCache(items)
	return items, nil
}

// loadUserOrders recharge les commandes complètes (snapshot inclus) de
// l'utilisateur, nécessaires pour l'article le plus commandé
func loadUserOrders(userID string) ([]models.Order, error) {
	session, err := database.GetOrdersSession()
	if err != nil {
		return nil, err
	}

	iter := session.Query(`SELECT order_id FROM orders_by_user WHERE user_id = ?`, userID).Iter()

	var ids []gocql.UUID
	var orderID gocql.UUID
	for iter.Scan(&orderID) {
		ids = append(ids, orderID)
	}
	if err := iter.Close(); err != nil {
		return nil, err
	}

	orders := []models.Order{}
	for _, id := range ids {
		order, err := fetchOrder(id)
		if err != nil {
			log.Printf("⚠️ Commande %s illisible, ignorée: %v", id, err)
			continue
		}
		orders = append(orders, *order)
	}

	return orders, nil
}

// ☕ GET /api/recommendations — suggestions personnalisées d'après
// l'historique, avec repli populaires/nouveautés sans historique
func GetRecommendations(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Utilisateur non authentifié"})
		return
	}

	catalog, err := loadFullMenu()
	if err != nil {
		log.Printf("❌ Erreur chargement menu: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur chargement du menu"})
		return
	}

	orders, err := loadUserOrders(userID)
	if err != nil {
		log.Printf("⚠️ Erreur chargement historique, repli sans historique: %v", err)
		orders = nil
	}

	recommendations := services.Recommend(catalog, orders, time.Now())

	c.JSON(http.StatusOK, gin.H{"recommendations": recommendations})
}

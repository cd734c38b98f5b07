package admin

import (
	"encoding/json"
	"log"
	"net/http"
	"sort"
	"time"

	"arabica_back_end/internal/database"
	"arabica_back_end/internal/models"
	"arabica_back_end/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/gocql/gocql"
	"github.com/google/uuid"
)

func scanAllOrders() ([]models.Order, error) {
	session, err := database.GetOrdersSession()
	if err != nil {
		return nil, err
	}

	iter := session.Query(`SELECT order_id, user_id, items, total_price, address,
		contact_name, contact_email, status, created_at, updated_at FROM orders`).Iter()

	orders := []models.Order{}
	var (
		order     models.Order
		itemsJSON string
	)
	for iter.Scan(&order.ID, &order.UserID, &itemsJSON, &order.TotalPrice, &order.Address,
		&order.ContactName, &order.ContactEmail, &order.Status, &order.CreatedAt, &order.UpdatedAt) {
		if err := json.Unmarshal([]byte(itemsJSON), &order.Items); err != nil {
			log.Printf("⚠️ Snapshot illisible pour la commande %s: %v", order.ID, err)
			order.Items = nil
		}
		orders = append(orders, order)
		order = models.Order{}
	}
	if err := iter.Close(); err != nil {
		return nil, err
	}

	return orders, nil
}

// menuCategoryIndex mappe item_id → catégorie pour ventiler les ventes
func menuCategoryIndex() map[int]string {
	index := map[int]string{}

	session, err := database.GetMenuSession()
	if err != nil {
		return index
	}

	iter := session.Query("SELECT item_id, category FROM menu_items").Iter()
	var (
		itemID   int
		category string
	)
	for iter.Scan(&itemID, &category) {
		index[itemID] = category
	}
	if err := iter.Close(); err != nil {
		log.Printf("⚠️ Erreur lecture catégories menu: %v", err)
	}

	return index
}

// Tri décroissant par date de création
func sortOrdersRecentFirst(orders []models.Order) {
	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})
}

// 📋 GET /api/admin/orders — toutes les commandes, récentes en premier
func GetAllOrders(c *gin.Context) {
	orders, err := scanAllOrders()
	if err != nil {
		log.Printf("❌ Erreur lecture commandes: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur récupération commandes"})
		return
	}

	sortOrdersRecentFirst(orders)

	c.JSON(http.StatusOK, gin.H{"orders": orders, "count": len(orders)})
}

// ✅ PUT /api/admin/orders/:id/status — changement de statut avec
// notification et email au client
func UpdateOrderStatus(c *gin.Context) {
	orderUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID commande invalide"})
		return
	}

	var body struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || !models.ValidOrderStatuses[body.Status] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Statut invalide"})
		return
	}

	session, err := database.GetOrdersSession()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur connexion base de données"})
		return
	}

	var order models.Order
	var itemsJSON string
	err = session.Query(`SELECT order_id, user_id, items, total_price, address, contact_name,
		contact_email, status, created_at, updated_at FROM orders WHERE order_id = ?`,
		gocql.UUID(orderUUID)).Scan(
		&order.ID, &order.UserID, &itemsJSON, &order.TotalPrice, &order.Address,
		&order.ContactName, &order.ContactEmail, &order.Status, &order.CreatedAt, &order.UpdatedAt)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Commande introuvable"})
		return
	}
	if err := json.Unmarshal([]byte(itemsJSON), &order.Items); err != nil {
		order.Items = nil
	}

	now := time.Now()
	if err := session.Query("UPDATE orders SET status = ?, updated_at = ? WHERE order_id = ?",
		body.Status, now, order.ID).Exec(); err != nil {
		log.Printf("❌ Erreur mise à jour statut: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur mise à jour du statut"})
		return
	}
	if err := session.Query("UPDATE orders_by_user SET status = ? WHERE user_id = ? AND created_at = ?",
		body.Status, order.UserID, order.CreatedAt).Exec(); err != nil {
		log.Printf("⚠️ Erreur mise à jour orders_by_user: %v", err)
	}

	// 🔔 Notification en base + push Redis
	if err := utils.CreateNotification(order.UserID, utils.OrderStatusMessage(order.ID.String(), body.Status)); err != nil {
		log.Printf("⚠️ Erreur création notification: %v", err)
	}

	// 📤 Email de suivi en arrière-plan
	go func(order models.Order, status string) {
		if err := utils.SendOrderStatusEmail(order, order.ContactEmail, status); err != nil {
			log.Printf("⚠️ Erreur envoi email statut: %v", err)
		}
	}(order, body.Status)

	log.Printf("✅ Commande %s passée au statut %s", order.ID, body.Status)
	c.JSON(http.StatusOK, gin.H{"message": "Statut mis à jour", "status": body.Status})
}

// 📊 GET /api/admin/orders/stats — tableau de bord
func GetOrderStats(c *gin.Context) {
	orders, err := scanAllOrders()
	if err != nil {
		log.Printf("❌ Erreur lecture commandes: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur récupération statistiques"})
		return
	}

	totalRevenue := 0
	statusCounts := map[string]int{}
	itemCounts := map[string]int{}
	categorySales := map[string]int{}
	categories := menuCategoryIndex()
	for _, order := range orders {
		statusCounts[order.Status]++
		if order.Status != models.StatusCancelled {
			totalRevenue += order.TotalPrice
		}
		for _, item := range order.Items {
			itemCounts[item.Name] += item.Quantity
			if category, ok := categories[item.ItemID]; ok {
				categorySales[category] += item.Price * item.Quantity
			}
		}
	}

	avgOrder := 0
	if len(orders) > 0 {
		avgOrder = totalRevenue / len(orders)
	}

	c.JSON(http.StatusOK, gin.H{
		"total_orders":   len(orders),
		"total_revenue":  totalRevenue,
		"average_order":  avgOrder,
		"status_counts":  statusCounts,
		"items_ordered":  itemCounts,
		"category_sales": categorySales,
		"generated_at":   time.Now(),
	})
}

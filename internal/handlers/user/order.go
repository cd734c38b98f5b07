package user

import (
	"encoding/json"
	"log"
	"net/http"
	"sort"
	"strconv"
	"time"

	"arabica_back_end/internal/database"
	"arabica_back_end/internal/models"
	"arabica_back_end/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/gocql/gocql"
	"github.com/google/uuid"
)

func marshalItems(items []models.CartItem) (string, error) {
	data, err := json.Marshal(items)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// fetchOrder lit une commande complète (snapshot inclus) depuis orders
func fetchOrder(orderID gocql.UUID) (*models.Order, error) {
	session, err := database.GetOrdersSession()
	if err != nil {
		return nil, err
	}

	var (
		order     models.Order
		itemsJSON string
	)
	err = session.Query(`SELECT order_id, user_id, items, total_price, address, contact_name, contact_email, status, created_at, updated_at
		FROM orders WHERE order_id = ?`, orderID).Scan(
		&order.ID, &order.UserID, &itemsJSON, &order.TotalPrice, &order.Address,
		&order.ContactName, &order.ContactEmail, &order.Status, &order.CreatedAt, &order.UpdatedAt)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(itemsJSON), &order.Items); err != nil {
		return nil, err
	}

	return &order, nil
}

// OrderSummary : ligne de la vue "mes commandes"
type OrderSummary struct {
	ID            gocql.UUID `json:"id"`
	TotalPrice    int        `json:"total_price"`
	Status        string     `json:"status"`
	CreatedAt     time.Time  `json:"created_at"`
	IsCancellable bool       `json:"is_cancellable"`
}

// OrderFilters : filtres appliqués en mémoire sur la liste complète,
// bornes incluses (pas de pagination côté serveur)
type OrderFilters struct {
	From     *time.Time
	To       *time.Time
	Status   string // "" ou "all" = tous
	MinPrice *int
	MaxPrice *int
	Sort     string // "recent" (défaut) ou "price"
}

// FilterOrders applique les filtres et le tri sur la liste déjà chargée
func FilterOrders(orders []OrderSummary, filters OrderFilters) []OrderSummary {
	result := []OrderSummary{}
	for _, o := range orders {
		if filters.From != nil && o.CreatedAt.Before(*filters.From) {
			continue
		}
		if filters.To != nil && o.CreatedAt.After(*filters.To) {
			continue
		}
		if filters.Status != "" && filters.Status != "all" && o.Status != filters.Status {
			continue
		}
		if filters.MinPrice != nil && o.TotalPrice < *filters.MinPrice {
			continue
		}
		if filters.MaxPrice != nil && o.TotalPrice > *filters.MaxPrice {
			continue
		}
		result = append(result, o)
	}

	if filters.Sort == "price" {
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].TotalPrice > result[j].TotalPrice
		})
	} else {
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].CreatedAt.After(result[j].CreatedAt)
		})
	}

	return result
}

func parseOrderFilters(c *gin.Context) OrderFilters {
	filters := OrderFilters{
		Status: c.Query("status"),
		Sort:   c.Query("sort"),
	}

	if from, err := time.Parse("2006-01-02", c.Query("from")); err == nil {
		filters.From = &from
	}
	if to, err := time.Parse("2006-01-02", c.Query("to")); err == nil {
		// Borne incluse : fin de journée
		end := to.Add(24*time.Hour - time.Nanosecond)
		filters.To = &end
	}
	if min, err := strconv.Atoi(c.Query("min_price")); err == nil {
		filters.MinPrice = &min
	}
	if max, err := strconv.Atoi(c.Query("max_price")); err == nil {
		filters.MaxPrice = &max
	}

	return filters
}

// ✅ GET /api/orders/mine — liste complète puis filtres en mémoire
func GetMyOrders(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Utilisateur non authentifié"})
		return
	}

	session, err := database.GetOrdersSession()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur connexion base de données"})
		return
	}

	iter := session.Query(`SELECT order_id, created_at, total_price, status
		FROM orders_by_user WHERE user_id = ?`, userID).Iter()

	now := time.Now()
	var orders []OrderSummary
	var (
		orderID    gocql.UUID
		createdAt  time.Time
		totalPrice int
		status     string
	)
	for iter.Scan(&orderID, &createdAt, &totalPrice, &status) {
		orders = append(orders, OrderSummary{
			ID:         orderID,
			TotalPrice: totalPrice,
			Status:     status,
			CreatedAt:  createdAt,
			IsCancellable: models.Order{
				Status:    status,
				CreatedAt: createdAt,
			}.IsCancellable(now),
		})
	}
	if err := iter.Close(); err != nil {
		log.Printf("❌ Erreur lecture commandes: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur récupération commandes"})
		return
	}

	filtered := FilterOrders(orders, parseOrderFilters(c))

	c.JSON(http.StatusOK, gin.H{"orders": filtered})
}

// ✅ GET /api/orders/:id — détail avec snapshot, propriétaire uniquement
func GetOrderByID(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Utilisateur non authentifié"})
		return
	}

	orderUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID commande invalide"})
		return
	}

	order, err := fetchOrder(gocql.UUID(orderUUID))
	if err != nil || order.UserID != userID {
		// Sécurité : on vérifie que la commande appartient bien à l'utilisateur
		c.JSON(http.StatusNotFound, gin.H{"error": "Commande introuvable"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"order":          order,
		"is_cancellable": order.IsCancellable(time.Now()),
	})
}

// ❌ POST /api/orders/:id/cancel — fenêtre de 10 minutes, jamais après
// livraison ni sur une commande déjà annulée
func CancelOrder(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Utilisateur non authentifié"})
		return
	}

	orderUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID commande invalide"})
		return
	}

	order, err := fetchOrder(gocql.UUID(orderUUID))
	if err != nil || order.UserID != userID {
		c.JSON(http.StatusNotFound, gin.H{"error": "Commande introuvable"})
		return
	}

	if !order.IsCancellable(time.Now()) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Cette commande ne peut plus être annulée"})
		return
	}

	if err := updateOrderStatus(order, models.StatusCancelled); err != nil {
		log.Printf("❌ Erreur annulation commande %s: %v", order.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur annulation de la commande"})
		return
	}

	if err := utils.CreateNotification(userID, utils.OrderStatusMessage(order.ID.String(), models.StatusCancelled)); err != nil {
		log.Printf("⚠️ Erreur création notification: %v", err)
	}

	go func(order models.Order) {
		if err := utils.SendOrderStatusEmail(order, order.ContactEmail, models.StatusCancelled); err != nil {
			log.Printf("⚠️ Erreur envoi email annulation: %v", err)
		}
	}(*order)

	log.Printf("✅ Commande %s annulée par son propriétaire", order.ID)
	c.JSON(http.StatusOK, gin.H{"message": "Commande annulée"})
}

// 🔁 POST /api/orders/:id/reorder — nouvelle commande à partir du snapshot
// de l'ancienne (jamais une mutation de l'ancienne commande)
func Reorder(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Utilisateur non authentifié"})
		return
	}

	orderUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID commande invalide"})
		return
	}

	previous, err := fetchOrder(gocql.UUID(orderUUID))
	if err != nil || previous.UserID != userID {
		c.JSON(http.StatusNotFound, gin.H{"error": "Commande introuvable"})
		return
	}

	now := time.Now()
	order := models.Order{
		ID:           gocql.TimeUUID(),
		UserID:       userID,
		Items:        previous.Items,
		TotalPrice:   models.CartTotal(previous.Items), // prix du snapshot, pas du menu actuel
		Address:      previous.Address,
		ContactName:  previous.ContactName,
		ContactEmail: previous.ContactEmail,
		Status:       models.StatusPending,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := insertOrder(order); err != nil {
		log.Printf("❌ Erreur re-commande: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur création de la commande"})
		return
	}

	log.Printf("✅ Re-commande %s créée depuis %s", order.ID, previous.ID)
	c.JSON(http.StatusCreated, gin.H{"message": "Commande recréée", "order": order})
}

// updateOrderStatus écrit le nouveau statut dans les deux tables
func updateOrderStatus(order *models.Order, status string) error {
	session, err := database.GetOrdersSession()
	if err != nil {
		return err
	}

	now := time.Now()
	if err := session.Query("UPDATE orders SET status = ?, updated_at = ? WHERE order_id = ?",
		status, now, order.ID).Exec(); err != nil {
		return err
	}

	if err := session.Query("UPDATE orders_by_user SET status = ? WHERE user_id = ? AND created_at = ?",
		status, order.UserID, order.CreatedAt).Exec(); err != nil {
		log.Printf("⚠️ Erreur mise à jour orders_by_user: %v", err)
	}

	return nil
}

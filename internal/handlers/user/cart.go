package user

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"time"

	"arabica_back_end/internal/database"
	"arabica_back_end/internal/models"

	"github.com/gin-gonic/gin"
)

const cartTTL = 30 * 24 * time.Hour

// loadCart lit le panier : Redis d'abord, sinon la ligne ScyllaDB
// (et on réchauffe Redis au passage)
func loadCart(userID string) []models.CartItem {
	ctx := context.Background()
	key := "cart:" + userID

	data, err := database.RedisClient.Get(ctx, key).Result()
	if err == nil && data != "" {
		var cart []models.CartItem
		if json.Unmarshal([]byte(data), &cart) == nil {
			return cart
		}
	}

	// Fallback : ligne persistée côté serveur
	session, err := database.GetUsersSession()
	if err != nil {
		return nil
	}

	var itemsJSON string
	if err := session.Query("SELECT items FROM carts WHERE user_id = ?", userID).Scan(&itemsJSON); err != nil {
		return nil
	}

	var cart []models.CartItem
	if json.Unmarshal([]byte(itemsJSON), &cart) != nil {
		return nil
	}

	if jsonData, err := json.Marshal(cart); err == nil {
		database.RedisClient.Set(ctx, key, jsonData, cartTTL)
	}

	return cart
}

// saveCart réécrit intégralement le panier dans Redis ET dans ScyllaDB,
// puis notifie les onglets connectés. Pas de dirty-tracking : chaque
// mutation est une réécriture complète (last-write-wins assumé).
func saveCart(userID string, cart []models.CartItem) error {
	ctx := context.Background()
	key := "cart:" + userID

	jsonData, err := json.Marshal(cart)
	if err != nil {
		return err
	}

	database.RedisClient.Set(ctx, key, jsonData, cartTTL)

	session, err := database.GetUsersSession()
	if err != nil {
		return err
	}
	if err := session.Query("INSERT INTO carts (user_id, items, updated_at) VALUES (?, ?, ?)",
		userID, string(jsonData), time.Now()).Exec(); err != nil {
		return err
	}

	database.RedisClient.Publish(ctx, key, "updated")
	return nil
}

// deleteCart vide les deux stores (checkout réussi ou vidage explicite)
func deleteCart(userID string) error {
	ctx := context.Background()
	key := "cart:" + userID

	if err := database.RedisClient.Del(ctx, key).Err(); err != nil {
		return err
	}

	session, err := database.GetUsersSession()
	if err != nil {
		return err
	}
	if err := session.Query("DELETE FROM carts WHERE user_id = ?", userID).Exec(); err != nil {
		return err
	}

	database.RedisClient.Publish(ctx, key, "cleared")
	return nil
}

// fetchMenuItem lit un article du menu pour valider un ajout panier
func fetchMenuItem(itemID int) (*models.MenuItem, error) {
	session, err := database.GetMenuSession()
	if err != nil {
		return nil, err
	}

	var item models.MenuItem
	err = session.Query(`SELECT item_id, name, price, image_url, category FROM menu_items WHERE item_id = ?`, itemID).
		Scan(&item.ID, &item.Name, &item.Price, &item.ImageURL, &item.Category)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// 🟢 GET /api/cart
func GetCart(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "non authentifié"})
		return
	}

	cart := loadCart(userID)
	if cart == nil {
		cart = []models.CartItem{}
	}

	c.JSON(http.StatusOK, gin.H{"items": cart, "total": models.CartTotal(cart)})
}

// 🟢 POST /api/cart/items
func AddToCart(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "non authentifié"})
		return
	}

	var input struct {
		ItemID   int `json:"itemId"`
		Quantity int `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	if input.Quantity <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Quantité invalide"})
		return
	}

	menuItem, err := fetchMenuItem(input.ItemID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Article introuvable"})
		return
	}

	cart := loadCart(userID)

	// Met à jour ou ajoute l'item (jamais de doublon, la quantité s'accumule)
	found := false
	for i := range cart {
		if cart[i].ItemID == input.ItemID {
			cart[i].Quantity += input.Quantity
			found = true
			break
		}
	}
	if !found {
		cart = append(cart, models.CartItem{
			ItemID:   menuItem.ID,
			Name:     menuItem.Name,
			Price:    menuItem.Price,
			Quantity: input.Quantity,
			ImageURL: menuItem.ImageURL,
		})
	}

	if err := saveCart(userID, cart); err != nil {
		log.Printf("❌ Erreur sauvegarde panier: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur sauvegarde panier"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Article ajouté au panier",
		"items":   cart,
		"total":   models.CartTotal(cart),
	})
}

// 🟡 PUT /api/cart/items/:itemId
func UpdateCartItem(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "non authentifié"})
		return
	}

	itemID, err := strconv.Atoi(c.Param("itemId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID article invalide"})
		return
	}

	var input struct {
		Quantity int `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	cart := loadCart(userID)

	// Quantité ≤ 0 : l'entrée est supprimée, jamais stockée à zéro
	newCart := []models.CartItem{}
	for _, item := range cart {
		if item.ItemID == itemID {
			if input.Quantity <= 0 {
				continue
			}
			item.Quantity = input.Quantity
		}
		newCart = append(newCart, item)
	}

	if err := saveCart(userID, newCart); err != nil {
		log.Printf("❌ Erreur sauvegarde panier: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur sauvegarde panier"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": newCart, "total": models.CartTotal(newCart)})
}

// ❌ DELETE /api/cart/items/:itemId
func RemoveFromCart(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "non authentifié"})
		return
	}

	itemID := c.Param("itemId")

	cart := loadCart(userID)
	if len(cart) == 0 {
		c.JSON(http.StatusOK, gin.H{"message": "Panier vide"})
		return
	}

	newCart := []models.CartItem{}
	for _, item := range cart {
		if strconv.Itoa(item.ItemID) != itemID {
			newCart = append(newCart, item)
		}
	}

	if err := saveCart(userID, newCart); err != nil {
		log.Printf("❌ Erreur sauvegarde panier: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur sauvegarde panier"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Article supprimé du panier",
		"items":   newCart,
		"total":   models.CartTotal(newCart),
	})
}

// 🧹 DELETE /api/cart
func ClearCart(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "non authentifié"})
		return
	}

	if err := deleteCart(userID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lors du vidage du panier"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Panier vidé avec succès"})
}

// 🔀 POST /api/cart/merge
// Le front envoie le panier local (constitué avant connexion) ; on le
// réconcilie avec le panier serveur : union des items, max(local, serveur)
// en cas de conflit de quantité
func MergeCart(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "non authentifié"})
		return
	}

	var input struct {
		Items []models.CartItem `json:"items"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	// Revalider les prix/noms depuis le menu : le blob local peut être vieux
	local := []models.CartItem{}
	for _, item := range input.Items {
		if item.Quantity <= 0 {
			continue
		}
		menuItem, err := fetchMenuItem(item.ItemID)
		if err != nil {
			log.Printf("⚠️ Item local %d ignoré (introuvable au menu)", item.ItemID)
			continue
		}
		local = append(local, models.CartItem{
			ItemID:   menuItem.ID,
			Name:     menuItem.Name,
			Price:    menuItem.Price,
			Quantity: item.Quantity,
			ImageURL: menuItem.ImageURL,
		})
	}

	server := loadCart(userID)
	merged := models.MergeCarts(local, server)

	if err := saveCart(userID, merged); err != nil {
		log.Printf("❌ Erreur sauvegarde panier fusionné: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur sauvegarde panier"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Panier synchronisé",
		"items":   merged,
		"total":   models.CartTotal(merged),
	})
}

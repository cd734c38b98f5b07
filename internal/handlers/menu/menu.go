package menu

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	"arabica_back_end/internal/cache"
	"arabica_back_end/internal/database"
	"arabica_back_end/internal/models"
	"arabica_back_end/internal/services"

	"github.com/gin-gonic/gin"
)

const allMenuColumns = `item_id, name, description, price, image_url, category,
	popular, new, chef_special, vegan, created_at, updated_at`

func scanMenuItems(query string, values ...interface{}) ([]models.MenuItem, error) {
	session, err := database.GetMenuSession()
	if err != nil {
		return nil, err
	}

	iter := session.Query(query, values...).Iter()

	items := []models.MenuItem{}
	var item models.MenuItem
	for iter.Scan(&item.ID, &item.Name, &item.Description, &item.Price, &item.ImageURL,
		&item.Category, &item.Popular, &item.New, &item.ChefSpecial, &item.Vegan,
		&item.CreatedAt, &item.UpdatedAt) {
		items = append(items, item)
		item = models.MenuItem{} // Reset pour la prochaine itération
	}
	if err := iter.Close(); err != nil {
		return nil, err
	}

	return items, nil
}

// ☕ GET /api/menu — liste complète, cache Redis en premier
func GetMenu(c *gin.Context) {
	if cached := cache.GetMenuFromCache(); cached != nil {
		c.JSON(http.StatusOK, cached)
		return
	}

	items, err := scanMenuItems("SELECT " + allMenuColumns + " FROM menu_items")
	if err != nil {
		log.Printf("❌ Erreur lecture menu: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture du menu"})
		return
	}

	cache.SetMenuCache(items)
	c.JSON(http.StatusOK, items)
}

// ☕ GET /api/menu/:id
func GetMenuItem(c *gin.Context) {
	itemID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID article invalide"})
		return
	}

	items, err := scanMenuItems("SELECT "+allMenuColumns+" FROM menu_items WHERE item_id = ?", itemID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture du menu"})
		return
	}
	if len(items) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Article introuvable"})
		return
	}

	c.JSON(http.StatusOK, items[0])
}

// ☕ GET /api/menu/category/:category
func GetMenuByCategory(c *gin.Context) {
	category := c.Param("category")
	if !models.IsValidCategory(category) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Catégorie inconnue"})
		return
	}

	items, err := scanMenuItems("SELECT "+allMenuColumns+" FROM menu_items WHERE category = ? ALLOW FILTERING", category)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture du menu"})
		return
	}

	c.JSON(http.StatusOK, items)
}

// ✅ POST /api/admin/menu — création (admin), ID alloué via Redis INCR
func CreateMenuItem(c *gin.Context) {
	var item models.MenuItem
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if item.Name == "" || item.Price <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Les champs 'name' et 'price' sont obligatoires"})
		return
	}
	if !models.IsValidCategory(item.Category) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Catégorie inconnue"})
		return
	}

	// ✅ ID séquentiel alloué via le compteur Redis
	id, err := database.Redis.Incr(context.Background(), database.MenuIDCounterKey).Result()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur allocation ID"})
		return
	}
	item.ID = int(id)

	// ✅ URL MinIO par défaut si aucune image fournie
	if item.ImageURL == "" {
		item.ImageURL = fmt.Sprintf("http://%s/%s/menu/%d.jpg",
			os.Getenv("MINIO_ENDPOINT"),
			os.Getenv("MINIO_BUCKET"),
			item.ID,
		)
	}

	now := time.Now()
	item.CreatedAt = &now
	item.UpdatedAt = &now

	session, err := database.GetMenuSession()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur connexion base de données"})
		return
	}

	query := `INSERT INTO menu_items (item_id, name, description, price, image_url, category,
		popular, new, chef_special, vegan, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	if err := session.Query(query, item.ID, item.Name, item.Description, item.Price, item.ImageURL,
		item.Category, item.Popular, item.New, item.ChefSpecial, item.Vegan,
		item.CreatedAt, item.UpdatedAt).Exec(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur création article: " + err.Error()})
		return
	}

	// 🔄 Indexation Elasticsearch
	go services.IndexMenuItem(item)

	cache.InvalidateMenuCache()

	log.Printf("✅ Article %d (%s) créé", item.ID, item.Name)
	c.JSON(http.StatusCreated, item)
}

// menuItemUpdate porte les champs modifiables d'un article. Les booléens
// sont des pointeurs pour distinguer "absent du JSON" de "false explicite".
type menuItemUpdate struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int    `json:"price"`
	ImageURL    string `json:"image_url"`
	Category    string `json:"category"`
	Popular     *bool  `json:"popular"`
	New         *bool  `json:"new"`
	ChefSpecial *bool  `json:"chefSpecial"`
	Vegan       *bool  `json:"vegan"`
}

// Fusionne les champs fournis avec l'existant, champ par champ.
func applyMenuItemUpdate(item models.MenuItem, updates menuItemUpdate) (models.MenuItem, error) {
	if updates.Name != "" {
		item.Name = updates.Name
	}
	if updates.Description != "" {
		item.Description = updates.Description
	}
	if updates.Price > 0 {
		item.Price = updates.Price
	}
	if updates.ImageURL != "" {
		item.ImageURL = updates.ImageURL
	}
	if updates.Category != "" {
		if !models.IsValidCategory(updates.Category) {
			return item, fmt.Errorf("catégorie inconnue: %s", updates.Category)
		}
		item.Category = updates.Category
	}
	if updates.Popular != nil {
		item.Popular = *updates.Popular
	}
	if updates.New != nil {
		item.New = *updates.New
	}
	if updates.ChefSpecial != nil {
		item.ChefSpecial = *updates.ChefSpecial
	}
	if updates.Vegan != nil {
		item.Vegan = *updates.Vegan
	}
	return item, nil
}

// ✅ PUT /api/admin/menu/:id — mise à jour (admin)
func UpdateMenuItem(c *gin.Context) {
	itemID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID article invalide"})
		return
	}

	existing, err := scanMenuItems("SELECT "+allMenuColumns+" FROM menu_items WHERE item_id = ?", itemID)
	if err != nil || len(existing) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Article introuvable"})
		return
	}

	var updates menuItemUpdate
	if err := c.ShouldBindJSON(&updates); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item, err := applyMenuItemUpdate(existing[0], updates)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Catégorie inconnue"})
		return
	}

	now := time.Now()
	item.UpdatedAt = &now

	session, err := database.GetMenuSession()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur connexion base de données"})
		return
	}

	query := `UPDATE menu_items SET name = ?, description = ?, price = ?, image_url = ?,
		category = ?, popular = ?, new = ?, chef_special = ?, vegan = ?, updated_at = ?
		WHERE item_id = ?`
	if err := session.Query(query, item.Name, item.Description, item.Price, item.ImageURL,
		item.Category, item.Popular, item.New, item.ChefSpecial, item.Vegan,
		item.UpdatedAt, item.ID).Exec(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur mise à jour article: " + err.Error()})
		return
	}

	go services.IndexMenuItem(item)
	cache.InvalidateMenuCache()

	c.JSON(http.StatusOK, item)
}

// 🧹 DELETE /api/admin/menu/:id — suppression (admin)
func DeleteMenuItem(c *gin.Context) {
	itemID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID article invalide"})
		return
	}

	session, err := database.GetMenuSession()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur connexion base de données"})
		return
	}

	if err := session.Query("DELETE FROM menu_items WHERE item_id = ?", itemID).Exec(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur suppression article: " + err.Error()})
		return
	}

	go services.RemoveMenuItemFromIndex(itemID)
	cache.InvalidateMenuCache()

	log.Printf("🧹 Article %d supprimé", itemID)
	c.JSON(http.StatusOK, gin.H{"message": "Article supprimé"})
}

package database

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"arabica_back_end/internal/models"
)

// Catalogue de départ : inséré au premier démarrage si la table est vide.
// Ensuite le menu ne bouge que via le CRUD admin.
var defaultCatalog = []models.MenuItem{
	{ID: 1, Name: "Espresso", Description: "Un classique corsé et intense, la signature de la maison.", Price: 3, Category: models.CategoryCoffee, Popular: true},
	{ID: 2, Name: "Cappuccino", Description: "Café intense sous une mousse de lait onctueuse.", Price: 4, Category: models.CategoryCoffee, Popular: true},
	{ID: 3, Name: "Latte Caramel", Description: "Café doux au caramel et à la vanille, bien sucré.", Price: 5, Category: models.CategoryCoffee},
	{ID: 4, Name: "Cold Brew", Description: "Café infusé à froid pendant 18h, servi glacé et frais.", Price: 5, Category: models.CategoryCoffee, New: true},
	{ID: 5, Name: "Thé Chai", Description: "Thé noir épicé à la cannelle et au gingembre.", Price: 4, Category: models.CategoryTea, ChefSpecial: true, Vegan: true},
	{ID: 6, Name: "Thé Vert Menthe", Description: "Thé vert traditionnel à la menthe, léger et frais.", Price: 4, Category: models.CategoryTea, Vegan: true},
	{ID: 7, Name: "Croissant", Description: "Croissant pur beurre, le classique du matin.", Price: 2, Category: models.CategorySnacks, Popular: true},
	{ID: 8, Name: "Tartine Avocat", Description: "Pain complet, avocat frais et graines torréfiées.", Price: 7, Category: models.CategorySnacks, New: true, Vegan: true},
	{ID: 9, Name: "Brownie Chocolat", Description: "Brownie riche au chocolat noir, intensément sucré.", Price: 4, Category: models.CategoryDesserts, Popular: true},
	{ID: 10, Name: "Tarte Citron", Description: "Tarte au citron meringuée, douce et fraîche.", Price: 5, Category: models.CategoryDesserts, ChefSpecial: true},
	{ID: 11, Name: "Chocolat Frappé", Description: "Chocolat glacé mixé, servi froid, doux et sucré.", Price: 5, Category: models.CategoryBeverages, New: true},
	{ID: 12, Name: "Jus d'Orange Pressé", Description: "Oranges pressées minute, frais et vitaminé.", Price: 4, Category: models.CategoryBeverages, Vegan: true},
}

// MenuIDCounterKey : compteur Redis pour allouer les prochains item_id
const MenuIDCounterKey = "menu:next_id"

// SeedMenu insère le catalogue de départ si la table menu_items est vide
func SeedMenu() {
	session, err := GetMenuSession()
	if err != nil {
		log.Printf("⚠️ Seed menu impossible: %v", err)
		return
	}

	var count int
	if err := session.Query("SELECT COUNT(*) FROM menu_items").Scan(&count); err != nil {
		log.Printf("⚠️ Erreur lecture menu_items: %v", err)
		return
	}

	if count > 0 {
		log.Printf("🍽️ Menu déjà présent (%d articles), seed ignoré", count)
		ensureMenuIDCounter(highestMenuItemID())
		return
	}

	now := time.Now()
	inserted := 0
	for _, item := range defaultCatalog {
		if item.ImageURL == "" {
			item.ImageURL = fmt.Sprintf("http://%s/%s/menu/%d.jpg",
				os.Getenv("MINIO_ENDPOINT"), os.Getenv("MINIO_BUCKET"), item.ID)
		}
		err := session.Query(`INSERT INTO menu_items (item_id, name, description, price, image_url, category, popular, new, chef_special, vegan, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			item.ID, item.Name, item.Description, item.Price, item.ImageURL, item.Category,
			item.Popular, item.New, item.ChefSpecial, item.Vegan, now, now).Exec()
		if err != nil {
			log.Printf("❌ Erreur seed article %q: %v", item.Name, err)
			continue
		}
		inserted++
	}

	ensureMenuIDCounter(highestMenuItemID())
	log.Printf("🍽️ Catalogue de départ inséré (%d articles)", inserted)
}

// highestMenuItemID lit le plus grand item_id en table. La table peut
// contenir des articles créés par l'admin au-delà du catalogue de départ,
// le compteur doit donc suivre la table et pas le catalogue.
func highestMenuItemID() int {
	session, err := GetMenuSession()
	if err != nil {
		return menuCounterFloor(0)
	}

	var maxID int
	if err := session.Query("SELECT MAX(item_id) FROM menu_items").Scan(&maxID); err != nil {
		log.Printf("⚠️ Erreur lecture MAX(item_id): %v", err)
		return menuCounterFloor(0)
	}
	return menuCounterFloor(maxID)
}

// menuCounterFloor borne le compteur au catalogue de départ pour que les
// IDs 1..N du seed ne soient jamais réalloués, même sur table vide.
func menuCounterFloor(maxID int) int {
	if maxID < len(defaultCatalog) {
		return len(defaultCatalog)
	}
	return maxID
}

// ensureMenuIDCounter aligne le compteur Redis sur le plus grand item_id connu
func ensureMenuIDCounter(maxID int) {
	ctx := context.Background()
	current, err := Redis.Get(ctx, MenuIDCounterKey).Int()
	if err != nil || current < maxID {
		Redis.Set(ctx, MenuIDCounterKey, maxID, 0)
	}
}

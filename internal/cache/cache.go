package cache

import (
	"context"
	"encoding/json"
	"time"

	"arabica_back_end/internal/database"
	"arabica_back_end/internal/models"
)

const (
	UserCacheTTL = 5 * time.Minute
	MenuCacheTTL = 10 * time.Minute

	MenuCacheKey = "menu:all"
)

// GetUserFromCache récupère un profil depuis Redis ou ScyllaDB
func GetUserFromCache(userID string) (*models.User, error) {
	ctx := context.Background()
	key := "user:" + userID

	// 1. Essayer le cache Redis
	data, err := database.Redis.Get(ctx, key).Result()
	if err == nil {
		var user models.User
		if json.Unmarshal([]byte(data), &user) == nil {
			return &user, nil
		}
	}

	// 2. Récupérer de ScyllaDB
	session, err := database.GetUsersSession()
	if err != nil {
		return nil, err
	}

	var (
		email, name, phone, role, provider string
	)

	err = session.Query(`SELECT email, name, phone, role, provider
		FROM users WHERE user_id = ?`, userID).Scan(
		&email, &name, &phone, &role, &provider)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		ID:       userID,
		Email:    email,
		Name:     name,
		Phone:    phone,
		Role:     role,
		Provider: provider,
	}

	// 3. Mettre en cache
	jsonData, _ := json.Marshal(user)
	database.Redis.Set(ctx, key, jsonData, UserCacheTTL)

	return user, nil
}

// InvalidateUserCache invalide le cache d'un profil
func InvalidateUserCache(userID string) {
	ctx := context.Background()
	database.Redis.Del(ctx, "user:"+userID)
}

// GetMenuFromCache récupère la liste du menu depuis Redis (nil si absente)
func GetMenuFromCache() []models.MenuItem {
	ctx := context.Background()

	data, err := database.Redis.Get(ctx, MenuCacheKey).Result()
	if err != nil || data == "" {
		return nil
	}

	var items []models.MenuItem
	if err := json.Unmarshal([]byte(data), &items); err != nil {
		return nil
	}
	return items
}

// SetMenuCache met la liste du menu en cache
func SetMenuCache(items []models.MenuItem) {
	ctx := context.Background()
	jsonData, _ := json.Marshal(items)
	database.Redis.Set(ctx, MenuCacheKey, jsonData, MenuCacheTTL)
}

// InvalidateMenuCache invalide le cache du menu (après un CRUD admin)
func InvalidateMenuCache() {
	ctx := context.Background()
	database.Redis.Del(ctx, MenuCacheKey)
}

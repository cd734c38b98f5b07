package user

import (
	"fmt"
	"log"
	"net/http"
	"net/url"
	"os"
	"time"

	"arabica_back_end/internal/cache"
	"arabica_back_end/internal/database"
	"arabica_back_end/internal/models"
	"arabica_back_end/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/markbates/goth/gothic"
)

// ================== AUTH LOCALE ==================

func Register(c *gin.Context) {
	var input struct {
		Name     string `json:"name" binding:"required"`
		Email    string `json:"email" binding:"required"`
		Phone    string `json:"phone"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// email déjà pris ?
	var existingID string
	err := database.GetPreparedGetUserByEmail().Bind(input.Email).Scan(&existingID)
	if err == nil && existingID != "" {
		c.JSON(http.StatusConflict, gin.H{"error": "Un compte avec cet email existe déjà"})
		return
	}

	hashedPassword, err := utils.HashPassword(input.Password)
	if err != nil {
		log.Printf("❌ Erreur hash mot de passe: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur création du compte"})
		return
	}

	now := time.Now()
	user := models.User{
		ID:       uuid.New().String(),
		Name:     input.Name,
		Email:    input.Email,
		Phone:    input.Phone,
		Password: hashedPassword,
		Role:     models.RoleCustomer,
		Provider: "local",
	}

	err = database.GetPreparedInsertUser().Bind(
		user.ID, user.Email, user.Password, user.Name, user.Phone,
		user.Role, user.Provider, "", now, now).Exec()
	if err != nil {
		log.Printf("❌ Erreur insertion utilisateur: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur création du compte"})
		return
	}

	if err := database.GetPreparedInsertUserByEmail().Bind(user.Email, user.ID).Exec(); err != nil {
		log.Printf("⚠️ Erreur insertion users_by_email: %v", err)
	}

	token, err := utils.GenerateJWT(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur génération du token"})
		return
	}

	// Email de bienvenue (async, best effort)
	go func(email, name string) {
		if err := utils.SendEmail(email, "☕ Bienvenue chez Arabica !", utils.GenerateWelcomeHTML(name)); err != nil {
			log.Printf("⚠️ Erreur envoi email de bienvenue: %v", err)
		}
	}(user.Email, user.Name)

	log.Printf("✅ Nouveau compte créé: %s", user.Email)
	c.JSON(http.StatusCreated, gin.H{"token": token, "user": user})
}

func Login(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var userID string
	err := database.GetPreparedGetUserByEmail().Bind(input.Email).Scan(&userID)
	if err != nil || userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Email ou mot de passe invalide"})
		return
	}

	var (
		email, password, name, phone, role, provider, providerID string
	)
	err = database.GetPreparedGetUserByID().Bind(userID).Scan(
		&email, &password, &name, &phone, &role, &provider, &providerID)
	if err != nil {
		log.Printf("❌ Erreur lecture utilisateur %s: %v", userID, err)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Email ou mot de passe invalide"})
		return
	}

	ok, err := utils.VerifyPassword(input.Password, password)
	if err != nil || !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Email ou mot de passe invalide"})
		return
	}

	user := models.User{
		ID:       userID,
		Email:    email,
		Name:     name,
		Phone:    phone,
		Role:     role,
		Provider: provider,
	}

	token, err := utils.GenerateJWT(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur génération du token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token, "user": user})
}

// ================== OAUTH (provider hébergé) ==================

// BeginOAuth démarre le flow OAuth (provider dans la query, ex: google)
func BeginOAuth(c *gin.Context) {
	gothic.BeginAuthHandler(c.Writer, c.Request)
}

// OAuthCallback termine le flow OAuth et crée/retrouve le compte local
func OAuthCallback(c *gin.Context) {
	gothUser, err := gothic.CompleteUserAuth(c.Writer, c.Request)
	if err != nil {
		log.Printf("❌ Erreur callback OAuth: %v", err)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentification OAuth échouée"})
		return
	}

	// Retrouver le compte par email, sinon le créer
	var userID string
	err = database.GetPreparedGetUserByEmail().Bind(gothUser.Email).Scan(&userID)

	var user models.User
	if err != nil || userID == "" {
		now := time.Now()
		user = models.User{
			ID:         uuid.New().String(),
			Name:       gothUser.Name,
			Email:      gothUser.Email,
			Role:       models.RoleCustomer,
			Provider:   gothUser.Provider,
			ProviderID: gothUser.UserID,
		}

		err = database.GetPreparedInsertUser().Bind(
			user.ID, user.Email, "", user.Name, "",
			user.Role, user.Provider, user.ProviderID, now, now).Exec()
		if err != nil {
			log.Printf("❌ Erreur création compte OAuth: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur création du compte"})
			return
		}
		if err := database.GetPreparedInsertUserByEmail().Bind(user.Email, user.ID).Exec(); err != nil {
			log.Printf("⚠️ Erreur insertion users_by_email: %v", err)
		}
		log.Printf("✅ Compte OAuth créé: %s (%s)", user.Email, user.Provider)
	} else {
		cached, err := cache.GetUserFromCache(userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture du compte"})
			return
		}
		user = *cached
	}

	token, err := utils.GenerateJWT(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur génération du token"})
		return
	}

	frontURL := os.Getenv("FRONTEND_URL")
	if frontURL == "" {
		frontURL = "http://localhost:3000"
	}

	redirect := fmt.Sprintf("%s/auth/callback?token=%s", frontURL, url.QueryEscape(token))
	c.Redirect(http.StatusTemporaryRedirect, redirect)
}

package user

import (
	"errors"
	"log"
	"net/http"
	"regexp"
	"strings"
	"time"

	"arabica_back_end/internal/database"
	"arabica_back_end/internal/models"
	"arabica_back_end/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/gocql/gocql"
)

// Forme minimale local@domaine.tld — pas une validation RFC complète
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type CheckoutForm struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Address string `json:"address"`
}

// ValidateCheckoutForm vérifie le formulaire de livraison.
// Échoue fermé : aucun champ manquant ou invalide ne passe.
func ValidateCheckoutForm(form CheckoutForm) error {
	if strings.TrimSpace(form.Name) == "" {
		return errors.New("le nom est requis")
	}
	if !emailPattern.MatchString(form.Email) {
		return errors.New("email invalide")
	}
	if strings.TrimSpace(form.Address) == "" {
		return errors.New("l'adresse est requise")
	}
	return nil
}

// 🟢 POST /api/checkout
// Crée la commande à partir du panier : snapshot des articles + total figé,
// puis suppression du panier serveur. Pas de transaction distribuée : si la
// suppression du panier échoue, la commande reste valide et le panier
// réapparaîtra à la prochaine fusion (idempotent côté client).
func Checkout(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Utilisateur non authentifié"})
		return
	}

	var form CheckoutForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	if err := ValidateCheckoutForm(form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cart := loadCart(userID)
	if len(cart) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Panier vide"})
		return
	}

	// Rafraîchir noms et prix depuis le menu : le snapshot est figé aux
	// valeurs du moment du checkout, pas à celles de l'ajout au panier
	for i, item := range cart {
		menuItem, err := fetchMenuItem(item.ItemID)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Article introuvable au menu", "itemId": item.ItemID})
			return
		}
		cart[i].Name = menuItem.Name
		cart[i].Price = menuItem.Price
		cart[i].ImageURL = menuItem.ImageURL
	}

	now := time.Now()
	order := models.Order{
		ID:           gocql.TimeUUID(),
		UserID:       userID,
		Items:        cart,
		TotalPrice:   models.CartTotal(cart),
		Address:      form.Address,
		ContactName:  form.Name,
		ContactEmail: form.Email,
		Status:       models.StatusPending,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := insertOrder(order); err != nil {
		log.Printf("❌ Erreur création commande: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur création de la commande"})
		return
	}

	// Le panier serveur disparaît après checkout ; en cas d'échec on laisse
	// la ligne, elle sera refusionnée au prochain chargement
	if err := deleteCart(userID); err != nil {
		log.Printf("⚠️ Commande %s créée mais panier non supprimé: %v", order.ID, err)
	}

	// Confirmation par email avec QR de retrait (async, best effort)
	go func(order models.Order) {
		qr, err := utils.GeneratePickupQR(order.ID.String())
		if err != nil {
			log.Printf("⚠️ Erreur génération QR retrait: %v", err)
			qr = ""
		}
		html := utils.GenerateOrderConfirmationHTML(order, qr)
		if err := utils.SendEmail(order.ContactEmail, "☕ Confirmation de votre commande - Arabica", html); err != nil {
			log.Printf("⚠️ Erreur envoi email confirmation: %v", err)
		}
	}(order)

	log.Printf("✅ Commande %s créée pour user %s (%d€)", order.ID, userID, order.TotalPrice)

	c.JSON(http.StatusCreated, gin.H{
		"message": "Commande enregistrée",
		"order":   order,
	})
}

// insertOrder écrit la commande dans orders et dans orders_by_user
func insertOrder(order models.Order) error {
	session, err := database.GetOrdersSession()
	if err != nil {
		return err
	}

	itemsJSON, err := marshalItems(order.Items)
	if err != nil {
		return err
	}

	err = session.Query(`INSERT INTO orders (order_id, user_id, items, total_price, address, contact_name, contact_email, status, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		order.ID, order.UserID, itemsJSON, order.TotalPrice, order.Address,
		order.ContactName, order.ContactEmail, order.Status, order.CreatedAt, order.UpdatedAt).Exec()
	if err != nil {
		return err
	}

	// Table de lecture pour la vue "mes commandes" (tri created_at DESC)
	err = session.Query(`INSERT INTO orders_by_user (user_id, created_at, order_id, total_price, status)
		VALUES (?, ?, ?, ?, ?)`,
		order.UserID, order.CreatedAt, order.ID, order.TotalPrice, order.Status).Exec()
	if err != nil {
		log.Printf("⚠️ Erreur indexation orders_by_user: %v", err)
	}

	return nil
}

package handlers

import (
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

var contactEmailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// 📬 POST /api/contact — enregistre le message et envoie un accusé de
// réception par email
func SubmitContact(c *gin.Context) {
	var form models.Contact
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	form.Name = strings.TrimSpace(form.Name)
	form.Email = strings.TrimSpace(form.Email)
	form.Subject = strings.TrimSpace(form.Subject)
	form.Message = strings.TrimSpace(form.Message)

	if form.Name == "" || form.Subject == "" || form.Message == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Les champs 'name', 'subject' et 'message' sont obligatoires"})
		return
	}
	if !contactEmailPattern.MatchString(form.Email) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Adresse email invalide"})
		return
	}

	form.ID = gocql.TimeUUID()
	form.CreatedAt = time.Now()

	session, err := database.GetUsersSession()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur connexion base de données"})
		return
	}

	if err := session.Query(`INSERT INTO contacts (contact_id, name, email, phone, subject, message, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		form.ID, form.Name, form.Email, form.Phone, form.Subject, form.Message, form.CreatedAt).Exec(); err != nil {
		log.Printf("❌ Erreur enregistrement contact: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur enregistrement du message"})
		return
	}

	// 📤 Accusé de réception en arrière-plan
	go func(form models.Contact) {
		html := utils.GenerateContactConfirmationHTML(form)
		if err := utils.SendEmail(form.Email, "Nous avons bien reçu votre message ☕", html); err != nil {
			log.Printf("⚠️ Erreur envoi accusé de réception: %v", err)
		}
	}(form)

	log.Printf("✅ Message de contact reçu de %s (%s)", form.Name, form.Email)
	c.JSON(http.StatusOK, gin.H{
		"message": "Votre message a bien été envoyé",
		"emailData": gin.H{
			"name":    form.Name,
			"email":   form.Email,
			"subject": form.Subject,
		},
	})
}

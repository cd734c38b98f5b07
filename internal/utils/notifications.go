package utils

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"arabica_back_end/internal/database"
	"arabica_back_end/internal/models"

	"github.com/gocql/gocql"
)

// CreateNotification insère une notification pour l'utilisateur et la publie
// sur Redis pour la pousser en temps réel via le websocket
func CreateNotification(userID, message string) error {
	session, err := database.GetUsersSession()
	if err != nil {
		return err
	}

	notif := models.Notification{
		ID:        gocql.TimeUUID(),
		UserID:    userID,
		Message:   message,
		Read:      false,
		CreatedAt: time.Now(),
	}

	err = session.Query(`INSERT INTO notifications_by_user (user_id, notification_id, message, read, created_at)
		VALUES (?, ?, ?, ?, ?)`,
		notif.UserID, notif.ID, notif.Message, notif.Read, notif.CreatedAt).Exec()
	if err != nil {
		log.Printf("❌ Erreur insertion notification: %v", err)
		return err
	}

	// Push temps réel (best effort, l'insertion reste la source de vérité)
	payload, _ := json.Marshal(notif)
	if err := database.Redis.Publish(context.Background(), "notifications:"+userID, payload).Err(); err != nil {
		log.Printf("⚠️ Erreur publication notification Redis: %v", err)
	}

	return nil
}

// OrderStatusMessage retourne le texte de notification pour un changement de statut
func OrderStatusMessage(orderID, status string) string {
	switch status {
	case models.StatusPreparing:
		return fmt.Sprintf("Votre commande %s est en préparation ☕", orderID)
	case models.StatusShipped:
		return fmt.Sprintf("Votre commande %s est en route 🚴", orderID)
	case models.StatusDelivered:
		return fmt.Sprintf("Votre commande %s a été livrée 🎉", orderID)
	case models.StatusCancelled:
		return fmt.Sprintf("Votre commande %s a été annulée", orderID)
	default:
		return fmt.Sprintf("Votre commande %s a été mise à jour (%s)", orderID, status)
	}
}

// SendOrderStatusEmail envoie un email de notification de changement de statut
func SendOrderStatusEmail(order models.Order, userEmail string, newStatus string) error {
	subject := getStatusEmailSubject(newStatus)
	html := generateStatusEmailHTML(order, newStatus)

	err := SendEmail(userEmail, subject, html)
	if err != nil {
		log.Printf("❌ Erreur envoi email statut: %v", err)
		return err
	}

	log.Printf("📧 Email de statut envoyé: %s → %s", newStatus, userEmail)
	return nil
}

func getStatusEmailSubject(status string) string {
	switch status {
	case models.StatusPreparing:
		return "☕ Votre commande est en préparation - Arabica"
	case models.StatusShipped:
		return "🚴 Votre commande est en route - Arabica"
	case models.StatusDelivered:
		return "🎉 Votre commande a été livrée - Arabica"
	case models.StatusCancelled:
		return "❌ Commande annulée - Arabica"
	default:
		return "📋 Mise à jour de votre commande - Arabica"
	}
}

func getStatusMessage(status string) string {
	switch status {
	case models.StatusPreparing:
		return "Nos baristas préparent votre commande."
	case models.StatusShipped:
		return "Votre commande a quitté le café et arrive bientôt."
	case models.StatusDelivered:
		return "Votre commande a été livrée. Bonne dégustation !"
	case models.StatusCancelled:
		return "Votre commande a été annulée. Si vous avez une question, contactez-nous."
	default:
		return "Le statut de votre commande a changé."
	}
}

func generateStatusEmailHTML(order models.Order, status string) string {
	return fmt.Sprintf(`
<!DOCTYPE html>
<html lang="fr">
<head>
	<meta charset="UTF-8">
	<title>Mise à jour de commande</title>
</head>
<body style="font-family: Arial, sans-serif; background-color: #f9f5f0; padding: 20px;">
	<div style="max-width: 600px; margin: auto; background-color: white; padding: 20px; border-radius: 10px;">
		<h2 style="color: #5a3e2b;">☕ Arabica</h2>
		<p>Bonjour %s,</p>
		<p>%s</p>
		<p>Commande <strong>%s</strong> — total <strong>%d€</strong>.</p>
		<p style="margin-top: 30px; color: #555;">
			À très vite,<br>
			<strong>L'équipe Arabica</strong>
		</p>
	</div>
</body>
</html>`, order.ContactName, getStatusMessage(status), order.ID.String(), order.TotalPrice)
}

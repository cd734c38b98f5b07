package utils

import (
	"fmt"
	"log"
	"os"

	"arabica_back_end/internal/models"

	"github.com/wneessen/go-mail"
)

// SendEmail envoie un email HTML via le SMTP configuré
func SendEmail(to, subject, htmlBody string) error {
	msg := mail.NewMsg()

	from := os.Getenv("SMTP_FROM")
	if from == "" {
		from = "noreply@arabica-cafe.com"
	}

	if err := msg.From(from); err != nil {
		return err
	}
	if err := msg.To(to); err != nil {
		return err
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextHTML, htmlBody)

	client, err := mail.NewClient(os.Getenv("SMTP_HOST"),
		mail.WithPort(587),
		mail.WithSMTPAuth(mail.SMTPAuthLogin),
		mail.WithUsername(os.Getenv("SMTP_USERNAME")),
		mail.WithPassword(os.Getenv("SMTP_PASSWORD")),
		mail.WithTLSPolicy(mail.TLSMandatory),
	)
	if err != nil {
		return err
	}

	log.Println("📤 Envoi de l'e-mail à", to)
	return client.DialAndSend(msg)
}

// GenerateOrderConfirmationHTML génère le HTML de confirmation de commande,
// avec le QR de retrait à présenter au comptoir
func GenerateOrderConfirmationHTML(order models.Order, qrBase64 string) string {
	itemsHTML := ""
	for _, item := range order.Items {
		itemsHTML += fmt.Sprintf(`
			<tr>
				<td style="padding: 10px; border: 1px solid #ddd;">%s</td>
				<td style="padding: 10px; border: 1px solid #ddd;">%d</td>
				<td style="padding: 10px; border: 1px solid #ddd;">%d€</td>
				<td style="padding: 10px; border: 1px solid #ddd;">%d€</td>
			</tr>`, item.Name, item.Quantity, item.Price, item.Price*item.Quantity)
	}

	return fmt.Sprintf(`
<!DOCTYPE html>
<html lang="fr">
<head>
	<meta charset="UTF-8">
	<meta name="viewport" content="width=device-width, initial-scale=1.0">
	<title>Confirmation de commande</title>
</head>
<body style="font-family: Arial, sans-serif; background-color: #f9f5f0; padding: 20px;">
	<div style="max-width: 600px; margin: auto; background-color: white; padding: 20px; border-radius: 10px;">
		<h2 style="color: #5a3e2b;">☕ Merci pour votre commande !</h2>
		<p>Bonjour %s,</p>
		<p>Votre commande <strong>%s</strong> a bien été enregistrée. Voici le récapitulatif :</p>

		<table style="width: 100%%; border-collapse: collapse; margin-top: 20px;">
			<thead>
				<tr style="background-color: #f0e6da;">
					<th style="padding: 10px; text-align: left; border: 1px solid #ddd;">Article</th>
					<th style="padding: 10px; text-align: left; border: 1px solid #ddd;">Quantité</th>
					<th style="padding: 10px; text-align: left; border: 1px solid #ddd;">Prix unitaire</th>
					<th style="padding: 10px; text-align: left; border: 1px solid #ddd;">Total</th>
				</tr>
			</thead>
			<tbody>
				%s
			</tbody>
			<tfoot>
				<tr>
					<td colspan="3" style="padding: 10px; text-align: right; font-weight: bold;">Total:</td>
					<td style="padding: 10px; font-weight: bold;">%d€</td>
				</tr>
			</tfoot>
		</table>

		<p style="margin-top: 20px;">Livraison : %s</p>

		<div style="text-align: center; margin-top: 30px;">
			<p style="color: #555;">Présentez ce QR code au comptoir pour le retrait :</p>
			<img src="%s" alt="QR de retrait" width="180" height="180" />
		</div>

		<p style="margin-top: 30px; color: #555;">
			À très vite,<br>
			<strong>L'équipe Arabica</strong>
		</p>
	</div>
</body>
</html>`, order.ContactName, order.ID.String(), itemsHTML, order.TotalPrice, order.Address, qrBase64)
}

// GenerateWelcomeHTML génère l'email de bienvenue à l'inscription
func GenerateWelcomeHTML(name string) string {
	return fmt.Sprintf(`
<!DOCTYPE html>
<html lang="fr">
<head>
	<meta charset="UTF-8">
	<title>Bienvenue</title>
</head>
<body style="font-family: Arial, sans-serif; background-color: #f9f5f0; padding: 20px;">
	<div style="max-width: 600px; margin: auto; background-color: white; padding: 20px; border-radius: 10px;">
		<h2 style="color: #5a3e2b;">☕ Bienvenue chez Arabica !</h2>
		<p>Bonjour %s,</p>
		<p>Votre compte est prêt. Parcourez la carte, composez votre panier et récupérez votre commande au comptoir avec votre QR de retrait.</p>
		<p style="margin-top: 30px; color: #555;">
			À très vite,<br>
			<strong>L'équipe Arabica</strong>
		</p>
	</div>
</body>
</html>`, name)
}

// GenerateContactConfirmationHTML génère l'accusé de réception d'un message de contact
func GenerateContactConfirmationHTML(contact models.Contact) string {
	return fmt.Sprintf(`
<!DOCTYPE html>
<html lang="fr">
<head>
	<meta charset="UTF-8">
	<title>Message bien reçu</title>
</head>
<body style="font-family: Arial, sans-serif; background-color: #f9f5f0; padding: 20px;">
	<div style="max-width: 600px; margin: auto; background-color: white; padding: 20px; border-radius: 10px;">
		<h2 style="color: #5a3e2b;">☕ Arabica</h2>
		<p>Bonjour %s,</p>
		<p>Nous avons bien reçu votre message au sujet de « %s ». Notre équipe vous répondra au plus vite.</p>
		<blockquote style="border-left: 3px solid #d4a373; padding-left: 12px; color: #555;">%s</blockquote>
		<p style="margin-top: 30px; color: #555;">
			Cordialement,<br>
			<strong>L'équipe Arabica</strong>
		</p>
	</div>
</body>
</html>`, contact.Name, contact.Subject, contact.Message)
}

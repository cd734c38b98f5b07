package services

import (
	"fmt"
	"strings"

	"arabica_back_end/internal/models"
)

// Routage par mots-clés du chatbot : les questions courantes (menu, horaires,
// adresse, commandes, suggestions) sont répondues localement, le reste part
// vers l'endpoint de complétion.

const (
	IntentMenu     = "menu"
	IntentHours    = "hours"
	IntentLocation = "location"
	IntentOrders   = "orders"
	IntentSuggest  = "suggest"
	IntentGreeting = "greeting"
	IntentFallback = "fallback"
)

var intentKeywords = map[string][]string{
	IntentMenu:     {"menu", "carte", "prix", "boisson", "café", "cafe", "thé", "the", "dessert", "manger"},
	IntentHours:    {"horaire", "ouvert", "ferme", "fermé", "heure d'ouverture", "quand"},
	IntentLocation: {"adresse", "où", "ou êtes", "localisation", "trouver", "situé"},
	IntentOrders:   {"commande", "livraison", "suivi", "statut", "annuler"},
	IntentSuggest:  {"conseil", "recommand", "suggère", "suggere", "propose", "idée"},
	IntentGreeting: {"bonjour", "salut", "hello", "coucou", "bonsoir"},
}

// L'ordre de test compte : une question "que me conseilles-tu sur la carte ?"
// doit router vers les suggestions, pas vers le menu.
var intentPriority = []string{IntentSuggest, IntentOrders, IntentHours, IntentLocation, IntentMenu, IntentGreeting}

// DetectIntent retourne l'intention détectée dans le message, ou IntentFallback
func DetectIntent(message string) string {
	msg := strings.ToLower(message)

	for _, intent := range intentPriority {
		for _, kw := range intentKeywords[intent] {
			if strings.Contains(msg, kw) {
				return intent
			}
		}
	}
	return IntentFallback
}

// BuildLocalReply construit la réponse locale pour une intention donnée.
// Retourne "" si l'intention doit partir vers l'IA.
func BuildLocalReply(intent string, catalog []models.MenuItem) string {
	switch intent {
	case IntentGreeting:
		return "Bonjour et bienvenue chez Arabica ☕ Que puis-je faire pour vous ?"

	case IntentHours:
		return "Nous sommes ouverts du lundi au samedi de 7h30 à 19h, et le dimanche de 9h à 17h."

	case IntentLocation:
		return "Vous nous trouverez au 12 rue des Torréfacteurs. Commandez en ligne et passez au comptoir avec votre QR de retrait !"

	case IntentOrders:
		return "Vous pouvez suivre vos commandes depuis la page « Mes commandes ». Une commande reste annulable pendant 10 minutes après sa création, tant qu'elle n'est ni livrée ni annulée."

	case IntentMenu:
		if len(catalog) == 0 {
			return "Notre carte est en cours de mise à jour, revenez dans un instant !"
		}
		var b strings.Builder
		b.WriteString("Voici quelques incontournables de notre carte :\n")
		count := 0
		for _, item := range catalog {
			if !item.Popular && !item.ChefSpecial {
				continue
			}
			fmt.Fprintf(&b, "• %s — %d€\n", item.Name, item.Price)
			count++
			if count >= 5 {
				break
			}
		}
		if count == 0 {
			for _, item := range catalog {
				fmt.Fprintf(&b, "• %s — %d€\n", item.Name, item.Price)
				count++
				if count >= 5 {
					break
				}
			}
		}
		b.WriteString("La carte complète est sur la page Menu !")
		return b.String()

	case IntentSuggest:
		return "Jetez un œil à la section « Pour vous » de la page d'accueil : les suggestions sont calculées à partir de vos dernières commandes."
	}

	return ""
}

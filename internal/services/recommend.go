package services

import (
	"sort"
	"strings"
	"time"

	"arabica_back_end/internal/models"
)

// MaxRecommendations : nombre maximal de suggestions renvoyées
const MaxRecommendations = 3

// Table fixe d'accords entre catégories (un café appelle un encas ou un
// dessert, etc.)
var categoryPairings = map[string][]string{
	models.CategoryCoffee:    {models.CategorySnacks, models.CategoryDesserts},
	models.CategoryTea:       {models.CategorySnacks, models.CategoryDesserts},
	models.CategorySnacks:    {models.CategoryCoffee, models.CategoryBeverages},
	models.CategoryDesserts:  {models.CategoryCoffee, models.CategoryTea},
	models.CategoryBeverages: {models.CategorySnacks, models.CategoryDesserts},
}

// Mots-clés de profil aromatique cherchés dans les descriptions.
// Recherche par sous-chaîne, fragile aux reformulations — assumé, le
// catalogue est petit et rédigé en interne.
var flavorKeywords = map[string][]string{
	"sweet":   {"sucré", "doux", "caramel", "chocolat", "vanille", "miel", "sweet"},
	"spicy":   {"épicé", "cannelle", "gingembre", "chai", "spicy"},
	"rich":    {"corsé", "intense", "crémeux", "onctueux", "rich"},
	"cold":    {"glacé", "frappé", "froid", "frais", "iced", "cold"},
	"classic": {"classique", "traditionnel", "signature", "classic"},
}

// FlavorProfile infère le profil aromatique d'un article depuis sa description
func FlavorProfile(item models.MenuItem) []string {
	desc := strings.ToLower(item.Description)
	var profile []string

	for _, flavor := range []string{"sweet", "spicy", "rich", "cold", "classic"} {
		for _, kw := range flavorKeywords[flavor] {
			if strings.Contains(desc, kw) {
				profile = append(profile, flavor)
				break
			}
		}
	}
	return profile
}

// flagScore note un article selon ses drapeaux (popular/new/chefSpecial)
func flagScore(item models.MenuItem) int {
	score := 0
	if item.Popular {
		score += 2
	}
	if item.ChefSpecial {
		score += 2
	}
	if item.New {
		score++
	}
	return score
}

func hasFlavor(profile []string, flavor string) bool {
	for _, f := range profile {
		if f == flavor {
			return true
		}
	}
	return false
}

func profileOverlap(a, b []string) int {
	overlap := 0
	for _, f := range a {
		if hasFlavor(b, f) {
			overlap++
		}
	}
	return overlap
}

// mostOrderedItem retourne l'article le plus commandé (quantité cumulée).
// Égalité départagée par l'ID le plus petit pour rester déterministe.
func mostOrderedItem(catalog []models.MenuItem, orders []models.Order) *models.MenuItem {
	quantities := make(map[int]int)
	for _, order := range orders {
		for _, item := range order.Items {
			quantities[item.ItemID] += item.Quantity
		}
	}

	bestID, bestQty := 0, 0
	for id, qty := range quantities {
		if qty > bestQty || (qty == bestQty && (bestID == 0 || id < bestID)) {
			bestID, bestQty = id, qty
		}
	}

	for i := range catalog {
		if catalog[i].ID == bestID {
			return &catalog[i]
		}
	}
	return nil
}

// popularOrNew retourne les articles popular/new triés par score de drapeaux
func popularOrNew(catalog []models.MenuItem) []models.MenuItem {
	var result []models.MenuItem
	for _, item := range catalog {
		if item.Popular || item.New {
			result = append(result, item)
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		si, sj := flagScore(result[i]), flagScore(result[j])
		if si != sj {
			return si > sj
		}
		return result[i].ID < result[j].ID
	})
	return result
}

// Recommend suggère jusqu'à 3 articles à partir de l'historique de commandes.
// Heuristique déterministe, sans état : repli popular/new sans historique,
// sinon accords de catégories depuis l'article le plus commandé, complétés
// par recouvrement de profil aromatique (les profils "cold" sont préférés
// l'après-midi), puis backfill popular/new.
func Recommend(catalog []models.MenuItem, orders []models.Order, now time.Time) []models.MenuItem {
	picked := []models.MenuItem{}
	seen := make(map[int]bool)

	add := func(item models.MenuItem) bool {
		if len(picked) >= MaxRecommendations || seen[item.ID] {
			return false
		}
		picked = append(picked, item)
		seen[item.ID] = true
		return true
	}

	// 1. Pas d'historique → les articles popular/new suffisent
	hasHistory := false
	for _, order := range orders {
		if len(order.Items) > 0 {
			hasHistory = true
			break
		}
	}
	if !hasHistory {
		for _, item := range popularOrNew(catalog) {
			if len(picked) >= MaxRecommendations {
				break
			}
			add(item)
		}
		return picked
	}

	favorite := mostOrderedItem(catalog, orders)
	if favorite == nil {
		// Historique sans correspondance dans le catalogue actuel
		for _, item := range popularOrNew(catalog) {
			if len(picked) >= MaxRecommendations {
				break
			}
			add(item)
		}
		return picked
	}
	seen[favorite.ID] = true

	// 2. Meilleur article de chaque catégorie accordée
	for _, paired := range categoryPairings[favorite.Category] {
		var best *models.MenuItem
		for i := range catalog {
			item := &catalog[i]
			if item.Category != paired || seen[item.ID] {
				continue
			}
			if best == nil || flagScore(*item) > flagScore(*best) ||
				(flagScore(*item) == flagScore(*best) && item.ID < best.ID) {
				best = item
			}
		}
		if best != nil {
			add(*best)
		}
	}

	// 3. Compléter par recouvrement de profil aromatique avec le favori,
	//    préférence "cold" l'après-midi
	if len(picked) < MaxRecommendations {
		favProfile := FlavorProfile(*favorite)
		afternoon := now.Hour() >= 12 && now.Hour() < 18

		type scored struct {
			item  models.MenuItem
			score int
		}
		var candidates []scored
		for _, item := range catalog {
			if seen[item.ID] {
				continue
			}
			profile := FlavorProfile(item)
			score := profileOverlap(favProfile, profile)
			if afternoon && hasFlavor(profile, "cold") {
				score++
			}
			if score > 0 {
				candidates = append(candidates, scored{item, score})
			}
		}
		sort.SliceStable(candidates, func(i, j int) bool {
			if candidates[i].score != candidates[j].score {
				return candidates[i].score > candidates[j].score
			}
			return candidates[i].item.ID < candidates[j].item.ID
		})
		for _, c := range candidates {
			if len(picked) >= MaxRecommendations {
				break
			}
			add(c.item)
		}
	}

	// 4. Backfill avec les popular/new restants
	for _, item := range popularOrNew(catalog) {
		if len(picked) >= MaxRecommendations {
			break
		}
		add(item)
	}

	return picked
}

package models

type Cart struct {
	UserID string     `json:"user_id"`
	Items  []CartItem `json:"items"`
}

type CartItem struct {
	ItemID   int    `json:"itemId"`
	Name     string `json:"name"`
	Price    int    `json:"price"`
	Quantity int    `json:"quantity"`
	ImageURL string `json:"image_url"`
}

// CartTotal calcule le total du panier (prix × quantité)
func CartTotal(items []CartItem) int {
	total := 0
	for _, item := range items {
		total += item.Price * item.Quantity
	}
	return total
}

// NormalizeCart supprime les quantités ≤ 0 et fusionne les doublons
// (la quantité s'accumule, jamais deux entrées pour le même item)
func NormalizeCart(items []CartItem) []CartItem {
	result := []CartItem{}
	for _, item := range items {
		if item.Quantity <= 0 {
			continue
		}
		found := false
		for i := range result {
			if result[i].ItemID == item.ItemID {
				result[i].Quantity += item.Quantity
				found = true
				break
			}
		}
		if !found {
			result = append(result, item)
		}
	}
	return result
}

// MergeCarts réconcilie le panier local (navigateur) avec le panier serveur.
// Règle de résolution de conflit : union des items, et pour un item présent
// des deux côtés on garde max(local, serveur) — on ne somme pas, sinon une
// session déjà synchronisée compterait double.
// Limitation connue : pas de version par panier, deux onglets concurrents
// finissent en last-write-wins au niveau de la persistance.
func MergeCarts(local, server []CartItem) []CartItem {
	local = NormalizeCart(local)
	server = NormalizeCart(server)

	merged := make([]CartItem, len(local))
	copy(merged, local)

	for _, srv := range server {
		found := false
		for i := range merged {
			if merged[i].ItemID == srv.ItemID {
				if srv.Quantity > merged[i].Quantity {
					merged[i].Quantity = srv.Quantity
				}
				found = true
				break
			}
		}
		if !found {
			merged = append(merged, srv)
		}
	}

	return merged
}

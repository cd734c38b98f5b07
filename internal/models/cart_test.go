package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartTotal(t *testing.T) {
	items := []CartItem{
		{ItemID: 1, Price: 4, Quantity: 2},
		{ItemID: 2, Price: 6, Quantity: 1},
	}
	assert.Equal(t, 14, CartTotal(items))
	assert.Equal(t, 0, CartTotal(nil))
}

func TestNormalizeCart(t *testing.T) {
	items := []CartItem{
		{ItemID: 1, Name: "Espresso", Price: 3, Quantity: 1},
		{ItemID: 2, Name: "Latte", Price: 5, Quantity: 0},
		{ItemID: 1, Name: "Espresso", Price: 3, Quantity: 2},
		{ItemID: 3, Name: "Muffin", Price: 4, Quantity: -1},
	}

	normalized := NormalizeCart(items)

	require.Len(t, normalized, 1)
	assert.Equal(t, 1, normalized[0].ItemID)
	assert.Equal(t, 3, normalized[0].Quantity)
}

func TestMergeCartsUnionAndMax(t *testing.T) {
	local := []CartItem{
		{ItemID: 1, Name: "Espresso", Price: 3, Quantity: 2},
		{ItemID: 2, Name: "Latte", Price: 5, Quantity: 1},
	}
	server := []CartItem{
		{ItemID: 1, Name: "Espresso", Price: 3, Quantity: 3},
		{ItemID: 3, Name: "Muffin", Price: 4, Quantity: 1},
	}

	merged := MergeCarts(local, server)

	require.Len(t, merged, 3)

	byID := map[int]CartItem{}
	for _, item := range merged {
		byID[item.ItemID] = item
	}

	// Conflit : max(2, 3), jamais la somme
	assert.Equal(t, 3, byID[1].Quantity)
	// Uniquement local
	assert.Equal(t, 1, byID[2].Quantity)
	// Uniquement serveur
	assert.Equal(t, 1, byID[3].Quantity)
}

func TestMergeCartsIdempotent(t *testing.T) {
	// Re-fusionner un panier déjà synchronisé ne doit pas doubler les quantités
	cart := []CartItem{
		{ItemID: 1, Name: "Espresso", Price: 3, Quantity: 2},
		{ItemID: 2, Name: "Latte", Price: 5, Quantity: 1},
	}

	merged := MergeCarts(cart, cart)

	require.Len(t, merged, 2)
	assert.Equal(t, CartTotal(cart), CartTotal(merged))
}

func TestMergeCartsEmptySides(t *testing.T) {
	cart := []CartItem{{ItemID: 1, Price: 3, Quantity: 2}}

	assert.Equal(t, cart, MergeCarts(cart, nil))
	assert.Equal(t, cart, MergeCarts(nil, cart))
	assert.Empty(t, MergeCarts(nil, nil))
}

package user

import (
	"testing"
	"time"

	"arabica_back_end/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(d int) time.Time {
	return time.Date(2025, 6, d, 12, 0, 0, 0, time.UTC)
}

func testOrders() []OrderSummary {
	return []OrderSummary{
		{TotalPrice: 10, Status: models.StatusDelivered, CreatedAt: day(1)},
		{TotalPrice: 25, Status: models.StatusPending, CreatedAt: day(5)},
		{TotalPrice: 5, Status: models.StatusCancelled, CreatedAt: day(10)},
		{TotalPrice: 40, Status: models.StatusDelivered, CreatedAt: day(15)},
	}
}

func TestFilterOrdersNoFilters(t *testing.T) {
	result := FilterOrders(testOrders(), OrderFilters{})

	// Tri par défaut : récentes en premier
	require.Len(t, result, 4)
	assert.Equal(t, day(15), result[0].CreatedAt)
	assert.Equal(t, day(1), result[3].CreatedAt)
}

func TestFilterOrdersDateRangeInclusive(t *testing.T) {
	from := day(5)
	to := day(10)

	result := FilterOrders(testOrders(), OrderFilters{From: &from, To: &to})

	require.Len(t, result, 2)
	for _, o := range result {
		assert.False(t, o.CreatedAt.Before(from))
		assert.False(t, o.CreatedAt.After(to))
	}
}

func TestFilterOrdersStatus(t *testing.T) {
	result := FilterOrders(testOrders(), OrderFilters{Status: models.StatusDelivered})
	assert.Len(t, result, 2)

	// "all" et "" ne filtrent pas
	assert.Len(t, FilterOrders(testOrders(), OrderFilters{Status: "all"}), 4)
	assert.Len(t, FilterOrders(testOrders(), OrderFilters{Status: ""}), 4)
}

func TestFilterOrdersPriceRangeInclusive(t *testing.T) {
	min := 10
	max := 25

	result := FilterOrders(testOrders(), OrderFilters{MinPrice: &min, MaxPrice: &max})

	require.Len(t, result, 2)
	for _, o := range result {
		assert.GreaterOrEqual(t, o.TotalPrice, min)
		assert.LessOrEqual(t, o.TotalPrice, max)
	}
}

func TestFilterOrdersSortByPrice(t *testing.T) {
	result := FilterOrders(testOrders(), OrderFilters{Sort: "price"})

	require.Len(t, result, 4)
	assert.Equal(t, 40, result[0].TotalPrice)
	assert.Equal(t, 5, result[3].TotalPrice)
}

func TestFilterOrdersCombined(t *testing.T) {
	from := day(2)
	min := 20

	result := FilterOrders(testOrders(), OrderFilters{
		From:     &from,
		MinPrice: &min,
		Status:   models.StatusDelivered,
	})

	require.Len(t, result, 1)
	assert.Equal(t, 40, result[0].TotalPrice)
}

func TestFilterOrdersEmptyInput(t *testing.T) {
	assert.Empty(t, FilterOrders(nil, OrderFilters{}))
}

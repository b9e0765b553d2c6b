package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestInventorySubtotal(t *testing.T) {
	sel := EmptyInventory()
	assert.True(t, InventorySubtotal(sel).IsZero())

	sel[InventoryPlates] = 40  // 40 * 0.5 = 20
	sel[InventoryCutlery] = 10 // 10 * 0.8 = 8
	sel[InventoryTables] = 2   // 2 * 15 = 30
	assert.True(t, InventorySubtotal(sel).Equal(dec("58")))
}

func TestInventorySubtotalIgnoresInvalidEntries(t *testing.T) {
	sel := InventorySelection{
		InventoryChairs:        -5,
		InventoryKey("drones"): 100,
	}
	assert.True(t, InventorySubtotal(sel).IsZero())
}

func TestServicesTotal(t *testing.T) {
	assert.True(t, ServicesTotal(ServiceSelection{}).IsZero())
	assert.True(t, ServicesTotal(ServiceSelection{Setup: true}).Equal(dec("50")))
	assert.True(t, ServicesTotal(ServiceSelection{Serving: true}).Equal(dec("80")))
	assert.True(t, ServicesTotal(ServiceSelection{Setup: true, Serving: true}).Equal(dec("130")))
}

func TestDeliveryFeeBoundary(t *testing.T) {
	tests := []struct {
		combined string
		fee      string
	}{
		{"0", "20"},
		{"299.99", "20"},
		{"300", "0"}, // exactly at the threshold delivery is free
		{"300.01", "0"},
		{"1000", "0"},
	}
	for _, tc := range tests {
		fee := DeliveryFee(dec(tc.combined))
		assert.True(t, fee.Equal(dec(tc.fee)), "combined %s: want fee %s, got %s", tc.combined, tc.fee, fee)
	}
}

func TestGrandTotalExactSum(t *testing.T) {
	food, inv, svc, fee := dec("123.45"), dec("6.78"), dec("130"), dec("20")
	total := GrandTotal(food, inv, svc, fee)
	assert.True(t, total.Equal(dec("280.23")))

	// Repeated recomputation must not drift.
	for i := 0; i < 100; i++ {
		assert.True(t, GrandTotal(food, inv, svc, fee).Equal(total))
	}
}

func TestScenarioBelowThreshold(t *testing.T) {
	// One tray at 25 x2, nothing else: 50 food, paid delivery.
	food := dec("25").Mul(decimal.NewFromInt(2))
	fee := DeliveryFee(food)
	total := GrandTotal(food, decimal.Zero, decimal.Zero, fee)

	assert.True(t, food.Equal(dec("50")))
	assert.True(t, fee.Equal(dec("20")))
	assert.True(t, total.Equal(dec("70")))
}

func TestScenarioFreeDelivery(t *testing.T) {
	// One tray at 35 x9 = 315, over the threshold.
	food := dec("35").Mul(decimal.NewFromInt(9))
	fee := DeliveryFee(food)
	total := GrandTotal(food, decimal.Zero, decimal.Zero, fee)

	assert.True(t, fee.IsZero())
	assert.True(t, total.Equal(dec("315")))
}

func TestServicesExcludedFromDeliveryThreshold(t *testing.T) {
	// 290 food + 130 services still pays delivery: the threshold looks
	// at food + inventory only.
	fee := DeliveryFee(dec("290"))
	assert.True(t, fee.Equal(DeliveryBaseFee))
}

func TestLocalizedNamesFallBackToEnglish(t *testing.T) {
	assert.Equal(t, "Plates", InventoryName(InventoryPlates, "en"))
	assert.Equal(t, "Plates", InventoryName(InventoryPlates, "fr"))
	assert.NotEmpty(t, InventoryName(InventoryTablecloths, "ka"))

	assert.Equal(t, "Serving Staff", ServiceName(ServiceServing, "en"))
	assert.Equal(t, "Serving Staff", ServiceName(ServiceServing, "xx"))
}

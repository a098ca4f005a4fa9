package cart

import (
	"testing"

	"github.com/faizramdhannn/Bazzar-2026/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCatalog() []models.MasterItem {
	return []models.MasterItem{
		{ID: "1", SKU: "X1", Name: "Coffee", Price: 1000, Quantity: 2},
		{ID: "2", SKU: "X2", Name: "Tea", Price: 800, Quantity: 0},
	}
}

func scanningCart(t *testing.T) *Cart {
	t.Helper()
	c := New(testCatalog())
	require.True(t, c.SetCustomer("Sari"))
	require.True(t, c.EnableScanning())
	return c
}

func TestStateProgression(t *testing.T) {
	c := New(testCatalog())
	assert.Equal(t, StateNoCustomer, c.State())

	assert.False(t, c.SetCustomer("   "))
	assert.Equal(t, StateNoCustomer, c.State())

	assert.True(t, c.SetCustomer("Sari"))
	assert.Equal(t, StateCustomerEntered, c.State())

	assert.True(t, c.EnableScanning())
	assert.Equal(t, StateScanning, c.State())
}

func TestScanBeforeScanningEnabled(t *testing.T) {
	c := New(testCatalog())

	assert.ErrorIs(t, c.Scan("X1"), ErrNotScanning)
}

func TestScanNormalizesToken(t *testing.T) {
	c := scanningCart(t)

	require.NoError(t, c.Scan("  x1 "))
	require.Len(t, c.Lines(), 1)
	assert.Equal(t, "X1", c.Lines()[0].SKU)
	assert.Equal(t, 1, c.Lines()[0].Quantity)

	// empty token is a no-op
	require.NoError(t, c.Scan("   "))
	assert.Len(t, c.Lines(), 1)
}

func TestScanMergesRepeatedSKU(t *testing.T) {
	c := scanningCart(t)

	require.NoError(t, c.Scan("X1"))
	require.NoError(t, c.Scan("X1"))
	require.Len(t, c.Lines(), 1)
	assert.Equal(t, 2, c.Lines()[0].Quantity)

	// catalog has 2, cart holds 2, nothing left
	err := c.Scan("X1")
	assert.ErrorContains(t, err, "out of stock for Coffee")
	assert.Equal(t, 2, c.Lines()[0].Quantity)
}

func TestScanUnknownAndDepletedSKU(t *testing.T) {
	c := scanningCart(t)

	assert.ErrorIs(t, c.Scan("ZZ"), ErrSKUNotFound)
	assert.ErrorContains(t, c.Scan("X2"), "out of stock for Tea")
	assert.Empty(t, c.Lines())
}

func TestAvailableStockTracksCart(t *testing.T) {
	c := scanningCart(t)

	assert.Equal(t, 2, c.AvailableStock("X1"))
	require.NoError(t, c.Scan("X1"))
	assert.Equal(t, 1, c.AvailableStock("X1"))
	assert.Equal(t, 0, c.AvailableStock("ZZ"))
}

func TestAdjustQuantity(t *testing.T) {
	c := scanningCart(t)
	require.NoError(t, c.Scan("X1"))

	require.NoError(t, c.Adjust(0, 1))
	assert.Equal(t, 2, c.Lines()[0].Quantity)

	// stock cap blocks further increments
	assert.Error(t, c.Adjust(0, 1))
	assert.Equal(t, 2, c.Lines()[0].Quantity)

	// decrementing to zero removes the line
	require.NoError(t, c.Adjust(0, -1))
	require.NoError(t, c.Adjust(0, -1))
	assert.Empty(t, c.Lines())
}

func TestDiscountCoercion(t *testing.T) {
	c := scanningCart(t)

	c.SetDiscountText("Rp 1.500")
	assert.Equal(t, 1500.0, c.Discount())

	c.SetDiscountText("")
	assert.Equal(t, 0.0, c.Discount())

	c.SetDiscountText("abc")
	assert.Equal(t, 0.0, c.Discount())
}

func TestTotals(t *testing.T) {
	c := scanningCart(t)
	require.NoError(t, c.Scan("X1"))
	require.NoError(t, c.Scan("X1"))

	assert.Equal(t, 2000.0, c.SubTotal())
	assert.Equal(t, 2000.0, c.Total())

	c.SetDiscountText("500")
	assert.Equal(t, 1500.0, c.Total())

	// discount past the subtotal floors the total at zero
	c.SetDiscountText("3000")
	assert.Equal(t, 0.0, c.Total())
}

func TestResetRearmsForNextOrder(t *testing.T) {
	c := scanningCart(t)
	require.NoError(t, c.Scan("X1"))
	c.SetDiscountText("500")
	c.SetNote("to go")

	fresh := []models.MasterItem{
		{ID: "1", SKU: "X1", Name: "Coffee", Price: 1000, Quantity: 1},
	}
	c.Reset(fresh)

	assert.Equal(t, StateNoCustomer, c.State())
	assert.Empty(t, c.Lines())
	assert.Equal(t, 0.0, c.Discount())
	assert.Equal(t, "", c.Note())
	assert.Equal(t, "", c.CustomerName())

	// the new snapshot drives subsequent availability checks
	require.True(t, c.SetCustomer("Budi"))
	require.True(t, c.EnableScanning())
	assert.Equal(t, 1, c.AvailableStock("X1"))
}

func TestOrderLines(t *testing.T) {
	c := scanningCart(t)
	require.NoError(t, c.Scan("X1"))

	lines := c.OrderLines()
	require.Len(t, lines, 1)
	assert.Equal(t, models.OrderLine{SKU: "X1", Name: "Coffee", Price: 1000, Quantity: 1}, lines[0])
}
